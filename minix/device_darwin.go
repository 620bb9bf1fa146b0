//go:build darwin

package minix

import (
	"os"

	"golang.org/x/sys/unix"
)

// these constants are not exposed by golang.org/x/sys/unix on darwin yet.
const dkiocGetBlockSize = 0x40046418
const dkiocGetBlockCount = 0x40086419

// blockDeviceSize sizes a darwin block device via DKIOCGETBLOCKSIZE and
// DKIOCGETBLOCKCOUNT.
func blockDeviceSize(f *os.File) (int64, error) {
	fd := int(f.Fd())
	blockSize, err := unix.IoctlGetInt(fd, dkiocGetBlockSize)
	if err != nil {
		return 0, err
	}
	blockCount, err := unix.IoctlGetInt(fd, dkiocGetBlockCount)
	if err != nil {
		return 0, err
	}
	return int64(blockSize) * int64(blockCount), nil
}
