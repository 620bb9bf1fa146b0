//go:build linux

package minix

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// blockDeviceSize sizes a Linux block device via BLKGETSIZE64, reading
// total device size directly rather than sector size times block count.
func blockDeviceSize(f *os.File) (int64, error) {
	var size uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), uintptr(unix.BLKGETSIZE64), uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return 0, errno
	}
	return int64(size), nil
}
