package minix

import (
	"io"
	"os"
)

// fileBackend wraps an *os.File as a Backend, enforcing the image reader's
// bounds contract: negative offsets and reads extending past
// end-of-image fail rather than silently short-reading.
type fileBackend struct {
	f    *os.File
	size int64
}

func (b *fileBackend) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > b.size {
		return 0, NewIOFailureError("read_at", io.ErrUnexpectedEOF)
	}
	n, err := b.f.ReadAt(p, off)
	if err != nil {
		return n, NewIOFailureError("read_at", err)
	}
	return n, nil
}

func (b *fileBackend) Close() error {
	return b.f.Close()
}

func (b *fileBackend) Stat() (os.FileInfo, error) {
	return b.f.Stat()
}

// newDeviceBackend sizes f: os.FileInfo.Size() for a regular file, a
// platform ioctl for a block device (device_linux.go / device_darwin.go /
// device_other.go).
func newDeviceBackend(f *os.File) (Backend, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, NewIOFailureError("stat", err)
	}

	var size int64
	switch {
	case info.Mode().IsRegular():
		size = info.Size()
	case info.Mode()&os.ModeDevice != 0:
		size, err = blockDeviceSize(f)
		if err != nil {
			return nil, NewIOFailureError("blockdevice_size", err)
		}
	default:
		return nil, NewIOFailureError("open", os.ErrInvalid)
	}

	return &fileBackend{f: f, size: size}, nil
}
