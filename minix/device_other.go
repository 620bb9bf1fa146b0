//go:build !linux && !darwin

package minix

import (
	"errors"
	"os"
)

func blockDeviceSize(f *os.File) (int64, error) {
	return 0, errors.New("minix: block devices not supported on this platform")
}
