package minix

import "fmt"

// IOFailureError wraps any short read, seek failure, or I/O error encountered
// while reading the image. The decoder never retries.
type IOFailureError struct {
	Op  string
	Err error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("minix: I/O failure during %s: %v", e.Op, e.Err)
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}

func NewIOFailureError(op string, err error) *IOFailureError {
	return &IOFailureError{Op: op, Err: err}
}

// BadPartitionMagicError is returned when sector 0 of the image is missing
// the 0x55AA signature at offsets 510/511.
type BadPartitionMagicError struct {
	Got [2]byte
}

func (e *BadPartitionMagicError) Error() string {
	return fmt.Sprintf("minix: bad MBR signature: got 0x%02x 0x%02x, want 0x55 0xaa", e.Got[0], e.Got[1])
}

func NewBadPartitionMagicError(got [2]byte) *BadPartitionMagicError {
	return &BadPartitionMagicError{Got: got}
}

// BadPartitionNumberError is returned when a requested partition index is
// not in {0,1,2,3}.
type BadPartitionNumberError struct {
	Requested int
}

func (e *BadPartitionNumberError) Error() string {
	return fmt.Sprintf("minix: bad partition number %d: must be 0-3", e.Requested)
}

func NewBadPartitionNumberError(requested int) *BadPartitionNumberError {
	return &BadPartitionNumberError{Requested: requested}
}

// NotMinixPartitionError is returned when the requested partition entry's
// type byte is not 0x81.
type NotMinixPartitionError struct {
	Requested int
	GotType   byte
}

func (e *NotMinixPartitionError) Error() string {
	return fmt.Sprintf("minix: partition %d has type 0x%02x, not a MINIX partition (0x81)", e.Requested, e.GotType)
}

func NewNotMinixPartitionError(requested int, gotType byte) *NotMinixPartitionError {
	return &NotMinixPartitionError{Requested: requested, GotType: gotType}
}

// BadFilesystemMagicError is returned when the superblock magic does not
// equal 0x4D5A.
type BadFilesystemMagicError struct {
	Got int16
}

func (e *BadFilesystemMagicError) Error() string {
	return fmt.Sprintf("minix: bad superblock magic 0x%04x, want 0x4d5a", uint16(e.Got))
}

func NewBadFilesystemMagicError(got int16) *BadFilesystemMagicError {
	return &BadFilesystemMagicError{Got: got}
}

// BadInodeError is returned when an inode number is outside [1, ninodes].
type BadInodeError struct {
	Requested uint32
	NInodes   uint32
}

func (e *BadInodeError) Error() string {
	return fmt.Sprintf("minix: bad inode number %d: valid range is 1-%d", e.Requested, e.NInodes)
}

func NewBadInodeError(requested, ninodes uint32) *BadInodeError {
	return &BadInodeError{Requested: requested, NInodes: ninodes}
}

// NotFoundError is returned when a path component has no matching directory entry.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Can't find %s", e.Path)
}

func NewNotFoundError(path string) *NotFoundError {
	return &NotFoundError{Path: path}
}

// NotADirectoryError is returned when a non-terminal path component is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

func NewNotADirectoryError(path string) *NotADirectoryError {
	return &NotADirectoryError{Path: path}
}

// NotARegularFileError is returned when an operation that requires a regular
// file is given an inode of some other type.
type NotARegularFileError struct {
	Path string
}

func (e *NotARegularFileError) Error() string {
	return fmt.Sprintf("%s is not a regular file", e.Path)
}

func NewNotARegularFileError(path string) *NotARegularFileError {
	return &NotARegularFileError{Path: path}
}
