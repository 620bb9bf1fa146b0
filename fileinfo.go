package minixfs

import (
	"io/fs"
	"path"
	"time"

	"github.com/go-minix/minixfs/minix"
)

// fileInfo adapts a name plus its decoded inode into fs.FileInfo and
// fs.DirEntry.
type fileInfo struct {
	name string
	in   minix.Inode
}

func (fi fileInfo) Name() string { return fi.name }
func (fi fileInfo) Size() int64  { return int64(fi.in.Size) }
func (fi fileInfo) IsDir() bool  { return fi.in.IsDir() }
func (fi fileInfo) ModTime() time.Time {
	return fi.in.ModTime()
}
func (fi fileInfo) Sys() any { return fi.in }

func (fi fileInfo) Mode() fs.FileMode {
	var m fs.FileMode
	switch fi.in.Type() {
	case minix.TypeDirectory:
		m |= fs.ModeDir
	case minix.TypeSymlink:
		m |= fs.ModeSymlink
	case minix.TypeCharDevice:
		m |= fs.ModeDevice | fs.ModeCharDevice
	case minix.TypeBlockDevice:
		m |= fs.ModeDevice
	case minix.TypeFIFO:
		m |= fs.ModeNamedPipe
	case minix.TypeSocket:
		m |= fs.ModeSocket
	}
	m |= fs.FileMode(fi.in.Mode & 0o777)
	return m
}

// fs.DirEntry
func (fi fileInfo) Type() fs.FileMode          { return fi.Mode().Type() }
func (fi fileInfo) Info() (fs.FileInfo, error) { return fi, nil }

var _ fs.FileInfo = fileInfo{}
var _ fs.DirEntry = fileInfo{}

func splitName(p string) string {
	if p == "." || p == "/" {
		return "/"
	}
	return path.Base(p)
}
