package minixfs

import (
	"io"

	"github.com/go-minix/minixfs/minix"
)

// EntryInfo is the typed value the façade hands to a formatter for one
// directory entry or standalone target. It deliberately does
// not know how to render itself as a CLI line — that's the formatter's job.
type EntryInfo struct {
	InodeNumber uint32
	Name        string
	ModeString  string
	Size        int64
}

func entryInfoOf(name string, in minix.Inode) EntryInfo {
	return EntryInfo{
		InodeNumber: in.Number,
		Name:        name,
		ModeString:  in.ModeString(),
		Size:        int64(in.Size),
	}
}

// ListDirectory resolves path and reports its entries if it is
// a directory, or a single EntryInfo for the target itself otherwise. isDir
// tells the caller which of self/entries is meaningful.
func (img *Image) ListDirectory(path string) (isDir bool, self EntryInfo, entries []EntryInfo, err error) {
	canon := minix.CanonicalPath(path)
	ino, err := img.sess.Resolve(canon)
	if err != nil {
		return false, EntryInfo{}, nil, err
	}
	target, err := img.sess.ReadInode(ino)
	if err != nil {
		return false, EntryInfo{}, nil, err
	}
	if !target.IsDir() {
		return false, entryInfoOf(canon, target), nil, nil
	}

	dirEntries, err := img.sess.ReadDir(target)
	if err != nil {
		return false, EntryInfo{}, nil, err
	}
	out := make([]EntryInfo, 0, len(dirEntries))
	for _, de := range dirEntries {
		childInode, err := img.sess.ReadInode(de.Inode)
		if err != nil {
			return false, EntryInfo{}, nil, err
		}
		out = append(out, entryInfoOf(de.Name, childInode))
	}
	return true, EntryInfo{}, out, nil
}

// ListEntry reads inodeNumber directly and reports it under displayName.
func (img *Image) ListEntry(inodeNumber uint32, displayName string) (EntryInfo, error) {
	in, err := img.sess.ReadInode(inodeNumber)
	if err != nil {
		return EntryInfo{}, err
	}
	return entryInfoOf(displayName, in), nil
}

// StreamFile resolves path to a regular-file inode and writes its size
// bytes to sink, block by block, materializing holes as zero bytes.
func (img *Image) StreamFile(path string, sink io.Writer) error {
	canon := minix.CanonicalPath(path)
	ino, err := img.sess.Resolve(canon)
	if err != nil {
		return err
	}
	in, err := img.sess.ReadInode(ino)
	if err != nil {
		return err
	}
	if !in.IsRegular() {
		return minix.NewNotARegularFileError(canon)
	}
	return img.streamInode(in, sink)
}

func (img *Image) streamInode(in minix.Inode, sink io.Writer) error {
	blockSize := img.sess.Geometry().BlockSize
	remaining := int64(in.Size)
	var logical uint32
	zero := make([]byte, blockSize)

	for remaining > 0 {
		want := int64(blockSize)
		if remaining < want {
			want = remaining
		}
		data, hole, err := img.sess.ReadBlock(in, logical)
		if err != nil {
			return err
		}
		if hole {
			if _, err := sink.Write(zero[:want]); err != nil {
				return minix.NewIOFailureError("write", err)
			}
		} else {
			if _, err := sink.Write(data[:want]); err != nil {
				return minix.NewIOFailureError("write", err)
			}
		}
		remaining -= want
		logical++
	}
	return nil
}

// Stat resolves path and returns its EntryInfo without requiring the
// caller to separately know its inode number. It is used by the io/fs.FS
// adapter's Stat.
func (img *Image) Stat(path string) (EntryInfo, error) {
	canon := minix.CanonicalPath(path)
	ino, err := img.sess.Resolve(canon)
	if err != nil {
		return EntryInfo{}, err
	}
	in, err := img.sess.ReadInode(ino)
	if err != nil {
		return EntryInfo{}, err
	}
	return entryInfoOf(canon, in), nil
}
