package minixfs

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/go-minix/minixfs/minix"
)

// FS adapts an open Image to io/fs.FS, so callers can use fs.WalkDir,
// fs.Glob, fs.ReadFile and friends against a MINIX image the same way they
// would against an os.DirFS or embed.FS.
type FS struct {
	img *Image
}

// FS returns an io/fs.FS view of img.
func (img *Image) FS() fs.FS { return FS{img: img} }

var _ fs.FS = FS{}
var _ fs.StatFS = FS{}
var _ fs.ReadDirFS = FS{}

func toFSPath(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return "/", nil
	}
	return "/" + name, nil
}

// Open resolves name and returns a file handle: a directory handle for
// directory inodes, or a lazily-read file handle otherwise. For any other
// inode type (device, FIFO, socket, symlink) the handle's Stat reports that
// type, and reading it yields no bytes: only regular files have their zone
// table read.
func (f FS) Open(name string) (fs.File, error) {
	p, err := toFSPath(name)
	if err != nil {
		return nil, err
	}
	ino, err := f.img.sess.Resolve(p)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	in, err := f.img.sess.ReadInode(ino)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	info := fileInfo{name: splitName(p), in: in}
	if in.IsDir() {
		entries, err := f.img.sess.ReadDir(in)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &openDir{info: info, entries: entries, fsys: f, dirPath: p}, nil
	}
	return &openFile{fsys: f, info: info, in: in}, nil
}

// Stat implements fs.StatFS without needing to open and discard a handle.
func (f FS) Stat(name string) (fs.FileInfo, error) {
	p, err := toFSPath(name)
	if err != nil {
		return nil, err
	}
	ei, err := f.img.Stat(p)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	in, err := f.img.sess.ReadInode(ei.InodeNumber)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return fileInfo{name: splitName(p), in: in}, nil
}

// ReadDir implements fs.ReadDirFS, returning entries sorted by name as
// fs.ReadDir's contract requires (unlike WalkDirectory, which preserves
// on-disk order for the path resolver's tie-break policy).
func (f FS) ReadDir(name string) ([]fs.DirEntry, error) {
	p, err := toFSPath(name)
	if err != nil {
		return nil, err
	}
	ino, err := f.img.sess.Resolve(p)
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	dir, err := f.img.sess.ReadInode(ino)
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	if !dir.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	raw, err := f.img.sess.ReadDir(dir)
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	out := make([]fs.DirEntry, 0, len(raw))
	for _, de := range raw {
		childInode, err := f.img.sess.ReadInode(de.Inode)
		if err != nil {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
		}
		out = append(out, fileInfo{name: de.Name, in: childInode})
	}
	sortDirEntries(out)
	return out, nil
}

func sortDirEntries(entries []fs.DirEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Name() < entries[j-1].Name(); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

// openFile implements fs.File for a regular (or special) file, streaming
// its blocks through Image.streamInode into an in-memory buffer on first
// Read.
type openFile struct {
	fsys FS
	info fileInfo
	in   minix.Inode
	buf  *bytes.Reader
}

func (of *openFile) Stat() (fs.FileInfo, error) { return of.info, nil }

func (of *openFile) Read(p []byte) (int, error) {
	if of.buf == nil {
		var b bytes.Buffer
		if of.in.IsRegular() {
			if err := of.fsys.img.streamInode(of.in, &b); err != nil {
				return 0, err
			}
		}
		of.buf = bytes.NewReader(b.Bytes())
	}
	n, err := of.buf.Read(p)
	if err == io.EOF {
		return n, io.EOF
	}
	return n, err
}

func (of *openFile) Close() error { return nil }

// openDir implements fs.ReadDirFile for a directory handle returned by Open.
type openDir struct {
	info    fileInfo
	entries []minix.DirEntry
	fsys    FS
	dirPath string
	pos     int
}

func (od *openDir) Stat() (fs.FileInfo, error) { return od.info, nil }
func (od *openDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: od.dirPath, Err: fs.ErrInvalid}
}
func (od *openDir) Close() error { return nil }

func (od *openDir) ReadDir(n int) ([]fs.DirEntry, error) {
	wantAll := n <= 0
	remaining := od.entries[od.pos:]
	if wantAll || n > len(remaining) {
		n = len(remaining)
	}
	out := make([]fs.DirEntry, 0, n)
	for _, de := range remaining[:n] {
		childInode, err := od.fsys.img.sess.ReadInode(de.Inode)
		if err != nil {
			return nil, err
		}
		out = append(out, fileInfo{name: de.Name, in: childInode})
	}
	od.pos += n
	sortDirEntries(out)
	if !wantAll && n == 0 {
		return nil, io.EOF
	}
	return out, nil
}

var _ fs.ReadDirFile = (*openDir)(nil)
var _ fs.File = (*openFile)(nil)

// WalkDir walks the image's tree rooted at root using fs.WalkDirFunc,
// matching stdlib fs.WalkDir semantics exactly. It is a thin convenience
// wrapper: fs.WalkDir(img.FS(), root, walkFn) does the same thing.
func WalkDir(img *Image, root string, walkFn fs.WalkDirFunc) error {
	return fs.WalkDir(img.FS(), root, walkFn)
}
