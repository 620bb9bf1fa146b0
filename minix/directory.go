package minix

import (
	"bytes"
	"encoding/binary"
)

// DirEntry is one decoded (inode_number, name) pair from a directory's data
// blocks.
type DirEntry struct {
	Inode uint32
	Name  string
}

// EntryVisitor is called for each in-use directory entry, in on-disk order.
// Returning false stops the walk early (used by the path resolver to take
// the first match).
type EntryVisitor func(DirEntry) (keepGoing bool)

// WalkDirectory iterates the entries of a directory inode's data blocks in
// on-disk order. It scans logical block indices while
// i*blocksize < inode.Size; a hole block contributes no entries, and
// zero-inode slots are skipped.
func (s *Session) WalkDirectory(dir Inode, visit EntryVisitor) error {
	blockSize := s.geo.BlockSize
	entriesPerBlock := blockSize / dirEntrySize

	numBlocks := (dir.Size + blockSize - 1) / blockSize
	for i := uint32(0); i < numBlocks; i++ {
		if uint64(i)*uint64(blockSize) >= uint64(dir.Size) {
			break
		}
		data, hole, err := s.ReadBlock(dir, i)
		if err != nil {
			return err
		}
		if hole {
			continue // a hole block contributes no entries
		}
		for j := uint32(0); j < entriesPerBlock; j++ {
			raw := data[j*dirEntrySize : (j+1)*dirEntrySize]
			ino := binary.LittleEndian.Uint32(raw[0:4])
			if ino == 0 {
				continue
			}
			name := decodeEntryName(raw[4:dirEntrySize])
			if !visit(DirEntry{Inode: ino, Name: name}) {
				return nil
			}
		}
	}
	return nil
}

// decodeEntryName interprets a directory entry's 60-byte name field: the
// bytes up to the first NUL, or the full field if none.
func decodeEntryName(b []byte) string {
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		return string(b[:idx])
	}
	return string(b)
}

// ReadDir collects WalkDirectory's entries into a slice, for callers that
// don't need early-exit.
func (s *Session) ReadDir(dir Inode) ([]DirEntry, error) {
	var entries []DirEntry
	err := s.WalkDirectory(dir, func(e DirEntry) bool {
		entries = append(entries, e)
		return true
	})
	return entries, err
}
