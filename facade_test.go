package minixfs_test

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-minix/minixfs"
)

const fixtureBlockSize = 1024

// buildFixtureImage lays out a tiny, unpartitioned MINIX v3 image:
//
//	block 0       boot sector (unused)
//	block 1       superblock at byte offset 1024
//	block 2       inode table (16 inodes x 64 bytes == 1024 bytes, one block)
//	block 3       root directory data: "hello.txt" -> 2, "sub" -> 3
//	block 4-5     hello.txt data (spans two blocks)
//	block 6       /sub directory data: "deep.txt" -> 4
//	block 7       deep.txt's only real block; its second logical block is a hole
func buildFixtureImage(t *testing.T) string {
	t.Helper()
	const numBlocks = 12
	img := make([]byte, numBlocks*fixtureBlockSize)
	le := binary.LittleEndian

	sb := img[1024 : 1024+32]
	le.PutUint32(sb[0:4], 16)   // ninodes
	le.PutUint16(sb[6:8], 0)    // i_blocks
	le.PutUint16(sb[8:10], 0)   // z_blocks
	le.PutUint16(sb[10:12], 3)  // firstdata
	le.PutUint16(sb[12:14], 0)  // log_zone_size
	le.PutUint32(sb[16:20], 1<<20)
	le.PutUint32(sb[20:24], numBlocks)
	le.PutUint16(sb[24:26], 0x4D5A) // magic
	le.PutUint16(sb[28:30], fixtureBlockSize)
	sb[30] = 3

	writeInode := func(n uint32, mode uint16, size uint32, zones [7]uint32) {
		off := 2*fixtureBlockSize + int(n-1)*64
		buf := img[off : off+64]
		le.PutUint16(buf[0:2], mode)
		le.PutUint16(buf[2:4], 1) // links
		le.PutUint32(buf[8:12], size)
		for i, z := range zones {
			le.PutUint32(buf[24+i*4:28+i*4], z)
		}
	}
	writeDirBlock := func(block int, entries map[uint32]string) {
		base := block * fixtureBlockSize
		slot := 0
		for ino, name := range entries {
			off := base + slot*64
			le.PutUint32(img[off:off+4], ino)
			copy(img[off+4:off+64], name)
			slot++
		}
	}

	const (
		modeDir     = 0o040000 | 0o755
		modeRegular = 0o100000 | 0o644
	)
	writeInode(1, modeDir, fixtureBlockSize, [7]uint32{3})          // root dir data at block 3
	writeInode(2, modeRegular, 1500, [7]uint32{4, 5})               // hello.txt across blocks 4,5
	writeInode(3, modeDir, fixtureBlockSize, [7]uint32{6})          // /sub dir data at block 6
	writeInode(4, modeRegular, 2*fixtureBlockSize, [7]uint32{7, 0}) // deep.txt: logical block 0 -> block 7, block 1 -> hole

	writeDirBlock(3, map[uint32]string{2: "hello.txt", 3: "sub"})
	writeDirBlock(6, map[uint32]string{4: "deep.txt"})

	helloData := []byte("Hello, MINIX! ")
	copy(img[4*fixtureBlockSize:], bytes.Repeat(helloData, 50))
	copy(img[5*fixtureBlockSize:], bytes.Repeat([]byte("tail"), 10))

	deepData := bytes.Repeat([]byte("deep"), fixtureBlockSize/4)
	copy(img[7*fixtureBlockSize:], deepData)

	dir := t.TempDir()
	path := filepath.Join(dir, "image.minix")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestListDirectoryRoot(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	isDir, _, entries, err := img.ListDirectory("/")
	if err != nil {
		t.Fatalf("ListDirectory: %v", err)
	}
	if !isDir {
		t.Fatal("expected / to be a directory")
	}
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name] = true
	}
	if !names["hello.txt"] || !names["sub"] {
		t.Errorf("entries = %+v, want hello.txt and sub", entries)
	}
}

func TestListDirectoryOnNonDirectoryReturnsSingleEntry(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	isDir, self, _, err := img.ListDirectory("/hello.txt")
	if err != nil {
		t.Fatalf("ListDirectory: %v", err)
	}
	if isDir {
		t.Fatal("expected /hello.txt to not be a directory")
	}
	if self.Name != "/hello.txt" || self.Size != 1500 {
		t.Errorf("self = %+v", self)
	}
}

func TestStreamFileRoundTripsWithHole(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	var buf bytes.Buffer
	if err := img.StreamFile("/sub/deep.txt", &buf); err != nil {
		t.Fatalf("StreamFile: %v", err)
	}
	if buf.Len() != 2*fixtureBlockSize {
		t.Fatalf("streamed %d bytes, want %d", buf.Len(), 2*fixtureBlockSize)
	}
	first := buf.Bytes()[:fixtureBlockSize]
	second := buf.Bytes()[fixtureBlockSize:]
	if !bytes.Equal(first, bytes.Repeat([]byte("deep"), fixtureBlockSize/4)) {
		t.Error("first block does not match the real data written at block 7")
	}
	for _, b := range second {
		if b != 0 {
			t.Fatal("expected the second (hole) block to be all zero bytes")
		}
	}
}

func TestStreamFileRejectsDirectory(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	if err := img.StreamFile("/sub", &bytes.Buffer{}); err == nil {
		t.Fatal("expected NotARegularFile error for a directory target")
	}
}

func TestStatResolvesNestedPath(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	info, err := img.Stat("/sub/deep.txt")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size != 2*fixtureBlockSize {
		t.Errorf("Stat size = %d, want %d", info.Size, 2*fixtureBlockSize)
	}
}

func TestFSWalkDirVisitsEveryEntry(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	var visited []string
	err = minixfs.WalkDir(img, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}

	want := map[string]bool{".": true, "hello.txt": true, "sub": true, "sub/deep.txt": true}
	if len(visited) != len(want) {
		t.Errorf("visited %v, want exactly %v", visited, want)
	}
	for _, p := range visited {
		if !want[p] {
			t.Errorf("unexpected path visited: %q", p)
		}
	}
}

func TestFSReadFile(t *testing.T) {
	img, err := minixfs.Open(buildFixtureImage(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer img.Close()

	data, err := fs.ReadFile(img.FS(), "hello.txt")
	if err != nil {
		t.Fatalf("fs.ReadFile: %v", err)
	}
	if len(data) != 1500 {
		t.Errorf("len(data) = %d, want 1500", len(data))
	}
}
