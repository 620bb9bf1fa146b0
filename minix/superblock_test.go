package minix

import (
	"encoding/binary"
	"testing"
)

func buildSuperblockBytes(ninodes uint32, iblocks, zblocks int16, firstData uint16, logZoneSize int16, maxFile, zones uint32, magic int16, blockSize uint16, subVersion uint8) []byte {
	buf := make([]byte, superblockRawSize)
	le := binary.LittleEndian
	le.PutUint32(buf[0:4], ninodes)
	le.PutUint16(buf[6:8], uint16(iblocks))
	le.PutUint16(buf[8:10], uint16(zblocks))
	le.PutUint16(buf[10:12], firstData)
	le.PutUint16(buf[12:14], uint16(logZoneSize))
	le.PutUint32(buf[16:20], maxFile)
	le.PutUint32(buf[20:24], zones)
	le.PutUint16(buf[24:26], uint16(magic))
	le.PutUint16(buf[28:30], blockSize)
	buf[30] = subVersion
	return buf
}

func TestDecodeSuperblockHappyPath(t *testing.T) {
	buf := buildSuperblockBytes(512, 2, 10, 50, 1, 1 << 20, 4096, superblockMagic, 4096, 3)
	sb, err := decodeSuperblock(buf)
	if err != nil {
		t.Fatalf("decodeSuperblock: %v", err)
	}
	if sb.NInodes != 512 || sb.BlockSize != 4096 || sb.LogZoneSize != 1 || sb.SubVersion != 3 {
		t.Errorf("decoded superblock = %+v", sb)
	}
}

func TestDecodeSuperblockRejectsBadMagic(t *testing.T) {
	buf := buildSuperblockBytes(512, 2, 10, 50, 0, 1<<20, 4096, 0x1234, 1024, 3)
	_, err := decodeSuperblock(buf)
	if err == nil {
		t.Fatal("expected BadFilesystemMagicError, got nil")
	}
	if _, ok := err.(*BadFilesystemMagicError); !ok {
		t.Errorf("got %T, want *BadFilesystemMagicError", err)
	}
}

func TestGeometryRejectsBlockSizeNotMultipleOfDirEntrySize(t *testing.T) {
	sb := Superblock{Magic: superblockMagic, BlockSize: 100, LogZoneSize: 0}
	if _, err := sb.geometry(); err == nil {
		t.Fatal("expected geometry error for blocksize=100, got nil")
	}
}

func TestGeometryDerivesBlocksPerZoneFromLogZoneSize(t *testing.T) {
	sb := Superblock{Magic: superblockMagic, BlockSize: 1024, LogZoneSize: 2}
	geo, err := sb.geometry()
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	if geo.BlocksPerZone != 4 {
		t.Errorf("BlocksPerZone = %d, want 4", geo.BlocksPerZone)
	}
	if geo.ZoneSizeBytes != 4096 {
		t.Errorf("ZoneSizeBytes = %d, want 4096", geo.ZoneSizeBytes)
	}
	if geo.PointersPerBlock != 256 {
		t.Errorf("PointersPerBlock = %d, want 256", geo.PointersPerBlock)
	}
}

func TestInodeTableStartBlock(t *testing.T) {
	sb := Superblock{IBlocks: 3, ZBlocks: 5}
	if got := sb.inodeTableStartBlock(); got != 2+3+5 {
		t.Errorf("inodeTableStartBlock() = %d, want %d", got, 2+3+5)
	}
}
