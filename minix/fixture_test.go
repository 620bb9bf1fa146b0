package minix

import (
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
)

// memBackend is a Backend over an in-memory byte slice, letting the rest
// of the package build synthetic images without touching disk.
type memBackend struct {
	data []byte
}

func newMemBackend(size int) *memBackend {
	return &memBackend{data: make([]byte, size)}
}

func (m *memBackend) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || int(off) >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func (m *memBackend) Close() error                { return nil }
func (m *memBackend) Stat() (fs.FileInfo, error)  { return nil, nil }

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("test", true)
}

// newTestSession builds a Session directly (bypassing OpenImage/MBR/device
// sizing) over a memBackend, for tests that only exercise inode/block/
// directory/path logic against a hand-built byte layout.
func newTestSession(backend *memBackend, blockSize uint32) *Session {
	geo := Geometry{
		BlockSize:        blockSize,
		BlocksPerZone:    1,
		ZoneSizeBytes:    blockSize,
		PointersPerBlock: blockSize / pointerSize,
	}
	return &Session{
		backend: backend,
		sb:      Superblock{NInodes: 1 << 20, BlockSize: uint16(blockSize)},
		geo:     geo,
		log:     discardLogger(),
		scratch: make([]byte, blockSize),
	}
}
