// Package minix decodes a read-only MINIX version-3 filesystem image:
// locating it behind an optional nested DOS partition table, parsing its
// superblock, and resolving inodes, directories, and paths against it.
package minix

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/go-minix/minixfs/minix/mbr"
)

// Session is the immutable, process-owned handle produced by OpenImage: the
// backing image, the filesystem-base byte offset located within it, and the
// superblock-derived geometry. It owns the underlying backend exclusively.
// The superblock and geometry do not change after construction, but every
// block read goes through one shared scratch buffer, so a Session is not
// safe for concurrent use.
type Session struct {
	backend Backend
	fsBase  int64
	sb      Superblock
	geo     Geometry
	log     *logrus.Entry

	scratch []byte // blocksize-sized reusable buffer
}

// Option configures OpenImage.
type Option func(*openConfig)

type openConfig struct {
	primary *int
	sub     *int
	logger  *logrus.Logger
}

// WithPartition selects primary partition n (0-3) as the filesystem
// location. Without this option the image is treated as a bare
// (unpartitioned) filesystem.
func WithPartition(n int) Option {
	return func(c *openConfig) { c.primary = &n }
}

// WithSubPartition selects sub-partition n (0-3) within the chosen primary
// partition's nested partition table.
func WithSubPartition(n int) Option {
	return func(c *openConfig) { c.sub = &n }
}

// WithLogger attaches a logrus.Logger for debug-level tracing of every
// partition read, superblock decode, inode read, and block dereference.
// Without this option, logging is discarded. This backs the CLI's -v flag
// without requiring a second diagnostic mechanism.
func WithLogger(l *logrus.Logger) Option {
	return func(c *openConfig) { c.logger = l }
}

// OpenImage opens the image at path, locates the MINIX filesystem within it,
// decodes its superblock, and returns a ready Session. The underlying file
// is closed on every error path after it is opened.
func OpenImage(path string, opts ...Option) (s *Session, err error) {
	cfg := openConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.PanicLevel) // discard unless caller opts in
	}
	log := logger.WithField("image", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, NewIOFailureError("open", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	backend, err := newDeviceBackend(f)
	if err != nil {
		return nil, err
	}

	fsBase, err := locate(backend, cfg.primary, cfg.sub, log)
	if err != nil {
		return nil, err
	}

	fsReader := newOffsetReader(backend, fsBase)

	sbBuf := make([]byte, superblockRawSize)
	if err := readFull(fsReader, superblockOffset, sbBuf); err != nil {
		return nil, err
	}
	sb, err := decodeSuperblock(sbBuf)
	if err != nil {
		return nil, err
	}
	geo, err := sb.geometry()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"fsBase":    fsBase,
		"blockSize": geo.BlockSize,
		"zoneSize":  geo.ZoneSizeBytes,
		"ninodes":   sb.NInodes,
	}).Debug("minix: superblock decoded")

	return &Session{
		backend: fsReader,
		fsBase:  fsBase,
		sb:      sb,
		geo:     geo,
		log:     log,
		scratch: make([]byte, geo.BlockSize),
	}, nil
}

// locate walks at most two levels of DOS partition table to find the byte
// offset of the filesystem within the image.
func locate(backend Backend, primary, sub *int, log *logrus.Entry) (int64, error) {
	if primary == nil {
		return 0, nil
	}

	base, err := locateOne(backend, 0, *primary, log)
	if err != nil {
		return 0, err
	}
	if sub == nil {
		return base, nil
	}
	return locateOne(backend, base, *sub, log)
}

func locateOne(backend Backend, tableOffset int64, want int, log *logrus.Entry) (int64, error) {
	if want < 0 || want > 3 {
		return 0, NewBadPartitionNumberError(want)
	}
	table, err := mbr.Read(backend, tableOffset)
	if err != nil {
		if sigErr, ok := err.(*mbr.SignatureError); ok {
			return 0, NewBadPartitionMagicError(sigErr.Got)
		}
		return 0, NewIOFailureError("read_mbr", err)
	}
	entry := table.Entries[want]
	if !entry.IsMinix() {
		return 0, NewNotMinixPartitionError(want, entry.Type)
	}
	log.WithFields(logrus.Fields{"tableOffset": tableOffset, "partition": want, "lFirst": entry.LFirst}).
		Debug("minix: located partition")
	return entry.StartByte(), nil
}

// Geometry returns the geometry derived from the superblock at open time.
func (s *Session) Geometry() Geometry {
	return s.geo
}

// Superblock returns the decoded superblock.
func (s *Session) Superblock() Superblock {
	return s.sb
}

// Close releases the underlying image handle.
func (s *Session) Close() error {
	return s.backend.Close()
}
