// Package minixfs is the public façade over a decoded MINIX v3 filesystem
// image: list a directory, describe a single entry, or stream
// a regular file's bytes, plus an io/fs.FS adapter for stdlib-compatible
// traversal. The heavy decoding lives in the sibling minix package; this
// package exposes the three named operations and leaves output formatting
// to its callers. The decoder exposes typed values; formatters consume
// them.
package minixfs

import "github.com/go-minix/minixfs/minix"

// Image is an opened MINIX filesystem session, ready for the façade
// operations below.
type Image struct {
	sess *minix.Session
}

// Option configures Open. It is an alias of minix.Option so that callers
// need not import the minix package directly just to pass
// minix.WithPartition/minix.WithSubPartition/minix.WithLogger.
type Option = minix.Option

// Open locates and decodes the MINIX filesystem in the image at path,
// applying any partition/sub-partition/logger options.
func Open(path string, opts ...Option) (*Image, error) {
	sess, err := minix.OpenImage(path, opts...)
	if err != nil {
		return nil, err
	}
	return &Image{sess: sess}, nil
}

// Close releases the underlying image handle.
func (img *Image) Close() error {
	return img.sess.Close()
}
