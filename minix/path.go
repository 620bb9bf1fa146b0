package minix

import "strings"

// RootInode is inode number 1, the root directory.
const RootInode uint32 = 1

// CanonicalPath collapses runs of '/', ensures a leading '/', and strips a
// trailing '/' unless the path is exactly "/". Empty input
// becomes "/". Idempotent: CanonicalPath(CanonicalPath(p)) == CanonicalPath(p).
func CanonicalPath(p string) string {
	parts := splitComponents(p)
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// splitComponents splits a path on '/', skipping empty components.
func splitComponents(p string) []string {
	raw := strings.Split(p, "/")
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Resolve walks path component by component from the root inode, returning
// the terminal inode number. Duplicate names in a directory are tolerated;
// the first on-disk match wins.
func (s *Session) Resolve(path string) (uint32, error) {
	components := splitComponents(path)
	current := RootInode

	for _, c := range components {
		inode, err := s.ReadInode(current)
		if err != nil {
			return 0, err
		}
		// Every component is resolved by searching the PREVIOUS component's
		// inode as a directory, so that inode must be a directory whenever
		// there is a component left to search for.
		if !inode.IsDir() {
			return 0, NewNotADirectoryError(CanonicalPath(path))
		}

		match, found, err := s.findEntry(inode, c)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, NewNotFoundError(CanonicalPath(path))
		}
		current = match
	}
	return current, nil
}

// findEntry looks up name in dir's directory entries, returning the first
// on-disk match. Name matching is exact:
// length and bytes must match, so a length-prefix match that only agrees
// up to the NUL boundary does not count.
func (s *Session) findEntry(dir Inode, name string) (inode uint32, found bool, err error) {
	err = s.WalkDirectory(dir, func(e DirEntry) bool {
		if e.Name == name {
			inode = e.Inode
			found = true
			return false
		}
		return true
	})
	return inode, found, err
}
