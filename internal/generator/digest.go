package generator

import (
	"crypto/sha256"
	"fmt"
)

// Digest computes a deterministic SHA256 digest over the file set. The
// digest is independent of insertion order.
//
// Algorithm:
//  1. Sort files by path
//  2. Write path, a NUL byte, content, a NUL byte for each file
//  3. SHA256 the result → "sha256:<hex>"
func (fs *FileSet) Digest() string {
	h := sha256.New()
	for _, p := range fs.SortedPaths() {
		content, _ := fs.Get(p)
		h.Write([]byte(p))
		h.Write([]byte{0})
		h.Write([]byte(content))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil))
}
