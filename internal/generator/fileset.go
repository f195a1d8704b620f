package generator

import (
	"slices"
)

// File is one generated file.
type File struct {
	// Path is relative, forward-slash separated, without a leading slash.
	Path    string
	Content string
}

// FileSet is an ordered mapping of path to content. Paths keep the order they
// were added in; adding an existing path replaces its content in place.
type FileSet struct {
	files []File
	index map[string]int
}

// NewFileSet returns an empty file set.
func NewFileSet() *FileSet {
	return &FileSet{index: map[string]int{}}
}

func (fs *FileSet) add(path, content string) {
	if i, ok := fs.index[path]; ok {
		fs.files[i].Content = content
		return
	}
	fs.index[path] = len(fs.files)
	fs.files = append(fs.files, File{Path: path, Content: content})
}

// Len returns the number of files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Get returns the content at path.
func (fs *FileSet) Get(path string) (string, bool) {
	i, ok := fs.index[path]
	if !ok {
		return "", false
	}
	return fs.files[i].Content, true
}

// Has reports whether path is in the set.
func (fs *FileSet) Has(path string) bool {
	_, ok := fs.index[path]
	return ok
}

// Paths returns every path in insertion order.
func (fs *FileSet) Paths() []string {
	out := make([]string, len(fs.files))
	for i, f := range fs.files {
		out[i] = f.Path
	}
	return out
}

// SortedPaths returns every path in lexical order.
func (fs *FileSet) SortedPaths() []string {
	out := fs.Paths()
	slices.Sort(out)
	return out
}

// Files returns a copy of the files in insertion order.
func (fs *FileSet) Files() []File {
	return slices.Clone(fs.files)
}

// Map returns the set as a plain map.
func (fs *FileSet) Map() map[string]string {
	out := make(map[string]string, len(fs.files))
	for _, f := range fs.files {
		out[f.Path] = f.Content
	}
	return out
}

// Size returns the total content length in bytes.
func (fs *FileSet) Size() int {
	n := 0
	for _, f := range fs.files {
		n += len(f.Content)
	}
	return n
}
