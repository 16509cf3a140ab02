package memtree

import (
	"io"
	"sync"
)

// FileSystem owns the root directory and forwards path operations to it.
type FileSystem struct {
	root *Directory
}

// New creates a FileSystem with an empty root directory named ".".
func New(opts ...Option) *FileSystem {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(cfg)
	}
	return &FileSystem{root: newDirectory(RootName, cfg)}
}

var (
	defaultOnce sync.Once
	defaultFS   *FileSystem
)

// Default returns the process-wide FileSystem, creating it on first use.
// It lives until the program exits. Prefer New where the instance can be
// passed explicitly.
func Default() *FileSystem {
	defaultOnce.Do(func() {
		defaultFS = New()
	})
	return defaultFS
}

// Root returns the root directory.
func (fs *FileSystem) Root() *Directory {
	return fs.root
}

// Separator returns the rune separating path segments.
func (fs *FileSystem) Separator() rune {
	return fs.root.cfg.sep
}

// Add stores the first size bytes of data as a file at path. See Directory.Add.
func (fs *FileSystem) Add(path string, data []byte, size int64) error {
	return fs.root.Add(path, data, size)
}

// Delete removes the node at path and its subtree. See Directory.Delete.
func (fs *FileSystem) Delete(path string) error {
	return fs.root.Delete(path)
}

// List writes the listing of the whole tree to w, starting with "+ ./".
func (fs *FileSystem) List(w io.Writer) error {
	return fs.root.List(w, 0)
}

// TotalSize returns the sum of all file sizes in the tree.
func (fs *FileSystem) TotalSize() int64 {
	return fs.root.Size()
}

// Stat returns the node at path.
func (fs *FileSystem) Stat(path string) (Node, error) {
	return fs.root.Lookup(path)
}

// ReadFile returns a copy of the contents of the file at path.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	n, err := fs.root.Lookup(path)
	if err != nil {
		return nil, err
	}
	f, ok := n.(*File)
	if !ok {
		return nil, &PathError{Op: "read", Path: path, Err: ErrIsDirectory}
	}
	return f.Contents(), nil
}

// CountNodes returns the number of nodes reachable from the root,
// the root included.
func (fs *FileSystem) CountNodes() int {
	count := 0
	_ = fs.Walk(func(string, Node) error {
		count++
		return nil
	})
	return count
}
