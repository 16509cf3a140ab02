package memtree

import (
	"io"
	"time"
)

// File is a leaf node owning a copy of its contents.
type File struct {
	attributes
	contents []byte
	size     int64
}

func newFile(name string, data []byte, size int64, now func() time.Time) *File {
	f := &File{}
	f.initialize(name, now)
	f.fill(data, size)
	return f
}

// fill copies the first size bytes of data. The caller validates size.
func (f *File) fill(data []byte, size int64) {
	f.contents = make([]byte, size)
	copy(f.contents, data[:size])
	f.size = size
}

func (f *File) IsFile() bool { return true }

func (f *File) Size() int64 { return f.size }

// Contents returns a copy of the file's bytes.
func (f *File) Contents() []byte {
	out := make([]byte, len(f.contents))
	copy(out, f.contents)
	return out
}

func (f *File) List(w io.Writer, indent int) error {
	return writeLine(w, indent, "- %s (%d bytes)", f.name, f.size)
}
