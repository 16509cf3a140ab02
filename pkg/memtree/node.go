package memtree

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Node is an element of the tree: either a *File or a *Directory.
type Node interface {
	// Name returns the base name of the node within its parent.
	Name() string

	// IsFile reports whether the node is a file.
	IsFile() bool

	// Size returns the byte length of a file, or the recursive sum of
	// child sizes for a directory.
	Size() int64

	// List writes a human-readable listing of the node to w, with every
	// line prefixed by indent spaces.
	List(w io.Writer, indent int) error

	// CreatedAt returns the time the node was created.
	CreatedAt() time.Time

	// ModifiedAt returns the time the node was last modified.
	ModifiedAt() time.Time

	attrs() *attributes
}

// attributes is the record shared by files and directories.
type attributes struct {
	name     string
	created  time.Time
	modified time.Time
}

// initialize sets the name and stamps both timestamps from a single clock read.
func (a *attributes) initialize(name string, now func() time.Time) {
	a.name = name
	a.created = now()
	a.modified = a.created
}

func (a *attributes) Name() string          { return a.name }
func (a *attributes) CreatedAt() time.Time  { return a.created }
func (a *attributes) ModifiedAt() time.Time { return a.modified }
func (a *attributes) attrs() *attributes    { return a }

func writeLine(w io.Writer, indent int, format string, args ...interface{}) error {
	if indent < 0 {
		indent = 0
	}
	_, err := fmt.Fprintf(w, strings.Repeat(" ", indent)+format+"\n", args...)
	return err
}
