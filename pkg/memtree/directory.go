package memtree

import (
	"errors"
	"io"
	"sort"
)

// errAbsent marks a delete whose target does not exist. Whether that is
// reported depends on WithReportMissing.
var errAbsent = errors.New("absent")

// Directory is an interior node owning its children by name.
type Directory struct {
	attributes
	children map[string]Node
	cfg      *settings
}

func newDirectory(name string, cfg *settings) *Directory {
	d := &Directory{
		children: make(map[string]Node),
		cfg:      cfg,
	}
	d.initialize(name, cfg.now)
	return d
}

func (d *Directory) IsFile() bool { return false }

// Size returns the sum of the sizes of all descendants. It is computed on
// every call and never cached.
func (d *Directory) Size() int64 {
	var total int64
	for _, child := range d.children {
		total += child.Size()
	}
	return total
}

// Len returns the number of direct children.
func (d *Directory) Len() int {
	return len(d.children)
}

// Child returns the direct child with the given name.
func (d *Directory) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Children returns the direct children sorted by name.
func (d *Directory) Children() []Node {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Node, len(names))
	for i, name := range names {
		out[i] = d.children[name]
	}
	return out
}

// List writes the directory line followed by every child, depth first,
// in lexicographic order.
func (d *Directory) List(w io.Writer, indent int) error {
	if err := writeLine(w, indent, "+ %s/", d.name); err != nil {
		return err
	}
	for _, child := range d.Children() {
		if err := child.List(w, indent+ListIndentStep); err != nil {
			return err
		}
	}
	return nil
}

// Add stores the first size bytes of data as a file at path, relative to d.
// Missing intermediate directories are created. An existing entry at the
// terminal segment is replaced, whatever its kind.
func (d *Directory) Add(path string, data []byte, size int64) error {
	if size < 0 || size > int64(len(data)) {
		return &PathError{Op: "add", Path: path, Err: ErrInvalidSize}
	}
	if err := d.add(path, data, size); err != nil {
		return &PathError{Op: "add", Path: path, Err: err}
	}
	d.cfg.logger.Verbose("add %q (%d bytes)", path, size)
	return nil
}

func (d *Directory) add(path string, data []byte, size int64) error {
	head, tail, hasTail := splitPath(path, d.cfg.sep)
	if !hasTail {
		d.putFile(head, data, size)
		return nil
	}

	child, ok := d.children[head]
	if !ok {
		sub := newDirectory(head, d.cfg)
		d.children[head] = sub
		return sub.add(tail, data, size)
	}

	sub, ok := child.(*Directory)
	if !ok {
		return ErrNotADirectory
	}
	return sub.add(tail, data, size)
}

// putFile installs a new file under name. Overwriting a file keeps its
// creation time and moves its modification time forward.
func (d *Directory) putFile(name string, data []byte, size int64) {
	f := newFile(name, data, size, d.cfg.now)
	if prev, ok := d.children[name].(*File); ok {
		f.created = prev.created
	}
	d.children[name] = f
}

// Delete removes the node at path, relative to d, together with its whole
// subtree. Emptied ancestors are kept.
//
// An absent target is a silent no-op unless WithReportMissing was set.
// A path descending through a file always fails with ErrNotFound.
func (d *Directory) Delete(path string) error {
	err := d.remove(path)
	switch {
	case err == nil:
		d.cfg.logger.Verbose("delete %q", path)
		return nil
	case errors.Is(err, errAbsent):
		if !d.cfg.reportMissing {
			d.cfg.logger.Verbose("delete %q: nothing to remove", path)
			return nil
		}
		err = ErrNotFound
	}
	return &PathError{Op: "delete", Path: path, Err: err}
}

func (d *Directory) remove(path string) error {
	head, tail, hasTail := splitPath(path, d.cfg.sep)
	child, ok := d.children[head]
	if !ok {
		return errAbsent
	}
	if !hasTail {
		delete(d.children, head)
		return nil
	}

	sub, ok := child.(*Directory)
	if !ok {
		return ErrNotFound
	}
	return sub.remove(tail)
}

// Lookup resolves path relative to d.
func (d *Directory) Lookup(path string) (Node, error) {
	n, err := d.lookup(path)
	if err != nil {
		return nil, &PathError{Op: "stat", Path: path, Err: err}
	}
	return n, nil
}

func (d *Directory) lookup(path string) (Node, error) {
	head, tail, hasTail := splitPath(path, d.cfg.sep)
	child, ok := d.children[head]
	if !ok {
		return nil, ErrNotFound
	}
	if !hasTail {
		return child, nil
	}

	sub, ok := child.(*Directory)
	if !ok {
		return nil, ErrNotADirectory
	}
	return sub.lookup(tail)
}
