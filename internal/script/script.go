// Package script applies YAML operation scripts to a memtree.FileSystem.
//
// A script is an ordered list of steps:
//
//	steps:
//	  - op: add
//	    path: dir1\file1.txt
//	    content: data123
//	  - op: delete
//	    path: dir1
//	  - op: list
//	  - op: size
//
// Paths use the separator of the FileSystem the script runs against.
package script

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/memtree/pkg/memtree"
)

// Op names a script operation.
type Op string

const (
	OpAdd    Op = "add"
	OpDelete Op = "delete"
	OpList   Op = "list"
	OpSize   Op = "size"
)

// Step is a single operation.
//
// For add, Size defaults to the length of Content and may be smaller to
// store a prefix. For size, an empty Path reports the total size.
type Step struct {
	Op      Op     `yaml:"op"`
	Path    string `yaml:"path,omitempty"`
	Content string `yaml:"content,omitempty"`
	Size    *int64 `yaml:"size,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// Lister writes a listing of fs to w.
type Lister func(w io.Writer, fs *memtree.FileSystem) error

func plainList(w io.Writer, fs *memtree.FileSystem) error {
	return fs.List(w)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", memtree.ErrScriptFailed, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Validate checks every step before anything is applied.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		switch step.Op {
		case OpAdd:
			if step.Size != nil && (*step.Size < 0 || *step.Size > int64(len(step.Content))) {
				return fmt.Errorf("%w: step %d: size %d does not fit content of %d bytes",
					memtree.ErrScriptFailed, i+1, *step.Size, len(step.Content))
			}
		case OpDelete, OpList, OpSize:
			if step.Size != nil {
				return fmt.Errorf("%w: step %d: size is only valid for add", memtree.ErrScriptFailed, i+1)
			}
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", memtree.ErrScriptFailed, i+1, step.Op)
		}
	}
	return nil
}

// Run applies the steps in order and stops at the first failure.
// Output of list and size steps goes to out; a nil list uses the plain listing.
func (s *Script) Run(fs *memtree.FileSystem, out io.Writer, list Lister) error {
	if list == nil {
		list = plainList
	}
	for i, step := range s.Steps {
		if err := step.apply(fs, out, list); err != nil {
			return fmt.Errorf("%w: step %d (%s %q): %w", memtree.ErrScriptFailed, i+1, step.Op, step.Path, err)
		}
	}
	return nil
}

func (st Step) apply(fs *memtree.FileSystem, out io.Writer, list Lister) error {
	switch st.Op {
	case OpAdd:
		size := int64(len(st.Content))
		if st.Size != nil {
			size = *st.Size
		}
		return fs.Add(st.Path, []byte(st.Content), size)
	case OpDelete:
		return fs.Delete(st.Path)
	case OpList:
		return list(out, fs)
	case OpSize:
		size := fs.TotalSize()
		if st.Path != "" {
			n, err := fs.Stat(st.Path)
			if err != nil {
				return err
			}
			size = n.Size()
		}
		_, err := fmt.Fprintf(out, "%d\n", size)
		return err
	}
	return fmt.Errorf("unknown op %q", st.Op)
}
