// Package manifest describes a memtree.FileSystem as a flat, ordered list
// of entries with stable identities and content checksums.
package manifest

import (
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/memtree/internal/checksum"
	"github.com/vvka-141/memtree/pkg/memtree"
)

// NamespaceNodeIdentity is the UUID v5 namespace under which node IDs are
// derived from paths, so the same path always maps to the same ID.
var NamespaceNodeIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("memtree/node-identity/v1"))

// Kind distinguishes file and directory entries.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// Entry describes one node. The root has an empty Path.
type Entry struct {
	ID       string `yaml:"id"`
	Path     string `yaml:"path"`
	Kind     Kind   `yaml:"kind"`
	Size     int64  `yaml:"size"`
	Checksum string `yaml:"sha256"`
}

type Manifest struct {
	Separator string  `yaml:"separator"`
	TotalSize int64   `yaml:"total_size"`
	Entries   []Entry `yaml:"entries"`
}

// NodeID returns the deterministic identity of path.
func NodeID(path string) uuid.UUID {
	return uuid.NewSHA1(NamespaceNodeIdentity, []byte(path))
}

// Build lists every node of fs depth first, children in lexicographic
// order. A directory checksum covers the names, kinds and checksums of its
// children.
func Build(fs *memtree.FileSystem) *Manifest {
	b := &builder{
		calc: checksum.New(),
		sep:  string(fs.Separator()),
	}
	b.visit("", "", fs.Root())

	return &Manifest{
		Separator: b.sep,
		TotalSize: fs.TotalSize(),
		Entries:   b.entries,
	}
}

type builder struct {
	calc    checksum.Calculator
	sep     string
	entries []Entry
}

func (b *builder) visit(path, prefix string, n memtree.Node) string {
	idx := len(b.entries)
	b.entries = append(b.entries, Entry{
		ID:   NodeID(path).String(),
		Path: path,
		Kind: kindOf(n),
		Size: n.Size(),
	})

	var sum string
	switch node := n.(type) {
	case *memtree.File:
		sum = b.calc.Sum(node.Contents())
	case *memtree.Directory:
		var parts []string
		for _, child := range node.Children() {
			childPath := prefix + child.Name()
			childSum := b.visit(childPath, childPath+b.sep, child)
			parts = append(parts, child.Name(), string(kindOf(child)), childSum)
		}
		sum = b.calc.Combine(parts...)
	}

	b.entries[idx].Checksum = sum
	return sum
}

func kindOf(n memtree.Node) Kind {
	if n.IsFile() {
		return KindFile
	}
	return KindDirectory
}

// Find returns the entry for path.
func (m *Manifest) Find(path string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}

// Encode writes m as YAML.
func Encode(w io.Writer, m *Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
