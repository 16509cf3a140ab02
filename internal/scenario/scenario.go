// Package scenario holds the reference sequence of operations used by the
// demo command: root files, a nested directory, an overwrite, a deep
// create and two deletions.
package scenario

import (
	"io"
	"strings"

	"github.com/vvka-141/memtree/internal/script"
	"github.com/vvka-141/memtree/pkg/memtree"
)

// Script returns the reference steps with paths joined by sep.
func Script(sep rune) *script.Script {
	p := func(segments ...string) string {
		return strings.Join(segments, string(sep))
	}
	add := func(path, content string) script.Step {
		return script.Step{Op: script.OpAdd, Path: path, Content: content}
	}
	del := func(path string) script.Step {
		return script.Step{Op: script.OpDelete, Path: path}
	}

	return &script.Script{Steps: []script.Step{
		add(p("file1.txt"), "hello"),
		add(p("file2.txt"), "world!"),
		add(p("dir1", "file1.txt"), "data123"),
		add(p("dir1", "file2.txt"), "foo"),
		add(p("dir1", "dir2", "file3.txt"), "barbaz"),
		add(p("dir3", "file4.txt"), "abcdefgh"),
		add(p("dir3", "file4.txt"), "overwrite"),
		add(p("dir3", "sub1", "sub2", "file5.txt"), "deep"),
		del(p("file2.txt")),
		del(p("dir1")),
	}}
}

// Seed applies the reference steps to fs.
func Seed(fs *memtree.FileSystem) error {
	return Script(fs.Separator()).Run(fs, io.Discard, nil)
}
