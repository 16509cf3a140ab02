package memtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, fs *FileSystem, path, content string) {
	t.Helper()
	require.NoError(t, fs.Add(path, []byte(content), int64(len(content))))
}

func sizeOf(t *testing.T, fs *FileSystem, path string) int64 {
	t.Helper()
	n, err := fs.Stat(path)
	require.NoError(t, err)
	return n.Size()
}

func TestFileSystem_RootFiles(t *testing.T) {
	fs := New()
	mustAdd(t, fs, "file1.txt", "hello")
	mustAdd(t, fs, "file2.txt", "world!")

	assert.Equal(t, int64(11), fs.TotalSize())

	var buf bytes.Buffer
	require.NoError(t, fs.List(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "+ ./\n"))
	assert.Contains(t, out, "  - file1.txt (5 bytes)\n")
	assert.Contains(t, out, "  - file2.txt (6 bytes)\n")
}

func TestFileSystem_NestedSizes(t *testing.T) {
	fs := New()
	mustAdd(t, fs, "file1.txt", "hello")
	before := fs.TotalSize()

	mustAdd(t, fs, `dir1\file1.txt`, "data123")
	mustAdd(t, fs, `dir1\file2.txt`, "foo")
	mustAdd(t, fs, `dir1\dir2\file3.txt`, "barbaz")

	assert.Equal(t, int64(16), sizeOf(t, fs, "dir1"))
	assert.Equal(t, int64(6), sizeOf(t, fs, `dir1\dir2`))
	assert.Equal(t, before+16, fs.TotalSize())
}

func TestFileSystem_Overwrite(t *testing.T) {
	fs := New()
	mustAdd(t, fs, `dir3\file4.txt`, "abcdefgh")
	mustAdd(t, fs, `dir3\file4.txt`, "overwrite")

	dir, err := fs.Stat("dir3")
	require.NoError(t, err)
	assert.Equal(t, 1, dir.(*Directory).Len())
	assert.Equal(t, int64(9), dir.Size())

	content, err := fs.ReadFile(`dir3\file4.txt`)
	require.NoError(t, err)
	assert.Equal(t, "overwrite", string(content))
}

func TestFileSystem_RepeatedAddIsIdempotent(t *testing.T) {
	fs := New()
	for i := 0; i < 5; i++ {
		mustAdd(t, fs, `p\q\r.bin`, strings.Repeat("x", i+1))
	}

	assert.Equal(t, 4, fs.CountNodes())
	content, err := fs.ReadFile(`p\q\r.bin`)
	require.NoError(t, err)
	assert.Equal(t, "xxxxx", string(content))
}

func TestFileSystem_RecursiveDelete(t *testing.T) {
	fs := New()
	mustAdd(t, fs, "file1.txt", "hello")
	mustAdd(t, fs, `dir1\file1.txt`, "data123")
	mustAdd(t, fs, `dir1\file2.txt`, "foo")
	mustAdd(t, fs, `dir1\dir2\file3.txt`, "barbaz")

	total := fs.TotalSize()
	nodes := fs.CountNodes()
	dirSize := sizeOf(t, fs, "dir1")

	require.NoError(t, fs.Delete("dir1"))

	assert.Equal(t, total-dirSize, fs.TotalSize())
	assert.Equal(t, nodes-5, fs.CountNodes(), "dir1, dir2 and three files are gone")

	_, err := fs.Stat(`dir1\dir2\file3.txt`)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileSystem_AddThenDeleteRestoresSize(t *testing.T) {
	fs := New()
	mustAdd(t, fs, "keep.txt", "keep")
	before := fs.TotalSize()

	mustAdd(t, fs, `new\nested\f.txt`, "temporary")
	require.NoError(t, fs.Delete(`new\nested\f.txt`))

	assert.Equal(t, before, fs.TotalSize())
	_, err := fs.Stat(`new\nested`)
	assert.NoError(t, err, "intermediate directories are not pruned")
}

func TestFileSystem_ComposedScenario(t *testing.T) {
	fs := New()
	mustAdd(t, fs, "file1.txt", "hello")
	mustAdd(t, fs, "file2.txt", "world!")
	mustAdd(t, fs, `dir1\file1.txt`, "data123")
	mustAdd(t, fs, `dir1\file2.txt`, "foo")
	mustAdd(t, fs, `dir1\dir2\file3.txt`, "barbaz")
	mustAdd(t, fs, `dir3\file4.txt`, "abcdefgh")
	mustAdd(t, fs, `dir3\file4.txt`, "overwrite")
	mustAdd(t, fs, `dir3\sub1\sub2\file5.txt`, "deep")
	require.NoError(t, fs.Delete("dir1"))
	require.NoError(t, fs.Delete("file2.txt"))
	require.NoError(t, fs.Delete("does_not_exist"))
	require.NoError(t, fs.Delete(`dir3\ghost\x`))

	assert.Equal(t, int64(18), fs.TotalSize())

	var buf bytes.Buffer
	require.NoError(t, fs.List(&buf))
	expected := "+ ./\n" +
		"  + dir3/\n" +
		"    - file4.txt (9 bytes)\n" +
		"    + sub1/\n" +
		"      + sub2/\n" +
		"        - file5.txt (4 bytes)\n" +
		"  - file1.txt (5 bytes)\n"
	assert.Equal(t, expected, buf.String())

	var files []string
	require.NoError(t, fs.Walk(func(path string, n Node) error {
		if n.IsFile() {
			files = append(files, path)
		}
		return nil
	}))
	assert.Equal(t, []string{`dir3\file4.txt`, `dir3\sub1\sub2\file5.txt`, "file1.txt"}, files)
}

func TestFileSystem_Invariants(t *testing.T) {
	fs := New()
	mustAdd(t, fs, `a\b\c.txt`, "abc")
	mustAdd(t, fs, `a\d.txt`, "dddd")
	mustAdd(t, fs, `e.txt`, "")
	mustAdd(t, fs, `a\b\c.txt`, "cc")
	require.NoError(t, fs.Delete(`a\d.txt`))
	mustAdd(t, fs, `f\g\h\i.txt`, "iiiiiii")

	err := fs.Walk(func(path string, n Node) error {
		switch node := n.(type) {
		case *File:
			assert.Equal(t, int64(len(node.Contents())), node.Size(), path)
		case *Directory:
			var sum int64
			for _, child := range node.Children() {
				sum += child.Size()
			}
			assert.Equal(t, sum, node.Size(), path)
		}
		assert.False(t, n.ModifiedAt().Before(n.CreatedAt()), path)
		return nil
	})
	require.NoError(t, err)
}

func TestFileSystem_ReadFileErrors(t *testing.T) {
	fs := New()
	mustAdd(t, fs, `d\f`, "x")

	_, err := fs.ReadFile("d")
	assert.True(t, errors.Is(err, ErrIsDirectory))

	_, err = fs.ReadFile("missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = fs.ReadFile(`d\f\g`)
	assert.True(t, errors.Is(err, ErrNotADirectory))
}

func TestFileSystem_WalkSkipDir(t *testing.T) {
	fs := New()
	mustAdd(t, fs, `a\1`, "1")
	mustAdd(t, fs, `a\2`, "2")
	mustAdd(t, fs, `b\3`, "3")

	var visited []string
	err := fs.Walk(func(path string, n Node) error {
		visited = append(visited, path)
		if path == "a" {
			return SkipDir
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a", "b", `b\3`}, visited)
}

func TestFileSystem_WalkStopsOnError(t *testing.T) {
	fs := New()
	mustAdd(t, fs, `a\1`, "1")
	mustAdd(t, fs, `b\2`, "2")

	stop := errors.New("stop")
	var visited int
	err := fs.Walk(func(path string, n Node) error {
		visited++
		if path == `a\1` {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 3, visited)
}

type recordingLogger struct {
	verbose []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.verbose = append(l.verbose, format)
}
func (l *recordingLogger) Info(format string, args ...interface{})  {}
func (l *recordingLogger) Error(format string, args ...interface{}) {}

func TestFileSystem_LogsOperations(t *testing.T) {
	logger := &recordingLogger{}
	fs := New(WithLogger(logger))

	mustAdd(t, fs, `a\b`, "b")
	require.NoError(t, fs.Delete(`a\b`))
	require.NoError(t, fs.Delete("ghost"))

	assert.Len(t, logger.verbose, 3)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	first := Default()
	second := Default()
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, RootName, first.Root().Name())
}
