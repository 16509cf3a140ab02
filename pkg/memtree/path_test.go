package memtree

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path     string
		sep      rune
		wantHead string
		wantTail string
		wantMore bool
	}{
		{"file1.txt", '\\', "file1.txt", "", false},
		{`dir1\file1.txt`, '\\', "dir1", "file1.txt", true},
		{`dir1\dir2\file3.txt`, '\\', "dir1", `dir2\file3.txt`, true},
		{`\leading`, '\\', "", "leading", true},
		{`trailing\`, '\\', "trailing", "", true},
		{`a\\b`, '\\', "a", `\b`, true},
		{"", '\\', "", "", false},
		{"a/b", '\\', "a/b", "", false},
		{"a/b", '/', "a", "b", true},
		{"a→b→c", '→', "a", "b→c", true},
		{"a\xffb", utf8.RuneError, "a", "b", true},
		{"a\uFFFDb\xffc", utf8.RuneError, "a", "b\xffc", true},
		{"\xff", utf8.RuneError, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			head, tail, more := splitPath(tt.path, tt.sep)
			if head != tt.wantHead || tail != tt.wantTail || more != tt.wantMore {
				t.Errorf("splitPath(%q, %q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.path, tt.sep, head, tail, more, tt.wantHead, tt.wantTail, tt.wantMore)
			}
		})
	}
}

func TestFileSystem_InvalidBytesAsSeparator(t *testing.T) {
	fs := New(WithSeparator(utf8.RuneError))

	require.NoError(t, fs.Add("a\xffb", []byte("x"), 1))

	n, err := fs.Stat("a\uFFFDb")
	require.NoError(t, err)
	assert.True(t, n.IsFile())
	assert.Equal(t, int64(1), fs.TotalSize())
}
