package memtree

import (
	"strings"
	"unicode/utf8"
)

// splitPath cuts path at the first separator.
// When no separator exists, head is the whole path and hasTail is false.
func splitPath(path string, sep rune) (head, tail string, hasTail bool) {
	i := strings.IndexRune(path, sep)
	if i < 0 {
		return path, "", false
	}
	// IndexRune matches any invalid byte for utf8.RuneError, so the width
	// comes from what was actually matched.
	_, width := utf8.DecodeRuneInString(path[i:])
	return path[:i], path[i+width:], true
}
