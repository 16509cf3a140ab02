// Package memtree provides an in-memory hierarchical namespace.
//
// A FileSystem owns a single root directory named ".". Interior nodes are
// directories, leaves are files carrying a byte slice. Every operation is
// addressed by a path whose segments are joined with a single separator
// rune (a backslash unless configured otherwise with WithSeparator):
//
//	fs := memtree.New()
//	_ = fs.Add(`dir1\file1.txt`, []byte("data123"), 7)
//	_ = fs.Delete(`dir1`)
//
// Paths are not normalized. "." and ".." are ordinary names, and an empty
// segment (leading, trailing or doubled separator) names a child called "".
//
// Insertion creates missing intermediate directories. Deletion removes the
// whole subtree at the terminal segment and never prunes emptied ancestors.
//
// A FileSystem is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package memtree
