package memtree

import iofs "io/fs"

// SkipDir may be returned by a WalkFunc to skip the children of the
// directory it was called for.
var SkipDir = iofs.SkipDir

// WalkFunc is called for every node visited by Walk. path is the node's
// path from the root, joined with the FileSystem separator; the root
// itself is reported with an empty path.
type WalkFunc func(path string, n Node) error

// Walk visits every node depth first, children in lexicographic order.
// The first non-nil error other than SkipDir stops the walk and is returned.
func (fs *FileSystem) Walk(fn WalkFunc) error {
	return walk("", "", fs.root, string(fs.root.cfg.sep), fn)
}

func walk(path, prefix string, n Node, sep string, fn WalkFunc) error {
	err := fn(path, n)
	dir, ok := n.(*Directory)
	if !ok || err != nil {
		if err == SkipDir {
			return nil
		}
		return err
	}

	for _, child := range dir.Children() {
		childPath := prefix + child.Name()
		if err := walk(childPath, childPath+sep, child, sep, fn); err != nil {
			return err
		}
	}
	return nil
}
