// Package location stamps source positions onto synthesized subtrees.
// Every node the transformer builds (a _getattr_ call
// wrapping an attribute read, an _unpack_sequence_ call, a print-collector
// assignment) must carry a line/column so downstream diagnostics and the
// host's code generator can still map generated code back to source.
package location

import (
	"github.com/sirkon/rbtree"

	"github.com/sirkon/untrustedpy/syntax"
)

// CopyLocations copies old's position onto new, then recursively fills any
// still-missing (zero) position among new's descendants from the nearest
// already-positioned ancestor found during this same walk.
func CopyLocations(newNode, oldNode syntax.Node) {
	if newNode == nil || oldNode == nil {
		return
	}
	newNode.SetPos(oldNode.Pos())
	fillMissing(newNode, newNode.Pos())
}

// Stamp sets pos directly on n (there is no "old" node to copy from: n is
// wholly synthesized, e.g. the print collector's injected assignment) and
// fills any still-missing descendant position the same way CopyLocations
// does.
func Stamp(n syntax.Node, pos syntax.Position) {
	if n == nil {
		return
	}
	n.SetPos(pos)
	for _, c := range syntax.Children(n) {
		fillMissing(c, pos)
	}
}

func fillMissing(n syntax.Node, nearest syntax.Position) {
	if n == nil {
		return
	}
	if n.Pos().IsZero() {
		n.SetPos(nearest)
	} else {
		nearest = n.Pos()
	}
	for _, child := range syntax.Children(n) {
		fillMissing(child, nearest)
	}
}

// span keys an rbtree.Tree entry by source line. Positions carry no end
// marker, so a single line stands in for the whole span.
type span struct {
	line int
	node syntax.Node
}

// Cmp orders spans by line: a probe with the same line as a stored span is
// "equal" for rbtree.Tree.Search purposes.
func (s *span) Cmp(other *span) int {
	switch {
	case s.line < other.line:
		return -1
	case s.line > other.line:
		return 1
	default:
		return 0
	}
}

// Index looks up an indexed original node by its exact source line. Used
// when a synthesized statement (the module-level print collector's
// prepended assignment) needs a position but there is no single "old" node
// to copy from, only a scope's general vicinity. Lines with no indexed node
// give no match; there is no nearest-line fallback.
type Index struct {
	tree *rbtree.Tree[*span]
}

// NewIndex builds an empty index.
func NewIndex() *Index {
	return &Index{tree: rbtree.New[*span]()}
}

// Insert registers n's position for later nearest-line lookup. Call this
// for every original (non-synthesized) node visited during the walk.
func (idx *Index) Insert(n syntax.Node) {
	if n == nil || n.Pos().IsZero() {
		return
	}
	idx.tree.InsertReturn(&span{line: n.Pos().Line, node: n})
}

// Nearest returns the position of the indexed node whose line equals line,
// if one was inserted at exactly that line; ok is false otherwise.
func (idx *Index) Nearest(line int) (syntax.Position, bool) {
	found := idx.tree.Search(&span{line: line})
	if found == nil {
		return syntax.Position{}, false
	}
	return found.node.Pos(), true
}
