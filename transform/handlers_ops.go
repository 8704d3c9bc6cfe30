package transform

import "github.com/sirkon/untrustedpy/syntax"

// handleBinOp passes through every binary operator except matrix
// multiplication (`@`), which has no policy hook and is rejected
// regardless of dialect.
func (s *state) handleBinOp(n *syntax.BinOp) syntax.Expr {
	if n.Op == syntax.MatMult {
		s.sink.Errorf(n.Pos().Line, "MatMult statements are not allowed.")
	}
	n.Left = s.visitExpr(n.Left)
	n.Right = s.visitExpr(n.Right)
	return n
}
