package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/printscope"
	"github.com/sirkon/untrustedpy/syntax"
)

// handleModule opens the outermost print scope, transforms the body, and
// injects the print collector, skipping past any leading
// `from __future__ import ...` statements when choosing the insertion
// index, since those must stay first in the module.
func (s *state) handleModule(n *syntax.Module) syntax.Stmt {
	s.scopes.Push()
	defer s.scopes.Pop()

	n.Body = s.visitStmts(n.Body)

	at := printscope.FutureImportSkip(n.Body)
	n.Body = s.injectPrintCollector(s.modulePos(n, at), n.Body, at)
	return n
}

// modulePos picks a position to stamp onto statements synthesized at module
// scope. A Module node itself often carries no position, so fall back to
// the position index of original nodes, then to the insertion neighbor.
func (s *state) modulePos(n *syntax.Module, at int) syntax.Position {
	if !n.Pos().IsZero() {
		return n.Pos()
	}
	if pos, ok := s.idx.Nearest(1); ok {
		return pos
	}
	if at < len(n.Body) {
		return n.Body[at].Pos()
	}
	if len(n.Body) > 0 {
		return n.Body[len(n.Body)-1].Pos()
	}
	return syntax.Position{Line: 1}
}

// handlePrintStmt rewrites the legacy print statement to write through the
// scope's collector. `print foo` gets the bare `_print` name as its
// destination; an explicit `print >> ob, foo` destination is pre-validated
// with `_getattr_(ob, "write") and ob`, so untrusted code can't reach a
// write method the policy would refuse.
func (s *state) handlePrintStmt(n *syntax.PrintStmt) syntax.Stmt {
	if !s.dialect().HasPrintStatement() {
		s.reject(n.Kind(), n.Pos().Line)
		return n
	}

	cur := s.scopes.Current()
	if cur != nil {
		cur.PrintUsed = true
	}
	s.sink.Warnf(n.Pos().Line, "Print statement is deprecated and not available anymore in Python 3.")

	n.Values = s.visitExprs(n.Values)

	if n.Dest == nil {
		n.Dest = &syntax.Name{ID: "_print", Ctx: syntax.Load}
	} else {
		n.Dest = s.attrCheck(s.visitExpr(n.Dest), "write")
	}
	location.CopyLocations(n.Dest, n)
	return n
}

// attrCheck builds `_getattr_(obj, "name") and obj`: the policy hook vets
// the attribute, and the short-circuit hands back the object itself for
// the caller to use.
func (s *state) attrCheck(obj syntax.Expr, name string) syntax.Expr {
	call := &syntax.Call{
		Func: &syntax.Name{ID: "_getattr_"},
		Args: []syntax.Expr{obj, &syntax.Str{Value: name}},
	}
	check := &syntax.BoolOp{Op: syntax.And, Values: []syntax.Expr{call, obj}}
	location.CopyLocations(check, obj)
	return check
}
