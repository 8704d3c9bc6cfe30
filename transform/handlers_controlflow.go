package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/unpack"
	"github.com/sirkon/untrustedpy/syntax"
)

func (s *state) handleIf(n *syntax.If) syntax.Stmt {
	n.Test = s.visitExpr(n.Test)
	n.Body = s.visitStmts(n.Body)
	n.Orelse = s.visitStmts(n.Orelse)
	return n
}

func (s *state) handleWhile(n *syntax.While) syntax.Stmt {
	n.Test = s.visitExpr(n.Test)
	n.Body = s.visitStmts(n.Body)
	n.Orelse = s.visitStmts(n.Orelse)
	return n
}

// handleFor wraps the iterable in _getiter_, or _iter_unpack_sequence_
// when the loop target is a sequence pattern.
func (s *state) handleFor(n *syntax.For) syntax.Stmt {
	n.Iter = s.wrapIterable(n.Target, n.Iter)
	n.Target = s.visitExpr(n.Target)
	n.Body = s.visitStmts(n.Body)
	n.Orelse = s.visitStmts(n.Orelse)
	return n
}

func (s *state) handleReturn(n *syntax.Return) syntax.Stmt {
	if n.Value != nil {
		n.Value = s.visitExpr(n.Value)
	}
	return n
}

func (s *state) handleRaise(n *syntax.Raise) syntax.Stmt {
	if n.Exc != nil {
		n.Exc = s.visitExpr(n.Exc)
	}
	if n.Cause != nil {
		n.Cause = s.visitExpr(n.Cause)
	}
	return n
}

func (s *state) handleAssert(n *syntax.Assert) syntax.Stmt {
	n.Test = s.visitExpr(n.Test)
	if n.Msg != nil {
		n.Msg = s.visitExpr(n.Msg)
	}
	return n
}

func (s *state) handleDelete(n *syntax.Delete) syntax.Stmt {
	n.Targets = s.visitExprs(n.Targets)
	return n
}

// handleTry validates each exception-binding name and recurses into every
// clause.
func (s *state) handleTry(n *syntax.Try) syntax.Stmt {
	n.Body = s.visitStmts(n.Body)
	for _, h := range n.Handlers {
		s.names.CheckName(&s.sink, h.Pos().Line, h.Name)
		if h.Type != nil {
			h.Type = s.visitExpr(h.Type)
		}
		h.Body = s.visitStmts(h.Body)
	}
	n.Orelse = s.visitStmts(n.Orelse)
	n.Finally = s.visitStmts(n.Finally)
	return n
}

// handleWith protects context-item targets: a sequence-pattern `as`-target
// gets a fresh temporary and a guarded `try/finally` unpacking prepended to
// the body; a plain-name target is validated the same way any other Store
// Name is, simply by recursing into it generically.
func (s *state) handleWith(n *syntax.With) []syntax.Stmt {
	var guards []syntax.Stmt

	for _, item := range n.Items {
		item.ContextExpr = s.visitExpr(item.ContextExpr)
		if item.OptionalVars == nil {
			continue
		}

		elts, isPattern := unpack.IsSequencePattern(item.OptionalVars)
		if !isPattern {
			item.OptionalVars = s.visitExpr(item.OptionalVars)
			continue
		}

		visitedPattern := s.visitExpr(item.OptionalVars)

		tmp := s.tmp.Next()
		tmpStore := &syntax.Name{ID: tmp, Ctx: syntax.Store}
		location.CopyLocations(tmpStore, n)

		item.OptionalVars = tmpStore
		guards = append(guards, unpackGuard(n, visitedPattern, elts, tmp))
	}

	n.Body = s.visitStmts(n.Body)
	n.Body = append(guards, n.Body...)
	return []syntax.Stmt{n}
}

func (s *state) handleExprStmt(n *syntax.ExprStmt) syntax.Stmt {
	n.Value = s.visitExpr(n.Value)
	return n
}
