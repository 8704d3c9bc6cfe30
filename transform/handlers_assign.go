package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/unpack"
	"github.com/sirkon/untrustedpy/syntax"
)

// handleAssign guards sequence-pattern assignment targets. If no target is
// a sequence pattern the multi-target Assign passes through unchanged.
// Otherwise it's split into one single-target Assign per original target,
// sequence-pattern targets receiving `_unpack_sequence_(value, spec,
// _getiter_)` in place of the bare value, emitted right-most target
// first, matching the host language's multi-target evaluation order.
func (s *state) handleAssign(n *syntax.Assign) []syntax.Stmt {
	value := s.visitExpr(n.Value)
	targets := make([]syntax.Expr, len(n.Targets))
	for i, t := range n.Targets {
		targets[i] = s.visitExpr(t)
	}

	hasPattern := false
	for _, t := range targets {
		if _, ok := unpack.IsSequencePattern(t); ok {
			hasPattern = true
			break
		}
	}

	if !hasPattern {
		n.Value = value
		n.Targets = targets
		return []syntax.Stmt{n}
	}

	out := make([]syntax.Stmt, 0, len(targets))
	for i := len(targets) - 1; i >= 0; i-- {
		target := targets[i]
		val := value

		if elts, ok := unpack.IsSequencePattern(target); ok {
			spec := unpack.Build(elts)
			call := &syntax.Call{
				Func: &syntax.Name{ID: "_unpack_sequence_"},
				Args: []syntax.Expr{value, spec.Literal(), &syntax.Name{ID: "_getiter_"}},
			}
			location.CopyLocations(call, n)
			val = call
		}

		assign := &syntax.Assign{Targets: []syntax.Expr{target}, Value: val}
		location.CopyLocations(assign, n)
		out = append(out, assign)
	}
	return out
}

// handleAugAssign rewrites `name op= value` into an _inplacevar_ call and
// refuses augmented assignment to attributes and subscripts, which would
// otherwise bypass _write_.
func (s *state) handleAugAssign(n *syntax.AugAssign) syntax.Stmt {
	switch target := n.Target.(type) {
	case *syntax.Attribute:
		s.sink.Errorf(n.Pos().Line, "Augmented assignment of attributes is not allowed.")
		n.Target = s.visitExpr(n.Target)
		n.Value = s.visitExpr(n.Value)
		return n
	case *syntax.Subscript:
		s.sink.Errorf(n.Pos().Line, "Augmented assignment of object items and slices is not allowed.")
		n.Target = s.visitExpr(n.Target)
		n.Value = s.visitExpr(n.Value)
		return n
	case *syntax.Name:
		visitedTarget := s.visitExpr(target).(*syntax.Name)
		visitedValue := s.visitExpr(n.Value)

		loadRef := &syntax.Name{ID: visitedTarget.ID, Ctx: syntax.Load}
		location.CopyLocations(loadRef, visitedTarget)

		call := &syntax.Call{
			Func: &syntax.Name{ID: "_inplacevar_"},
			Args: []syntax.Expr{
				&syntax.Str{Value: n.Op.IOperatorToken()},
				loadRef,
				visitedValue,
			},
		}
		location.CopyLocations(call, n)

		assign := &syntax.Assign{Targets: []syntax.Expr{visitedTarget}, Value: call}
		location.CopyLocations(assign, n)
		return assign
	default:
		n.Target = s.visitExpr(n.Target)
		n.Value = s.visitExpr(n.Value)
		return n
	}
}

// handleAnnAssign treats an annotated assignment like a single-target
// Assign. The annotation is never executed as a value access, so it, the
// target, and an optional value simply recurse through the ordinary
// handlers.
func (s *state) handleAnnAssign(n *syntax.AnnAssign) syntax.Stmt {
	n.Target = s.visitExpr(n.Target)
	n.Annotation = s.visitExpr(n.Annotation)
	if n.Value != nil {
		n.Value = s.visitExpr(n.Value)
	}
	return n
}
