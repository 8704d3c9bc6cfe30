package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/syntax"
)

// handleCall refuses exec/eval outright; a call forwarding variadic
// arguments (`*a`/`**k`, in whichever
// encoding the active dialect uses) is rewritten to route through
// `_apply_` so the runtime can inspect the expanded argument list before
// the underlying callable runs.
func (s *state) handleCall(n *syntax.Call) syntax.Expr {
	if name, ok := bareCalleeName(n.Func); ok {
		switch name {
		case "exec":
			s.sink.Errorf(n.Pos().Line, "Exec calls are not allowed.")
		case "eval":
			s.sink.Errorf(n.Pos().Line, "Eval calls are not allowed.")
		}
	}

	needsWrap := s.needsApply(n)

	n.Func = s.visitExpr(n.Func)
	n.Args = s.visitExprs(n.Args)
	for _, kw := range n.Keywords {
		kw.Value = s.visitExpr(kw.Value)
	}
	n.StarArgs = s.visitExpr(n.StarArgs)
	n.KwArgs = s.visitExpr(n.KwArgs)

	if !needsWrap {
		return n
	}

	args := make([]syntax.Expr, 0, len(n.Args)+1)
	args = append(args, n.Func)
	args = append(args, n.Args...)

	apply := &syntax.Name{ID: "_apply_"}
	location.CopyLocations(apply, n)

	return &syntax.Call{
		Base:     n.Base,
		Func:     apply,
		Args:     args,
		Keywords: n.Keywords,
		StarArgs: n.StarArgs,
		KwArgs:   n.KwArgs,
	}
}

// needsApply reports whether the call forwards a variadic argument under
// either dialect's encoding: a Starred positional element or a double-star
// Keyword (3.5+ encoding), or a populated StarArgs/KwArgs slot (legacy
// encoding).
func (s *state) needsApply(n *syntax.Call) bool {
	if n.StarArgs != nil || n.KwArgs != nil {
		return true
	}
	for _, a := range n.Args {
		if _, ok := a.(*syntax.Starred); ok {
			return true
		}
	}
	for _, kw := range n.Keywords {
		if kw.IsDoubleStar {
			return true
		}
	}
	return false
}

// bareCalleeName reports the identifier and true if e is a plain Name
// (`exec(...)` as opposed to `some.module.exec(...)`, which the exec check
// never catches; the callee there goes through _getattr_ instead).
func bareCalleeName(e syntax.Expr) (string, bool) {
	n, ok := e.(*syntax.Name)
	if !ok {
		return "", false
	}
	return n.ID, true
}
