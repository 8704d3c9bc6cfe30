package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/printscope"
	"github.com/sirkon/untrustedpy/internal/unpack"
	"github.com/sirkon/untrustedpy/syntax"
)

// checkArguments validates every formal parameter name against the name
// policy and visits annotations and default-value expressions, all of
// which evaluate in the enclosing scope at def-time, not inside the
// function's own scope.
func (s *state) checkArguments(a *syntax.Arguments) {
	for _, arg := range a.Args {
		s.checkArg(arg)
	}
	if a.VarArg != nil {
		s.checkArg(a.VarArg)
	}
	for _, arg := range a.KwOnlyArgs {
		s.checkArg(arg)
	}
	if a.KwArg != nil {
		s.checkArg(a.KwArg)
	}
	a.Defaults = s.visitExprs(a.Defaults)
	a.KwOnlyDefaults = s.visitExprs(a.KwOnlyDefaults)
}

func (s *state) checkArg(a *syntax.Arg) {
	if a.Name != "" {
		s.names.CheckName(&s.sink, a.Pos().Line, a.Name)
	}
	if a.Annotation != nil {
		a.Annotation = s.visitExpr(a.Annotation)
	}
}

// unpackConverter builds `_unpack_sequence_(value, spec, _getiter_)` for a
// sequence pattern made of elts.
func unpackConverter(elts []syntax.Expr, value syntax.Expr) *syntax.Call {
	spec := unpack.Build(elts)
	return &syntax.Call{
		Func: &syntax.Name{ID: "_unpack_sequence_"},
		Args: []syntax.Expr{value, spec.Literal(), &syntax.Name{ID: "_getiter_"}},
	}
}

// unpackGuard builds the cleanup block that destructures a temporary into
// target and always deletes the temporary afterwards:
//
//	try:
//	    target = _unpack_sequence_(tmp, spec, _getiter_)
//	finally:
//	    del tmp
func unpackGuard(near syntax.Node, target syntax.Expr, elts []syntax.Expr, tmp string) syntax.Stmt {
	assign := &syntax.Assign{
		Targets: []syntax.Expr{target},
		Value:   unpackConverter(elts, &syntax.Name{ID: tmp, Ctx: syntax.Load}),
	}
	guard := &syntax.Try{
		Body:    []syntax.Stmt{assign},
		Finally: []syntax.Stmt{&syntax.Delete{Targets: []syntax.Expr{&syntax.Name{ID: tmp, Ctx: syntax.Del}}}},
	}
	location.CopyLocations(guard, near)
	return guard
}

// expandTupleParams rewrites each legacy-dialect tuple-destructuring
// parameter (`def f((a, b)):`) into a fresh temporary
// parameter plus a guarded `_unpack_sequence_` destructuring prepended to
// the body. The parameter binding is just an assignment of the passed
// value, so it gets the same descriptor and cleanup an Assign target uses.
// Returns the prepended statements, in declaration order.
func (s *state) expandTupleParams(n syntax.Node, a *syntax.Arguments) []syntax.Stmt {
	if !s.dialect().HasTupleParameters() || len(a.TupleParams) == 0 {
		return nil
	}

	guards := make([]syntax.Stmt, 0, len(a.TupleParams))
	for _, tp := range a.TupleParams {
		tmp := s.tmp.Next()
		if tp.Index >= 0 && tp.Index < len(a.Args) {
			arg := &syntax.Arg{Name: tmp}
			location.CopyLocations(arg, n)
			a.Args[tp.Index] = arg
		}

		pattern := s.visitExpr(&syntax.TupleLit{Elts: tp.Elts, Ctx: syntax.Store})
		guards = append(guards, unpackGuard(n, pattern, tp.Elts, tmp))
	}

	a.TupleParams = nil
	return guards
}

// injectPrintCollector finishes a scope: if the scope just closed read or
// wrote the magic print/printed names, warn on an imbalanced
// usage and prepend the collector assignment at the given index. pos stamps
// the synthesized assignment when there is no single "old" node to copy a
// location from.
func (s *state) injectPrintCollector(pos syntax.Position, body []syntax.Stmt, at int) []syntax.Stmt {
	cur := s.scopes.Current()
	if cur == nil || (!cur.PrintUsed && !cur.PrintedUsed) {
		return body
	}

	if cur.PrintUsed && !cur.PrintedUsed {
		s.sink.Warnf(pos.Line, "Prints, but never reads 'printed' variable.")
	}
	if cur.PrintedUsed && !cur.PrintUsed {
		s.sink.Warnf(pos.Line, "Doesn't print, but reads 'printed' variable.")
	}

	collector := printscope.InjectCollector()
	location.Stamp(collector, pos)

	out := make([]syntax.Stmt, 0, len(body)+1)
	out = append(out, body[:at]...)
	out = append(out, collector)
	out = append(out, body[at:]...)
	return out
}

// handleFunctionDef validates the function signature, transforms the body
// in its own print scope, and injects the collector. Decorators, the
// return annotation, and every parameter's annotation/default evaluate in
// the enclosing scope; only the body runs inside the function's own scope.
func (s *state) handleFunctionDef(n *syntax.FunctionDef) syntax.Stmt {
	s.names.CheckName(&s.sink, n.Pos().Line, n.Name)

	n.Decorators = s.visitExprs(n.Decorators)
	if n.Returns != nil {
		n.Returns = s.visitExpr(n.Returns)
	}
	s.checkArguments(&n.Args)
	guards := s.expandTupleParams(n, &n.Args)

	s.scopes.Push()
	n.Body = s.visitStmts(n.Body)
	n.Body = append(guards, n.Body...)
	n.Body = s.injectPrintCollector(n.Pos(), n.Body, 0)
	s.scopes.Pop()

	return n
}

// handleLambda transforms a lambda in its own print scope. A lambda body is
// a single expression with nowhere to prepend an unpack-guard statement, so
// a legacy-dialect tuple-destructuring parameter is protected by wrapping:
// the original lambda is left to do the plain destructuring, and an outer
// lambda taking temporaries feeds it pre-guarded `_unpack_sequence_` values
// for every tuple position, forwarding any *args/**kwargs untouched.
func (s *state) handleLambda(n *syntax.Lambda) syntax.Expr {
	s.checkArguments(&n.Args)

	s.scopes.Push()
	n.Body = s.visitExpr(n.Body)
	s.scopes.Pop()

	if !s.dialect().HasTupleParameters() || len(n.Args.TupleParams) == 0 {
		return n
	}

	tupleAt := make(map[int]*syntax.TupleParam, len(n.Args.TupleParams))
	for _, tp := range n.Args.TupleParams {
		tupleAt[tp.Index] = tp
	}

	var outer syntax.Arguments
	innerArgs := make([]syntax.Expr, 0, len(n.Args.Args))
	for i, arg := range n.Args.Args {
		tp, isTuple := tupleAt[i]
		if !isTuple {
			outer.Args = append(outer.Args, arg)
			innerArgs = append(innerArgs, &syntax.Name{ID: arg.Name, Ctx: syntax.Load})
			continue
		}

		tmp := s.tmp.Next()
		outer.Args = append(outer.Args, &syntax.Arg{Name: tmp})
		innerArgs = append(innerArgs, unpackConverter(tp.Elts, &syntax.Name{ID: tmp, Ctx: syntax.Load}))
	}

	body := &syntax.Call{Func: n, Args: innerArgs}
	if n.Args.VarArg != nil {
		outer.VarArg = n.Args.VarArg
		body.StarArgs = &syntax.Name{ID: n.Args.VarArg.Name, Ctx: syntax.Load}
	}
	if n.Args.KwArg != nil {
		outer.KwArg = n.Args.KwArg
		body.KwArgs = &syntax.Name{ID: n.Args.KwArg.Name, Ctx: syntax.Load}
	}

	wrapper := &syntax.Lambda{Args: outer, Body: body}
	location.CopyLocations(wrapper, n)
	return wrapper
}

// handleClassDef validates the class name, recurses into bases and
// decorators, and controls the metaclass: an
// explicit `metaclass=` keyword is refused, and under the modern dialects
// the class is pinned to the host-provided `__metaclass__` so every class
// body runs under the host's restricted metaclass.
func (s *state) handleClassDef(n *syntax.ClassDef) syntax.Stmt {
	s.names.CheckName(&s.sink, n.Pos().Line, n.Name)

	n.Decorators = s.visitExprs(n.Decorators)
	n.Bases = s.visitExprs(n.Bases)

	for _, kw := range n.Keywords {
		if kw.Arg == "metaclass" {
			s.sink.Errorf(kw.Pos().Line, `The keyword argument "metaclass" is not allowed.`)
		}
		kw.Value = s.visitExpr(kw.Value)
	}

	n.Body = s.visitStmts(n.Body)

	if !s.dialect().HasClassKeywords() {
		// Legacy dialect: metaclass pinning happens through the module's
		// __metaclass__ global, no per-class keyword in the grammar.
		return n
	}

	pinned := &syntax.Keyword{
		Arg:   "metaclass",
		Value: &syntax.Name{ID: "__metaclass__", Ctx: syntax.Load},
	}
	location.CopyLocations(pinned, n)
	n.Keywords = []*syntax.Keyword{pinned}
	return n
}
