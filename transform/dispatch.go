// Package transform implements the node dispatcher and the full
// node-handler table: it walks a parsed syntax tree and returns an
// equivalent tree with every unsafe operation rewritten to route through a
// runtime-supplied policy hook, plus the accumulated diagnostics.
package transform

import "github.com/sirkon/untrustedpy/syntax"

// visitStmts maps visitStmt over a statement list and flattens the result,
// since some statements (a multi-target Assign over a sequence pattern, a
// with-item's unpacking guard) expand into more than one output statement.
func (s *state) visitStmts(list []syntax.Stmt) []syntax.Stmt {
	if list == nil {
		return nil
	}
	out := make([]syntax.Stmt, 0, len(list))
	for _, stmt := range list {
		out = append(out, s.visitStmt(stmt)...)
	}
	return out
}

func (s *state) visitExprs(list []syntax.Expr) []syntax.Expr {
	if list == nil {
		return nil
	}
	out := make([]syntax.Expr, 0, len(list))
	for _, e := range list {
		out = append(out, s.visitExpr(e))
	}
	return out
}

// visitStmt is the statement half of the dispatcher. Every recognized
// statement kind has exactly one case; anything else (including every kind
// denied outright) falls to reject.
func (s *state) visitStmt(n syntax.Stmt) []syntax.Stmt {
	if n == nil {
		return nil
	}
	s.indexOriginal(n)
	s.tracer.Visit(n.Kind(), n.Pos().Line)

	switch v := n.(type) {
	case *syntax.Assign:
		return s.handleAssign(v)
	case *syntax.AugAssign:
		return []syntax.Stmt{s.handleAugAssign(v)}
	case *syntax.AnnAssign:
		return []syntax.Stmt{s.handleAnnAssign(v)}
	case *syntax.If:
		return []syntax.Stmt{s.handleIf(v)}
	case *syntax.While:
		return []syntax.Stmt{s.handleWhile(v)}
	case *syntax.For:
		return []syntax.Stmt{s.handleFor(v)}
	case *syntax.Break:
		return []syntax.Stmt{v}
	case *syntax.Continue:
		return []syntax.Stmt{v}
	case *syntax.Pass:
		return []syntax.Stmt{v}
	case *syntax.Return:
		return []syntax.Stmt{s.handleReturn(v)}
	case *syntax.Raise:
		return []syntax.Stmt{s.handleRaise(v)}
	case *syntax.Assert:
		return []syntax.Stmt{s.handleAssert(v)}
	case *syntax.Delete:
		return []syntax.Stmt{s.handleDelete(v)}
	case *syntax.Try:
		return []syntax.Stmt{s.handleTry(v)}
	case *syntax.With:
		return s.handleWith(v)
	case *syntax.ExprStmt:
		return []syntax.Stmt{s.handleExprStmt(v)}
	case *syntax.Global:
		return []syntax.Stmt{v}
	case *syntax.Nonlocal:
		s.reject(v.Kind(), v.Pos().Line)
		return []syntax.Stmt{v}
	case *syntax.Import:
		return []syntax.Stmt{s.handleImport(v)}
	case *syntax.ImportFrom:
		return []syntax.Stmt{s.handleImportFrom(v)}
	case *syntax.FunctionDef:
		return []syntax.Stmt{s.handleFunctionDef(v)}
	case *syntax.ClassDef:
		return []syntax.Stmt{s.handleClassDef(v)}
	case *syntax.Module:
		return []syntax.Stmt{s.handleModule(v)}
	case *syntax.PrintStmt:
		return []syntax.Stmt{s.handlePrintStmt(v)}
	case *syntax.ExecStmt:
		s.reject(v.Kind(), v.Pos().Line)
		return []syntax.Stmt{v}
	case *syntax.AsyncFunctionDef:
		s.reject(v.Kind(), v.Pos().Line)
		return []syntax.Stmt{v}
	case *syntax.AsyncFor:
		s.reject(v.Kind(), v.Pos().Line)
		return []syntax.Stmt{v}
	case *syntax.AsyncWith:
		s.reject(v.Kind(), v.Pos().Line)
		return []syntax.Stmt{v}
	default:
		s.rejectUnknown(n)
		return []syntax.Stmt{n}
	}
}

// visitExpr is the expression half of the dispatcher.
func (s *state) visitExpr(n syntax.Expr) syntax.Expr {
	if n == nil {
		return nil
	}
	s.indexOriginal(n)
	s.tracer.Visit(n.Kind(), n.Pos().Line)

	switch v := n.(type) {
	case *syntax.Num:
		return v
	case *syntax.Str:
		return v
	case *syntax.Bytes:
		return v
	case *syntax.NameConstant:
		return v
	case *syntax.EllipsisLit:
		s.reject(v.Kind(), v.Pos().Line)
		return v
	case *syntax.ListLit:
		v.Elts = s.visitExprs(v.Elts)
		return v
	case *syntax.TupleLit:
		v.Elts = s.visitExprs(v.Elts)
		return v
	case *syntax.SetLit:
		v.Elts = s.visitExprs(v.Elts)
		return v
	case *syntax.DictLit:
		v.Keys = s.visitExprs(v.Keys)
		v.Values = s.visitExprs(v.Values)
		return v
	case *syntax.Starred:
		v.Value = s.visitExpr(v.Value)
		return v
	case *syntax.Name:
		return s.handleName(v)
	case *syntax.BinOp:
		return s.handleBinOp(v)
	case *syntax.UnaryOp:
		v.Operand = s.visitExpr(v.Operand)
		return v
	case *syntax.BoolOp:
		v.Values = s.visitExprs(v.Values)
		return v
	case *syntax.Compare:
		v.Left = s.visitExpr(v.Left)
		v.Comparators = s.visitExprs(v.Comparators)
		return v
	case *syntax.IfExp:
		v.Test = s.visitExpr(v.Test)
		v.Body = s.visitExpr(v.Body)
		v.Orelse = s.visitExpr(v.Orelse)
		return v
	case *syntax.Attribute:
		return s.handleAttribute(v)
	case *syntax.Subscript:
		return s.handleSubscript(v)
	case *syntax.Call:
		return s.handleCall(v)
	case *syntax.ListComp:
		return s.handleListComp(v)
	case *syntax.SetComp:
		return s.handleSetComp(v)
	case *syntax.DictComp:
		return s.handleDictComp(v)
	case *syntax.GeneratorExp:
		return s.handleGeneratorExp(v)
	case *syntax.Lambda:
		return s.handleLambda(v)
	case *syntax.Yield:
		s.reject(v.Kind(), v.Pos().Line)
		return v
	case *syntax.YieldFrom:
		s.reject(v.Kind(), v.Pos().Line)
		return v
	case *syntax.Await:
		s.reject(v.Kind(), v.Pos().Line)
		return v
	default:
		s.rejectUnknown(n)
		return n
	}
}

// rejectUnknown handles a node the dispatcher has no case for. A node with
// a Kind gets the standard refusal for that kind; one whose concrete Go
// type carries no Kind at all (impossible for trees built from this
// module's syntax package) is refused under the name "Unknown", so the
// walk never panics on any input tree.
func (s *state) rejectUnknown(n syntax.Node) {
	if k, ok := n.(syntax.Kinded); ok {
		s.reject(k.Kind(), n.Pos().Line)
		return
	}
	s.sink.Warnf(n.Pos().Line, "Unknown statement is not known")
	s.sink.Errorf(n.Pos().Line, "Unknown statements are not allowed")
}

// indexOriginal registers every node the dispatcher is handed (i.e. every
// node that existed before this walk started synthesizing replacements)
// into the position index, so later synthesized statements with no direct
// "old" counterpart (e.g. a print-collector injection) can still be
// stamped with a plausible nearby line (internal/location.Index).
func (s *state) indexOriginal(n syntax.Node) {
	s.idx.Insert(n)
}
