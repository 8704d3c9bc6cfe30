package transform

import (
	"fmt"

	"github.com/sirkon/untrustedpy/internal/diag"
	"github.com/sirkon/untrustedpy/syntax"
	"github.com/sirkon/untrustedpy/transform/config"
	"github.com/sirkon/untrustedpy/transform/telemetry"
)

// Transformer rewrites untrusted syntax trees so every unsafe operation
// routes through a runtime-supplied policy hook. It holds only its
// configuration; all per-compilation state lives on the state object a
// Transform call owns, so one Transformer may serve concurrent calls.
type Transformer struct {
	cfg config.Config
}

// New builds a Transformer with the given configuration.
func New(cfg config.Config) *Transformer {
	return &Transformer{cfg: cfg}
}

// Result is a finished transformation: the rewritten tree, the identifiers
// the source reads (for hosts pre-populating an evaluation environment),
// and the accumulated diagnostics. A compilation that recorded any error
// must be rejected by the caller; warnings are advisory.
type Result struct {
	Tree      syntax.Node
	UsedNames map[string]bool
	Errors    []diag.Record
	Warnings  []diag.Record
}

// Ok reports whether the transformation recorded no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

// Transform rewrites tree, which is normally a *syntax.Module. A bare
// statement or expression is accepted too (hosts compiling eval-style
// snippets); a statement that expands into several output statements comes
// back wrapped in a Module.
//
// The input is rewritten in place where possible; the returned tree is the
// only one the caller should use afterwards. The error return covers
// precondition violations only; policy violations land in Result.Errors.
func (t *Transformer) Transform(tree syntax.Node) (*Result, error) {
	if tree == nil {
		return nil, fmt.Errorf("transform: nil input tree")
	}

	s := newState(t.cfg, telemetry.New(nil, t.cfg.Trace))

	var out syntax.Node
	switch v := tree.(type) {
	case *syntax.Module:
		out = s.handleModule(v)
	case syntax.Stmt:
		s.scopes.Push()
		stmts := s.visitStmt(v)
		s.scopes.Pop()
		if len(stmts) == 1 {
			out = stmts[0]
		} else {
			mod := &syntax.Module{Body: stmts}
			mod.SetPos(v.Pos())
			out = mod
		}
	case syntax.Expr:
		s.scopes.Push()
		out = s.visitExpr(v)
		s.scopes.Pop()
	default:
		return nil, fmt.Errorf("transform: input %T is neither statement nor expression", tree)
	}

	return &Result{
		Tree:      out,
		UsedNames: s.used,
		Errors:    s.sink.Errors(),
		Warnings:  s.sink.Warnings(),
	}, nil
}
