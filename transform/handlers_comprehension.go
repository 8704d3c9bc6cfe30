package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/unpack"
	"github.com/sirkon/untrustedpy/syntax"
)

// wrapIterable wraps every iterable in a for loop, comprehension, or
// generator expression in `_getiter_`, or in `_iter_unpack_sequence_` when
// the loop target is itself a sequence pattern.
func (s *state) wrapIterable(target, iter syntax.Expr) syntax.Expr {
	visited := s.visitExpr(iter)

	if elts, ok := unpack.IsSequencePattern(target); ok {
		spec := unpack.Build(elts)
		call := &syntax.Call{
			Func: &syntax.Name{ID: "_iter_unpack_sequence_"},
			Args: []syntax.Expr{visited, spec.Literal(), &syntax.Name{ID: "_getiter_"}},
		}
		location.CopyLocations(call, visited)
		return call
	}

	call := &syntax.Call{
		Func: &syntax.Name{ID: "_getiter_"},
		Args: []syntax.Expr{visited},
	}
	location.CopyLocations(call, visited)
	return call
}

func (s *state) handleComprehension(c *syntax.Comprehension) *syntax.Comprehension {
	c.Iter = s.wrapIterable(c.Target, c.Iter)
	c.Target = s.visitExpr(c.Target)
	c.Ifs = s.visitExprs(c.Ifs)
	return c
}

func (s *state) handleGenerators(gens []*syntax.Comprehension) []*syntax.Comprehension {
	for i, g := range gens {
		gens[i] = s.handleComprehension(g)
	}
	return gens
}

func (s *state) handleListComp(n *syntax.ListComp) syntax.Expr {
	n.Generators = s.handleGenerators(n.Generators)
	n.Elt = s.visitExpr(n.Elt)
	return n
}

func (s *state) handleSetComp(n *syntax.SetComp) syntax.Expr {
	n.Generators = s.handleGenerators(n.Generators)
	n.Elt = s.visitExpr(n.Elt)
	return n
}

func (s *state) handleDictComp(n *syntax.DictComp) syntax.Expr {
	n.Generators = s.handleGenerators(n.Generators)
	n.Key = s.visitExpr(n.Key)
	n.Value = s.visitExpr(n.Value)
	return n
}

func (s *state) handleGeneratorExp(n *syntax.GeneratorExp) syntax.Expr {
	n.Generators = s.handleGenerators(n.Generators)
	n.Elt = s.visitExpr(n.Elt)
	return n
}
