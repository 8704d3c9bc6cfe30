package transform

import "github.com/sirkon/untrustedpy/syntax"

// checkAlias validates both the imported name and, if present, its alias.
// This blocks rebinding reserved dunder names via imports.
func (s *state) checkAlias(a *syntax.Alias) {
	s.names.CheckName(&s.sink, a.Pos().Line, a.Name)
	if a.AsName != "" {
		s.names.CheckName(&s.sink, a.Pos().Line, a.AsName)
	}
}

func (s *state) handleImport(n *syntax.Import) syntax.Stmt {
	for _, a := range n.Names {
		s.checkAlias(a)
	}
	return n
}

func (s *state) handleImportFrom(n *syntax.ImportFrom) syntax.Stmt {
	for _, a := range n.Names {
		s.checkAlias(a)
	}
	return n
}
