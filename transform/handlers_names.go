package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/syntax"
)

// handleName routes identifiers through the name policy. In load position, the
// magic `printed`/`print` identifiers are rewritten to reach the scope's
// print collector; any other load records the identifier in the used-names
// set and validates it. Store/delete/param positions only validate.
func (s *state) handleName(n *syntax.Name) syntax.Expr {
	if n.Ctx != syntax.Load {
		s.names.CheckName(&s.sink, n.Pos().Line, n.ID)
		return n
	}

	switch n.ID {
	case "printed":
		cur := s.scopes.Current()
		if cur != nil {
			cur.PrintedUsed = true
		}
		call := &syntax.Call{Func: &syntax.Name{ID: "_print"}}
		location.CopyLocations(call, n)
		return call
	case "print":
		cur := s.scopes.Current()
		if cur != nil {
			cur.PrintUsed = true
		}
		attr := &syntax.Attribute{
			Value: &syntax.Name{ID: "_print", Ctx: syntax.Load},
			Attr:  "_call_print",
			Ctx:   syntax.Load,
		}
		location.CopyLocations(attr, n)
		return attr
	default:
		s.markUsed(n.ID)
		s.names.CheckName(&s.sink, n.Pos().Line, n.ID)
		return n
	}
}
