package transform

import (
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/sliceconv"
	"github.com/sirkon/untrustedpy/syntax"
)

// handleAttribute validates the attribute name, then in load position
// rewrites to `_getattr_(obj, "name")`; in store/delete position it
// rewrites the value side to `_write_(obj)` and leaves the attribute name,
// so the surrounding assign/delete targets the proxy.
func (s *state) handleAttribute(n *syntax.Attribute) syntax.Expr {
	s.names.CheckAttrName(&s.sink, n.Pos().Line, n.Attr)
	n.Value = s.visitExpr(n.Value)

	if n.Ctx != syntax.Load {
		n.Value = wrapWrite(n.Value)
		return n
	}

	call := &syntax.Call{
		Func: &syntax.Name{ID: "_getattr_"},
		Args: []syntax.Expr{n.Value, &syntax.Str{Value: n.Attr}},
	}
	location.CopyLocations(call, n)
	return call
}

// wrapWrite builds `_write_(obj)`, stamping obj's own position onto the
// wrapper since there is no "old" node closer than obj itself.
func wrapWrite(obj syntax.Expr) syntax.Expr {
	call := &syntax.Call{
		Func: &syntax.Name{ID: "_write_"},
		Args: []syntax.Expr{obj},
	}
	location.CopyLocations(call, obj)
	return call
}

// handleSubscript rewrites reads to `_getitem_(obj, slice)` and wraps the
// object in `_write_` for store/delete targets.
func (s *state) handleSubscript(n *syntax.Subscript) syntax.Expr {
	n.Value = s.visitExpr(n.Value)
	n.Slice = s.visitSliceExpr(n.Slice)

	if n.Ctx != syntax.Load {
		n.Value = wrapWrite(n.Value)
		return n
	}

	call := &syntax.Call{
		Func: &syntax.Name{ID: "_getitem_"},
		Args: []syntax.Expr{n.Value, sliceconv.Transform(n.Slice)},
	}
	location.CopyLocations(call, n)
	return call
}

// visitSliceExpr recurses into a subscript's slice child (Index, Slice, or
// ExtSlice) without yet converting it to the slice(...) call form; that
// conversion (internal/sliceconv) only applies in load position.
func (s *state) visitSliceExpr(slc syntax.Expr) syntax.Expr {
	switch v := slc.(type) {
	case nil:
		return nil
	case *syntax.Index:
		v.Value = s.visitExpr(v.Value)
		return v
	case *syntax.Slice:
		v.Lower = s.visitExpr(v.Lower)
		v.Upper = s.visitExpr(v.Upper)
		v.Step = s.visitExpr(v.Step)
		return v
	case *syntax.ExtSlice:
		for i, d := range v.Dims {
			v.Dims[i] = s.visitSliceExpr(d)
		}
		return v
	default:
		return s.visitExpr(slc)
	}
}
