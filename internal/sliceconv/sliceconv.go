// Package sliceconv rewrites subscript slice expressions into calls to the
// host's built-in slice constructor.
package sliceconv

import "github.com/sirkon/untrustedpy/syntax"

// noneLiteral is the host's "no bound" sentinel, used to fill any of a
// slice's missing lower/upper/step components.
func noneLiteral() syntax.Expr {
	return &syntax.NameConstant{Value: "None"}
}

// Transform rewrites a subscript's slice child:
//   - a plain Index collapses to its wrapped expression;
//   - a Slice becomes a call to slice(lower, upper, step), missing bounds
//     replaced by the none literal;
//   - an ExtSlice (tuple of slices, `a[i, j:k]`) becomes a TupleLit of the
//     recursively transformed dimensions.
func Transform(slc syntax.Expr) syntax.Expr {
	switch s := slc.(type) {
	case nil:
		return nil
	case *syntax.Index:
		return s.Value
	case *syntax.Slice:
		return &syntax.Call{
			Func: &syntax.Name{ID: "slice"},
			Args: []syntax.Expr{
				orNone(s.Lower),
				orNone(s.Upper),
				orNone(s.Step),
			},
		}
	case *syntax.ExtSlice:
		dims := make([]syntax.Expr, len(s.Dims))
		for i, d := range s.Dims {
			dims[i] = Transform(d)
		}
		return &syntax.TupleLit{Elts: dims}
	default:
		// Any other expression form (legacy dialects sometimes encode a
		// plain index without wrapping it in Index at all) passes through
		// unchanged: it is already the index expression itself.
		return slc
	}
}

func orNone(e syntax.Expr) syntax.Expr {
	if e == nil {
		return noneLiteral()
	}
	return e
}
