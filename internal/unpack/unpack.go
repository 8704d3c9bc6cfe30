// Package unpack builds the nested descriptor that guards
// sequence-unpacking assignment, for-loop, and with-item targets.
// The runtime hook _unpack_sequence_ (and its iterator counterpart
// _iter_unpack_sequence_) consults this descriptor to call _getiter_ on
// every nested subsequence before destructuring it, so a malicious __iter__
// implementation can't smuggle extra elements past a fixed-arity pattern.
package unpack

import (
	"strconv"

	"github.com/sirkon/untrustedpy/syntax"
)

// Spec is the descriptor for a (possibly nested) unpacking target.
// MinLen counts only non-starred elements; Children holds, for each
// sub-target that is itself a sequence pattern, its position (negative when
// counted from the end, for elements following a star) and nested Spec.
type Spec struct {
	MinLen   int
	Children []Child
}

// Child pairs a target position with the nested Spec for that position's
// sub-pattern.
type Child struct {
	Index int
	Spec  Spec
}

// Build constructs the unpack spec for a sequence-pattern target made of
// elts: count non-starred elements for MinLen, and for every nested
// sequence-pattern
// element emit a Child entry recursively; a starred element doesn't end the
// scan, but shifts every later position to be counted negatively from the
// end via offset.
func Build(elts []syntax.Expr) Spec {
	spec := Spec{MinLen: countNonStarred(elts)}
	offset := 0

	for i, elt := range elts {
		if _, ok := elt.(*syntax.Starred); ok {
			offset = spec.MinLen + 1
			continue
		}

		if sub, ok := asSequencePattern(elt); ok {
			spec.Children = append(spec.Children, Child{
				Index: i - offset,
				Spec:  Build(sub),
			})
			continue
		}

		// Plain name: nothing to emit, the destructuring assignment binds
		// it directly.
	}

	return spec
}

// countNonStarred counts elements that are not a star element.
func countNonStarred(elts []syntax.Expr) int {
	n := 0
	for _, e := range elts {
		if _, ok := e.(*syntax.Starred); ok {
			continue
		}
		n++
	}
	return n
}

// asSequencePattern reports whether elt is itself a nested sequence target
// (a TupleLit or ListLit used as a destructuring sub-pattern), returning
// its elements.
func asSequencePattern(elt syntax.Expr) ([]syntax.Expr, bool) {
	switch e := elt.(type) {
	case *syntax.TupleLit:
		return e.Elts, true
	case *syntax.ListLit:
		return e.Elts, true
	default:
		return nil, false
	}
}

// IsSequencePattern reports whether target is itself a destructuring
// pattern (as opposed to a plain name), returning its elements. Exported
// so package transform can decide whether an assignment/for/with target
// needs the unpack-guard treatment at all.
func IsSequencePattern(target syntax.Expr) ([]syntax.Expr, bool) {
	return asSequencePattern(target)
}

// Literal renders sp as the structured literal the runtime hooks
// _unpack_sequence_/_iter_unpack_sequence_ consume: a mapping with keys
// "min_len" and "children", the latter a list of (index, spec) pairs.
func (sp Spec) Literal() syntax.Expr {
	children := make([]syntax.Expr, len(sp.Children))
	for i, c := range sp.Children {
		children[i] = &syntax.TupleLit{Elts: []syntax.Expr{
			&syntax.Num{Literal: strconv.Itoa(c.Index)},
			c.Spec.Literal(),
		}}
	}

	return &syntax.DictLit{
		Keys: []syntax.Expr{
			&syntax.Str{Value: "min_len"},
			&syntax.Str{Value: "children"},
		},
		Values: []syntax.Expr{
			&syntax.Num{Literal: strconv.Itoa(sp.MinLen)},
			&syntax.ListLit{Elts: children},
		},
	}
}
