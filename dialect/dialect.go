// Package dialect identifies which grammar generation a syntax tree was
// parsed under and gates the handful of node kinds and encodings that
// differ between generations: matrix multiplication, the print/exec
// statements, tuple-destructuring function parameters, class keywords,
// keyword-only parameters, and the */** call-argument encoding.
package dialect

import "fmt"

// Dialect selects a grammar generation.
type Dialect int

const (
	DialectInvalid Dialect = iota

	// Legacy2 is the 2.x grammar: print/exec statements, tuple-parameter
	// unpacking in function signatures, no matrix-multiplication operator,
	// no keyword-only arguments.
	Legacy2

	// Modern34 is the 3.0-3.4 grammar: print()/exec() are builtins, tuple
	// parameters are gone, keyword-only arguments exist, but there is no
	// matrix-multiplication operator yet.
	Modern34

	// Modern35Plus is the 3.5+ grammar: matrix multiplication (@) and the
	// */** call-argument encoding using
	// Starred elements and double-star Keyword entries instead of the
	// dedicated star-args/kwargs call slots.
	Modern35Plus
)

var dialectNames = map[Dialect]string{
	Legacy2:      "legacy2",
	Modern34:     "modern3.4",
	Modern35Plus: "modern3.5+",
}

func (d Dialect) String() string {
	if s, ok := dialectNames[d]; ok {
		return s
	}
	return fmt.Sprintf("invalid(%d)", int(d))
}

// UnmarshalText lets Dialect be decoded straight out of YAML configuration.
func (d *Dialect) UnmarshalText(text []byte) error {
	s := string(text)
	for k, v := range dialectNames {
		if v == s {
			*d = k
			return nil
		}
	}
	return fmt.Errorf("unknown dialect %q", s)
}

// MarshalText is the inverse of UnmarshalText.
func (d Dialect) MarshalText() ([]byte, error) {
	if s, ok := dialectNames[d]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("invalid dialect %d", int(d))
}

// HasMatMult reports whether the `@` binary operator is part of the
// grammar. Only Modern35Plus has it; on earlier dialects a BinOp carrying
// syntax.MatMult is a parser bug, not something the transformer should see.
func (d Dialect) HasMatMult() bool {
	return d == Modern35Plus
}

// HasPrintStatement reports whether `print` is a statement keyword (Legacy2)
// as opposed to an ordinary builtin call name.
func (d Dialect) HasPrintStatement() bool {
	return d == Legacy2
}

// HasExecStatement reports whether `exec` is a statement keyword.
func (d Dialect) HasExecStatement() bool {
	return d == Legacy2
}

// HasTupleParameters reports whether function signatures may destructure a
// parameter into a tuple pattern, e.g. `def f((a, b)):`.
func (d Dialect) HasTupleParameters() bool {
	return d == Legacy2
}

// HasClassKeywords reports whether a class definition may carry keyword
// arguments (`class C(Base, metaclass=M)`), the 3.x replacement for the
// legacy module-level __metaclass__ binding.
func (d Dialect) HasClassKeywords() bool {
	return d != Legacy2
}

// HasKeywordOnlyArgs reports whether a signature may declare keyword-only
// parameters after a bare `*`.
func (d Dialect) HasKeywordOnlyArgs() bool {
	return d != Legacy2
}

// UsesStarredCallEncoding reports whether `*args`/`**kwargs` forwarding in a
// call is encoded as Starred elements of Call.Args and double-star Keyword
// entries (3.5+), as opposed to the dedicated Call.StarArgs/Call.KwArgs
// slots used by earlier dialects.
func (d Dialect) UsesStarredCallEncoding() bool {
	return d == Modern35Plus
}
