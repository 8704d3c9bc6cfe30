// Package namepolicy implements the reserved-name security perimeter: the
// set of identifier and attribute names untrusted source is forbidden from
// using, because the runtime reserves them for policy hooks and internal
// bookkeeping.
package namepolicy

import (
	"strings"

	"github.com/sirkon/untrustedpy/internal/diag"
)

const rolesSuffix = "__roles__"

// Policy validates identifier and attribute names against the reserved
// rules, plus any host-supplied extra reserved suffixes (transform/config's
// ExtraReservedSuffixes, closing off additional dunder-suffixed hook
// families without a code change).
type Policy struct {
	ExtraSuffixes []string
}

// New builds a Policy with the given extra reserved suffixes, supplementing
// the built-in "__roles__" check.
func New(extraSuffixes []string) Policy {
	return Policy{ExtraSuffixes: extraSuffixes}
}

// CheckName validates an identifier appearing as an assigned variable name,
// function/class name, formal parameter name, import name/alias, or
// exception-binding name. A report is emitted on sink when line is the
// violating node's source line. An empty name is silently accepted (used
// for absent var-arg/kw-arg slots).
func (p Policy) CheckName(sink *diag.Sink, line int, name string) {
	if name == "" {
		return
	}

	if name != "_" && strings.HasPrefix(name, "_") {
		sink.Errorf(line, "%q is an invalid variable name because it starts with \"_\"", name)
		return
	}

	if p.hasReservedSuffix(name) {
		sink.Errorf(line, "%q is an invalid variable name because it ends with \"__roles__\".", name)
		return
	}

	switch name {
	case "print", "printed":
		sink.Errorf(line, "%q is a reserved name.", name)
	}
}

// CheckAttrName validates an attribute name accessed via `obj.name`. Only
// the prefix/suffix rules apply to attributes; "print"/"printed" stay
// legal as attribute names. A bare "_" is rejected here, unlike in
// CheckName: attributes get no carve-out for the lone underscore.
func (p Policy) CheckAttrName(sink *diag.Sink, line int, name string) {
	if name == "" {
		return
	}

	if strings.HasPrefix(name, "_") {
		sink.Errorf(line, "%q is an invalid attribute name because it starts with \"_\".", name)
	}

	if p.hasReservedSuffix(name) {
		sink.Errorf(line, "%q is an invalid attribute name because it ends with \"__roles__\".", name)
	}
}

func (p Policy) hasReservedSuffix(name string) bool {
	if strings.HasSuffix(name, rolesSuffix) {
		return true
	}
	for _, suf := range p.ExtraSuffixes {
		if suf != "" && strings.HasSuffix(name, suf) {
			return true
		}
	}
	return false
}
