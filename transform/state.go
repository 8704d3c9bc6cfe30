package transform

import (
	"github.com/sirkon/untrustedpy/dialect"
	"github.com/sirkon/untrustedpy/internal/diag"
	"github.com/sirkon/untrustedpy/internal/location"
	"github.com/sirkon/untrustedpy/internal/namepolicy"
	"github.com/sirkon/untrustedpy/internal/printscope"
	"github.com/sirkon/untrustedpy/internal/tmpname"
	"github.com/sirkon/untrustedpy/syntax"
	"github.com/sirkon/untrustedpy/transform/config"
	"github.com/sirkon/untrustedpy/transform/telemetry"
)

// state is the per-compilation, per-call context threaded through every
// dispatch and handler. Nothing here is package-global: two goroutines
// each running Transform on their own tree never share a byte of mutable
// state, so no locking is needed anywhere in the walk.
type state struct {
	cfg        config.Config
	sink       diag.Sink
	names      namepolicy.Policy
	used       map[string]bool
	tmp        tmpname.Counter
	scopes     printscope.Stack
	idx        *location.Index
	tracer     telemetry.Tracer
}

func newState(cfg config.Config, tr telemetry.Tracer) *state {
	return &state{
		cfg:    cfg,
		names:  namepolicy.New(cfg.ExtraReservedSuffixes),
		used:   make(map[string]bool),
		idx:    location.NewIndex(),
		tracer: tr,
	}
}

func (s *state) dialect() dialect.Dialect { return s.cfg.Dialect }

// markUsed records id in the used-names set unless it is one of the magic
// print/printed names. Synthesized temporaries never reach here since
// handlers build them after visiting.
func (s *state) markUsed(id string) {
	if id == "" || id == "print" || id == "printed" {
		return
	}
	s.used[id] = true
}

// reject is the default dispatcher handler: every kind not given a
// specific allow/rewrite handler, plus every kind denied outright, funnels
// through here. New grammar constructs fail closed until audited.
func (s *state) reject(kind syntax.Kind, line int) {
	s.sink.Warnf(line, "%s statement is not known", kind.String())
	s.sink.Errorf(line, "%s statements are not allowed.", kind.String())
	s.tracer.Reject(kind, line, "not allowed")
}
