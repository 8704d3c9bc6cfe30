// Package telemetry provides optional structured trace logging of the
// transformer's walk, one event per node visited, so a host embedding
// the transformer in a long-running process can diagnose slow or
// pathological inputs.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/sirkon/untrustedpy/syntax"
)

// Tracer logs one event per dispatched node when enabled; a disabled Tracer
// is a safe zero-overhead no-op (every method short-circuits before
// touching zerolog).
type Tracer struct {
	logger  zerolog.Logger
	enabled bool
}

// New builds a Tracer writing to w. Pass enabled=false to get a no-op
// tracer without allocating a writer (New(nil, false) is valid).
func New(w io.Writer, enabled bool) Tracer {
	if !enabled {
		return Tracer{enabled: false}
	}
	if w == nil {
		w = os.Stderr
	}
	return Tracer{
		logger:  zerolog.New(w).With().Timestamp().Str("component", "transform").Logger(),
		enabled: true,
	}
}

// Visit logs that the dispatcher is about to handle a node of the given
// kind at the given source line.
func (t Tracer) Visit(kind syntax.Kind, line int) {
	if !t.enabled {
		return
	}
	t.logger.Trace().Str("kind", kind.String()).Int("line", line).Msg("visit")
}

// Reject logs that a node was refused by the default handler.
func (t Tracer) Reject(kind syntax.Kind, line int, reason string) {
	if !t.enabled {
		return
	}
	t.logger.Warn().Str("kind", kind.String()).Int("line", line).Str("reason", reason).Msg("reject")
}

// ScopeEntered/ScopeExited log print-scope stack transitions, useful for
// diagnosing imbalance bugs in nested function/lambda bodies.
func (t Tracer) ScopeEntered(kind syntax.Kind, line int) {
	if !t.enabled {
		return
	}
	t.logger.Debug().Str("kind", kind.String()).Int("line", line).Msg("scope-enter")
}

func (t Tracer) ScopeExited(kind syntax.Kind, line int, printUsed, printedUsed bool) {
	if !t.enabled {
		return
	}
	t.logger.Debug().
		Str("kind", kind.String()).
		Int("line", line).
		Bool("print_used", printUsed).
		Bool("printed_used", printedUsed).
		Msg("scope-exit")
}
