// Package printscope tracks, per lexical scope (module, function, lambda),
// whether the magic `print`/`printed` names were used, and builds the
// per-scope collector injection.
package printscope

import "github.com/sirkon/untrustedpy/syntax"

// State is one scope's print-usage tracking.
type State struct {
	PrintUsed   bool
	PrintedUsed bool
}

// Stack is a LIFO of scope states, one push per module/function/lambda
// entered. Scopes nest strictly; the caller must Pop on every exit path
// (including error returns) to restore the outer scope's state.
type Stack struct {
	frames []*State
}

// Push enters a fresh scope and returns its state for the caller to mutate
// as it visits `print`/`printed` name loads.
func (s *Stack) Push() *State {
	st := &State{}
	s.frames = append(s.frames, st)
	return st
}

// Pop exits the current scope, discarding its state. Call this on every
// exit path, including error paths, so outer scope state is restored.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Current returns the innermost open scope's state, or nil if no scope is
// open (shouldn't happen once the module scope has been pushed).
func (s *Stack) Current() *State {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Fixed names the injected collector assignment binds and constructs.
const (
	collectorAssignTarget = "_print"
	collectorConstructor  = "_print_"
	getattrHook           = "_getattr_"
)

// InjectCollector builds the `_print = _print_(_getattr_)` assignment
// statement prepended to a scope's body when that scope used `print` or
// `printed`. Callers stamp its position via internal/location before
// inserting it.
func InjectCollector() syntax.Stmt {
	return &syntax.Assign{
		Targets: []syntax.Expr{&syntax.Name{ID: collectorAssignTarget, Ctx: syntax.Store}},
		Value: &syntax.Call{
			Func: &syntax.Name{ID: collectorConstructor},
			Args: []syntax.Expr{&syntax.Name{ID: getattrHook}},
		},
	}
}

// FutureImportSkip reports how many leading statements of body are
// `from __future__ import ...` statements. Those must stay first in a
// module, so the collector assignment is inserted after them.
func FutureImportSkip(body []syntax.Stmt) int {
	n := 0
	for _, stmt := range body {
		imp, ok := stmt.(*syntax.ImportFrom)
		if !ok || imp.Module != "__future__" {
			break
		}
		n++
	}
	return n
}
