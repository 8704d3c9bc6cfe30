// Package diag collects the errors and warnings produced while walking a
// syntax tree. A Sink is owned by a single call to transform.Transform and
// never shared across goroutines, so it carries no mutex.
package diag

import "fmt"

// Severity distinguishes a hard rejection from an advisory note.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Record is a single diagnostic, always attached to a source line.
type Record struct {
	Severity Severity
	Line     int
	Message  string
}

// String renders a record as "Line L: message".
func (r Record) String() string {
	return fmt.Sprintf("Line %d: %s", r.Line, r.Message)
}

// Sink accumulates records in the order they were raised.
type Sink struct {
	records []Record
}

// Errorf records an error at the given line.
func (s *Sink) Errorf(line int, format string, args ...any) {
	s.records = append(s.records, Record{Severity: Error, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning at the given line.
func (s *Sink) Warnf(line int, format string, args ...any) {
	s.records = append(s.records, Record{Severity: Warning, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Records returns every diagnostic raised so far, in order.
func (s *Sink) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Errors returns only the Error-severity records.
func (s *Sink) Errors() []Record {
	return s.filter(Error)
}

// Warnings returns only the Warning-severity records.
func (s *Sink) Warnings() []Record {
	return s.filter(Warning)
}

func (s *Sink) filter(sev Severity) []Record {
	var out []Record
	for _, r := range s.records {
		if r.Severity == sev {
			out = append(out, r)
		}
	}
	return out
}

// HasErrors reports whether any Error-severity record has been raised. The
// transformer still finishes walking the tree after the first error, so
// every violation surfaces in one pass.
func (s *Sink) HasErrors() bool {
	for _, r := range s.records {
		if r.Severity == Error {
			return true
		}
	}
	return false
}
