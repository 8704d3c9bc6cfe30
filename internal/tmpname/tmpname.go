// Package tmpname mints the monotonically increasing `_tmpN` temporary
// identifiers the transformer synthesizes for with-item unpacking guards
// and tuple-parameter destructuring. These names are exempt from
// internal/namepolicy because that policy forbids user identifiers
// beginning with `_`. The counter is the transformer's own, never
// user-reachable.
package tmpname

import "fmt"

// Counter mints temporary names for a single compilation. It is owned by
// the per-call transform state and reset for every new compile by
// constructing a fresh Counter.
type Counter struct {
	next int
}

// Next mints the next temporary name, e.g. "_tmp0", "_tmp1", ...
func (c *Counter) Next() string {
	name := fmt.Sprintf("_tmp%d", c.next)
	c.next++
	return name
}
