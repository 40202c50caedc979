package ink

import "sync/atomic"

// Cookie carries progress and cancellation state between an
// application and a long-running render or replay. All methods are
// safe for concurrent use; share one *Cookie between the goroutine
// driving the work and the goroutines observing or aborting it.
//
// The zero value is ready to use.
type Cookie struct {
	abort       atomic.Bool
	progress    atomic.Int32
	progressMax atomic.Int32
	errors      atomic.Int32
	incomplete  atomic.Bool
}

// NewCookie returns a fresh cookie.
func NewCookie() *Cookie {
	return &Cookie{}
}

// Abort requests that the current operation stop at the next
// checkpoint.
func (c *Cookie) Abort() {
	c.abort.Store(true)
}

// ShouldAbort reports whether an abort has been requested.
func (c *Cookie) ShouldAbort() bool {
	return c.abort.Load()
}

// ResetAbort clears a pending abort request.
func (c *Cookie) ResetAbort() {
	c.abort.Store(false)
}

// Progress returns the number of completed steps.
func (c *Cookie) Progress() int {
	return int(c.progress.Load())
}

// SetProgress sets the completed step count.
func (c *Cookie) SetProgress(value int) {
	c.progress.Store(int32(value))
}

// IncProgress adds one completed step.
func (c *Cookie) IncProgress() {
	c.progress.Add(1)
}

// ProgressMax returns the total step count, or 0 when unknown.
func (c *Cookie) ProgressMax() int {
	return int(c.progressMax.Load())
}

// SetProgressMax sets the total step count.
func (c *Cookie) SetProgressMax(value int) {
	c.progressMax.Store(int32(value))
}

// Errors returns the number of errors recorded so far.
func (c *Cookie) Errors() int {
	return int(c.errors.Load())
}

// IncErrors records one more error.
func (c *Cookie) IncErrors() {
	c.errors.Add(1)
}

// SetErrors sets the error count.
func (c *Cookie) SetErrors(count int) {
	c.errors.Store(int32(count))
}

// IsIncomplete reports whether the operation stopped before finishing.
func (c *Cookie) IsIncomplete() bool {
	return c.incomplete.Load()
}

// SetIncomplete marks whether the operation stopped before finishing.
func (c *Cookie) SetIncomplete(value bool) {
	c.incomplete.Store(value)
}

// ProgressPercent returns progress as a percentage of the maximum, or
// 0 when the maximum is unknown.
func (c *Cookie) ProgressPercent() float64 {
	max := c.ProgressMax()
	if max <= 0 {
		return 0
	}
	return float64(c.Progress()) / float64(max) * 100
}

// Reset returns the cookie to its initial state.
func (c *Cookie) Reset() {
	c.abort.Store(false)
	c.progress.Store(0)
	c.progressMax.Store(0)
	c.errors.Store(0)
	c.incomplete.Store(false)
}
