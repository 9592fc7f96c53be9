package progress

import "sync/atomic"

// Counter accumulates completed-file counts across concurrent workers.
// The zero value is ready to use.
type Counter struct {
	total atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Add records n completed files. Safe for concurrent use.
func (c *Counter) Add(n int64) {
	c.total.Add(n)
}

// Total returns the number of files recorded so far.
func (c *Counter) Total() int64 {
	return c.total.Load()
}
