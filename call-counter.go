package wsrp

import "sync/atomic"

// CallCounter counts the invocations of a behavior. Tests assert on it; it is
// the only observable side effect of most behaviors.
type CallCounter struct {
	count atomic.Int64
}

func (c *CallCounter) IncrementCallCount() {
	c.count.Add(1)
}

func (c *CallCounter) CallCount() int {
	return int(c.count.Load())
}
