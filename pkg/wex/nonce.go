package wex

import (
	"sync/atomic"
	"time"
)

// nonceSource hands out the strictly increasing nonces the trade API demands.
// Values are wall-clock milliseconds, which keeps them in the magnitude the
// exchange accepts; when two requests land inside the same clock tick the
// counter steps past the previous value instead of repeating it.
type nonceSource struct {
	last atomic.Int64
}

func (n *nonceSource) Next() int64 {
	for {
		last := n.last.Load()
		next := time.Now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if n.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
