package mmq

import "errors"

// ErrQueueFull is returned by Emplace under PolicyDrop when the ring has
// no free slot (Push and PushMove report the same case as false). The
// message was not constructed and total_pushed was still incremented so
// the sink can detect the gap.
var ErrQueueFull = errors.New("mmq: queue is full")

// ErrClosed is returned by Emplace once the queue has started shutting
// down (Push and PushMove report the same case as false). No side effect
// beyond the push and shutdown-rejection counters is observable before
// this is returned.
var ErrClosed = errors.New("mmq: queue is closed")
