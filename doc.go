// Package mmq implements a bounded, in-memory, multi-producer
// single-consumer message queue backed by a circular buffer.
//
// Producers spend as little time as possible under the queue's internal
// lock: a producer reserves a slot in a short critical section, copies
// (or constructs) the payload with the lock released, then publishes the
// slot in a second short critical section. A single goroutine, spawned
// and owned by the queue, drains slots in FIFO order and feeds each
// message to a caller-supplied sink.
//
// Two overflow policies govern what happens when the ring is full:
// PolicyBlock (the default) stalls the producer until space frees up or
// the queue shuts down, and PolicyDrop discards the message immediately,
// leaving a gap in the dispatched sequence that the sink can detect via
// the absolute index it is handed.
//
// mmq does not persist messages, fan out to more than one consumer,
// reorder by priority, or cross process boundaries. Ordering across
// distinct producer goroutines is not guaranteed once the ring is full;
// a single producer's own messages are always dispatched in submission
// order.
package mmq
