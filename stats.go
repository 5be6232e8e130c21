package mmq

// Stats is a point-in-time snapshot of a Queue's counters. All fields
// are read via atomics with no coordination between them, so the
// snapshot is approximate under concurrent load — useful for
// observability, not for correctness decisions.
type Stats struct {
	// TotalPushed is every push attempt that reached the point of
	// assigning an absolute index, accepted or not.
	TotalPushed uint64
	// Dispatched is the number of messages the sink has been invoked
	// with so far.
	Dispatched uint64
	// DroppedFull is PolicyDrop rejections caused by a full ring.
	DroppedFull uint64
	// RejectedShutdown is submissions rejected because the queue had
	// already started shutting down.
	RejectedShutdown uint64
}

// Stats returns a snapshot of the queue's counters.
func (q *Queue[T]) Stats() Stats {
	return Stats{
		TotalPushed:      q.totalPushed.Load(),
		Dispatched:       q.dispatched.Load(),
		DroppedFull:      q.droppedFull.Load(),
		RejectedShutdown: q.rejectedShut.Load(),
	}
}
