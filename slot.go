package mmq

// slotState tracks where a slot sits in the Free -> BeingImported -> Ready
// -> BeingExported -> Free cycle. Mutated only by the producer that
// reserved the slot or by the consumer goroutine, always under the
// queue's mutex.
type slotState int32

const (
	stateFree slotState = iota
	stateBeingImported
	stateReady
	stateBeingExported
)

// slot is one cell of the ring. absoluteIndex and payload are meaningful
// only while state is stateReady or stateBeingExported.
type slot[T any] struct {
	state         slotState
	absoluteIndex uint64
	payload       T
}
