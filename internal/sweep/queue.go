package sweep

import "github.com/tidwall/tinyqueue"

// eventQueue is the sweep's event priority queue, keyed by the event
// comparator in comparator.go. It is a thin wrapper around tinyqueue's
// binary heap, the same priority-queue library tile38 pulls in
// (indirectly, via geojson) but never uses directly itself.
type eventQueue struct {
	q *tinyqueue.Queue
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		q: tinyqueue.New(nil),
	}
}

func (q *eventQueue) push(e *Event) {
	q.q.Push(e)
}

// pop removes and returns the minimum (next-to-process) event, or nil if
// the queue is empty.
func (q *eventQueue) pop() *Event {
	if q.q.Len() == 0 {
		return nil
	}
	item := q.q.Pop()
	if item == nil {
		return nil
	}
	return item.(*Event)
}

func (q *eventQueue) empty() bool {
	return q.q.Len() == 0
}
