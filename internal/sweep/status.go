package sweep

import "github.com/tidwall/btree"

// status is the sweep-line ordered set: the left events of every
// segment whose interior the current sweep line intersects, ordered
// bottom-to-top by segmentBelow. It is built the way tile38's
// internal/collection.Collection builds its own ordered sets (a generic
// btree.BTreeG keyed by a domain comparator, opened with NoLocks since a
// single sweep never runs concurrently with itself).
//
// A left event's position in the status is implicit: because
// segmentBelow is a function of the event's own (fixed) endpoints rather
// than of tree-internal state, any *Event value, not just one obtained
// from a prior Seek, can be used to erase or locate that event's slot.
type status struct {
	tree *btree.BTreeG[*Event]
}

func newStatus() *status {
	return &status{
		tree: btree.NewBTreeGOptions(segmentBelow, btree.Options{NoLocks: true}),
	}
}

func (s *status) insert(e *Event) {
	s.tree.Set(e)
	e.inStatus = true
}

func (s *status) erase(e *Event) {
	s.tree.Delete(e)
	e.inStatus = false
}

func (s *status) len() int {
	return s.tree.Len()
}

// neighbors returns the entries immediately below (prev) and above
// (next) e in the status, or nil for either side that doesn't exist.
func (s *status) neighbors(e *Event) (prev, next *Event) {
	it := s.tree.Iter()
	defer it.Release()
	if !it.Seek(e) {
		return nil, nil
	}
	if it.Next() {
		next = it.Item()
	}
	it.Seek(e)
	if it.Prev() {
		prev = it.Item()
	}
	return prev, next
}

// below returns the event immediately below e, or nil if e is at the
// bottom of the status.
func (s *status) below(e *Event) *Event {
	prev, _ := s.neighbors(e)
	return prev
}
