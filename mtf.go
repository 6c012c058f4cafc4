// Package listupdate implements online list-update algorithms: Move-To-Front
// and a lookahead variant which only promotes an element when it is about to
// be requested again.
package listupdate

// MTF moves every accessed element to the front of the list.
// An MTF isn't safe for concurrent use.
type MTF[T comparable] struct {
	initial []T
	list    *List[T]
}

// Create an engine whose configuration starts as initial. initial is copied.
func NewMTF[T comparable](initial []T) *MTF[T] {
	m := &MTF[T]{initial: copyOf(initial)}
	m.Reset()
	return m
}

// Restores the initial configuration
func (m *MTF[T]) Reset() {
	m.list = listOf(m.initial)
}

// Access serves a request for element. It costs 1 + the element's current
// position, after which the element is at the front. Returns an error
// wrapping ErrElementNotFound, and leaves the configuration untouched, when
// element isn't in the list.
func (m *MTF[T]) Access(element T) (AccessResult[T], error) {
	node, position := m.list.Find(element)
	if node == nil {
		return AccessResult[T]{}, elementNotFound(element)
	}
	m.list.MoveToFront(node)
	return AccessResult[T]{
		Element:       element,
		Cost:          position + 1,
		Promoted:      true,
		Configuration: m.list.Snapshot(),
	}, nil
}

// A copy of the current configuration
func (m *MTF[T]) Configuration() []T {
	return m.list.Snapshot()
}

// Resets the engine and serves every request of sequence
func (m *MTF[T]) Process(sequence []T) (*SequenceResult[T], error) {
	return Run[T](m, sequence)
}

func copyOf[T any](values []T) []T {
	c := make([]T, len(values))
	copy(c, values)
	return c
}
