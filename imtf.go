package listupdate

// IMTF is Move-To-Front with lookahead. An element found at position p is
// only moved to the front if it is requested again within the next p
// requests of the bound sequence.
// An IMTF isn't safe for concurrent use.
type IMTF[T comparable] struct {
	initial  []T
	list     *List[T]
	sequence []T
	// index, in sequence, of the request about to be served
	cursor int
}

// Create an engine whose configuration starts as initial. initial is copied.
// No sequence is bound, so nothing gets promoted until Bind is called.
func NewIMTF[T comparable](initial []T) *IMTF[T] {
	m := &IMTF[T]{initial: copyOf(initial)}
	m.Reset()
	return m
}

// Bind attaches the sequence used for lookahead and rewinds the cursor.
func (m *IMTF[T]) Bind(sequence []T) {
	m.sequence = copyOf(sequence)
	m.cursor = 0
}

// Restores the initial configuration and rewinds the cursor. The bound
// sequence, if any, stays bound.
func (m *IMTF[T]) Reset() {
	m.list = listOf(m.initial)
	m.cursor = 0
}

// Access serves a request for element. The cost is the same as MTF's, computed
// before any move. Returns an error wrapping ErrElementNotFound, and leaves
// both the configuration and the cursor untouched, when element isn't in the
// list.
func (m *IMTF[T]) Access(element T) (AccessResult[T], error) {
	node, position := m.list.Find(element)
	if node == nil {
		return AccessResult[T]{}, elementNotFound(element)
	}

	promote := m.shouldPromote(element, position)
	if promote {
		m.list.MoveToFront(node)
	}
	m.cursor += 1

	return AccessResult[T]{
		Element:       element,
		Cost:          position + 1,
		Promoted:      promote,
		Configuration: m.list.Snapshot(),
	}, nil
}

// The window is [cursor+1, cursor+1+position), clipped to the end of the
// sequence. Its length is the element's position.
func (m *IMTF[T]) shouldPromote(element T, position int) bool {
	if position == 0 {
		return false
	}
	start := m.cursor + 1
	if start >= len(m.sequence) {
		return false
	}
	end := start + position
	if end > len(m.sequence) {
		end = len(m.sequence)
	}
	for _, upcoming := range m.sequence[start:end] {
		if upcoming == element {
			return true
		}
	}
	return false
}

// Index of the request about to be served
func (m *IMTF[T]) Cursor() int {
	return m.cursor
}

// A copy of the current configuration
func (m *IMTF[T]) Configuration() []T {
	return m.list.Snapshot()
}

// Resets the engine, binds sequence and serves every request of it
func (m *IMTF[T]) Process(sequence []T) (*SequenceResult[T], error) {
	return Run[T](m, sequence)
}
