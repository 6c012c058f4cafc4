package listupdate

type Node[T any] struct {
	Value T
	Next  *Node[T]
	Prev  *Node[T]
}

// A doubly linked list holding the current configuration. Head is position 0.
type List[T comparable] struct {
	Head *Node[T]
	Tail *Node[T]
	len  int
}

func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// Builds a list whose head is values[0]
func listOf[T comparable](values []T) *List[T] {
	l := NewList[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l.Insert(values[i])
	}
	return l
}

func (l *List[T]) Len() int {
	return l.len
}

// Insert pushes value to the front of the list and returns its node
func (l *List[T]) Insert(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.pushFront(node)
	return node
}

func (l *List[T]) Remove(node *Node[T]) {
	next := node.Next
	prev := node.Prev

	if next == nil {
		l.Tail = prev
	} else {
		next.Prev = prev
	}

	if prev == nil {
		l.Head = next
	} else {
		prev.Next = next
	}
	node.Next = nil
	node.Prev = nil
	l.len -= 1
}

func (l *List[T]) MoveToFront(node *Node[T]) {
	if l.Head == node {
		return
	}
	l.Remove(node)
	l.pushFront(node)
}

// Find returns the node holding value and its zero-based position, or
// (nil, -1) when value isn't in the list.
func (l *List[T]) Find(value T) (*Node[T], int) {
	position := 0
	for node := l.Head; node != nil; node = node.Next {
		if node.Value == value {
			return node, position
		}
		position += 1
	}
	return nil, -1
}

// Snapshot copies the values, head first. Mutating the result never affects
// the list.
func (l *List[T]) Snapshot() []T {
	values := make([]T, 0, l.len)
	for node := l.Head; node != nil; node = node.Next {
		values = append(values, node.Value)
	}
	return values
}

func (l *List[T]) pushFront(node *Node[T]) {
	head := l.Head
	l.Head = node
	l.len += 1
	if head == nil {
		l.Tail = node
		return
	}
	node.Next = head
	head.Prev = node
}
