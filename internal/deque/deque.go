// deque is a package that provides an ordered sequence with O(1) removal
// of arbitrary elements by handle.
package deque

// Node is a handle to an element stored in a Deque.  A node keeps its
// identity for as long as it is linked, two nodes holding equal values
// are still distinct elements.
type Node[T any] struct {
	Value T

	prev  *Node[T]
	next  *Node[T]
	owner *Deque[T]
}

// Deque is a doubly linked sequence with an unlimited max length.
// It is not synchronised, callers must guard it themselves.
type Deque[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New returns a new pointer to an instance of a Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushBack puts a new element at the tail of the deque and returns
// its handle.
func (d *Deque[T]) PushBack(element T) *Node[T] {
	n := &Node[T]{Value: element, owner: d}
	if d.tail == nil {
		d.head = n
	} else {
		d.tail.next = n
		n.prev = d.tail
	}
	d.tail = n
	d.size++
	return n
}

// Front returns the head node without removing it.
func (d *Deque[T]) Front() (*Node[T], bool) {
	if d.head == nil {
		return nil, false
	}
	return d.head, true
}

// PopFront removes the head element of the deque.
func (d *Deque[T]) PopFront() (T, bool) {
	n := d.head
	if n == nil {
		var t T
		return t, false
	}
	d.unlink(n)
	return n.Value, true
}

// Remove unlinks n from the deque.  It reports false when n is not
// currently an element of d, which makes a second removal a no-op.
func (d *Deque[T]) Remove(n *Node[T]) bool {
	if !d.Contains(n) {
		return false
	}
	d.unlink(n)
	return true
}

// Contains reports whether n is currently linked into d.
func (d *Deque[T]) Contains(n *Node[T]) bool {
	return n != nil && n.owner == d
}

// Length returns the length of the Deque.
func (d *Deque[T]) Length() int {
	return d.size
}

// Values returns a copy of the elements, front to back.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.size)
	for n := d.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

func (d *Deque[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		d.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		d.tail = n.prev
	}
	n.prev, n.next, n.owner = nil, nil, nil
	d.size--
}
