package contract

import "github.com/symonk/timeoutq/internal/deque"

// Container is the interface for the ordered storage behind a timeout
// queue.  Elements leave either from the head or, when they expire,
// from wherever their handle currently sits.
type Container[T any] interface {
	PushBack(element T) *deque.Node[T]
	PopFront() (T, bool)
	Remove(n *deque.Node[T]) bool
	Contains(n *deque.Node[T]) bool
	Length() int
	Values() []T
}

// Ensure the deque implements Container
var _ Container[int] = (*deque.Deque[int])(nil)
