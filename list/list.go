// Package list implements a singly-linked list in which every node is owned
// by exactly one predecessor (or by the List itself, for the head).
//
// Positions are 1-based throughout. Operations that take a position check it
// before touching any links, so a failed call leaves the list as it was.
package list

import (
	"fmt"
	"iter"
	"strings"
)

// A Node is a single element of a List.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the node following n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// A List is a singly-linked list. The zero value is an empty list ready
// to use. A List must not be copied after first use.
type List[T any] struct {
	head *Node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// FromSlice returns a list holding vs in order.
func FromSlice[T any](vs ...T) *List[T] {
	l := New[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		l.InsertHead(vs[i])
	}
	return l
}

// Head returns the first node of l, or nil if l is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Len returns the number of elements in l.
// The length is not cached; the complexity is O(n).
func (l *List[T]) Len() int {
	n := 0
	for node := l.head; node != nil; node = node.next {
		n++
	}
	return n
}

// InsertHead adds v at the front of l. The complexity is O(1).
func (l *List[T]) InsertHead(v T) {
	l.head = &Node[T]{
		Value: v,
		next:  l.head,
	}
}

// InsertTail adds v at the end of l.
func (l *List[T]) InsertTail(v T) {
	ref := &l.head
	for *ref != nil {
		ref = &(*ref).next
	}
	*ref = &Node[T]{Value: v}
}

// InsertAt inserts v so that it becomes the element at position pos.
// pos must be in [1, l.Len()+1]; pos == l.Len()+1 appends.
// Otherwise InsertAt returns a *RangeError and l is unchanged.
func (l *List[T]) InsertAt(pos int, v T) error {
	if pos < 1 {
		return &RangeError{Op: "insert", Pos: pos, Max: l.Len() + 1}
	}
	ref, n := l.ref(pos)
	if n < pos-1 {
		return &RangeError{Op: "insert", Pos: pos, Max: n + 1}
	}
	*ref = &Node[T]{
		Value: v,
		next:  *ref,
	}
	return nil
}

// DeleteAt removes the element at position pos.
// pos must be in [1, l.Len()]; otherwise DeleteAt returns a *RangeError
// and l is unchanged.
func (l *List[T]) DeleteAt(pos int) error {
	if pos < 1 {
		return &RangeError{Op: "delete", Pos: pos, Max: l.Len()}
	}
	ref, n := l.ref(pos)
	if *ref == nil {
		return &RangeError{Op: "delete", Pos: pos, Max: n}
	}
	removed := *ref
	*ref = removed.next
	removed.next = nil
	return nil
}

// PopHead removes and returns the first element of l.
// It returns ErrEmpty if l has no elements.
func (l *List[T]) PopHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	l.head = n.next
	n.next = nil
	return n.Value, nil
}

// At returns the element at position pos, which must be in [1, l.Len()].
func (l *List[T]) At(pos int) (T, error) {
	var zero T
	if pos < 1 {
		return zero, &RangeError{Op: "get", Pos: pos, Max: l.Len()}
	}
	ref, n := l.ref(pos)
	if *ref == nil {
		return zero, &RangeError{Op: "get", Pos: pos, Max: n}
	}
	return (*ref).Value, nil
}

// ref walks pos-1 links from the head and returns the link slot that holds
// (or would hold) the node at position pos. If the list ends first, ref
// returns the terminal slot and the number of nodes it passed. Whenever the
// returned slot is nil, that count is the list length.
func (l *List[T]) ref(pos int) (**Node[T], int) {
	ref := &l.head
	n := 0
	for n < pos-1 {
		if *ref == nil {
			return ref, n
		}
		ref = &(*ref).next
		n++
	}
	return ref, n
}

// Clear removes all elements from l.
func (l *List[T]) Clear() {
	l.head = nil
}

// Values returns an iterator over the elements of l from head to tail.
// Each call to the returned function walks the list again.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of l from tail to head.
// It does not modify l. It recurses once per element.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		backward(l.head, yield)
	}
}

func backward[T any](node *Node[T], yield func(T) bool) bool {
	if node == nil {
		return true
	}
	return backward(node.next, yield) && yield(node.Value)
}

// Slice returns the elements of l in order.
func (l *List[T]) Slice() []T {
	var s []T
	for v := range l.Values() {
		s = append(s, v)
	}
	return s
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range l.Values() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	na, nb := a.head, b.head
	for na != nil && nb != nil {
		if na.Value != nb.Value {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}
