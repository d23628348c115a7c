// Package dlist implements a doubly-linked list.
//
// For every node n, n.next is either nil or a node whose prev is n, and the
// head has no prev. Positions are 1-based, as in package list, and range
// failures are reported with *list.RangeError.
package dlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Thunsis/Algorithm/list"
)

type Node[T any] struct {
	Value      T
	prev, next *Node[T]
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// A List is a doubly-linked list. The zero value is an empty list.
type List[T any] struct {
	head *Node[T]
}

func New[T any]() *List[T] {
	return new(List[T])
}

func FromSlice[T any](vs ...T) *List[T] {
	l := New[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		l.InsertHead(vs[i])
	}
	return l
}

func (l *List[T]) Head() *Node[T] { return l.head }

func (l *List[T]) Len() int {
	n := 0
	for node := l.head; node != nil; node = node.next {
		n++
	}
	return n
}

func (l *List[T]) InsertHead(v T) {
	n := &Node[T]{Value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
}

func (l *List[T]) InsertTail(v T) {
	n := &Node[T]{Value: v}
	tail := l.tail()
	if tail == nil {
		l.head = n
		return
	}
	n.prev = tail
	tail.next = n
}

func (l *List[T]) tail() *Node[T] {
	if l.head == nil {
		return nil
	}
	node := l.head
	for node.next != nil {
		node = node.next
	}
	return node
}

// nth returns the node at position pos, or nil and the list length if the
// list is shorter than pos.
func (l *List[T]) nth(pos int) (*Node[T], int) {
	node := l.head
	n := 0
	for node != nil && n < pos-1 {
		node = node.next
		n++
	}
	if node == nil {
		return nil, n
	}
	return node, pos
}

// InsertAt inserts v so that it becomes the element at position pos,
// which must be in [1, l.Len()+1].
func (l *List[T]) InsertAt(pos int, v T) error {
	if pos < 1 {
		return &list.RangeError{Op: "insert", Pos: pos, Max: l.Len() + 1}
	}
	if pos == 1 {
		l.InsertHead(v)
		return nil
	}
	prev, n := l.nth(pos - 1)
	if prev == nil {
		return &list.RangeError{Op: "insert", Pos: pos, Max: n + 1}
	}
	node := &Node[T]{Value: v, prev: prev, next: prev.next}
	if prev.next != nil {
		prev.next.prev = node
	}
	prev.next = node
	return nil
}

// DeleteAt removes the element at position pos, which must be in
// [1, l.Len()].
func (l *List[T]) DeleteAt(pos int) error {
	if pos < 1 {
		return &list.RangeError{Op: "delete", Pos: pos, Max: l.Len()}
	}
	node, n := l.nth(pos)
	if node == nil {
		return &list.RangeError{Op: "delete", Pos: pos, Max: n}
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	node.prev, node.next = nil, nil
	return nil
}

// Reverse reverses l in place by swapping the links of every node.
func (l *List[T]) Reverse() {
	var last *Node[T]
	for node := l.head; node != nil; node = node.prev {
		node.prev, node.next = node.next, node.prev
		last = node
	}
	if last != nil {
		l.head = last
	}
}

// ReverseRecursive reverses l by swapping the links of one node per call.
// Its call depth equals l.Len().
func (l *List[T]) ReverseRecursive() {
	if l.head != nil {
		l.head = reverseRecursive(l.head)
	}
}

// reverseRecursive swaps the links of node and of every node after it,
// returning the old tail.
func reverseRecursive[T any](node *Node[T]) *Node[T] {
	node.prev, node.next = node.next, node.prev
	if node.prev == nil {
		return node
	}
	return reverseRecursive(node.prev)
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator from tail to head that follows prev links.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail(); node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

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
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, node.Value)
	}
	b.WriteByte('}')
	return b.String()
}
