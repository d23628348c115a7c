// Package stack provides last-in-first-out buffers.
package stack

import (
	"errors"
	"fmt"
	"strings"
)

// A Stack is an unbounded LIFO stack backed by a slice.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	s []T
}

// Push pushes v onto the stack. The amortized complexity is O(1).
func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

// Pop removes and returns the top element of the stack.
// Pop panics if the stack is empty.
func (s *Stack[T]) Pop() T {
	v := s.s[len(s.s)-1]
	var zero T
	s.s[len(s.s)-1] = zero
	s.s = s.s[:len(s.s)-1]
	return v
}

// Peek returns the top element of the stack without removing it.
// Peek panics if the stack is empty.
func (s *Stack[T]) Peek() T {
	return s.s[len(s.s)-1]
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(s.s)
}

var (
	ErrOverflow = errors.New("stack: overflow")
	ErrEmpty    = errors.New("stack: empty")
)

// DefaultCapacity is the capacity used by NewFixed when given a
// non-positive capacity.
const DefaultCapacity = 101

// A Fixed is a stack with a capacity fixed at creation.
// A Push onto a full Fixed is rejected and leaves the stack unchanged.
type Fixed[T any] struct {
	a   []T
	top int // index of the top element; -1 when empty
}

// NewFixed returns an empty stack holding at most capacity elements.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Fixed[T]{
		a:   make([]T, capacity),
		top: -1,
	}
}

// Push pushes v onto the stack, or returns ErrOverflow if the stack is full.
func (s *Fixed[T]) Push(v T) error {
	if s.top == len(s.a)-1 {
		return ErrOverflow
	}
	s.top++
	s.a[s.top] = v
	return nil
}

// Pop removes and returns the top element, or returns ErrEmpty.
func (s *Fixed[T]) Pop() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, ErrEmpty
	}
	v := s.a[s.top]
	s.a[s.top] = zero
	s.top--
	return v, nil
}

// Top returns the top element without removing it, or returns ErrEmpty.
func (s *Fixed[T]) Top() (T, error) {
	if s.top < 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.a[s.top], nil
}

func (s *Fixed[T]) IsEmpty() bool { return s.top < 0 }
func (s *Fixed[T]) Len() int      { return s.top + 1 }
func (s *Fixed[T]) Cap() int      { return len(s.a) }

// Slice returns a copy of the stack contents from bottom to top.
func (s *Fixed[T]) Slice() []T {
	return append([]T(nil), s.a[:s.top+1]...)
}

func (s *Fixed[T]) String() string {
	var b strings.Builder
	b.WriteString("Stack:")
	for _, v := range s.a[:s.top+1] {
		fmt.Fprintf(&b, " %v", v)
	}
	return b.String()
}
