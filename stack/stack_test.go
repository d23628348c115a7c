package stack

import (
	"errors"
	"reflect"
	"testing"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("Len: got %d; want %d", got, want)
	}
	if got, want := s.Peek(), 3; got != want {
		t.Errorf("Peek: got %d; want %d", got, want)
	}
	for _, want := range []int{3, 2, 1} {
		if got := s.Pop(); got != want {
			t.Errorf("Pop: got %d; want %d", got, want)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len after draining: got %d; want 0", s.Len())
	}
}

func TestStackPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pop on empty stack did not panic")
		}
	}()
	var s Stack[string]
	s.Pop()
}

func TestFixed(t *testing.T) {
	s := NewFixed[int](3)
	if !s.IsEmpty() {
		t.Fatal("new stack is not empty")
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop on empty: got %v; want ErrEmpty", err)
	}
	if _, err := s.Top(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Top on empty: got %v; want ErrEmpty", err)
	}
	for _, v := range []int{2, 3, 4} {
		if err := s.Push(v); err != nil {
			t.Fatalf("Push(%d): %s", v, err)
		}
	}
	if err := s.Push(5); !errors.Is(err, ErrOverflow) {
		t.Errorf("Push on full stack: got %v; want ErrOverflow", err)
	}
	if got, want := s.Slice(), []int{2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("after overflow: got %v; want %v", got, want)
	}
	if got, want := s.String(), "Stack: 2 3 4"; got != want {
		t.Errorf("String: got %q; want %q", got, want)
	}
	v, err := s.Pop()
	if err != nil || v != 4 {
		t.Errorf("Pop: got (%d, %v); want (4, nil)", v, err)
	}
	v, err = s.Top()
	if err != nil || v != 3 {
		t.Errorf("Top: got (%d, %v); want (3, nil)", v, err)
	}
	if got, want := s.Len(), 2; got != want {
		t.Errorf("Len: got %d; want %d", got, want)
	}
}

func TestFixedDefaultCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if got := NewFixed[int](capacity).Cap(); got != DefaultCapacity {
			t.Errorf("NewFixed(%d).Cap(): got %d; want %d", capacity, got, DefaultCapacity)
		}
	}
}
