package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Thunsis/Algorithm/dlist"
	"github.com/Thunsis/Algorithm/list"
	"github.com/Thunsis/Algorithm/stack"
)

func init() {
	register("demo", demo)
}

func demo(cfg *config, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	capacity := fs.Int("capacity", 4, "Capacity of the fixed-size stack")
	fs.Parse(args)

	fmt.Println("== singly linked")
	if err := runDemo(os.Stdout, cfg.values, cfg.strategy); err != nil {
		return err
	}
	fmt.Println("== doubly linked")
	if err := runDoublyDemo(os.Stdout, cfg.values); err != nil {
		return err
	}
	fmt.Println("== fixed stack")
	return runStackDemo(os.Stdout, *capacity)
}

// runDemo builds a list by inserting values at the head, appends one more
// element by position, reverses it with first, and then walks through the
// other reversal strategies.
func runDemo(w io.Writer, values []int, first list.Strategy) error {
	l := list.New[int]()
	for _, v := range values {
		l.InsertHead(v)
	}
	fmt.Fprintf(w, "insert head %v: %s\n", values, l)

	pos := l.Len() + 1
	if err := l.InsertAt(pos, pos); err != nil {
		return err
	}
	fmt.Fprintf(w, "insert at %d: %s\n", pos, l)

	l.ReverseWith(first)
	fmt.Fprintf(w, "reverse %s: %s\n", first, l)

	if err := l.DeleteAt(1); err != nil {
		return err
	}
	fmt.Fprintf(w, "delete at 1: %s\n", l)

	for _, s := range []list.Strategy{list.Recursive, list.WithStack} {
		l.ReverseWith(s)
		fmt.Fprintf(w, "reverse %s: %s\n", s, l)
	}

	fmt.Fprint(w, "backward:")
	for v := range l.Backward() {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)

	bad := l.Len() + 2
	if err := l.DeleteAt(bad); err != nil {
		fmt.Fprintf(w, "delete at %d: %s\n", bad, err)
	}
	return nil
}

// runDoublyDemo repeats the head inserts and positional append on a
// doubly-linked list and shows both of its reversals.
func runDoublyDemo(w io.Writer, values []int) error {
	l := dlist.New[int]()
	for _, v := range values {
		l.InsertHead(v)
	}
	fmt.Fprintf(w, "insert head %v: %s\n", values, l)

	pos := l.Len() + 1
	if err := l.InsertAt(pos, pos); err != nil {
		return err
	}
	fmt.Fprintf(w, "insert at %d: %s\n", pos, l)

	l.Reverse()
	fmt.Fprintf(w, "reverse iterative: %s\n", l)
	l.ReverseRecursive()
	fmt.Fprintf(w, "reverse recursive: %s\n", l)

	fmt.Fprint(w, "backward:")
	for v := range l.Backward() {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)
	return nil
}

// runStackDemo pushes onto a fixed-capacity stack until it overflows, then
// pops twice and shows the top.
func runStackDemo(w io.Writer, capacity int) error {
	s := stack.NewFixed[int](capacity)
	for v := 2; ; v++ {
		if err := s.Push(v); err != nil {
			fmt.Fprintf(w, "push %d: %s\n", v, err)
			break
		}
		fmt.Fprintf(w, "push %d: %s\n", v, s)
	}
	for i := 0; i < 2; i++ {
		v, err := s.Pop()
		if err != nil {
			fmt.Fprintf(w, "pop: %s\n", err)
			continue
		}
		fmt.Fprintf(w, "pop %d: %s\n", v, s)
	}
	v, err := s.Top()
	if err != nil {
		fmt.Fprintf(w, "top: %s\n", err)
		return nil
	}
	fmt.Fprintf(w, "top: %d\n", v)
	return nil
}
