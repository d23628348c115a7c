package list

import (
	"fmt"

	"github.com/Thunsis/Algorithm/stack"
)

// Reverse reverses the order of l in place by redirecting each link.
// No nodes are allocated. The complexity is O(n) time and O(1) space;
// prefer it over the other strategies.
func (l *List[T]) Reverse() {
	var prev *Node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// ReverseRecursive reverses l in place recursively.
// Its call depth equals l.Len(), so it uses O(n) stack space; very long
// lists grow the goroutine stack accordingly.
func (l *List[T]) ReverseRecursive() {
	reverseRecursive(&l.head)
}

// reverseRecursive reverses the chain held by *front and stores the new
// first node (the old last node) back into *front.
func reverseRecursive[T any](front **Node[T]) {
	if *front == nil || (*front).next == nil {
		return
	}
	// rest still names the second node until the recursive call stores the
	// new head into it. (*front).next keeps naming the second node, which is
	// by then the tail of the reversed remainder.
	rest := (*front).next
	reverseRecursive(&rest)
	(*front).next.next = *front
	(*front).next = nil
	*front = rest
}

// ReverseWithStack reverses l by pushing every node onto an explicit stack
// and relinking them in pop order. The complexity is O(n) time and O(n)
// auxiliary space, without recursion.
func (l *List[T]) ReverseWithStack() {
	if l.head == nil {
		return
	}
	var s stack.Stack[*Node[T]]
	for node := l.head; node != nil; node = node.next {
		s.Push(node)
	}
	node := s.Pop()
	l.head = node
	for s.Len() > 0 {
		node.next = s.Pop()
		node = node.next
	}
	node.next = nil
}

// A Strategy selects one of the reversal algorithms.
type Strategy int

const (
	Iterative Strategy = iota
	Recursive
	WithStack
)

var strategyNames = [...]string{
	Iterative: "iterative",
	Recursive: "recursive",
	WithStack: "stack",
}

// Strategies returns every Strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Iterative, Recursive, WithStack}
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the Strategy with the given name
// ("iterative", "recursive", or "stack").
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("list: unknown reversal strategy %q", name)
}

// ReverseWith reverses l using strategy s.
// It panics if s is not a valid Strategy.
func (l *List[T]) ReverseWith(s Strategy) {
	switch s {
	case Iterative:
		l.Reverse()
	case Recursive:
		l.ReverseRecursive()
	case WithStack:
		l.ReverseWithStack()
	default:
		panic(fmt.Sprintf("list: bad strategy %d", int(s)))
	}
}
