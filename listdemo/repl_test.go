package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/Thunsis/Algorithm/list"
)

func TestSessionExec(t *testing.T) {
	for _, tt := range []struct {
		lines []string
		want  string
	}{
		{[]string{"print"}, "{1, 2, 3}\n"},
		{[]string{"push 0"}, "{0, 1, 2, 3}\n"},
		{[]string{"append 4", "len"}, "{1, 2, 3, 4}\n4\n"},
		{[]string{"insert 2 9"}, "{1, 9, 2, 3}\n"},
		{[]string{"insert 4 9"}, "{1, 2, 3, 9}\n"},
		{[]string{"delete 3"}, "{1, 2}\n"},
		{[]string{"pop", "print"}, "1\n{2, 3}\n"},
		{[]string{"at 2"}, "2\n"},
		{[]string{"reverse"}, "{3, 2, 1}\n"},
		{[]string{"reverse recursive", "reverse stack"}, "{3, 2, 1}\n{1, 2, 3}\n"},
		{[]string{"backward", "print"}, "{3, 2, 1}\n{1, 2, 3}\n"},
		{[]string{"clear", "backward", "dump"}, "{}\n{}\n(empty)\n"},
	} {
		var b strings.Builder
		s := newSession(&b, &config{values: []int{1, 2, 3}})
		for _, line := range tt.lines {
			if err := s.exec(line); err != nil {
				t.Fatalf("%q: %s", line, err)
			}
		}
		if got := b.String(); got != tt.want {
			t.Errorf("%q: got %q; want %q", tt.lines, got, tt.want)
		}
	}
}

func TestSessionExecErrors(t *testing.T) {
	for _, tt := range []struct {
		line    string
		wantErr string
		is      error
	}{
		{"frobnicate", "frobnicate: unknown command (try help)", errUnknownCommand},
		{"insert 1", "usage: insert position value", nil},
		{"push x", `push: bad argument "x"`, nil},
		{"reverse a b", "usage: reverse [strategy]", nil},
		{"reverse sideways", `list: unknown reversal strategy "sideways"`, nil},
		{"delete 4", "list: delete at position 4: out of range [1, 3]", list.ErrOutOfRange},
		{"insert 0 1", "list: insert at position 0: out of range [1, 4]", list.ErrOutOfRange},
		{"at 9", "list: get at position 9: out of range [1, 3]", list.ErrOutOfRange},
	} {
		var b strings.Builder
		s := newSession(&b, &config{values: []int{1, 2, 3}})
		err := s.exec(tt.line)
		if err == nil {
			t.Errorf("%q: got nil error", tt.line)
			continue
		}
		if err.Error() != tt.wantErr {
			t.Errorf("%q: got error %q; want %q", tt.line, err, tt.wantErr)
		}
		if tt.is != nil && !errors.Is(err, tt.is) {
			t.Errorf("%q: error %v does not match %v", tt.line, err, tt.is)
		}
		if got := s.l.String(); got != "{1, 2, 3}" {
			t.Errorf("%q: failed command changed the list to %s", tt.line, got)
		}
	}
}

func TestSessionPopEmpty(t *testing.T) {
	var b strings.Builder
	s := newSession(&b, &config{})
	if err := s.exec("pop"); !errors.Is(err, list.ErrEmpty) {
		t.Errorf("got %v; want ErrEmpty", err)
	}
}

func TestSessionDump(t *testing.T) {
	var b strings.Builder
	s := newSession(&b, &config{values: []int{7, 8}})
	if err := s.exec("dump"); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{"Value:", "7", "8"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output %q does not contain %q", out, want)
		}
	}
}

func TestSessionHelp(t *testing.T) {
	var b strings.Builder
	s := newSession(&b, &config{})
	if err := s.exec("help"); err != nil {
		t.Fatal(err)
	}
	for _, name := range commandNames() {
		if !strings.Contains(b.String(), name) {
			t.Errorf("help output is missing %q", name)
		}
	}
}
