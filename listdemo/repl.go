package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Thunsis/Algorithm/list"
	"github.com/chzyer/readline"
	"github.com/kr/pretty"
)

func init() {
	register("repl", repl)
}

func repl(cfg *config, args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	history := fs.String("history", cfg.history, "Keep command history in `file`")
	fs.Parse(args)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       cfg.prompt,
		HistoryFile:  *history,
		AutoComplete: completer(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s := newSession(rl.Stdout(), cfg)
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		if err := s.exec(line); err != nil {
			fmt.Fprintln(rl.Stderr(), err)
		}
	}
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range commandNames() {
		if name == "reverse" {
			var strategies []readline.PrefixCompleterInterface
			for _, s := range list.Strategies() {
				strategies = append(strategies, readline.PcItem(s.String()))
			}
			items = append(items, readline.PcItem(name, strategies...))
			continue
		}
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// A session is the state of one interactive shell: a list of ints and the
// reversal strategy used when none is named.
type session struct {
	l        *list.List[int]
	strategy list.Strategy
	w        io.Writer
}

func newSession(w io.Writer, cfg *config) *session {
	return &session{
		l:        list.FromSlice(cfg.values...),
		strategy: cfg.strategy,
		w:        w,
	}
}

type replCommand struct {
	args  string // usage of the arguments
	nargs int    // -1 means 0 or 1
	run   func(s *session, args []int, raw []string) error
}

var replCommands = map[string]replCommand{
	"push": {"value", 1, func(s *session, args []int, _ []string) error {
		s.l.InsertHead(args[0])
		return s.print()
	}},
	"append": {"value", 1, func(s *session, args []int, _ []string) error {
		s.l.InsertTail(args[0])
		return s.print()
	}},
	"insert": {"position value", 2, func(s *session, args []int, _ []string) error {
		if err := s.l.InsertAt(args[0], args[1]); err != nil {
			return err
		}
		return s.print()
	}},
	"delete": {"position", 1, func(s *session, args []int, _ []string) error {
		if err := s.l.DeleteAt(args[0]); err != nil {
			return err
		}
		return s.print()
	}},
	"pop": {"", 0, func(s *session, _ []int, _ []string) error {
		v, err := s.l.PopHead()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.w, v)
		return err
	}},
	"at": {"position", 1, func(s *session, args []int, _ []string) error {
		v, err := s.l.At(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.w, v)
		return err
	}},
	"reverse": {"[strategy]", -1, func(s *session, _ []int, raw []string) error {
		strategy := s.strategy
		if len(raw) > 0 {
			var err error
			if strategy, err = list.ParseStrategy(raw[0]); err != nil {
				return err
			}
		}
		s.l.ReverseWith(strategy)
		return s.print()
	}},
	"print": {"", 0, func(s *session, _ []int, _ []string) error {
		return s.print()
	}},
	"backward": {"", 0, func(s *session, _ []int, _ []string) error {
		var vs []string
		for v := range s.l.Backward() {
			vs = append(vs, strconv.Itoa(v))
		}
		_, err := fmt.Fprintf(s.w, "{%s}\n", strings.Join(vs, ", "))
		return err
	}},
	"len": {"", 0, func(s *session, _ []int, _ []string) error {
		_, err := fmt.Fprintln(s.w, s.l.Len())
		return err
	}},
	"dump": {"", 0, func(s *session, _ []int, _ []string) error {
		if s.l.Head() == nil {
			_, err := fmt.Fprintln(s.w, "(empty)")
			return err
		}
		_, err := pretty.Fprintf(s.w, "%# v\n", s.l.Head())
		return err
	}},
	"clear": {"", 0, func(s *session, _ []int, _ []string) error {
		s.l.Clear()
		return s.print()
	}},
}

func init() {
	// help refers to replCommands, so it is added here to avoid an
	// initialization cycle.
	replCommands["help"] = replCommand{"", 0, func(s *session, _ []int, _ []string) error {
		for _, name := range commandNames() {
			fmt.Fprintf(s.w, "%s %s\n", name, replCommands[name].args)
		}
		_, err := fmt.Fprintln(s.w, "quit")
		return err
	}}
}

func commandNames() []string {
	names := make([]string, 0, len(replCommands))
	for name := range replCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var errUnknownCommand = errors.New("unknown command (try help)")

func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := replCommands[fields[0]]
	if !ok {
		return fmt.Errorf("%s: %w", fields[0], errUnknownCommand)
	}
	raw := fields[1:]
	if cmd.nargs >= 0 && len(raw) != cmd.nargs || cmd.nargs < 0 && len(raw) > 1 {
		return fmt.Errorf("usage: %s %s", fields[0], cmd.args)
	}
	var args []int
	if cmd.nargs > 0 {
		args = make([]int, len(raw))
		for i, r := range raw {
			n, err := strconv.Atoi(r)
			if err != nil {
				return fmt.Errorf("%s: bad argument %q", fields[0], r)
			}
			args[i] = n
		}
	}
	return cmd.run(s, args, raw)
}

func (s *session) print() error {
	_, err := fmt.Fprintln(s.w, s.l)
	return err
}
