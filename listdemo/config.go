package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Thunsis/Algorithm/list"
	"github.com/vaughan0/go-ini"
)

// config holds the settings shared by the subcommands. Flags given to a
// subcommand override the corresponding setting.
type config struct {
	values   []int
	strategy list.Strategy

	prompt  string
	history string

	sizes  []int
	rounds int

	trials int
	maxLen int
	seed   int64
}

func defaultConfig() *config {
	return &config{
		values:   []int{1, 2, 3, 4, 5},
		strategy: list.Iterative,
		prompt:   "list> ",
		sizes:    []int{1000, 10000, 100000},
		rounds:   10,
		trials:   1000,
		maxLen:   64,
		seed:     1,
	}
}

// loadConfig reads an ini file such as
//
//	[list]
//	values = 1 2 3 4 5
//	strategy = recursive
//
//	[repl]
//	prompt = list>
//	history = /tmp/listdemo_history
//
//	[bench]
//	sizes = 1000, 10000
//	rounds = 5
//
//	[check]
//	trials = 100
//	maxlen = 32
//	seed = 7
//
// Every key is optional. An empty path yields the defaults.
func loadConfig(path string) (*config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return cfg, nil
}

func parseConfig(f ini.File) (*config, error) {
	cfg := defaultConfig()
	var err error
	if s, ok := f.Get("list", "values"); ok {
		if cfg.values, err = parseInts(s); err != nil {
			return nil, fmt.Errorf("[list] values: %s", err)
		}
	}
	if s, ok := f.Get("list", "strategy"); ok {
		if cfg.strategy, err = list.ParseStrategy(strings.TrimSpace(s)); err != nil {
			return nil, fmt.Errorf("[list] strategy: %s", err)
		}
	}
	if s, ok := f.Get("repl", "prompt"); ok {
		cfg.prompt = s
	}
	if s, ok := f.Get("repl", "history"); ok {
		cfg.history = s
	}
	if s, ok := f.Get("bench", "sizes"); ok {
		if cfg.sizes, err = parseInts(s); err != nil {
			return nil, fmt.Errorf("[bench] sizes: %s", err)
		}
		for _, n := range cfg.sizes {
			if n < 0 {
				return nil, fmt.Errorf("[bench] sizes: want non-negative integers; got %d", n)
			}
		}
	}
	for _, kv := range []struct {
		section, key string
		dst          *int
	}{
		{"bench", "rounds", &cfg.rounds},
		{"check", "trials", &cfg.trials},
		{"check", "maxlen", &cfg.maxLen},
	} {
		s, ok := f.Get(kv.section, kv.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("[%s] %s: want a positive integer; got %q", kv.section, kv.key, s)
		}
		*kv.dst = n
	}
	if s, ok := f.Get("check", "seed"); ok {
		if cfg.seed, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return nil, fmt.Errorf("[check] seed: %s", err)
		}
	}
	return cfg, nil
}

// parseInts parses a list of integers separated by commas or spaces.
func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	ns := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
