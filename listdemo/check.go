package main

import (
	"flag"
	"fmt"
	"math/rand"
	"slices"

	"github.com/Thunsis/Algorithm/list"
	"github.com/cespare/wait"
)

func init() {
	register("check", check)
}

func check(cfg *config, args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	trials := fs.Int("trials", cfg.trials, "Number of random lists to check")
	maxLen := fs.Int("maxlen", cfg.maxLen, "Maximum length of each random list")
	seed := fs.Int64("seed", cfg.seed, "Random seed")
	fs.Parse(args)
	if *trials < 1 || *maxLen < 0 {
		return fmt.Errorf("bad -trials (%d) or -maxlen (%d)", *trials, *maxLen)
	}

	inputs := randomInputs(rand.New(rand.NewSource(*seed)), *trials, *maxLen)
	if err := crossCheck(inputs); err != nil {
		return err
	}
	fmt.Printf("%d lists reversed identically by %d strategies\n", len(inputs), len(list.Strategies()))
	return nil
}

func randomInputs(rng *rand.Rand, n, maxLen int) [][]int {
	inputs := make([][]int, n)
	for i := range inputs {
		in := make([]int, rng.Intn(maxLen+1))
		for j := range in {
			in[j] = rng.Intn(100)
		}
		inputs[i] = in
	}
	return inputs
}

// crossCheck reverses every input with each strategy, one goroutine per
// strategy, each working on its own lists. It returns the first mismatch
// and stops the other goroutines.
func crossCheck(inputs [][]int) error {
	var wg wait.Group
	for _, s := range list.Strategies() {
		wg.Go(func(quit <-chan struct{}) error {
			for i, in := range inputs {
				select {
				case <-quit:
					return nil
				default:
				}
				if err := checkReversal(s, in); err != nil {
					return fmt.Errorf("input %d: %s", i, err)
				}
			}
			return nil
		})
	}
	return wg.Wait()
}

// checkReversal checks that s reverses in, keeps its length, and restores
// it when applied twice.
func checkReversal(s list.Strategy, in []int) error {
	l := list.FromSlice(in...)
	l.ReverseWith(s)
	want := slices.Clone(in)
	slices.Reverse(want)
	if got := l.Slice(); !slices.Equal(got, want) {
		return fmt.Errorf("%s reversal of %v: got %v; want %v", s, in, got, want)
	}
	if n := l.Len(); n != len(in) {
		return fmt.Errorf("%s reversal of %v changed length to %d", s, in, n)
	}
	l.ReverseWith(s)
	if got := l.Slice(); !slices.Equal(got, in) {
		return fmt.Errorf("%s round trip of %v: got %v", s, in, got)
	}
	return nil
}
