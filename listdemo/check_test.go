package main

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/Thunsis/Algorithm/list"
)

func TestCrossCheck(t *testing.T) {
	inputs := randomInputs(rand.New(rand.NewSource(1)), 200, 40)
	inputs = append(inputs, nil, []int{1})
	if err := crossCheck(inputs); err != nil {
		t.Fatal(err)
	}
}

func TestRandomInputsDeterministic(t *testing.T) {
	a := randomInputs(rand.New(rand.NewSource(7)), 20, 10)
	b := randomInputs(rand.New(rand.NewSource(7)), 20, 10)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different inputs")
	}
	for _, in := range a {
		if len(in) > 10 {
			t.Errorf("input %v is longer than 10", in)
		}
	}
}

func TestCheckReversal(t *testing.T) {
	for _, s := range list.Strategies() {
		if err := checkReversal(s, []int{4, 8, 15, 16, 23, 42}); err != nil {
			t.Errorf("%s: %s", s, err)
		}
	}
}
