package main

import (
	"strings"
	"testing"
	"time"

	"github.com/Thunsis/Algorithm/list"
)

func TestMarkdownReport(t *testing.T) {
	results := []benchResult{
		{1000, list.Iterative, 1500 * time.Nanosecond},
		{1000, list.Recursive, 2 * time.Microsecond},
		{1000, list.WithStack, 3 * time.Millisecond},
		{10, list.Iterative, 40 * time.Nanosecond},
	}
	got := string(markdownReport(results))
	want := `| nodes | iterative | recursive | stack |
|---:|---:|---:|---:|
| 1,000 | 1.5µs | 2µs | 3ms |
| 10 | 40ns | - | - |
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderHTML(t *testing.T) {
	report := markdownReport([]benchResult{{100000, list.Iterative, time.Millisecond}})
	var b strings.Builder
	if err := renderHTML(&b, report); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<table>", "iterative", "100,000", "1ms"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("HTML %q does not contain %q", b.String(), want)
		}
	}
}

func TestMeasure(t *testing.T) {
	results := measure([]int{0, 5}, 2)
	if got, want := len(results), 2*len(list.Strategies()); got != want {
		t.Fatalf("got %d results; want %d", got, want)
	}
	for i, r := range results {
		if want := list.Strategies()[i%3]; r.strategy != want {
			t.Errorf("result %d: got strategy %s; want %s", i, r.strategy, want)
		}
		if r.perOp < 0 {
			t.Errorf("result %d: negative duration %s", i, r.perOp)
		}
	}
}

func TestMaxRSS(t *testing.T) {
	rss, err := maxRSS()
	if err != nil {
		t.Skip(err)
	}
	if rss == 0 {
		t.Error("got zero max RSS")
	}
}
