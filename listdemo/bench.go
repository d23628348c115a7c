package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Thunsis/Algorithm/list"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func init() {
	register("bench", bench)
}

func bench(cfg *config, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	rounds := fs.Int("rounds", cfg.rounds, "Reverse each list this many times per strategy")
	htmlFile := fs.String("html", "", "Also write the report as HTML to `file`")
	profileFile := fs.String("fgprof", "", "Write a wall-clock profile in pprof format to `file`")
	fs.Parse(args)
	if *rounds < 1 {
		return fmt.Errorf("-rounds must be positive; got %d", *rounds)
	}

	var stopProfile func() error
	if *profileFile != "" {
		f, err := os.Create(*profileFile)
		if err != nil {
			return err
		}
		defer f.Close()
		stopProfile = fgprof.Start(f, fgprof.FormatPprof)
	}
	results := measure(cfg.sizes, *rounds)
	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			return fmt.Errorf("error writing profile: %s", err)
		}
	}

	report := markdownReport(results)
	os.Stdout.Write(report)
	if rss, err := maxRSS(); err != nil {
		log.Println("Cannot report max RSS:", err)
	} else {
		fmt.Printf("\nmax RSS: %s\n", humanize.Bytes(rss))
	}

	if *htmlFile == "" {
		return nil
	}
	f, err := os.Create(*htmlFile)
	if err != nil {
		return err
	}
	if err := renderHTML(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type benchResult struct {
	size     int
	strategy list.Strategy
	perOp    time.Duration
}

func measure(sizes []int, rounds int) []benchResult {
	var results []benchResult
	for _, size := range sizes {
		vs := make([]int, size)
		for i := range vs {
			vs[i] = i
		}
		for _, s := range list.Strategies() {
			l := list.FromSlice(vs...)
			start := time.Now()
			for i := 0; i < rounds; i++ {
				l.ReverseWith(s)
			}
			results = append(results, benchResult{
				size:     size,
				strategy: s,
				perOp:    time.Since(start) / time.Duration(rounds),
			})
		}
	}
	return results
}

// markdownReport renders results as a Markdown table with one row per list
// size and one column per strategy.
func markdownReport(results []benchResult) []byte {
	var b bytes.Buffer
	b.WriteString("| nodes |")
	for _, s := range list.Strategies() {
		fmt.Fprintf(&b, " %s |", s)
	}
	b.WriteString("\n|---:|")
	for range list.Strategies() {
		b.WriteString("---:|")
	}
	b.WriteString("\n")

	var sizes []int
	perOp := make(map[int]map[list.Strategy]time.Duration)
	for _, r := range results {
		if perOp[r.size] == nil {
			sizes = append(sizes, r.size)
			perOp[r.size] = make(map[list.Strategy]time.Duration)
		}
		perOp[r.size][r.strategy] = r.perOp
	}
	for _, size := range sizes {
		fmt.Fprintf(&b, "| %s |", humanize.Comma(int64(size)))
		for _, s := range list.Strategies() {
			d, ok := perOp[size][s]
			if !ok {
				b.WriteString(" - |")
				continue
			}
			fmt.Fprintf(&b, " %s |", d)
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

func renderHTML(w io.Writer, report []byte) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	return md.Convert(report, w)
}
