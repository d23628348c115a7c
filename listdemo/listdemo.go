// Command listdemo exercises the list package from the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
)

func main() {
	log.SetFlags(0)
	configPath := flag.String("config", "", "Read settings from the ini `file`")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	fn, ok := commands[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown command %q", flag.Arg(0))
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := fn(cfg, flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(os.Stderr, "usage: %s [-config file] command [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where command is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
}

var commands = make(map[string]func(*config, []string) error)

func register(name string, fn func(*config, []string) error) {
	if _, ok := commands[name]; ok {
		panic(fmt.Sprintf("duplicate commands registered for %q", name))
	}
	commands[name] = fn
}
