package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.0.1"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to readsim by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"simulate", runSimulate, "simulate missing read sets for each chromosome"},
	{"combo", runCombo, "simulate missing read sets for chromosome combinations"},
	{"generate", runGenerate, "build assembly graphs for chromosomes short of processed graphs"},
	{"run", runAll, "simulate, then generate graphs"},
	{"demand", runDemand, "report datasets present and missing for each chromosome"},
	{"annotate", runAnnotate, "write read provenance into read descriptions"},
	{"qc", runQc, "summarize an annotated read set"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: readsim (simulated long reads with ground truth provenance)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\treadsim <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and return
	if command == nil {
		flag.Usage()
		return
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
