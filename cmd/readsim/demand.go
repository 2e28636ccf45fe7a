package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/readSim/config"
	"github.com/dasnellings/readSim/demand"
	"github.com/dasnellings/readSim/pipeline"
	"github.com/vertgenlab/gonomics/exception"
	"os"
	"text/tabwriter"
)

func demandUsage(demandFlags *flag.FlagSet) {
	fmt.Print(
		"demand - report how many datasets each chromosome has on disk and how many are missing\n" +
			"\tNothing is simulated or created.\n\n" +
			"Usage:\n" +
			"  readsim demand [options] -config config.toml -datadir data/\n\n" +
			"Options:\n")
	demandFlags.PrintDefaults()
}

func runDemand(args []string) {
	var err error
	demandFlags := flag.NewFlagSet("demand", flag.ExitOnError)
	rf := addRunFlags(demandFlags)

	err = demandFlags.Parse(args)
	exception.PanicOnErr(err)
	demandFlags.Usage = func() { demandUsage(demandFlags) }

	cfg := rf.load()
	d := pipeline.New(cfg, nil, nil)
	entries, err := cfg.Entries()
	exception.PanicOnErr(err)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Key\tNeed\tHave\tDeficit\tNext")
	var dem demand.Demand
	for _, e := range entries {
		if e.Kind == config.Reverse {
			continue
		}
		dem, err = demand.Resolve(d.RawDir(e.Chr), d.ProcessedDir(e.Chr), cfg.ProcessedExt, e.Need)
		exception.PanicOnErr(err)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%v\n", e.Key, dem.Need, dem.Have, dem.Deficit, dem.Indices())
	}
	err = w.Flush()
	exception.PanicOnErr(err)
}
