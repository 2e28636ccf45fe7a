package main

import (
	"flag"
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
)

func generateUsage(generateFlags *flag.FlagSet) {
	fmt.Print(
		"generate - run the graph construction command for every chromosome short of processed graphs\n\n" +
			"Usage:\n" +
			"  readsim generate [options] -config config.toml -datadir data/ -asm hifiasm -threads 8\n\n" +
			"Options:\n")
	generateFlags.PrintDefaults()
}

func runGenerate(args []string) {
	var err error
	generateFlags := flag.NewFlagSet("generate", flag.ExitOnError)
	rf := addRunFlags(generateFlags)
	verbose := generateFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = generateFlags.Parse(args)
	exception.PanicOnErr(err)
	generateFlags.Usage = func() { generateUsage(generateFlags) }

	cfg := rf.load()
	if cfg.Graph.Command == "" {
		generateFlags.Usage()
		errExit("\nERROR: config file must set [graph] command")
	}

	res, err := newDriver(cfg).GenerateGraphs()
	logResults(res, *verbose)
	exception.PanicOnErr(err)
}

func runUsage(allFlags *flag.FlagSet) {
	fmt.Print(
		"run - simulate missing datasets for all chromosomes and combinations, then generate graphs\n\n" +
			"Usage:\n" +
			"  readsim run [options] -config config.toml -datadir data/ -chrdir chromosomes/ -asm hifiasm\n\n" +
			"Options:\n")
	allFlags.PrintDefaults()
}

func runAll(args []string) {
	var err error
	allFlags := flag.NewFlagSet("run", flag.ExitOnError)
	rf := addRunFlags(allFlags)

	err = allFlags.Parse(args)
	exception.PanicOnErr(err)
	allFlags.Usage = func() { runUsage(allFlags) }

	if *rf.chrdir == "" {
		allFlags.Usage()
		errExit("\nERROR: must have input for -chrdir")
	}
	cfg := rf.load()
	if cfg.Graph.Command == "" {
		allFlags.Usage()
		errExit("\nERROR: config file must set [graph] command")
	}

	err = newDriver(cfg).Run()
	exception.PanicOnErr(err)
}
