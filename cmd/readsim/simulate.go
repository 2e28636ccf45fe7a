package main

import (
	"flag"
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
)

func simulateUsage(simulateFlags *flag.FlagSet) {
	fmt.Print(
		"simulate - simulate HiFi reads with PBSIM3 for every chromosome short of its required datasets\n" +
			"\tDatasets already in <datadir>/<chr>/raw or <datadir>/<chr>/<asm>/processed are counted and never regenerated.\n\n" +
			"Usage:\n" +
			"  readsim simulate [options] -config config.toml -datadir data/ -chrdir chromosomes/\n\n" +
			"Options:\n")
	simulateFlags.PrintDefaults()
}

func runSimulate(args []string) {
	var err error
	simulateFlags := flag.NewFlagSet("simulate", flag.ExitOnError)
	rf := addRunFlags(simulateFlags)
	verbose := simulateFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = simulateFlags.Parse(args)
	exception.PanicOnErr(err)
	simulateFlags.Usage = func() { simulateUsage(simulateFlags) }

	if *rf.chrdir == "" {
		simulateFlags.Usage()
		errExit("\nERROR: must have input for -chrdir")
	}

	res, err := newDriver(rf.load()).Simulate()
	logResults(res, *verbose)
	exception.PanicOnErr(err)
}

func comboUsage(comboFlags *flag.FlagSet) {
	fmt.Print(
		"combo - simulate datasets for chromosome combinations such as chr1_hg002+chr2_hg002\n" +
			"\tEach dataset merges one simulation of every chromosome in the combination.\n\n" +
			"Usage:\n" +
			"  readsim combo [options] -config config.toml -datadir data/ -chrdir chromosomes/\n\n" +
			"Options:\n")
	comboFlags.PrintDefaults()
}

func runCombo(args []string) {
	var err error
	comboFlags := flag.NewFlagSet("combo", flag.ExitOnError)
	rf := addRunFlags(comboFlags)
	verbose := comboFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = comboFlags.Parse(args)
	exception.PanicOnErr(err)
	comboFlags.Usage = func() { comboUsage(comboFlags) }

	if *rf.chrdir == "" {
		comboFlags.Usage()
		errExit("\nERROR: must have input for -chrdir")
	}

	res, err := newDriver(rf.load()).SimulateCombo()
	logResults(res, *verbose)
	exception.PanicOnErr(err)
}
