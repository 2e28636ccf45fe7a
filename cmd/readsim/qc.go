package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/readSim/fai"
	"github.com/dasnellings/readSim/qc"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func qcUsage(qcFlags *flag.FlagSet) {
	fmt.Print(
		"qc - summarize an annotated read set: read lengths, strand balance, and provenance bounds\n\n" +
			"Usage:\n" +
			"  readsim qc [options] -i data/chr6/raw/0.fasta > summary.tsv\n\n" +
			"Options:\n")
	qcFlags.PrintDefaults()
}

func runQc(args []string) {
	var err error
	qcFlags := flag.NewFlagSet("qc", flag.ExitOnError)

	input := qcFlags.String("i", "", "Annotated FASTA file.")
	output := qcFlags.String("o", "stdout", "Output summary file.")
	refIndex := qcFlags.String("fai", "", "Index (.fai) of the reference the reads were simulated from. Enables checking read ends against reference length.")
	bins := qcFlags.Int("bins", 50, "Number of bins in read length histograms.")
	plotFile := qcFlags.String("plot", "", "Save a read length histogram to this image file (png, svg, or pdf).")
	ascii := qcFlags.Bool("ascii", false, "Print a read length histogram to the terminal.")

	err = qcFlags.Parse(args)
	exception.PanicOnErr(err)
	qcFlags.Usage = func() { qcUsage(qcFlags) }

	if *input == "" {
		qcFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}
	if *bins <= 0 {
		qcFlags.Usage()
		errExit("\nERROR: -bins must be positive")
	}

	var ref *fai.Index
	if *refIndex != "" {
		idx := fai.ReadIndex(*refIndex)
		ref = &idx
	}

	s := qc.Summarize(*input, ref)
	out := fileio.EasyCreate(*output)
	_, err = fmt.Fprint(out, s)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)

	if *ascii {
		fmt.Println(s.AsciiHistogram(*bins))
	}
	if *plotFile != "" {
		err = s.PlotHistogram(*bins, *plotFile)
		exception.PanicOnErr(err)
	}
}
