package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/readSim/annotate"
	"github.com/dasnellings/readSim/config"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
)

func annotateUsage(annotateFlags *flag.FlagSet) {
	fmt.Print(
		"annotate - write ground truth provenance into read descriptions as 'strand=<+|-> start=<int> end=<int> [chr=<int>]'\n" +
			"\tWith -maf, provenance is taken from the simulator alignment truth file and the reads are written to a\n" +
			"\ttwo-line FASTA next to the input (reads.fastq -> reads.fasta). The input is removed.\n" +
			"\tWithout -maf, each header must hold 'read=<id>,<forward|reverse>,position=<start>-<end>' and the\n" +
			"\tinput is overwritten in place.\n\n" +
			"Usage:\n" +
			"  readsim annotate -i reads.fastq -maf reads.maf -chr chr6\n" +
			"  readsim annotate -i reads.fasta\n\n" +
			"Options:\n")
	annotateFlags.PrintDefaults()
}

func runAnnotate(args []string) {
	var err error
	annotateFlags := flag.NewFlagSet("annotate", flag.ExitOnError)

	input := annotateFlags.String("i", "", "Input FASTQ or FASTA file of simulated reads.")
	maf := annotateFlags.String("maf", "", "MAF alignment truth file written by the simulator for the input reads.")
	chr := annotateFlags.String("chr", "", "Chromosome the reads were simulated from (e.g. chr6). Required with -maf.")
	keepMaf := annotateFlags.Bool("keepMaf", false, "Do not remove the MAF file after annotation.")

	err = annotateFlags.Parse(args)
	exception.PanicOnErr(err)
	annotateFlags.Usage = func() { annotateUsage(annotateFlags) }

	if *input == "" {
		annotateFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}

	var src annotate.Source
	if *maf != "" {
		if *chr == "" {
			annotateFlags.Usage()
			errExit("\nERROR: must have input for -chr when using -maf")
		}
		chrNum, err := config.ChrNumber(*chr)
		exception.PanicOnErr(err)
		src = annotate.MafSource{TruthPath: *maf, Chr: chrNum}
	} else {
		src = annotate.InlineSource{}
	}

	out, err := src.Annotate(*input)
	exception.PanicOnErr(err)
	log.Printf("Annotated reads written to %s\n", out)

	if *maf != "" && !*keepMaf {
		err = os.Remove(*maf)
		exception.PanicOnErr(err)
	}
}
