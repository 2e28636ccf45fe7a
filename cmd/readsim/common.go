package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/readSim/config"
	"github.com/dasnellings/readSim/pbsim"
	"github.com/dasnellings/readSim/pipeline"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"path/filepath"
)

// runFlags are the flags shared by every subcommand that drives the pipeline.
type runFlags struct {
	config    *string
	datadir   *string
	chrdir    *string
	assembler *string
	threads   *int
}

func addRunFlags(fs *flag.FlagSet) runFlags {
	return runFlags{
		config:    fs.String("config", "", "TOML config file with simulator settings and required datasets per chromosome."),
		datadir:   fs.String("datadir", "", "Directory where the generated data will be saved."),
		chrdir:    fs.String("chrdir", "", "Directory with chromosome references, one <chr>.fasta per chromosome."),
		assembler: fs.String("asm", "", "Assembler used for graph construction [hifiasm|raven]. Overrides the config file."),
		threads:   fs.Int("threads", 0, "Number of threads for the assembler. Overrides the config file."),
	}
}

// load reads the config file and applies command line overrides.
func (f runFlags) load() config.Config {
	if *f.config == "" {
		errExit("\nERROR: must have input for -config")
	}
	cfg, err := config.Load(*f.config)
	exception.PanicOnErr(err)

	if *f.datadir != "" {
		cfg.DataDir = *f.datadir
	}
	if *f.chrdir != "" {
		cfg.ChrDir = *f.chrdir
	}
	if *f.assembler != "" {
		cfg.Assembler = *f.assembler
	}
	if *f.threads > 0 {
		cfg.Threads = *f.threads
	}

	cfg.DataDir, err = filepath.Abs(cfg.DataDir)
	exception.PanicOnErr(err)
	cfg.ChrDir, err = filepath.Abs(cfg.ChrDir)
	exception.PanicOnErr(err)

	err = cfg.Validate()
	if err != nil {
		errExit(fmt.Sprintf("\nERROR: %s", err))
	}
	return cfg
}

func newDriver(cfg config.Config) *pipeline.Driver {
	return pipeline.New(cfg, pbsim.New(cfg), pipeline.NewGraphBuilder(cfg.Graph))
}

func logResults(res []pipeline.Result, verbose int) {
	if verbose == 0 {
		return
	}
	for _, r := range res {
		log.Printf("%s\tneed: %d\thave: %d\tgenerated: %d\n", r.Key, r.Need, r.Have, r.Generated)
	}
}
