// Package pipeline drives dataset generation for every configured chromosome:
// it simulates the reads each chromosome is missing and then asks the graph
// construction stage to process them.
//
// Work is strictly sequential. Any error aborts the whole run; datasets that were
// already written stay on disk and are counted on the next run.
package pipeline

import (
	"fmt"
	"github.com/dasnellings/readSim/config"
	"github.com/dasnellings/readSim/demand"
	"github.com/dasnellings/readSim/pbsim"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Invoker runs the read simulator once. *pbsim.Simulator is the production Invoker.
type Invoker interface {
	Simulate(key, genome, rawDir string, chr int, mode pbsim.Mode) (string, error)
}

// Result summarizes the work done for one chromosome entry.
type Result struct {
	Key       string
	Chr       string
	Need      int
	Have      int // datasets present before this run
	Generated int
}

type Driver struct {
	cfg    config.Config
	sim    Invoker
	graphs GraphBuilder
}

// New returns a Driver for cfg. graphs may be nil if GenerateGraphs is never called.
func New(cfg config.Config, sim Invoker, graphs GraphBuilder) *Driver {
	return &Driver{cfg: cfg, sim: sim, graphs: graphs}
}

// SimDir is the directory holding everything generated for chr.
func (d *Driver) SimDir(chr string) string {
	return filepath.Join(d.cfg.DataDir, chr)
}

// RawDir holds the annotated simulated reads of chr, one {index}.fasta per dataset.
func (d *Driver) RawDir(chr string) string {
	return filepath.Join(d.cfg.DataDir, chr, "raw")
}

// ProcessedDir holds the graph artifacts built from the raw reads of chr.
func (d *Driver) ProcessedDir(chr string) string {
	return filepath.Join(d.cfg.DataDir, chr, d.cfg.Assembler, "processed")
}

// Genome is the reference sequence reads of chr are simulated from.
func (d *Driver) Genome(chr string) string {
	return filepath.Join(d.cfg.ChrDir, chr+".fasta")
}

func (d *Driver) ensureDirs(chr string) error {
	err := os.MkdirAll(d.RawDir(chr), 0755)
	if err != nil {
		return err
	}
	return os.MkdirAll(d.ProcessedDir(chr), 0755)
}

func (d *Driver) resolve(chr string, need int) (demand.Demand, error) {
	return demand.Resolve(d.RawDir(chr), d.ProcessedDir(chr), d.cfg.ProcessedExt, need)
}

// Simulate generates the missing datasets of every directly simulated chromosome.
// Reverse complement and combination entries are skipped. All keys are validated
// before any directory is created or the simulator is run.
func (d *Driver) Simulate() ([]Result, error) {
	log.Println("SETUP - simulate")
	entries, err := d.cfg.Entries()
	if err != nil {
		return nil, err
	}

	var answer []Result
	var res Result
	for _, e := range entries {
		if e.Kind != config.Simulated {
			continue
		}
		res, err = d.simulateEntry(e)
		answer = append(answer, res)
		if err != nil {
			return answer, err
		}
	}
	return answer, nil
}

func (d *Driver) simulateEntry(e config.Entry) (Result, error) {
	res := Result{Key: e.Key, Chr: e.Chr, Need: e.Need}
	chrNum, err := config.ChrNumber(e.Chr)
	if err != nil {
		return res, err
	}
	err = d.ensureDirs(e.Chr)
	if err != nil {
		return res, err
	}

	dem, err := d.resolve(e.Chr, e.Need)
	if err != nil {
		return res, fmt.Errorf("%s: %w", e.Key, err)
	}
	res.Have = dem.Have
	if dem.Deficit == 0 {
		return res, nil
	}

	log.Printf("SETUP - simulate: Simulate %d datasets for %s with PBSIM3", dem.Deficit, e.Key)
	for i, idx := range dem.Indices() {
		log.Printf("Step %d: Simulating reads %s", i, filepath.Join(d.RawDir(e.Chr), fmt.Sprintf("%d.fasta", idx)))
		_, err = d.sim.Simulate(strconv.Itoa(idx), d.Genome(e.Chr), d.RawDir(e.Chr), chrNum, pbsim.Indexed)
		if err != nil {
			return res, err
		}
		res.Generated++
	}
	return res, nil
}

// GenerateGraphs asks the graph builder to process every chromosome whose processed
// artifact count is below its requirement.
func (d *Driver) GenerateGraphs() ([]Result, error) {
	log.Println("SETUP - generate")
	entries, err := d.cfg.Entries()
	if err != nil {
		return nil, err
	}

	var answer []Result
	var processed demand.IndexSet
	for _, e := range entries {
		if e.Kind == config.Reverse {
			continue
		}
		processed, err = demand.ScanProcessed(d.ProcessedDir(e.Chr), d.cfg.ProcessedExt)
		if err != nil {
			return answer, fmt.Errorf("%s: %w", e.Key, err)
		}
		res := Result{Key: e.Key, Chr: e.Chr, Need: e.Need, Have: len(processed)}
		if len(processed) >= e.Need {
			answer = append(answer, res)
			continue
		}

		log.Printf("SETUP - generate: Generate %d graphs for %s", e.Need-len(processed), e.Chr)
		err = d.graphs.Build(d.SimDir(e.Chr), d.cfg.Assembler, d.cfg.Threads, e.Need)
		if err != nil {
			return answer, fmt.Errorf("generating graphs for %s: %w", e.Chr, err)
		}
		res.Generated = e.Need - len(processed)
		answer = append(answer, res)
	}
	return answer, nil
}

// Run simulates single and combination chromosomes and then generates their graphs.
func (d *Driver) Run() error {
	_, err := d.Simulate()
	if err != nil {
		return err
	}
	_, err = d.SimulateCombo()
	if err != nil {
		return err
	}
	_, err = d.GenerateGraphs()
	return err
}
