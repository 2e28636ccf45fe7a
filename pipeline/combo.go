package pipeline

import (
	"fmt"
	"github.com/dasnellings/readSim/annotate"
	"github.com/dasnellings/readSim/config"
	"github.com/dasnellings/readSim/pbsim"
	"log"
	"os"
	"path/filepath"
)

// TmpDir holds per-chromosome simulator output while a combination dataset is assembled.
func (d *Driver) TmpDir(chr string) string {
	return filepath.Join(d.cfg.DataDir, chr, "tmp")
}

// SimulateCombo generates the missing datasets of every combination entry
// (e.g. "chr1_hg002+chr2_hg002"). Each dataset simulates every part chromosome once
// and merges the annotated reads into a single {index}.fasta.
func (d *Driver) SimulateCombo() ([]Result, error) {
	log.Println("SETUP - simulate combinations")
	entries, err := d.cfg.Entries()
	if err != nil {
		return nil, err
	}

	var answer []Result
	var res Result
	for _, e := range entries {
		if e.Kind != config.Combo {
			continue
		}
		res, err = d.simulateCombo(e)
		answer = append(answer, res)
		if err != nil {
			return answer, err
		}
	}
	return answer, nil
}

func (d *Driver) simulateCombo(e config.Entry) (Result, error) {
	res := Result{Key: e.Key, Chr: e.Chr, Need: e.Need}
	err := d.ensureDirs(e.Chr)
	if err != nil {
		return res, err
	}
	tmp := d.TmpDir(e.Chr)
	err = os.MkdirAll(tmp, 0755)
	if err != nil {
		return res, err
	}

	dem, err := d.resolve(e.Chr, e.Need)
	if err != nil {
		return res, fmt.Errorf("%s: %w", e.Key, err)
	}
	res.Have = dem.Have
	if dem.Deficit == 0 {
		return res, os.RemoveAll(tmp)
	}

	log.Printf("SETUP - simulate: Simulate %d datasets for %s with PBSIM3", dem.Deficit, e.Key)
	var chrNum int
	var path string
	for _, idx := range dem.Indices() {
		parts := make([]string, 0, len(e.Parts))
		for _, p := range e.Parts {
			chrNum, err = config.ChrNumber(p.Chr)
			if err != nil {
				return res, err
			}
			log.Printf("Simulating reads of %s for %s dataset %d", p.Chr, e.Chr, idx)
			path, err = d.sim.Simulate(p.Chr, d.Genome(p.Chr), tmp, chrNum, pbsim.Combo)
			if err != nil {
				return res, err
			}
			parts = append(parts, path)
		}
		err = mergeReads(parts, filepath.Join(tmp, fmt.Sprintf("%d.fasta", idx)), d.RawDir(e.Chr))
		if err != nil {
			return res, err
		}
		res.Generated++
	}
	return res, os.RemoveAll(tmp)
}

// mergeReads concatenates the annotated read files in parts into staging, removes
// the parts, and moves staging into rawDir. The dataset only appears in rawDir once
// it is complete.
func mergeReads(parts []string, staging, rawDir string) error {
	var reads []annotate.Read
	for _, p := range parts {
		reads = append(reads, annotate.ReadRecords(p)...)
	}
	annotate.Write(staging, reads)
	for _, p := range parts {
		if err := os.Remove(p); err != nil {
			return err
		}
	}
	return os.Rename(staging, filepath.Join(rawDir, filepath.Base(staging)))
}
