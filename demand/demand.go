// Package demand compares the number of simulated datasets a chromosome needs
// against the datasets already present on disk.
//
// The directories are the only record of what has been generated. Each scan lists
// the directory once and extracts the dataset index from every filename, so a run
// that was killed part way resumes at the right index.
package demand

import (
	"errors"
	"fmt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"os"
	"regexp"
	"strconv"
)

// DefaultProcessedExt is the extension of graph artifacts in the processed directory.
const DefaultProcessedExt = "dgl"

var ErrMalformedName = errors.New("could not parse dataset index from filename")

var rawPattern = regexp.MustCompile(`^(\d+)\.fast`)

// IndexSet is the set of dataset indices present on disk.
type IndexSet map[int]struct{}

// Union returns a new set with the indices of both sets.
func (s IndexSet) Union(o IndexSet) IndexSet {
	ans := make(IndexSet, len(s)+len(o))
	for k := range s {
		ans[k] = struct{}{}
	}
	for k := range o {
		ans[k] = struct{}{}
	}
	return ans
}

// Sorted returns the indices in ascending order.
func (s IndexSet) Sorted() []int {
	ans := maps.Keys(s)
	slices.Sort(ans)
	return ans
}

// Have is the number of datasets considered present: max index + 1, or 0 for an
// empty set. Gaps below the max are not refilled.
func (s IndexSet) Have() int {
	if len(s) == 0 {
		return 0
	}
	sorted := s.Sorted()
	return sorted[len(sorted)-1] + 1
}

func scan(dir string, pattern *regexp.Regexp) (IndexSet, error) {
	ans := make(IndexSet)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return ans, nil
	}
	if err != nil {
		return nil, err
	}

	var m []string
	var idx int
	for _, e := range entries {
		m = pattern.FindStringSubmatch(e.Name())
		if m == nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedName, e.Name())
		}
		idx, err = strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedName, e.Name(), err)
		}
		ans[idx] = struct{}{}
	}
	return ans, nil
}

// ScanRaw returns the indices of simulated read files ({index}.fasta or {index}.fastq) in dir.
func ScanRaw(dir string) (IndexSet, error) {
	return scan(dir, rawPattern)
}

// ScanProcessed returns the indices of graph artifacts ({index}.{ext}) in dir.
func ScanProcessed(dir, ext string) (IndexSet, error) {
	if ext == "" {
		ext = DefaultProcessedExt
	}
	return scan(dir, regexp.MustCompile(`^(\d+)\.`+regexp.QuoteMeta(ext)))
}

// Demand is the result of comparing required and present datasets for one chromosome.
type Demand struct {
	Need    int
	Have    int
	Deficit int
}

// Indices lists the dataset indices that must be generated to close the deficit.
// New datasets always append after Have.
func (d Demand) Indices() []int {
	ans := make([]int, d.Deficit)
	for i := range ans {
		ans[i] = d.Have + i
	}
	return ans
}

// Compute derives the Demand from the raw and processed index sets.
func Compute(raw, processed IndexSet, need int) Demand {
	d := Demand{Need: need, Have: raw.Union(processed).Have()}
	if need > d.Have {
		d.Deficit = need - d.Have
	}
	return d
}

// Resolve scans rawDir and processedDir and computes the Demand for need datasets.
func Resolve(rawDir, processedDir, processedExt string, need int) (Demand, error) {
	raw, err := ScanRaw(rawDir)
	if err != nil {
		return Demand{}, err
	}
	processed, err := ScanProcessed(processedDir, processedExt)
	if err != nil {
		return Demand{}, err
	}
	return Compute(raw, processed, need), nil
}
