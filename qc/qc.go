// Package qc summarizes an annotated read set: read lengths, strand balance, and
// whether every provenance interval fits on its reference.
package qc

import (
	"fmt"
	"github.com/dasnellings/readSim/annotate"
	"github.com/dasnellings/readSim/fai"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"strings"
)

type Summary struct {
	File        string
	Reads       int
	Annotated   int // reads with a parsable provenance description
	Forward     int
	Reverse     int
	Bases       int
	MinLen      int
	MaxLen      int
	MeanLen     float64
	StdevLen    float64
	MedianLen   float64
	OutOfBounds int // annotated reads ending past the end of their reference
	Lengths     []float64
}

// Summarize reads an annotated FASTA file. ref may be nil, in which case bounds
// are only checked for start < end.
func Summarize(filename string, ref *fai.Index) Summary {
	reads := annotate.ReadRecords(filename)
	s := Summary{File: filename, Reads: len(reads), Lengths: make([]float64, len(reads))}

	var d annotate.Description
	var err error
	for i := range reads {
		s.Lengths[i] = float64(len(reads[i].Seq))
		s.Bases += len(reads[i].Seq)
		if i == 0 || len(reads[i].Seq) < s.MinLen {
			s.MinLen = len(reads[i].Seq)
		}
		if len(reads[i].Seq) > s.MaxLen {
			s.MaxLen = len(reads[i].Seq)
		}

		d, err = annotate.ParseDescription(reads[i].Description)
		if err != nil {
			continue
		}
		s.Annotated++
		if d.Pos {
			s.Forward++
		} else {
			s.Reverse++
		}
		if d.Start < 0 || d.End <= d.Start || !fits(d, ref) {
			s.OutOfBounds++
		}
	}

	if len(s.Lengths) > 0 {
		s.MeanLen, s.StdevLen = stat.MeanStdDev(s.Lengths, nil)
		sorted := slices.Clone(s.Lengths)
		slices.Sort(sorted)
		s.MedianLen = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return s
}

// fits reports whether d ends within its reference. A description without chr
// is checked against the only sequence of a single-sequence reference.
func fits(d annotate.Description, ref *fai.Index) bool {
	if ref == nil {
		return true
	}
	var length int
	var found bool
	if d.HasChr {
		length, found = ref.Len(fmt.Sprintf("chr%d", d.Chr))
	}
	if !found {
		names := ref.Names()
		if len(names) != 1 {
			return true
		}
		length, _ = ref.Len(names[0])
	}
	return d.End <= length
}

// String method for Summary enables easy writing with the fmt package.
func (s Summary) String() string {
	ans := new(strings.Builder)
	fmt.Fprintf(ans, "File\t%s\n", s.File)
	fmt.Fprintf(ans, "Reads\t%d\n", s.Reads)
	fmt.Fprintf(ans, "Annotated\t%d\n", s.Annotated)
	fmt.Fprintf(ans, "Unannotated\t%d\n", s.Reads-s.Annotated)
	fmt.Fprintf(ans, "Forward\t%d\n", s.Forward)
	fmt.Fprintf(ans, "Reverse\t%d\n", s.Reverse)
	fmt.Fprintf(ans, "Bases\t%d\n", s.Bases)
	fmt.Fprintf(ans, "MinLength\t%d\n", s.MinLen)
	fmt.Fprintf(ans, "MaxLength\t%d\n", s.MaxLen)
	fmt.Fprintf(ans, "MeanLength\t%.2f\n", s.MeanLen)
	fmt.Fprintf(ans, "StdevLength\t%.2f\n", s.StdevLen)
	fmt.Fprintf(ans, "MedianLength\t%.1f\n", s.MedianLen)
	fmt.Fprintf(ans, "OutOfBounds\t%d\n", s.OutOfBounds)
	return ans.String()
}
