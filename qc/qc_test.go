package qc

import (
	"github.com/dasnellings/readSim/fai"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testReads = ">S1_1_chr6 strand=+ start=100 end=104 chr=6\n" +
	"ACGT\n" +
	">S1_2_chr6 strand=- start=200 end=208 chr=6\n" +
	"ACGTACGT\n" +
	">S1_3_chr6 strand=+ start=170805970 end=170805990 chr=6\n" +
	"ACGTACGTACGTACGTACGT\n" +
	">S1_4\n" +
	"ACGTAC\n"

func writeReads(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "0.fasta")
	if err := os.WriteFile(path, []byte(testReads), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSummarize(t *testing.T) {
	ref := fai.ReadIndex("../fai/testdata/ref.fasta.fai")
	s := Summarize(writeReads(t), &ref)
	if s.Reads != 4 || s.Annotated != 3 || s.Forward != 2 || s.Reverse != 1 {
		t.Errorf("problem counting reads: %+v", s)
	}
	if s.Bases != 38 || s.MinLen != 4 || s.MaxLen != 20 {
		t.Errorf("problem with read lengths: %+v", s)
	}
	if math.Abs(s.MeanLen-9.5) > 1e-9 {
		t.Errorf("expected mean length 9.5, found %f", s.MeanLen)
	}
	if s.OutOfBounds != 1 {
		t.Errorf("expected 1 read past the end of chr6, found %d", s.OutOfBounds)
	}
	if !strings.Contains(s.String(), "Unannotated\t1\n") {
		t.Errorf("problem writing summary:\n%s", s)
	}

	s = Summarize(writeReads(t), nil)
	if s.OutOfBounds != 0 {
		t.Errorf("bounds should not be checked without a reference, found %d", s.OutOfBounds)
	}
}

func TestHistogram(t *testing.T) {
	s := Summarize(writeReads(t), nil)
	h := s.Histogram(2)
	if len(h) != 2 || h[0] != 3 || h[1] != 1 {
		t.Errorf("problem binning read lengths: %v", h)
	}
	if s.Histogram(-1) != nil || s.Histogram(0) != nil || s.AsciiHistogram(-1) != "" {
		t.Error("non-positive bin counts should produce no histogram")
	}
	if err := s.PlotHistogram(-1, filepath.Join(t.TempDir(), "bad.png")); err == nil {
		t.Error("expected error for negative bin count")
	}
	if s.AsciiHistogram(5) == "" {
		t.Error("expected a terminal histogram")
	}
	if err := s.PlotHistogram(5, filepath.Join(t.TempDir(), "lengths.png")); err != nil {
		t.Error(err)
	}
}
