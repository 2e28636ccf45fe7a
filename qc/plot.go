package qc

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram bins the read lengths into bins equal width bins spanning MinLen to MaxLen.
func (s Summary) Histogram(bins int) []float64 {
	if bins <= 0 {
		return nil
	}
	ans := make([]float64, bins)
	if len(s.Lengths) == 0 {
		return ans
	}
	width := float64(s.MaxLen-s.MinLen+1) / float64(bins)
	var b int
	for _, l := range s.Lengths {
		b = int((l - float64(s.MinLen)) / width)
		if b >= bins {
			b = bins - 1
		}
		ans[b]++
	}
	return ans
}

// AsciiHistogram draws the read length distribution for the terminal.
func (s Summary) AsciiHistogram(bins int) string {
	if bins <= 0 || len(s.Lengths) == 0 {
		return ""
	}
	return asciigraph.Plot(s.Histogram(bins),
		asciigraph.Height(10),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("read length %d-%d bp", s.MinLen, s.MaxLen)))
}

// PlotHistogram saves the read length distribution as an image. The format
// follows the extension of filename (png, svg, pdf, ...).
func (s Summary) PlotHistogram(bins int, filename string) error {
	if bins <= 0 {
		return fmt.Errorf("histogram needs a positive number of bins, found %d", bins)
	}
	p := plot.New()
	p.Title.Text = s.File
	p.X.Label.Text = "Read length (bp)"
	p.Y.Label.Text = "Reads"

	h, err := plotter.NewHist(plotter.Values(s.Lengths), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
