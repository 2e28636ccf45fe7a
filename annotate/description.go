package annotate

import (
	"fmt"
	"github.com/dasnellings/readSim/strand"
	"strconv"
	"strings"
)

// Description is the ground-truth provenance of a simulated read. It is written to the
// read header as "strand=<+|-> start=<int> end=<int>" with an optional " chr=<int>".
// End is exclusive so that read == reference[Start:End].
type Description struct {
	Pos    bool
	Start  int
	End    int
	Chr    int
	HasChr bool
}

// String method for Description enables easy writing with the fmt package.
func (d Description) String() string {
	s := fmt.Sprintf("strand=%c start=%d end=%d", strand.Symbol(d.Pos), d.Start, d.End)
	if d.HasChr {
		s += fmt.Sprintf(" chr=%d", d.Chr)
	}
	return s
}

// ParseDescription parses a description written by Description.String. Unknown
// key=value fields are ignored. strand, start, and end are required.
func ParseDescription(s string) (Description, error) {
	var d Description
	var err error
	var seen int
	for _, field := range strings.Fields(s) {
		key, val, found := strings.Cut(field, "=")
		if !found {
			continue
		}
		switch key {
		case "strand":
			d.Pos, err = strand.Parse(val)
			seen |= 1
		case "start":
			d.Start, err = strconv.Atoi(val)
			seen |= 2
		case "end":
			d.End, err = strconv.Atoi(val)
			seen |= 4
		case "chr":
			d.Chr, err = strconv.Atoi(val)
			d.HasChr = true
		}
		if err != nil {
			return d, fmt.Errorf("malformed description %q: %w", s, err)
		}
	}
	if seen != 7 {
		return d, fmt.Errorf("malformed description %q: missing strand, start, or end", s)
	}
	return d, nil
}
