package annotate

import (
	"errors"
	"fmt"
	"github.com/dasnellings/readSim/strand"
	"strconv"
	"strings"
)

// Source rewrites the reads in a file so that every read with known provenance
// carries a Description. It returns the path of the annotated file.
type Source interface {
	Annotate(readPath string) (string, error)
}

// MafSource annotates simulator reads using the paired alignment truth file
// (MAF) written alongside them. Reads gain a "_chr{Chr}" suffix on their id.
type MafSource struct {
	TruthPath string
	Chr       int
}

// Annotate writes the annotated reads to FastaPath(readPath) and removes readPath.
// Reads absent from the truth file keep their original header, and truth blocks
// for reads absent from readPath are ignored.
func (m MafSource) Annotate(readPath string) (string, error) {
	blocks, err := ReadMaf(m.TruthPath)
	if err != nil {
		return "", err
	}
	reads := ReadRecords(readPath)
	byId := make(map[string]int, len(reads))
	for i := range reads {
		byId[reads[i].Id] = i
	}

	suffix := fmt.Sprintf("_chr%d", m.Chr)
	var i int
	var found bool
	for _, b := range blocks {
		i, found = byId[b.ReadId]
		if !found {
			continue
		}
		reads[i].Id = b.ReadId + suffix
		reads[i].Description = Description{
			Pos:    b.ReadPos,
			Start:  b.RefStart,
			End:    b.End(),
			Chr:    m.Chr,
			HasChr: true,
		}.String()
	}

	out := FastaPath(readPath)
	Write(out, reads)
	if out != readPath {
		err = removeFile(readPath)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// InlineSource annotates reads whose header already encodes their provenance as
// comma separated fields, e.g. "read=12,reverse,position=1500-3200,length=1700".
// The file is overwritten in place.
type InlineSource struct{}

var ErrMalformedHeader = errors.New("malformed inline provenance header")

// parseInline returns the read id and provenance encoded in an inline header.
func parseInline(header string) (string, Description, error) {
	var d Description
	fields := strings.Split(header, ",")
	if len(fields) < 3 {
		return "", d, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	id, found := strings.CutPrefix(fields[0], "read=")
	if !found {
		return "", d, fmt.Errorf("%w: %q: expected read=<id>", ErrMalformedHeader, header)
	}

	var err error
	d.Pos, err = strand.Parse(fields[1])
	if err != nil {
		return "", d, fmt.Errorf("%w: %q: %v", ErrMalformedHeader, header, err)
	}

	pos, found := strings.CutPrefix(fields[2], "position=")
	if !found {
		return "", d, fmt.Errorf("%w: %q: expected position=<start>-<end>", ErrMalformedHeader, header)
	}
	startStr, endStr, found := strings.Cut(pos, "-")
	if !found {
		return "", d, fmt.Errorf("%w: %q: expected position=<start>-<end>", ErrMalformedHeader, header)
	}
	d.Start, err = strconv.Atoi(startStr)
	if err != nil {
		return "", d, fmt.Errorf("%w: %q: %v", ErrMalformedHeader, header, err)
	}
	d.End, err = strconv.Atoi(endStr)
	if err != nil {
		return "", d, fmt.Errorf("%w: %q: %v", ErrMalformedHeader, header, err)
	}
	return id, d, nil
}

// Annotate rewrites every header in readPath. Any malformed header fails the whole
// file and leaves it untouched.
func (InlineSource) Annotate(readPath string) (string, error) {
	reads := ReadRecords(readPath)
	var id string
	var d Description
	var err error
	for i := range reads {
		id, d, err = parseInline(reads[i].Header())
		if err != nil {
			return "", fmt.Errorf("%s: %w", readPath, err)
		}
		reads[i].Id = id
		reads[i].Description = d.String()
	}
	Write(readPath, reads)
	return readPath, nil
}
