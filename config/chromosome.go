package config

import (
	"errors"
	"fmt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"strconv"
	"strings"
)

// Hg002Suffix marks chromosomes taken from the HG002 reference. It is currently the
// only supported reference source.
const Hg002Suffix = "_hg002"

// ReverseSuffix marks reverse complement variants of a chromosome.
const ReverseSuffix = "_r"

var (
	ErrInvalidSuffix    = errors.New(`invalid chromosome suffix: currently only "_hg002" is supported, e.g. "chr6_hg002"`)
	ErrChromosomeNumber = errors.New("chromosome name must be chr<int>")
	ErrDuplicatePart    = errors.New("chromosome repeated within a combination")
)

type Kind int

const (
	Simulated Kind = iota // a single chromosome simulated directly
	Reverse               // reverse complement variant, produced elsewhere
	Combo                 // several chromosomes merged into one dataset
)

// Entry is one parsed chromosome key of the requirement map.
type Entry struct {
	Key   string // key as written in the config, e.g. "chr6_hg002"
	Chr   string // chromosome name without suffix, e.g. "chr6"
	Need  int    // required dataset count
	Kind  Kind
	Parts []Entry // component chromosomes of a Combo entry
}

// ParseKey classifies a chromosome key and strips its reference suffix.
func ParseKey(key string) (Entry, error) {
	e := Entry{Key: key}
	switch {
	case strings.HasSuffix(key, ReverseSuffix):
		e.Kind = Reverse
		e.Chr = strings.TrimSuffix(key, ReverseSuffix)
		return e, nil
	case strings.Contains(key, "+"):
		e.Kind = Combo
		names := make([]string, 0, 2)
		for _, part := range strings.Split(key, "+") {
			p, err := ParseKey(part)
			if err != nil {
				return e, err
			}
			if p.Kind != Simulated {
				return e, fmt.Errorf("%w: combination part %q of %q", ErrInvalidSuffix, part, key)
			}
			if slices.Contains(names, p.Chr) {
				return e, fmt.Errorf("%w: %q in %q", ErrDuplicatePart, p.Chr, key)
			}
			e.Parts = append(e.Parts, p)
			names = append(names, p.Chr)
		}
		e.Chr = strings.Join(names, "+")
		return e, nil
	case strings.HasSuffix(key, Hg002Suffix):
		e.Kind = Simulated
		e.Chr = strings.TrimSuffix(key, Hg002Suffix)
		return e, nil
	}
	return e, fmt.Errorf("%w: %q", ErrInvalidSuffix, key)
}

// ChrNumber returns the integer in a chromosome name such as "chr6".
func ChrNumber(chr string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(chr, "chr"))
	if err != nil || n < 0 || !strings.HasPrefix(chr, "chr") {
		return 0, fmt.Errorf("%w: %q", ErrChromosomeNumber, chr)
	}
	return n, nil
}

// Entries parses every key of the merged requirement map, in sorted key order.
// Any invalid key or count fails the whole set.
func (c Config) Entries() ([]Entry, error) {
	merged := c.Chromosomes.Merged()
	keys := maps.Keys(merged)
	slices.Sort(keys)
	ans := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, err := ParseKey(k)
		if err != nil {
			return nil, err
		}
		if merged[k] < 0 {
			return nil, fmt.Errorf("%w: %s = %d", ErrNegativeCount, k, merged[k])
		}
		e.Need = merged[k]
		if e.Kind == Simulated {
			if _, err = ChrNumber(e.Chr); err != nil {
				return nil, err
			}
		}
		for i := range e.Parts {
			if _, err = ChrNumber(e.Parts[i].Chr); err != nil {
				return nil, err
			}
		}
		ans = append(ans, e)
	}
	return ans, nil
}
