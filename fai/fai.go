package fai

import (
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"strconv"
	"strings"
)

// Index holds the sequence lengths of an indexed reference FASTA, in file order.
type Index struct {
	names   []string
	lengths map[string]int
}

// Len returns the length of the reference sequence chr and whether it is in the index.
func (idx Index) Len(chr string) (int, bool) {
	l, found := idx.lengths[chr]
	return l, found
}

// Names returns the sequence names in file order.
func (idx Index) Names() []string {
	return idx.names
}

// ReadIndex reads the name and length columns of a samtools fai index.
func ReadIndex(filename string) Index {
	file := fileio.EasyOpen(filename)
	answer := Index{lengths: make(map[string]int)}
	var line string
	var col []string
	var length int
	var done bool
	var err error
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		col = strings.Split(line, "\t")
		if len(col) != 5 {
			log.Fatalf("ERROR: malformed index file: %s\nerror on line:\n%s\n", filename, line)
		}
		length, err = strconv.Atoi(col[1])
		exception.PanicOnErr(err)
		if _, found := answer.lengths[col[0]]; !found {
			answer.names = append(answer.names, col[0])
		}
		answer.lengths[col[0]] = length
	}

	err = file.Close()
	exception.PanicOnErr(err)
	return answer
}
