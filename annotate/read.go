package annotate

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/fastq"
	"github.com/vertgenlab/gonomics/fileio"
	"os"
	"path/filepath"
	"strings"
)

// removeFile deletes intermediate read files once their annotated copy is written.
var removeFile = os.Remove

// Read is one simulated read. Id is the first word of the header and Description is
// everything after it.
type Read struct {
	Id          string
	Description string
	Seq         []dna.Base
}

// Header is the full header line of the read without the leading '>' or '@'.
func (r Read) Header() string {
	if r.Description == "" {
		return r.Id
	}
	return r.Id + " " + r.Description
}

func splitHeader(name string) Read {
	var r Read
	r.Id, r.Description, _ = strings.Cut(name, " ")
	return r
}

// IsFastq reports whether filename looks like a FASTQ file (optionally gzipped).
func IsFastq(filename string) bool {
	ext := filepath.Ext(strings.TrimSuffix(filename, ".gz"))
	return ext == ".fastq" || ext == ".fq"
}

// ReadRecords reads all records from a FASTA or FASTQ file, chosen by extension.
// Quality scores are discarded.
func ReadRecords(filename string) []Read {
	var answer []Read
	var curr Read
	if IsFastq(filename) {
		records := fastq.Read(filename)
		answer = make([]Read, 0, len(records))
		for i := range records {
			curr = splitHeader(records[i].Name)
			curr.Seq = records[i].Seq
			answer = append(answer, curr)
		}
		return answer
	}

	records := fasta.Read(filename)
	answer = make([]Read, 0, len(records))
	for i := range records {
		curr = splitHeader(records[i].Name)
		curr.Seq = records[i].Seq
		answer = append(answer, curr)
	}
	return answer
}

// Write writes reads as two-line FASTA (one header line and one unwrapped sequence line per record).
func Write(filename string, reads []Read) {
	out := fileio.EasyCreate(filename)
	var err error
	for i := range reads {
		_, err = fmt.Fprintf(out, ">%s\n%s\n", reads[i].Header(), dna.BasesToString(reads[i].Seq))
		exception.PanicOnErr(err)
	}
	err = out.Close()
	exception.PanicOnErr(err)
}

// FastaPath derives the output path of an annotated read file by replacing the
// final character of the input extension ("x.fastq" -> "x.fasta").
func FastaPath(readPath string) string {
	if readPath == "" {
		return readPath
	}
	return readPath[:len(readPath)-1] + "a"
}
