package annotate

import (
	"fmt"
	"github.com/vertgenlab/gonomics/maf"
)

// Block is one pairwise alignment from a simulator truth file: the reference
// interval a read was drawn from and the strand it was drawn on.
type Block struct {
	RefName  string
	RefStart int // 0-based, inclusive
	RefSize  int // aligned reference bases, excluding gaps
	ReadId   string
	ReadPos  bool
}

// End is the exclusive end of the reference interval. It comes from the size
// field of the block, never from the length of the aligned text, which may contain gaps.
func (b Block) End() int {
	return b.RefStart + b.RefSize
}

// ReadMaf reads a truth file written by the read simulator. The first sequence of
// each alignment block is the reference and the second is the read; any further
// sequences are ignored.
func ReadMaf(filename string) ([]Block, error) {
	records := maf.Read(filename)
	answer := make([]Block, 0, len(records))
	for i := range records {
		if len(records[i].Species) < 2 {
			return nil, fmt.Errorf("malformed maf block %d in %s: found %d sequence lines, need 2", i, filename, len(records[i].Species))
		}
		ref := records[i].Species[0].SLine
		read := records[i].Species[1].SLine
		answer = append(answer, Block{
			RefName:  ref.Src,
			RefStart: ref.Start,
			RefSize:  ref.Size,
			ReadId:   read.Src,
			ReadPos:  read.Strand,
		})
	}
	return answer, nil
}
