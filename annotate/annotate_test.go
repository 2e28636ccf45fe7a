package annotate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testFastq = "@S1_1\n" +
	"ACGTACGTAC\n" +
	"+\n" +
	"IIIIIIIIII\n" +
	"@S1_2\n" +
	"GGGGCCCC\n" +
	"+\n" +
	"IIIIIIII\n"

const testMaf = "a\n" +
	"s ref 100 50 + 1000 ACGTACGTAC\n" +
	"s S1_1 0 10 - 10 ACGTACGTAC\n" +
	"\n"

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMafSource(t *testing.T) {
	dir := t.TempDir()
	fq := writeFile(t, dir, "0.fastq", testFastq)
	maf := writeFile(t, dir, "0.maf", testMaf)

	out, err := MafSource{TruthPath: maf, Chr: 6}.Annotate(fq)
	if err != nil {
		t.Fatal(err)
	}
	if out != filepath.Join(dir, "0.fasta") {
		t.Errorf("unexpected output path: %s", out)
	}
	if _, err = os.Stat(fq); !os.IsNotExist(err) {
		t.Error("fastq file was not removed after annotation")
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	expected := ">S1_1_chr6 strand=- start=100 end=150 chr=6\n" +
		"ACGTACGTAC\n" +
		">S1_2\n" +
		"GGGGCCCC\n"
	if string(b) != expected {
		t.Errorf("problem annotating reads. expected:\n%s\nfound:\n%s", expected, string(b))
	}
}

func TestMafSourceTruthWithoutRead(t *testing.T) {
	dir := t.TempDir()
	fq := writeFile(t, dir, "1.fastq", "@S1_2\nGGGG\n+\nIIII\n")
	maf := writeFile(t, dir, "1.maf", testMaf)

	out, err := MafSource{TruthPath: maf, Chr: 1}.Annotate(fq)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != ">S1_2\nGGGG\n" {
		t.Errorf("unexpected output:\n%s", string(b))
	}
}

func TestReadMafGaps(t *testing.T) {
	dir := t.TempDir()
	maf := writeFile(t, dir, "gaps.maf", "a\n"+
		"s ref 100 8 + 1000 ACGTACGT\n"+
		"s S1_1 0 8 + 8 ACGTACGT\n"+
		"\n"+
		"a\n"+
		"s ref 100 8 + 1000 AC--GTAC-GT\n"+
		"s S1_2 0 9 + 9 ACTTGTACAGT\n")
	blocks, err := ReadMaf(maf)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, found %d", len(blocks))
	}
	if blocks[0].RefStart != blocks[1].RefStart || blocks[0].End() != blocks[1].End() || blocks[1].End() != 108 {
		t.Errorf("gap characters changed block coordinates: %v %v", blocks[0], blocks[1])
	}
	if blocks[1].ReadId != "S1_2" || !blocks[1].ReadPos {
		t.Errorf("problem parsing read line: %v", blocks[1])
	}
}

func TestReadMafMalformed(t *testing.T) {
	dir := t.TempDir()
	maf := writeFile(t, dir, "bad.maf", "a\ns ref 100 8 + 1000 ACGTACGT\n")
	if _, err := ReadMaf(maf); err == nil {
		t.Error("expected error for block without read line")
	}
}

func TestReadMafStrand(t *testing.T) {
	dir := t.TempDir()
	maf := writeFile(t, dir, "strand.maf", "a\n"+
		"s ref 100 8 + 1000 AC--GTAC-GT\n"+
		"s S1_1 0 9 - 9 ACTTGTACAGT\n"+
		"\n"+
		"a\n"+
		"s ref 200 5 + 1000 ACGTA\n"+
		"s S1_2 0 5 + 5 ACGTA\n")
	blocks, err := ReadMaf(maf)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, found %d", len(blocks))
	}
	if blocks[0].ReadId != "S1_1" || blocks[0].RefStart != 100 || blocks[0].End() != 108 || blocks[0].ReadPos {
		t.Errorf("problem reading reverse strand block: %+v", blocks[0])
	}
	if blocks[1].ReadId != "S1_2" || blocks[1].RefStart != 200 || blocks[1].End() != 205 || !blocks[1].ReadPos {
		t.Errorf("problem reading forward strand block: %+v", blocks[1])
	}
}

func TestInlineSource(t *testing.T) {
	dir := t.TempDir()
	fa := writeFile(t, dir, "reads.fasta",
		">read=1,forward,position=100-200,length=100,chr1\n"+
			"ACGT\n"+
			">read=2,reverse,position=5-9,length=4,chr1\n"+
			"TTTT\n")

	out, err := InlineSource{}.Annotate(fa)
	if err != nil {
		t.Fatal(err)
	}
	if out != fa {
		t.Errorf("inline annotation should overwrite in place, wrote %s", out)
	}
	b, err := os.ReadFile(fa)
	if err != nil {
		t.Fatal(err)
	}
	expected := ">1 strand=+ start=100 end=200\nACGT\n>2 strand=- start=5 end=9\nTTTT\n"
	if string(b) != expected {
		t.Errorf("problem with inline annotation. expected:\n%s\nfound:\n%s", expected, string(b))
	}
}

func TestInlineSourceMalformed(t *testing.T) {
	dir := t.TempDir()
	contents := ">read=1,sideways,position=100-200\nACGT\n"
	fa := writeFile(t, dir, "bad.fasta", contents)
	_, err := InlineSource{}.Annotate(fa)
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("expected ErrMalformedHeader, found %v", err)
	}
	b, _ := os.ReadFile(fa)
	if string(b) != contents {
		t.Error("malformed file was modified")
	}
}

func TestDescription(t *testing.T) {
	d := Description{Pos: false, Start: 100, End: 150, Chr: 7, HasChr: true}
	if d.String() != "strand=- start=100 end=150 chr=7" {
		t.Errorf("problem formatting description: %s", d)
	}
	parsed, err := ParseDescription(d.String())
	if err != nil || parsed != d {
		t.Errorf("problem parsing description: %v %v", parsed, err)
	}
	if _, err = ParseDescription("strand=+ start=1"); err == nil {
		t.Error("expected error for description without end")
	}
	if FastaPath("dir/3.fastq") != "dir/3.fasta" {
		t.Error("problem deriving fasta path")
	}
}

func TestMafSourceRemoveError(t *testing.T) {
	dir := t.TempDir()
	fq := writeFile(t, dir, "2.fastq", testFastq)
	maf := writeFile(t, dir, "2.maf", testMaf)

	removeFile = func(string) error { return os.ErrPermission }
	defer func() { removeFile = os.Remove }()

	out, err := MafSource{TruthPath: maf, Chr: 6}.Annotate(fq)
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected failed removal to be returned, found %v", err)
	}
	if out != filepath.Join(dir, "2.fasta") {
		t.Errorf("unexpected output path: %s", out)
	}
}
