package pbsim

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner stands in for PBSIM3, writing one read and its truth alignment
// for every invocation.
type fakeRunner struct {
	dirs  []string
	calls [][]string
	fail  bool
}

func (f *fakeRunner) Run(dir, name string, args ...string) error {
	f.dirs = append(f.dirs, dir)
	f.calls = append(f.calls, args)
	if f.fail {
		return errors.New("exit status 1")
	}
	prefix := args[len(args)-1]
	files := map[string]string{
		"_0001.fastq": "@S1_1\nACGTACGTAC\n+\nIIIIIIIIII\n",
		"_0001.maf":   "a\ns ref 100 50 + 1000 ACGTACGTAC\ns S1_1 0 10 - 10 ACGTACGTAC\n",
		"_0001.ref":   ">ref\nACGT\n",
	}
	for suffix, contents := range files {
		if err := os.WriteFile(prefix+suffix, []byte(contents), 0644); err != nil {
			return err
		}
	}
	return nil
}

func newTestSimulator(t *testing.T) (*Simulator, *fakeRunner, string) {
	t.Helper()
	root := t.TempDir()
	pbsimDir := filepath.Join(root, "pbsim3")
	if err := os.MkdirAll(pbsimDir, 0755); err != nil {
		t.Fatal(err)
	}
	sample := filepath.Join(root, "sample.fastq")
	if err := os.WriteFile(sample, []byte("@s\nA\n+\nI\n"), 0644); err != nil {
		t.Fatal(err)
	}
	f := &fakeRunner{}
	s := &Simulator{
		Dir:        pbsimDir,
		Binary:     "src/pbsim",
		ProfileId:  "hg002",
		SampleFile: sample,
		Depth:      30,
		Runner:     f,
	}
	return s, f, root
}

func TestSimulateIndexed(t *testing.T) {
	s, f, root := newTestSimulator(t)
	raw := filepath.Join(root, "chr6", "raw")
	if err := os.MkdirAll(raw, 0755); err != nil {
		t.Fatal(err)
	}

	path, err := s.Simulate("3", filepath.Join(root, "chr6.fasta"), raw, 6, Indexed)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("indexed mode should not return a path, found %s", path)
	}

	entries, err := os.ReadDir(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "3.fasta" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only 3.fasta in raw directory, found %v", names)
	}

	b, err := os.ReadFile(filepath.Join(raw, "3.fasta"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), ">S1_1_chr6 strand=- start=100 end=150 chr=6\n") {
		t.Errorf("problem annotating simulated reads:\n%s", string(b))
	}

	if len(f.calls) != 1 || f.dirs[0] != s.Dir {
		t.Fatalf("expected one simulator call in %s, found %v", s.Dir, f.dirs)
	}
	args := strings.Join(f.calls[0], " ")
	expected := "--strategy wgs --method sample --depth 30 --genome " + filepath.Join(root, "chr6.fasta") +
		" --sample " + s.SampleFile +
		" --sample-profile-id hg002 --prefix " + filepath.Join(raw, "3")
	if args != expected {
		t.Errorf("problem with simulator arguments.\nexpected: %s\nfound:    %s", expected, args)
	}
}

func TestSimulateCombo(t *testing.T) {
	s, _, root := newTestSimulator(t)
	tmp := filepath.Join(root, "tmp")
	if err := os.MkdirAll(tmp, 0755); err != nil {
		t.Fatal(err)
	}
	path, err := s.Simulate("chr2", filepath.Join(root, "chr2.fasta"), tmp, 2, Combo)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(tmp, "chr2.fasta") {
		t.Errorf("unexpected combo path: %s", path)
	}
	if _, err = os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestCachedProfile(t *testing.T) {
	s, _, _ := newTestSimulator(t)
	s.SampleFile = ""
	if _, err := s.Args("g.fasta", "out/0"); !errors.Is(err, ErrSampleMissing) {
		t.Errorf("expected ErrSampleMissing, found %v", err)
	}

	if err := os.WriteFile(filepath.Join(s.Dir, "sample_profile_hg002.fastq"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	args, err := s.Args("g.fasta", "out/0")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(strings.Join(args, " "), "--sample ") {
		t.Errorf("cached profile should not pass a sample file: %v", args)
	}
}

func TestPreconditions(t *testing.T) {
	s, f, root := newTestSimulator(t)
	s.ProfileId = ""
	if _, err := s.Simulate("0", "g.fasta", root, 1, Indexed); !errors.Is(err, ErrProfileUnspecified) {
		t.Errorf("expected ErrProfileUnspecified, found %v", err)
	}
	if len(f.calls) != 0 {
		t.Error("simulator should not run when the profile is unspecified")
	}

	s.ProfileId = "hg002"
	f.fail = true
	if _, err := s.Simulate("0", "g.fasta", root, 1, Indexed); err == nil {
		t.Error("expected simulator failure to be returned")
	}
}
