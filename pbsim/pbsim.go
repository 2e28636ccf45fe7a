// Package pbsim runs the PBSIM3 read simulator and turns its output into
// annotated read sets.
package pbsim

import (
	"errors"
	"fmt"
	"github.com/dasnellings/readSim/annotate"
	"github.com/dasnellings/readSim/config"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

var (
	ErrProfileUnspecified = errors.New("sample profile ID for PBSIM3 is unspecified, set sample_profile_id in the config file")
	ErrSampleMissing      = errors.New("sample profile ID and sample file not found, provide either a valid sample profile ID or a sample file")
)

// Mode selects how an invocation is keyed and what it hands back.
type Mode int

const (
	// Indexed output is keyed by dataset index and left in the raw directory,
	// where it is later discovered by scanning.
	Indexed Mode = iota
	// Combo output is keyed by chromosome name and its path is returned to the
	// caller, which merges several chromosomes into one dataset.
	Combo
)

// Runner runs an external program in dir and waits for it to exit.
type Runner interface {
	Run(dir, name string, args ...string) error
}

// ExecRunner runs programs with os/exec, passing their output through.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// Simulator invokes PBSIM3 in whole genome shotgun, sample-based mode.
type Simulator struct {
	Dir        string // PBSIM3 installation directory, used as the working directory
	Binary     string // simulator executable, relative to Dir unless absolute
	ProfileId  string
	SampleFile string
	Depth      int
	Runner     Runner
}

// New builds a Simulator from the simulator settings of cfg.
func New(cfg config.Config) *Simulator {
	return &Simulator{
		Dir:        cfg.Pbsim3Dir,
		Binary:     cfg.Pbsim3Binary,
		ProfileId:  cfg.SampleProfileId,
		SampleFile: cfg.SampleFile,
		Depth:      cfg.Depth,
		Runner:     ExecRunner{},
	}
}

// ProfileCached reports whether PBSIM3 already holds the sample profile for ProfileId.
func (s *Simulator) ProfileCached() bool {
	_, err := os.Stat(filepath.Join(s.Dir, fmt.Sprintf("sample_profile_%s.fastq", s.ProfileId)))
	return err == nil
}

// Args returns the simulator arguments for one run. The sample file is only passed
// when the profile must be created from it.
func (s *Simulator) Args(genome, prefix string) ([]string, error) {
	if len(s.ProfileId) == 0 {
		return nil, ErrProfileUnspecified
	}
	args := []string{
		"--strategy", "wgs",
		"--method", "sample",
		"--depth", strconv.Itoa(s.Depth),
		"--genome", genome,
	}
	if !s.ProfileCached() {
		if info, err := os.Stat(s.SampleFile); err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %q", ErrSampleMissing, s.SampleFile)
		}
		args = append(args, "--sample", s.SampleFile)
	}
	args = append(args, "--sample-profile-id", s.ProfileId, "--prefix", prefix)
	return args, nil
}

func (s *Simulator) binaryPath() (string, error) {
	if filepath.IsAbs(s.Binary) {
		return s.Binary, nil
	}
	return filepath.Abs(filepath.Join(s.Dir, s.Binary))
}

// Simulate runs the simulator once on genome with output prefix rawDir/key, then
// annotates the reads with their provenance on chromosome chr. In Combo mode the
// path of the annotated read file is returned; in Indexed mode it is left on disk
// and the returned path is empty.
func (s *Simulator) Simulate(key, genome, rawDir string, chr int, mode Mode) (string, error) {
	var err error
	rawDir, err = filepath.Abs(rawDir)
	if err != nil {
		return "", err
	}
	genome, err = filepath.Abs(genome)
	if err != nil {
		return "", err
	}

	args, err := s.Args(genome, filepath.Join(rawDir, key))
	if err != nil {
		return "", err
	}
	bin, err := s.binaryPath()
	if err != nil {
		return "", err
	}
	err = s.Runner.Run(s.Dir, bin, args...)
	if err != nil {
		return "", fmt.Errorf("pbsim on %s: %w", genome, err)
	}

	fastaPath, err := HandleOutput(key, rawDir, chr)
	if err != nil {
		return "", err
	}
	if mode == Combo {
		return fastaPath, nil
	}
	return "", nil
}

// HandleOutput renames the {key}_0001 artifacts PBSIM3 writes to rawDir, discards the
// reference copy, annotates the reads from the MAF truth file, and removes the MAF.
// It returns the path of the annotated FASTA file.
func HandleOutput(key, rawDir string, chr int) (string, error) {
	fastqPath := filepath.Join(rawDir, key+".fastq")
	mafPath := filepath.Join(rawDir, key+".maf")

	err := os.Rename(filepath.Join(rawDir, key+"_0001.fastq"), fastqPath)
	if err != nil {
		return "", err
	}
	err = os.Rename(filepath.Join(rawDir, key+"_0001.maf"), mafPath)
	if err != nil {
		return "", err
	}
	err = os.Remove(filepath.Join(rawDir, key+"_0001.ref"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	log.Println("Adding positions for training...")
	fastaPath, err := annotate.MafSource{TruthPath: mafPath, Chr: chr}.Annotate(fastqPath)
	if err != nil {
		return "", err
	}

	log.Println("Removing the MAF file...")
	err = os.Remove(mafPath)
	if err != nil {
		return "", err
	}
	return fastaPath, nil
}
