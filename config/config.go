// Package config holds the settings of a simulation run. A Config is loaded once
// from a TOML file, completed from command line flags, and passed explicitly to
// the pipeline.
package config

import (
	"errors"
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"os"
)

var (
	ErrNegativeCount    = errors.New("required dataset count must be non-negative")
	ErrInvalidDepth     = errors.New("sequencing depth must be positive")
	ErrMissingDirectory = errors.New("required directory is unset")
)

// Graph describes the external program that builds assembly graphs from simulated reads.
type Graph struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// Chromosomes holds the required dataset count for each chromosome key, split the
// same way the training and validation sets are.
type Chromosomes struct {
	Train map[string]int `toml:"train"`
	Valid map[string]int `toml:"valid"`
}

// Merged sums the train and valid counts for every key.
func (c Chromosomes) Merged() map[string]int {
	ans := make(map[string]int, len(c.Train)+len(c.Valid))
	for k, v := range c.Train {
		ans[k] += v
	}
	for k, v := range c.Valid {
		ans[k] += v
	}
	return ans
}

type Config struct {
	Pbsim3Dir       string      `toml:"pbsim3_dir"`
	Pbsim3Binary    string      `toml:"pbsim3_binary"` // relative to Pbsim3Dir unless absolute
	SampleProfileId string      `toml:"sample_profile_id"`
	SampleFile      string      `toml:"sample_file"`
	Depth           int         `toml:"sequencing_depth"`
	ProcessedExt    string      `toml:"processed_ext"`
	Graph           Graph       `toml:"graph"`
	Chromosomes     Chromosomes `toml:"chromosomes"`

	DataDir   string `toml:"data_dir"`
	ChrDir    string `toml:"chr_dir"`
	Assembler string `toml:"assembler"`
	Threads   int    `toml:"threads"`
}

// Default returns a Config with every optional field set.
func Default() Config {
	return Config{
		Pbsim3Binary: "src/pbsim",
		Depth:        30,
		ProcessedExt: "dgl",
		Assembler:    "hifiasm",
		Threads:      1,
	}
}

// Load reads a TOML config file on top of Default.
func Load(filename string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	err = toml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks settings that must hold before any simulation work starts.
// Sample profile checks belong to the simulator and happen per invocation.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir", ErrMissingDirectory)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.Depth)
	}
	_, err := c.Entries()
	return err
}
