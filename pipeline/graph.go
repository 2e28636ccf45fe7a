package pipeline

import (
	"github.com/dasnellings/readSim/config"
	"github.com/dasnellings/readSim/pbsim"
	"strconv"
)

// GraphBuilder is the graph construction stage. Build must produce processed
// artifacts for simDir until need of them exist.
type GraphBuilder interface {
	Build(simDir, assembler string, threads, need int) error
}

// CommandGraphBuilder runs an external graph construction program as
//
//	Command Args... --sim <simDir> --asm <assembler> --threads <threads> --need <need>
type CommandGraphBuilder struct {
	Command string
	Args    []string
	Runner  pbsim.Runner
}

// NewGraphBuilder returns the CommandGraphBuilder described by cfg.
func NewGraphBuilder(cfg config.Graph) CommandGraphBuilder {
	return CommandGraphBuilder{Command: cfg.Command, Args: cfg.Args, Runner: pbsim.ExecRunner{}}
}

func (g CommandGraphBuilder) Build(simDir, assembler string, threads, need int) error {
	args := make([]string, 0, len(g.Args)+8)
	args = append(args, g.Args...)
	args = append(args,
		"--sim", simDir,
		"--asm", assembler,
		"--threads", strconv.Itoa(threads),
		"--need", strconv.Itoa(need))
	return g.Runner.Run("", g.Command, args...)
}
