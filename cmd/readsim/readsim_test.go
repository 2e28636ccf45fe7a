package main

import "testing"

func TestCommandMap(t *testing.T) {
	m := commandMap()
	if len(m) != len(SubCommands) {
		t.Errorf("duplicate subcommand names: %d names for %d subcommands", len(m), len(SubCommands))
	}
	for _, name := range []string{"simulate", "combo", "generate", "run", "demand", "annotate", "qc"} {
		if m[name] == nil {
			t.Errorf("missing subcommand %s", name)
		}
	}
}
