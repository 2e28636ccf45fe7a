package strand

import "fmt"

const (
	Forward byte = '+'
	Reverse byte = '-'
)

// Symbol converts a strand flag to the single character used in read descriptions.
func Symbol(pos bool) byte {
	if pos {
		return Forward
	}
	return Reverse
}

// Parse reads a strand from either its symbol ("+", "-") or the literal
// "forward"/"reverse" tokens written by some read simulators.
func Parse(s string) (bool, error) {
	switch s {
	case "+", "forward":
		return true, nil
	case "-", "reverse":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized strand: %q", s)
}
