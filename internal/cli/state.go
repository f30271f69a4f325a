package cli

import (
	"flag"
	"fmt"
	"io"
)

// State is handed to a command's Exec function. It holds the positional arguments left after flag
// parsing and the standard streams. Use [GetFlag] to retrieve flag values by name.
type State struct {
	// Args contains the remaining arguments after flag parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	cmd *Command
}

// GetFlag retrieves a flag value by name, with type inference. Example usage:
//
//	number := GetFlag[bool](state, "number")
//	path := GetFlag[string](state, "file")
//
// If the flag isn't found or has a different type, it panics with an error. A missing flag is a
// programming error in the command definition, not a user error.
func GetFlag[T any](s *State, name string) T {
	var zero T
	if s == nil || s.cmd == nil || s.cmd.Flags == nil {
		panic(fmt.Errorf("internal error: flag %s requested from an unparsed command", formatFlagName(name)))
	}
	f := s.cmd.Flags.Lookup(name)
	if f == nil {
		panic(fmt.Errorf("internal error: flag %s not found in command %q flag set",
			formatFlagName(name), s.cmd.Name))
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		panic(fmt.Errorf("internal error: flag %s in command %q does not implement flag.Getter",
			formatFlagName(name), s.cmd.Name))
	}
	value := getter.Get()
	v, ok := value.(T)
	if !ok {
		panic(fmt.Errorf("internal error: type mismatch for flag %s in command %q: registered %T, requested %T",
			formatFlagName(name), s.cmd.Name, value, zero))
	}
	return v
}
