package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// NoExecError is returned when a command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.Name)
}

// Command describes a program: its name, usage text, flags and what it does when run.
type Command struct {
	// Name is a single word identifying the command in usage text and error messages.
	Name string

	// Usage provides the command's full usage pattern.
	//
	// Example: "linerange [flags] <range>"
	Usage string

	// ShortHelp is a brief description of the command's purpose, shown at the top of the help
	// text.
	ShortHelp string

	// LongHelp is printed after the flags section, verbatim. Use it for examples.
	LongHelp string

	// UsageFunc is an optional function that replaces [DefaultUsage] for this command.
	UsageFunc func(*Command) string

	// Flags holds the command's flag definitions.
	Flags *flag.FlagSet
	// FlagsMetadata is an optional list of flag information to extend the FlagSet with additional
	// metadata. This is useful for tracking required flags.
	FlagsMetadata []FlagMetadata

	// Exec defines the command's execution logic. It receives the run [State] and returns an
	// error if execution fails.
	Exec func(ctx context.Context, s *State) error

	state *State
}

// FlagMetadata holds additional metadata for a flag, such as whether it is required.
type FlagMetadata struct {
	// Name is the flag's name. Must match the flag name in the flag set.
	Name string

	// Required indicates whether the flag is required.
	Required bool
}

// FlagsFunc is a helper function that creates a new [flag.FlagSet] and applies the given function
// to it. Example usage:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("number", false, "number output lines")
//	    f.String("file", "", "input file")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

func (c *Command) usage() string {
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}
	return DefaultUsage(c)
}

// writeHelp writes the usage text to w and returns [flag.ErrHelp].
func (c *Command) writeHelp(w io.Writer) error {
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintln(w, c.usage())
	return flag.ErrHelp
}

// showHelp writes the usage text to the flag set's output, which is [os.Stderr] unless the
// command author set another one.
func (c *Command) showHelp() error {
	if c.Flags == nil {
		return c.writeHelp(nil)
	}
	return c.writeHelp(c.Flags.Output())
}
