package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/linerange/pkg/suggest"
	"github.com/mfridman/xflag"
)

const undefinedFlagPrefix = "flag provided but not defined: "

// Parse parses args for cmd. It returns an error if parsing fails.
//
// Flags may appear before, between or after positional arguments. Everything after a "--"
// argument is passed through as positional arguments untouched. If args contain a help flag
// (-h, -help or their double-dash forms) the usage text is written to the flag set's output and
// [flag.ErrHelp] is returned.
//
// Once parsing is complete, the command is ready to be executed with the [Run] function.
func Parse(cmd *Command, args []string) error {
	if cmd == nil {
		return errors.New("failed to parse: command is nil")
	}
	if err := validateCommand(cmd); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if cmd.Flags == nil {
		cmd.Flags = flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	}
	cmd.state = &State{cmd: cmd}

	// Split args at the -- delimiter if present
	argsToParse := args
	var remainingArgs []string
	for i, arg := range args {
		if arg == "--" {
			argsToParse = args[:i]
			remainingArgs = args[i+1:]
			break
		}
	}

	// Capture help requests before any flag parsing errors
	for _, arg := range argsToParse {
		if arg == "-h" || arg == "--h" || arg == "-help" || arg == "--help" {
			return cmd.showHelp()
		}
	}

	// Parse into a silent copy so the flag package does not print its own usage on errors. The
	// copy shares flag.Value with the command's flag set.
	fset := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	cmd.Flags.VisitAll(func(f *flag.Flag) {
		fset.Var(f.Value, f.Name, f.Usage)
	})
	if err := xflag.ParseToEnd(fset, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", cmd.Name, withFlagSuggestions(err, cmd.Flags))
	}

	if err := checkRequiredFlags(cmd, fset, argsToParse); err != nil {
		return err
	}

	finalArgs := append([]string(nil), fset.Args()...)
	finalArgs = append(finalArgs, remainingArgs...)
	cmd.state.Args = finalArgs
	return nil
}

// withFlagSuggestions extends an undefined flag error with the closest defined flag names.
func withFlagSuggestions(err error, fset *flag.FlagSet) error {
	name, ok := strings.CutPrefix(err.Error(), undefinedFlagPrefix)
	if !ok {
		return err
	}
	suggestions := suggest.Flags(name, fset, 3)
	if len(suggestions) == 0 {
		return err
	}
	return fmt.Errorf("%w. Did you mean one of these?\n\t%s", err, strings.Join(suggestions, "\n\t"))
}

// checkRequiredFlags inspects the args for the presence of every required flag. Flags with
// default values are not considered set unless they appear on the command line.
func checkRequiredFlags(cmd *Command, fset *flag.FlagSet, args []string) error {
	var missingFlags []string
	for _, flagMetadata := range cmd.FlagsMetadata {
		if !flagMetadata.Required {
			continue
		}
		if fset.Lookup(flagMetadata.Name) == nil {
			return fmt.Errorf("command %q: internal error: required flag %s not found in flag set",
				cmd.Name, formatFlagName(flagMetadata.Name))
		}
		found := false
		for _, arg := range args {
			if arg == "-"+flagMetadata.Name || arg == "--"+flagMetadata.Name ||
				strings.HasPrefix(arg, "-"+flagMetadata.Name+"=") ||
				strings.HasPrefix(arg, "--"+flagMetadata.Name+"=") {
				found = true
				break
			}
		}
		if !found {
			missingFlags = append(missingFlags, formatFlagName(flagMetadata.Name))
		}
	}
	if len(missingFlags) == 1 {
		return fmt.Errorf("command %q: required flag %q not set", cmd.Name, missingFlags[0])
	}
	if len(missingFlags) > 1 {
		return fmt.Errorf("command %q: required flags %q not set", cmd.Name, strings.Join(missingFlags, ", "))
	}
	return nil
}

func validateCommand(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command has no name")
	}
	if strings.ContainsAny(cmd.Name, " \t\n") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", cmd.Name)
	}
	if cmd.Exec == nil {
		return &NoExecError{Command: cmd}
	}
	return nil
}

func formatFlagName(name string) string {
	return "-" + name
}
