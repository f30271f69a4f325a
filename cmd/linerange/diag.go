package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mfridman/linerange/internal/cli"
	"github.com/mfridman/linerange/internal/config"
)

// colorMode returns the -color flag value, which defaults to LINERANGE_COLOR. An invalid flag
// value falls back to the environment.
func colorMode(root *cli.Command, env config.Env) config.ColorMode {
	if f := root.Flags.Lookup("color"); f != nil {
		if m, err := config.ParseColorMode(f.Value.String()); err == nil {
			return m
		}
	}
	return env.Color
}

// useColor reports whether diagnostics written to w should be colored.
func useColor(w io.Writer, mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printError writes "error: <err>" to w, with the prefix in bold red when color is enabled.
func printError(w io.Writer, mode config.ColorMode, err error) {
	prefix := color.New(color.FgRed, color.Bold)
	if useColor(w, mode) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", prefix.Sprint("error:"), err)
}
