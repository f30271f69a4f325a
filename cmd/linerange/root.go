package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/linerange"
	"github.com/mfridman/linerange/internal/cli"
	"github.com/mfridman/linerange/internal/config"
	"github.com/mfridman/linerange/internal/logging"
	"github.com/mfridman/linerange/pkg/textutil"
)

const rangeSyntax = `3        line 3 only
2..6     lines 2 to 6, exclusive of 6
2...6    lines 2 to 6, inclusive of 6
3..      line 3 onwards
..4      lines 1 to 4, exclusive of 4
...4     lines 1 to 4, inclusive of 4`

const environment = `LINERANGE_LOG_LEVEL     debug, info, warn or error (default: warn)
LINERANGE_LOG_FORMAT    text or json (default: text)
LINERANGE_COLOR         auto, always or never (default: auto)`

func newRootCommand(env config.Env) *cli.Command {
	return &cli.Command{
		Name:      "linerange",
		Usage:     "linerange [flags] <range>",
		ShortHelp: "Print the lines of a file or standard input selected by a range expression. Line numbers start at 1.",
		LongHelp: "Range syntax:\n" + textutil.Indent(rangeSyntax, "  ") +
			"\n\nEnvironment:\n" + textutil.Indent(environment, "  "),
		Flags: cli.FlagsFunc(func(f *flag.FlagSet) {
			f.String("file", "", "read input from file instead of standard input (- means standard input)")
			f.Bool("number", false, "prefix each line with its line number")
			f.Bool("verbose", false, "log diagnostics at debug level to standard error")
			f.String("color", string(env.Color), "colorize diagnostics: auto, always or never")
		}),
		Exec: func(ctx context.Context, s *cli.State) error {
			return execRange(ctx, s, env)
		},
	}
}

func execRange(_ context.Context, s *cli.State, env config.Env) error {
	if len(s.Args) != 1 {
		return cli.NewError(cli.ErrShowHelp, fmt.Errorf("expected exactly one range expression, got %d", len(s.Args)))
	}
	if _, err := config.ParseColorMode(cli.GetFlag[string](s, "color")); err != nil {
		return cli.NewError(cli.ErrShowHelp, err)
	}

	level := env.LogLevel
	if cli.GetFlag[bool](s, "verbose") {
		level = "debug"
	}
	logger := logging.New(s.Stderr, env.LogFormat, level)

	expr := s.Args[0]
	iv, err := linerange.ParseInterval(expr)
	if err != nil {
		return err
	}
	logger.Debug("parsed range", "expr", expr, "interval", iv.String(), "start", iv.Start, "end", iv.End)

	src, err := openSource(cli.GetFlag[string](s, "file"), s.Stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	n, err := linerange.SelectWith(iv, src, s.Stdout, linerange.SelectOptions{
		Number: cli.GetFlag[bool](s, "number"),
	})
	logger.Debug("selection finished", "written", n, "read", src.Count())
	return err
}

func openSource(path string, stdin io.Reader) (*linerange.Lines, error) {
	if strings.TrimSpace(path) == "" || path == "-" {
		return linerange.NewLines(stdin), nil
	}
	return linerange.Open(path)
}
