package cli

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, s *State) error { return nil }

// newTestCommand returns a command shaped like a line filter:
//
//	filter [flags] <expr>
//	  --number --verbose --file=path --color=auto
func newTestCommand() *Command {
	return &Command{
		Name:  "filter",
		Usage: "filter [flags] <expr>",
		Flags: FlagsFunc(func(fset *flag.FlagSet) {
			fset.Bool("number", false, "number output lines")
			fset.Bool("verbose", false, "enable verbose mode")
			fset.String("file", "", "input file")
			fset.String("color", "auto", "colorize diagnostics")
			fset.SetOutput(new(bytes.Buffer))
		}),
		Exec: noop,
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("error on parse with no exec", func(t *testing.T) {
		t.Parallel()
		err := Parse(&Command{Name: "foo"}, nil)
		require.Error(t, err)
		var noExecErr *NoExecError
		require.ErrorAs(t, err, &noExecErr)
		assert.ErrorContains(t, err, `command "foo" has no execution function`)
	})
	t.Run("parsing errors", func(t *testing.T) {
		t.Parallel()

		err := Parse(nil, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "command is nil")

		err = Parse(&Command{Exec: noop}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "command has no name")
	})
	t.Run("space in command name", func(t *testing.T) {
		t.Parallel()
		err := Parse(&Command{Name: "line range", Exec: noop}, nil)
		require.Error(t, err)
		require.ErrorContains(t, err, `command name "line range" contains spaces, must be a single word`)
	})
	t.Run("nil flags", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{Name: "root", Exec: noop}
		err := Parse(cmd, []string{"a", "b"})
		require.NoError(t, err)
		require.NotNil(t, cmd.Flags)
		assert.Equal(t, []string{"a", "b"}, cmd.state.Args)
	})
	t.Run("default flag usage", func(t *testing.T) {
		t.Parallel()

		by := bytes.NewBuffer(nil)
		err := Parse(&Command{
			Name:  "root",
			Usage: "root [flags]",
			Flags: FlagsFunc(func(fset *flag.FlagSet) {
				fset.SetOutput(by)
			}),
			Exec: noop,
		}, []string{"--help"})
		require.Error(t, err)
		require.ErrorIs(t, err, flag.ErrHelp)
		require.Contains(t, by.String(), "Usage:")
		require.Contains(t, by.String(), "root [flags]")
	})
	t.Run("help flag anywhere", func(t *testing.T) {
		t.Parallel()
		for _, args := range [][]string{
			{"-h"},
			{"--help"},
			{"2..5", "-help"},
			{"--number", "--h", "--unknown"},
		} {
			err := Parse(newTestCommand(), args)
			require.ErrorIs(t, err, flag.ErrHelp, "args %q", args)
		}
	})
	t.Run("help after delimiter is an argument", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		err := Parse(cmd, []string{"--", "-h"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-h"}, cmd.state.Args)
	})
	t.Run("no flags", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		err := Parse(cmd, []string{"2..5"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2..5"}, cmd.state.Args)
		assert.False(t, GetFlag[bool](cmd.state, "number"))
		assert.Equal(t, "auto", GetFlag[string](cmd.state, "color"))
	})
	t.Run("flags before and after args", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		err := Parse(cmd, []string{"--number", "..4", "--file", "in.txt", "-verbose"})
		require.NoError(t, err)
		assert.Equal(t, []string{"..4"}, cmd.state.Args)
		assert.True(t, GetFlag[bool](cmd.state, "number"))
		assert.True(t, GetFlag[bool](cmd.state, "verbose"))
		assert.Equal(t, "in.txt", GetFlag[string](cmd.state, "file"))
	})
	t.Run("flags and args interleaved", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		err := Parse(cmd, []string{"a", "--number", "b", "--color=never"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, cmd.state.Args)
		assert.Equal(t, "never", GetFlag[string](cmd.state, "color"))
	})
	t.Run("end of options delimiter", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		err := Parse(cmd, []string{"--verbose", "--", "3..", "--number"})
		require.NoError(t, err)
		assert.Equal(t, []string{"3..", "--number"}, cmd.state.Args)
		assert.True(t, GetFlag[bool](cmd.state, "verbose"))
		assert.False(t, GetFlag[bool](cmd.state, "number"))
	})
	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		err := Parse(newTestCommand(), []string{"--unknown", "1"})
		require.Error(t, err)
		require.Contains(t, err.Error(), `command "filter": flag provided but not defined: -unknown`)
		assert.NotContains(t, err.Error(), "Did you mean")
	})
	t.Run("unknown flag suggestion", func(t *testing.T) {
		t.Parallel()
		err := Parse(newTestCommand(), []string{"1", "--numbr"})
		require.Error(t, err)
		require.Contains(t, err.Error(), `flag provided but not defined: -numbr. Did you mean one of these?`)
		require.Contains(t, err.Error(), "\t-number")
	})
	t.Run("invalid flag value", func(t *testing.T) {
		t.Parallel()
		err := Parse(newTestCommand(), []string{"--number=not-a-bool"})
		require.Error(t, err)
		require.ErrorContains(t, err, `command "filter": invalid boolean value "not-a-bool" for -number: parse error`)
	})
	t.Run("required flag", func(t *testing.T) {
		t.Parallel()
		newCmd := func() *Command {
			cmd := newTestCommand()
			cmd.FlagsMetadata = []FlagMetadata{
				{Name: "file", Required: true},
				{Name: "color", Required: true},
				{Name: "number", Required: false},
			}
			return cmd
		}
		{
			err := Parse(newCmd(), []string{"1"})
			require.Error(t, err)
			require.ErrorContains(t, err, `command "filter": required flags "-file, -color" not set`)
		}
		{
			err := Parse(newCmd(), []string{"1", "--file", "x"})
			require.Error(t, err)
			require.ErrorContains(t, err, `command "filter": required flag "-color" not set`)
		}
		{
			cmd := newCmd()
			err := Parse(cmd, []string{"1", "--file=x", "-color", "never"})
			require.NoError(t, err)
			assert.Equal(t, "x", GetFlag[string](cmd.state, "file"))
		}
	})
	t.Run("unknown required flag set by cli author", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{
			Name: "root",
			FlagsMetadata: []FlagMetadata{
				{Name: "some-other-flag", Required: true},
			},
			Exec: noop,
		}
		err := Parse(cmd, nil)
		require.Error(t, err)
		require.ErrorContains(t, err, `command "root": internal error: required flag -some-other-flag not found in flag set`)
	})
	t.Run("reparse resets args", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		require.NoError(t, Parse(cmd, []string{"1", "2"}))
		require.NoError(t, Parse(cmd, []string{"3"}))
		assert.Equal(t, []string{"3"}, cmd.state.Args)
	})
}
