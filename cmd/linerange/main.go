// Command linerange prints a range of lines from a file or standard input.
//
//	linerange 2...5 -file notes.txt
//	git log --oneline | linerange ..11
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/mfridman/linerange/internal/cli"
	"github.com/mfridman/linerange/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env, err := config.Load()
	if err != nil {
		printError(stderr, config.ColorAuto, err)
		return 1
	}
	root := newRootCommand(env)
	root.Flags.SetOutput(stdout)

	err = cli.ParseAndRun(ctx, root, args, &cli.RunOptions{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	printError(stderr, colorMode(root, env), err)
	return 1
}
