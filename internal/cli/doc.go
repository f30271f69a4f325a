// Package cli is a small framework for single-command programs: a [Command] declares its flags,
// usage text and execution function, [Parse] reads arguments with flags allowed anywhere on the
// line, and [Run] executes the command with its standard streams.
package cli
