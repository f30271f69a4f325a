package cli

import (
	"cmp"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/linerange/pkg/textutil"
)

const usageWidth = 80

// DefaultUsage renders the help text of a command: short help, usage pattern, flags sorted by
// name, and finally the long help.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}

	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	if c.Usage != "" {
		b.WriteString(c.Usage)
	} else {
		usage := c.Name
		if c.Flags != nil {
			usage += " [flags]"
		}
		b.WriteString(usage)
	}
	b.WriteString("\n\n")

	var flags []flagInfo
	if c.Flags != nil {
		c.Flags.VisitAll(func(f *flag.Flag) {
			flags = append(flags, flagInfo{
				name:   formatFlagName(f.Name),
				usage:  f.Usage,
				defval: f.DefValue,
			})
		})
	}
	if len(flags) > 0 {
		slices.SortFunc(flags, func(a, b flagInfo) int {
			return cmp.Compare(a.name, b.name)
		})
		b.WriteString("Flags:\n")
		writeFlagSection(&b, flags, c.requiredFlags())
		b.WriteRune('\n')
	}

	if c.LongHelp != "" {
		b.WriteString(strings.TrimRight(c.LongHelp, "\n"))
		b.WriteRune('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c *Command) requiredFlags() map[string]bool {
	required := make(map[string]bool)
	for _, m := range c.FlagsMetadata {
		if m.Required {
			required[formatFlagName(m.Name)] = true
		}
	}
	return required
}

// writeFlagSection writes one line per flag with its description wrapped to fit the terminal
// width, aligned after the longest flag name.
func writeFlagSection(b *strings.Builder, flags []flagInfo, required map[string]bool) {
	maxLen := 0
	for _, f := range flags {
		maxLen = max(maxLen, len(f.name))
	}
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth

	for _, f := range flags {
		description := f.usage
		if required[f.name] {
			description += " (required)"
		} else if f.defval != "" && f.defval != "false" {
			description += fmt.Sprintf(" (default: %s)", f.defval)
		}

		lines := textutil.Wrap(description, wrapWidth)
		padding := strings.Repeat(" ", maxLen-len(f.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", f.name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

type flagInfo struct {
	name   string
	usage  string
	defval string
}
