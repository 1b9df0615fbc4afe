package command

import (
	"slices"
	"strings"
)

// Command represents a parsed shell line.
type Command struct {
	Name string
	Args []string
	Raw  string
}

// Parse splits a line into a command name and whitespace separated args.
// It reports false for blank input. Names are case sensitive like a real shell.
func Parse(input string) (Command, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{
		Name: fields[0],
		Args: fields[1:],
		Raw:  strings.TrimSpace(input),
	}, true
}

// Arg returns the i-th argument or "" when absent.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// ArgsEqual reports whether the arguments are exactly want.
func (c Command) ArgsEqual(want ...string) bool {
	return slices.Equal(c.Args, want)
}
