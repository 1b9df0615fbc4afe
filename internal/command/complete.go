package command

import (
	"sort"
	"strings"

	"pkt.systems/termfolio/core"
)

var commandNames = []string{
	"ascii", "cat", "cd", "clear", "date", "echo", "exit", "hack", "help",
	"history", "logout", "ls", "make", "matrix", "nc", "neofetch", "netcat",
	"ps", "pwd", "sudo", "telnet", "top", "uptime", "whoami",
}

// Completer proposes command names for the first word and virtual paths
// (or topic names for ascii and make) for later words.
type Completer struct {
	fs *FS
}

// NewCompleter returns a completer over fs.
func NewCompleter(fs *FS) *Completer {
	return &Completer{fs: fs}
}

// Complete returns replacement candidates for the trailing token of input.
func (c *Completer) Complete(input, cwd string) core.CompletionResult {
	idx := strings.LastIndexAny(input, " \t")
	if idx < 0 {
		return result(matchPrefix(commandNames, input))
	}
	token := input[idx+1:]
	fields := strings.Fields(input[:idx])
	if len(fields) == 0 {
		return result(matchPrefix(commandNames, token))
	}
	switch fields[0] {
	case "ascii":
		topics := append([]string(nil), asciiTopics...)
		sort.Strings(topics)
		return result(matchPrefix(topics, token))
	case "make":
		return result(matchPrefix([]string{"coffee"}, token))
	}
	return result(c.paths(token, cwd, fields[0] == "cd"))
}

func (c *Completer) paths(token, cwd string, dirsOnly bool) []string {
	dirPart, base := "", token
	if slash := strings.LastIndex(token, "/"); slash >= 0 {
		dirPart, base = token[:slash+1], token[slash+1:]
	}
	dir := cwd
	if dirPart != "" {
		dir = c.fs.Resolve(cwd, strings.TrimSuffix(dirPart, "/"))
		if dirPart == "/" {
			dir = "/"
		}
	}
	if !c.fs.IsDir(dir) {
		return nil
	}
	entries, _ := c.fs.List(dir)
	var out []string
	for _, entry := range entries {
		if dirsOnly && !strings.HasSuffix(entry, "/") {
			continue
		}
		if strings.HasPrefix(entry, base) {
			out = append(out, dirPart+entry)
		}
	}
	return out
}

func matchPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}

func result(candidates []string) core.CompletionResult {
	switch len(candidates) {
	case 0:
		return core.CompletionResult{Kind: core.CompletionNone}
	case 1:
		return core.CompletionResult{Kind: core.CompletionSingle, Candidates: candidates}
	default:
		return core.CompletionResult{Kind: core.CompletionMultiple, Candidates: candidates}
	}
}
