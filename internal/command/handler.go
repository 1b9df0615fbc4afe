package command

import (
	"context"
	"fmt"
	"strings"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// HandlerConfig configures the shell.
type HandlerConfig struct {
	// ShellName prefixes "command not found" and cd errors.
	ShellName           string
	DisableAuditLogging bool
}

// Handler routes command lines to the canned shell builtins.
type Handler struct {
	fs  *FS
	cfg HandlerConfig
}

// NewHandler constructs a command handler over fs.
func NewHandler(fs *FS, cfg HandlerConfig) *Handler {
	if cfg.ShellName == "" {
		cfg.ShellName = schema.DefaultShellName
	}
	if fs == nil {
		fs = NewFS(schema.DefaultHome)
	}
	return &Handler{fs: fs, cfg: cfg}
}

// FS returns the virtual filesystem the handler reads.
func (h *Handler) FS() *FS {
	return h.fs
}

// Dispatch interprets one line. It never fails: every bad input yields
// shell-style text. History is recorded by the caller.
func (h *Handler) Dispatch(ctx context.Context, input string, session *core.SessionState) core.Result {
	cmd, ok := Parse(input)
	if !ok {
		return core.Result{}
	}
	if session == nil {
		session = &core.SessionState{Cwd: h.fs.Home(), Home: h.fs.Home()}
	}
	log := logx.Ctx(ctx)
	if !h.cfg.DisableAuditLogging {
		log.Debug("audit command", "command", cmd.Raw, "cwd", session.Cwd)
	}
	log = log.With("command", cmd.Name, "args", len(cmd.Args))
	log.Info("command request")

	switch cmd.Name {
	case "help":
		return text(helpText)
	case "whoami":
		return text(whoamiText)
	case "date":
		return text(dateText)
	case "uptime":
		return text(uptimeText)
	case "top":
		return text(topText)
	case "ps":
		return text(psText)
	case "neofetch":
		return text(neofetchText)
	case "clear":
		return core.Result{Signal: schema.SignalClearScreen}
	case "history":
		return text(h.history(session))
	case "ls":
		return text(h.list(cmd, session))
	case "cat":
		return text(h.cat(cmd, session))
	case "cd":
		return h.cd(ctx, cmd, session)
	case "pwd":
		return text(session.Cwd)
	case "ascii":
		return text(asciiFor(cmd.Args))
	case "matrix":
		return text(matrixEffect)
	case "telnet":
		return text(telnet(cmd.Args))
	case "nc", "netcat":
		return text(netcat(cmd.Args))
	case "echo":
		return text(echo(cmd.Args))
	case "sudo":
		if cmd.ArgsEqual("rm", "-rf", "/") {
			log.Warn("command sudo panic requested")
			return core.Result{Signal: schema.SignalSystemPanic}
		}
		return text(sudoDenied)
	case "make":
		if cmd.Arg(0) == "coffee" {
			return text(coffeeText)
		}
		return text(makeFailed)
	case "hack":
		return text(hackText)
	case "exit", "logout":
		log.Info("command exit requested")
		return core.Result{Output: "logout", Signal: schema.SignalExit}
	default:
		log.Warn("command rejected", "reason", "not found")
		return text(fmt.Sprintf("%s: %s: command not found", h.cfg.ShellName, cmd.Name))
	}
}

func text(s string) core.Result {
	return core.Result{Output: s}
}

func (h *Handler) history(session *core.SessionState) string {
	entries := session.History.Entries()
	if len(entries) == 0 {
		return "No commands in history yet."
	}
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("  %d  %s", i+1, entry))
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) list(cmd Command, session *core.SessionState) string {
	targets := cmd.Args
	if len(targets) == 0 {
		targets = []string{"."}
	}
	var out []string
	for _, target := range targets {
		entries, ok := h.fs.List(h.fs.Resolve(session.Cwd, target))
		if !ok {
			out = append(out, fmt.Sprintf("ls: cannot access '%s': No such file or directory", target))
			continue
		}
		listing := strings.Join(entries, "  ")
		if len(targets) > 1 && h.fs.IsDir(h.fs.Resolve(session.Cwd, target)) {
			listing = target + ":\n" + listing
		}
		out = append(out, listing)
	}
	return strings.Join(out, "\n")
}

func (h *Handler) cat(cmd Command, session *core.SessionState) string {
	if len(cmd.Args) == 0 {
		return "cat: missing file operand"
	}
	var out []string
	for _, file := range cmd.Args {
		content, found, isDir := h.fs.ReadFile(h.fs.Resolve(session.Cwd, file))
		if !found && !strings.Contains(file, "/") {
			// Project pages are readable by bare name from anywhere.
			content, found, isDir = h.fs.ReadFile(h.fs.Home() + "/projects/" + file)
		}
		switch {
		case !found:
			out = append(out, fmt.Sprintf("cat: %s: No such file or directory", file))
		case isDir:
			out = append(out, fmt.Sprintf("cat: %s: Is a directory", file))
		default:
			out = append(out, content)
		}
	}
	return strings.Join(out, "\n")
}

func (h *Handler) cd(ctx context.Context, cmd Command, session *core.SessionState) core.Result {
	if len(cmd.Args) > 1 {
		return text(fmt.Sprintf("%s: cd: too many arguments", h.cfg.ShellName))
	}
	target := cmd.Arg(0)
	abs := h.fs.Resolve(session.Cwd, target)
	_, found, isDir := h.fs.ReadFile(abs)
	switch {
	case !found:
		return text(fmt.Sprintf("%s: cd: %s: No such file or directory", h.cfg.ShellName, target))
	case !isDir:
		return text(fmt.Sprintf("%s: cd: %s: Not a directory", h.cfg.ShellName, target))
	}
	session.Cwd = abs
	logx.Ctx(ctx).Debug("command cd completed", "cwd", abs)
	return core.Result{Signal: schema.SignalDirectoryChanged}
}

func echo(args []string) string {
	if len(args) == 0 {
		return ""
	}
	if args[0] == "$USER" {
		return userCard
	}
	return strings.Join(args, " ")
}

func telnet(args []string) string {
	host := "localhost"
	if len(args) > 0 {
		host = args[0]
	}
	if host == "localhost" || host == "127.0.0.1" {
		return telnetSession
	}
	return fmt.Sprintf("telnet: could not resolve %s/telnet: Name or service not known", host)
}

func netcat(args []string) string {
	if len(args) < 2 {
		return "usage: nc [-options] hostname port"
	}
	host, port := args[0], args[1]
	if strings.Contains(host, "hacker") && port == "1337" {
		return hackerBanner
	}
	return fmt.Sprintf("nc: connect to %s port %s: Connection refused", host, port)
}
