package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/termfolio"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/appconfig"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/tui"
)

const sizePollInterval = 250 * time.Millisecond

func newLocalCmd() *cobra.Command {
	var cfgPath string
	var logFile string
	var noBoot bool
	var theme string
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Run the portfolio shell on this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			if theme != "" {
				name, ok := schema.NormalizeThemeName(theme)
				if !ok {
					return fmt.Errorf("unknown theme %q (available: %s)", theme, themeList())
				}
				cfg.SSH.Theme = string(name)
			}
			inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
			if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
				return errors.New("local mode requires a terminal")
			}

			// Log lines would tear the screen; they go to a file or nowhere.
			logger, closeLog, err := localLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()
			ctx := pslog.ContextWithLogger(cmd.Context(), logger)
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
			defer stop()

			shell := cfg.ShellSettings()
			size := func() (int, int, error) { return term.GetSize(outFd) }
			if width, height, err := size(); err == nil {
				shell.Width, shell.Height = width, height
			}
			factory, err := termfolio.NewTerminalFactory(shell, cfg.Boot.Speed)
			if err != nil {
				return err
			}

			id := core.NewSessionID()
			ctx = logx.ContextWithSessionLogger(ctx, logx.WithSessionTransport(ctx, id, "local"), id, "local")
			ui := tui.NewSession(os.Stdin, os.Stdout, schema.ThemeName(cfg.SSH.Theme))
			shellTerm, err := factory(ctx, id, ui.Renderer())
			if err != nil {
				return err
			}
			defer shellTerm.Close()

			state, err := term.MakeRaw(inFd)
			if err != nil {
				return fmt.Errorf("raw mode: %w", err)
			}
			defer func() { _ = term.Restore(inFd, state) }()

			boot := cfg.Boot.Enabled && !noBoot
			logx.Ctx(ctx).Info("local session start", "width", shell.Width, "height", shell.Height, "boot", boot)
			return ui.Run(ctx, shellTerm, watchSize(ctx, size, shell.Width, shell.Height, sizePollInterval), boot)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
	cmd.Flags().BoolVar(&noBoot, "no-boot", false, "skip the boot sequence")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme ("+themeList()+")")
	return cmd
}

func localLogger(path string) (pslog.Logger, func(), error) {
	if path == "" {
		return pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true}), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(file),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured, NoColor: true}),
	)
	return logger, func() { _ = file.Close() }, nil
}

func themeList() string {
	names := schema.AvailableThemes()
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, string(name))
	}
	return strings.Join(out, ", ")
}

// watchSize polls size and reports changes until ctx ends.
func watchSize(ctx context.Context, size func() (int, int, error), width, height int, interval time.Duration) <-chan tui.Window {
	out := make(chan tui.Window, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			w, h, err := size()
			if err != nil || (w == width && h == height) {
				continue
			}
			width, height = w, h
			select {
			case out <- tui.Window{Width: w, Height: h}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
