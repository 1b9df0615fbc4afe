package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/termfolio"
	"pkt.systems/termfolio/httpapi"
	"pkt.systems/termfolio/internal/appconfig"
	"pkt.systems/termfolio/internal/version"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

//go:embed assets/banner.txt
var serveBanner string

func newServeCmd() *cobra.Command {
	var cfgPath string
	var disableAuditTrails bool
	var noBanner bool
	var httpOnly bool
	var sshOnly bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and SSH terminals",
		RunE: func(cmd *cobra.Command, args []string) error {
			logMode := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_MODE")))
			showBanner := !noBanner && logMode != "json" && logMode != "structured"
			if showBanner && serveBanner != "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), serveBanner)
			}
			logger := pslog.Ctx(cmd.Context())
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			if disableAuditTrails {
				cfg.Logging.DisableAuditTrails = true
			}

			serverCfg := toServerConfig(cfg)
			server, err := termfolio.New(serverCfg, serveOptions(httpOnly, sshOnly)...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Stop(stopCtx); err != nil {
					logger.Warn("server stop failed", "err", err)
				}
			}()
			logger.Info("termfolio starting", "version", version.Current(), "audit", !cfg.Logging.DisableAuditTrails)
			if err := server.Start(ctx); err != nil {
				return err
			}
			return server.Wait()
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&disableAuditTrails, "disable-audit-trails", false, "disable audit trail logging for commands")
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "disable startup banner")
	cmd.Flags().BoolVar(&httpOnly, "http-only", false, "serve only the browser terminal")
	cmd.Flags().BoolVar(&sshOnly, "ssh-only", false, "serve only the SSH terminal")
	cmd.MarkFlagsMutuallyExclusive("http-only", "ssh-only")
	return cmd
}

func serveOptions(httpOnly, sshOnly bool) []termfolio.ServerOption {
	switch {
	case httpOnly:
		return []termfolio.ServerOption{termfolio.WithHTTP()}
	case sshOnly:
		return []termfolio.ServerOption{termfolio.WithSSH()}
	default:
		return []termfolio.ServerOption{termfolio.WithHTTP(), termfolio.WithSSH()}
	}
}

func toServerConfig(cfg appconfig.Config) termfolio.ServerConfig {
	return termfolio.ServerConfig{
		Shell:     cfg.ShellSettings(),
		BootSpeed: cfg.Boot.Speed,
		HTTP:      toHTTPConfig(cfg),
		SSH:       toSSHConfig(cfg),
	}
}

func toHTTPConfig(cfg appconfig.Config) httpapi.Config {
	return httpapi.Config{
		Addr:            cfg.HTTP.Addr,
		SessionCookie:   cfg.HTTP.SessionCookie,
		SessionTTLHours: cfg.HTTP.SessionTTLHours,
		BaseURL:         cfg.HTTP.BaseURL,
		BasePath:        cfg.HTTP.BasePath,
		HubHistory:      cfg.HTTP.HubHistory,
		Boot:            cfg.Boot.Enabled,
	}
}

func toSSHConfig(cfg appconfig.Config) sshserver.Config {
	return sshserver.Config{
		Addr:        cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKeyPath,
		Theme:       schema.ThemeName(cfg.SSH.Theme),
		Boot:        cfg.Boot.Enabled,
	}
}
