package schema

import "errors"

// ShellConfig defines identity and limits for a terminal session.
type ShellConfig struct {
	User        string
	Host        string
	Home        string
	ShellName   string
	MaxLines    int
	HistorySize int
	Width       int
	Height      int
	// DisableAuditLogging disables audit trail debug logs for commands.
	DisableAuditLogging bool
}

const (
	// DefaultBufferMaxLines is the default line buffer limit.
	DefaultBufferMaxLines = 1000
	// DefaultHistorySize is the default command history limit.
	DefaultHistorySize = 50
	DefaultWidth       = 80
	DefaultHeight      = 25
	DefaultUser        = "anonym"
	DefaultHost        = "objz"
	DefaultHome        = "/home/objz"
	DefaultShellName   = "bash"
)

// NormalizeShellConfig applies defaults and validates the config.
func NormalizeShellConfig(cfg ShellConfig) (ShellConfig, error) {
	if cfg.User == "" {
		cfg.User = DefaultUser
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Home == "" {
		cfg.Home = DefaultHome
	}
	if cfg.ShellName == "" {
		cfg.ShellName = DefaultShellName
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = DefaultBufferMaxLines
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return ShellConfig{}, ErrInvalidDimensions
	}
	if cfg.Home[0] != '/' {
		return ShellConfig{}, errors.New("shell home must be an absolute path")
	}
	return cfg, nil
}
