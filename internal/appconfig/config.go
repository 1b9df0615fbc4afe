package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/termfolio/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	Shell         ShellConfig   `mapstructure:"shell" yaml:"shell"`
	Boot          BootConfig    `mapstructure:"boot" yaml:"boot"`
	HTTP          HTTPConfig    `mapstructure:"http" yaml:"http"`
	SSH           SSHConfig     `mapstructure:"ssh" yaml:"ssh"`
	Logging       LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// ShellConfig describes the simulated user, host and terminal defaults.
type ShellConfig struct {
	User        string `mapstructure:"user" yaml:"user"`
	Host        string `mapstructure:"host" yaml:"host"`
	Home        string `mapstructure:"home" yaml:"home"`
	ShellName   string `mapstructure:"shell_name" yaml:"shell_name"`
	MaxLines    int    `mapstructure:"max_lines" yaml:"max_lines"`
	HistorySize int    `mapstructure:"history_size" yaml:"history_size"`
	Width       int    `mapstructure:"width" yaml:"width"`
	Height      int    `mapstructure:"height" yaml:"height"`
}

// BootConfig controls the boot animation.
type BootConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Speed multiplies every animation delay; 0 plays instantly.
	Speed float64 `mapstructure:"speed" yaml:"speed"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr            string `mapstructure:"addr" yaml:"addr"`
	SessionCookie   string `mapstructure:"session_cookie" yaml:"session_cookie"`
	SessionTTLHours int    `mapstructure:"session_ttl_hours" yaml:"session_ttl_hours"`
	BaseURL         string `mapstructure:"base_url" yaml:"base_url"`
	BasePath        string `mapstructure:"base_path" yaml:"base_path"`
	HubHistory      int    `mapstructure:"hub_history" yaml:"hub_history"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Addr        string `mapstructure:"addr" yaml:"addr"`
	HostKeyPath string `mapstructure:"host_key_path" yaml:"host_key_path"`
	Theme       string `mapstructure:"theme" yaml:"theme"`
}

// LoggingConfig controls audit logging behavior.
type LoggingConfig struct {
	DisableAuditTrails bool `mapstructure:"disable_audit_trails" yaml:"disable_audit_trails"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Shell: ShellConfig{
			User:        schema.DefaultUser,
			Host:        schema.DefaultHost,
			Home:        schema.DefaultHome,
			ShellName:   schema.DefaultShellName,
			MaxLines:    schema.DefaultBufferMaxLines,
			HistorySize: schema.DefaultHistorySize,
			Width:       schema.DefaultWidth,
			Height:      schema.DefaultHeight,
		},
		Boot: BootConfig{
			Enabled: true,
			Speed:   1,
		},
		HTTP: HTTPConfig{
			Addr:            ":27580",
			SessionCookie:   "termfolio_session",
			SessionTTLHours: 24,
			BaseURL:         "",
			BasePath:        "",
			HubHistory:      32,
		},
		SSH: SSHConfig{
			Addr:        ":27522",
			HostKeyPath: filepath.Join(home, ".termfolio", "ssh_host_key"),
			Theme:       string(schema.DefaultTheme),
		},
		Logging: LoggingConfig{
			DisableAuditTrails: false,
		},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".termfolio", "config.yaml"), nil
}

// ShellSettings converts the shell section into the terminal configuration.
func (c Config) ShellSettings() schema.ShellConfig {
	return schema.ShellConfig{
		User:                c.Shell.User,
		Host:                c.Shell.Host,
		Home:                c.Shell.Home,
		ShellName:           c.Shell.ShellName,
		MaxLines:            c.Shell.MaxLines,
		HistorySize:         c.Shell.HistorySize,
		Width:               c.Shell.Width,
		Height:              c.Shell.Height,
		DisableAuditLogging: c.Logging.DisableAuditTrails,
	}
}
