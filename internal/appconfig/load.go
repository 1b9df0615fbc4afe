package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pkt.systems/termfolio/schema"
)

// EnvPrefix prefixes environment overrides, e.g. TERMFOLIO_HTTP_ADDR.
const EnvPrefix = "TERMFOLIO"

// Load reads configuration from path, or DefaultConfigPath when path is
// empty. A missing file yields the defaults. Environment variables named
// after the dotted keys override both.
func Load(path string) (Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	defaults, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}
	v, err := newViper(defaults)
	if err != nil {
		return Config{}, err
	}

	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	if file != nil {
		if err := checkVersion(file); err != nil {
			return Config{}, err
		}
		if err := v.MergeConfigMap(file.AllSettings()); err != nil {
			return Config{}, fmt.Errorf("merge %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	expandConfigEnv(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultConfigPath()
}

// newViper seeds a viper instance with every default key so that
// environment overrides and partial files resolve against them.
func newViper(defaults Config) (*viper.Viper, error) {
	raw, err := yaml.Marshal(defaults)
	if err != nil {
		return nil, err
	}
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

// readFile returns nil when path does not exist.
func readFile(path string) (*viper.Viper, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")
	if err := file.ReadInConfig(); err != nil {
		return nil, err
	}
	return file, nil
}

func checkVersion(file *viper.Viper) error {
	if !file.IsSet("config_version") {
		return fmt.Errorf("config_version is required; expected %d", CurrentConfigVersion)
	}
	if got := file.GetInt("config_version"); got != CurrentConfigVersion {
		return fmt.Errorf("unsupported config_version %d; expected %d", got, CurrentConfigVersion)
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Shell.Width < 1 || cfg.Shell.Height < 2 {
		return fmt.Errorf("shell.width must be >= 1 and shell.height >= 2")
	}
	if cfg.Shell.Home != "" && !strings.HasPrefix(cfg.Shell.Home, "/") {
		return fmt.Errorf("shell.home must be an absolute path")
	}
	if cfg.Boot.Speed < 0 {
		return fmt.Errorf("boot.speed must not be negative")
	}
	if cfg.HTTP.SessionTTLHours < 0 {
		return fmt.Errorf("http.session_ttl_hours must not be negative")
	}
	if _, ok := schema.NormalizeThemeName(cfg.SSH.Theme); !ok {
		return fmt.Errorf("unsupported ssh.theme %q", cfg.SSH.Theme)
	}
	return validateHTTPConfig(cfg.HTTP)
}

func validateHTTPConfig(cfg HTTPConfig) error {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL != "" {
		parsed, err := url.Parse(baseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("http.base_url must include scheme and host (e.g. https://example.com)")
		}
	}
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath != "" {
		if strings.Contains(basePath, "://") {
			return fmt.Errorf("http.base_path must be a path prefix, not a URL")
		}
		if strings.ContainsAny(basePath, "?#") {
			return fmt.Errorf("http.base_path must not include query or fragment")
		}
	}
	return nil
}

func expandConfigEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.SSH.HostKeyPath = expandEnv(cfg.SSH.HostKeyPath)
	cfg.HTTP.BaseURL = expandEnv(cfg.HTTP.BaseURL)
	cfg.HTTP.BasePath = expandEnv(cfg.HTTP.BasePath)
}

func expandEnv(value string) string {
	if value == "" {
		return value
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := lookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

func lookupEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	switch key {
	case "UID":
		return fmt.Sprintf("%d", os.Getuid()), true
	case "GID":
		return fmt.Sprintf("%d", os.Getgid()), true
	}
	return "", false
}

// WriteDefault writes the default config to path, or DefaultConfigPath
// when path is empty, and returns the path written.
func WriteDefault(path string, overwrite bool) (string, error) {
	path, err := resolvePath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return "", fmt.Errorf("config already exists at %s", path)
	}
	cfg, err := DefaultConfig()
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o600)
}
