package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultHost is the default GitLab host
	DefaultHost = "gitlab.com"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.yml"

	// Environment overrides, read once at startup
	EnvHost    = "GITLAB_HOST"
	EnvRoot    = "GITLAB_ROOT"
	EnvToken   = "GITLAB_TOKEN"
	EnvProject = "GITLAB_PROJECT"
)

// Config is the resolved configuration for one invocation. It is built
// once at startup and never mutated afterwards.
type Config struct {
	Host        string
	APIRoot     string
	Token       string
	TokenSource string // flag, environment, keyring or empty
	Project     string
	HTTPTimeout time.Duration
}

// FileConfig is the subset of settings the config file may carry
type FileConfig struct {
	Host        string `yaml:"host,omitempty"`
	APIRoot     string `yaml:"api_root,omitempty"`
	Project     string `yaml:"project,omitempty"`
	HTTPTimeout int    `yaml:"http_timeout,omitempty"` // seconds
}

// Overrides carries flag values into Resolve; empty fields are unset
type Overrides struct {
	Host    string
	APIRoot string
	Token   string
	Project string
}

// Resolve merges built-in defaults, the config file, environment
// variables and flags, in that order of increasing precedence, then
// derives and validates the API root.
func Resolve(flags Overrides) (*Config, error) {
	cfg := &Config{
		Host:        DefaultHost,
		HTTPTimeout: 30 * time.Second,
	}

	file, err := LoadFileConfig()
	if err != nil {
		return nil, err
	}
	if file.Host != "" {
		cfg.Host = file.Host
	}
	if file.APIRoot != "" {
		cfg.APIRoot = file.APIRoot
	}
	if file.Project != "" {
		cfg.Project = file.Project
	}
	if file.HTTPTimeout > 0 {
		cfg.HTTPTimeout = time.Duration(file.HTTPTimeout) * time.Second
	}

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvRoot); v != "" {
		cfg.APIRoot = v
	}
	if v := os.Getenv(EnvProject); v != "" {
		cfg.Project = v
	}

	if flags.Host != "" {
		cfg.Host = flags.Host
	}
	if flags.APIRoot != "" {
		cfg.APIRoot = flags.APIRoot
	}
	if flags.Project != "" {
		cfg.Project = flags.Project
	}

	// Token: flag, then environment, then the keyring entry for the
	// resolved host.
	switch {
	case flags.Token != "":
		cfg.Token = flags.Token
		cfg.TokenSource = "flag"
	case os.Getenv(EnvToken) != "":
		cfg.Token = os.Getenv(EnvToken)
		cfg.TokenSource = "environment"
	default:
		if token, err := GetToken(cfg.Host); err == nil && token != "" {
			cfg.Token = token
			cfg.TokenSource = "keyring"
		}
	}

	if cfg.APIRoot == "" {
		cfg.APIRoot = "https://" + cfg.Host + "/api/v4"
	}
	cfg.APIRoot = trimTrailingSlashes(cfg.APIRoot)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func trimTrailingSlashes(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func (c *Config) validate() error {
	if c.Host == "" {
		return fmt.Errorf("no GitLab host configured: use --gitlab/-g or set %s", EnvHost)
	}

	u, err := url.Parse(c.APIRoot)
	if err != nil {
		return fmt.Errorf("invalid API root %q: %w", c.APIRoot, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid API root %q: expected an http(s) URL", c.APIRoot)
	}

	return nil
}

// ConfigDir returns the directory where the config file is stored
func ConfigDir() (string, error) {
	if dir := os.Getenv("GITLAB_SNIPPET_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitlab-snippet"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".config", "gitlab-snippet"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory: %w", err)
	}

	return dir, nil
}

// LoadFileConfig loads the config file, returning an empty config when
// the file does not exist
func LoadFileConfig() (*FileConfig, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &FileConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	return &config, nil
}

// SaveFileConfig saves the config file
func SaveFileConfig(config *FileConfig) error {
	dir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigFileName)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	return nil
}
