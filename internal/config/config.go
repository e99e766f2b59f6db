// Package config provides profile loading for the docdb CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvEndpoint   = "DOCDB_ENDPOINT"
	EnvKey        = "DOCDB_KEY"
	EnvProfile    = "DOCDB_PROFILE"
	EnvAPIVersion = "DOCDB_API_VERSION"
)

// DefaultProfile is used when neither the file nor DOCDB_PROFILE names one.
const DefaultProfile = "default"

// Config represents the complete CLI configuration file.
type Config struct {
	DefaultProfile string              `yaml:"default_profile"`
	Profiles       map[string]*Profile `yaml:"profiles"`

	// path is the file the configuration was read from, if any.
	path string
}

// Profile holds the connection settings for one account.
type Profile struct {
	// Endpoint is the account base URL, e.g. https://myaccount.documents.azure.com.
	Endpoint   string   `yaml:"endpoint"`
	Key        string   `yaml:"key"`
	APIVersion string   `yaml:"api_version"`
	Timeout    Duration `yaml:"timeout"`
}

// Duration is a time.Duration that unmarshals from strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	if d == 0 {
		return "", nil
	}
	return time.Duration(d).String(), nil
}

// DefaultConfig returns an empty configuration with the default profile.
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: DefaultProfile,
		Profiles:       map[string]*Profile{},
	}
}

// Load reads configuration from path, or from the nearest .docdb.yaml when
// path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg.path = path
	}

	if cfg.DefaultProfile == "" {
		cfg.DefaultProfile = DefaultProfile
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]*Profile{}
	}

	expandEnvVars(cfg)

	return cfg, nil
}

// findConfigFile searches for the configuration file.
func findConfigFile() string {
	candidates := []string{
		".docdb.yaml",
		".docdb.yml",
	}

	// Start from current directory and walk up
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// ProfileNames returns the configured profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the named profile with environment overrides applied.
// An empty name selects DOCDB_PROFILE, then the file's default_profile.
// Asking for a profile that does not exist is an error unless it is the
// default one, which may be supplied entirely through the environment.
func (c *Config) Resolve(name string) (*Profile, error) {
	if name == "" {
		name = os.Getenv(EnvProfile)
	}
	if name == "" {
		name = c.DefaultProfile
	}

	p := &Profile{}
	if found, ok := c.Profiles[name]; ok && found != nil {
		*p = *found
	} else if name != c.DefaultProfile {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	applyEnvOverrides(p)
	return p, nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(p *Profile) {
	if v := os.Getenv(EnvEndpoint); v != "" {
		p.Endpoint = v
	}
	if v := os.Getenv(EnvKey); v != "" {
		p.Key = v
	}
	if v := os.Getenv(EnvAPIVersion); v != "" {
		p.APIVersion = v
	}
}

// expandEnvVars expands ${VAR} references in configuration values.
func expandEnvVars(cfg *Config) {
	for _, p := range cfg.Profiles {
		if p == nil {
			continue
		}
		p.Endpoint = expandEnvVar(p.Endpoint)
		p.Key = expandEnvVar(p.Key)
	}
}

var envVarPattern = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// expandEnvVar expands a single environment variable reference.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Match ${VAR} or $VAR patterns
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "${")
		name = strings.TrimPrefix(name, "$")
		name = strings.TrimSuffix(name, "}")
		return os.Getenv(name)
	})
}

// URL joins the profile endpoint with a REST path such as /dbs/mydb.
func (p *Profile) URL(resourcePath string) string {
	if resourcePath == "" {
		return p.Endpoint
	}
	return strings.TrimRight(p.Endpoint, "/") + "/" + strings.TrimLeft(resourcePath, "/")
}
