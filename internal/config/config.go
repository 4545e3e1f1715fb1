// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Paths struct {
		Blocklist string `yaml:"blocklist"`
		Wordlist  string `yaml:"wordlist"`
		Output    string `yaml:"output"`
	} `yaml:"paths"`

	Remote struct {
		BlocklistURL string `yaml:"blocklistURL"`
		WordlistURL  string `yaml:"wordlistURL"`
	} `yaml:"remote"`

	RateLimit struct {
		RequestsPerSecond int `yaml:"requestsPerSecond"`
		Burst             int `yaml:"burst"`
	} `yaml:"rateLimit"`

	HTTPClient struct {
		Timeout    int    `yaml:"timeout"`
		MaxRetries int    `yaml:"maxRetries"`
		UserAgent  string `yaml:"userAgent"`
	} `yaml:"httpClient"`

	Report struct {
		ListRemoved *bool `yaml:"listRemoved"`
		Color       *bool `yaml:"color"`
	} `yaml:"report"`

	// Directory relative paths are resolved against; set by Load.
	BaseDir string `yaml:"-"`
}

// Load reads config.yaml from baseDir if present and fills in defaults.
// A missing config file is not an error: the defaults reproduce the fixed
// blocklist.txt / all.txt / all_filtered.txt layout next to the executable.
func Load(baseDir string) (*Config, error) {
	var cfg Config
	cfg.BaseDir = baseDir

	f, err := os.Open(filepath.Join(baseDir, "config.yaml"))
	if err == nil {
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("error decoding config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.Paths.Blocklist == "" {
		cfg.Paths.Blocklist = "blocklist.txt"
	}
	if cfg.Paths.Wordlist == "" {
		cfg.Paths.Wordlist = "all.txt"
	}
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = "all_filtered.txt"
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 2
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 4
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = 30
	}
	if cfg.HTTPClient.MaxRetries == 0 {
		cfg.HTTPClient.MaxRetries = 3
	}
	if cfg.HTTPClient.UserAgent == "" {
		cfg.HTTPClient.UserAgent = "WordFilter-Service/1.0"
	}
	if cfg.Report.ListRemoved == nil {
		v := true
		cfg.Report.ListRemoved = &v
	}
	if cfg.Report.Color == nil {
		v := true
		cfg.Report.Color = &v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Paths.Wordlist == "" && c.Remote.WordlistURL == "" {
		return fmt.Errorf("a wordlist path or URL is required")
	}
	if c.Paths.Blocklist == "" && c.Remote.BlocklistURL == "" {
		return fmt.Errorf("a blocklist path or URL is required")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("requestsPerSecond must be positive")
	}
	return nil
}

// BlocklistPath returns the blocklist path resolved against BaseDir.
func (c *Config) BlocklistPath() string { return c.resolve(c.Paths.Blocklist) }

// WordlistPath returns the wordlist path resolved against BaseDir.
func (c *Config) WordlistPath() string { return c.resolve(c.Paths.Wordlist) }

// OutputPath returns the output path resolved against BaseDir.
func (c *Config) OutputPath() string { return c.resolve(c.Paths.Output) }

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}
