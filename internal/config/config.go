package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	Matcher   string          `toml:"matcher"` // "simple" or "fuzzy"
	CachePath string          `toml:"cache_path"`
	LogPath   string          `toml:"log_path"`
	GitHub    []GitHubSource  `toml:"github"`
	Jenkins   []JenkinsSource `toml:"jenkins"`
	Files     []string        `toml:"files"`
}

// GitHubSource configures one GitHub organization provider
type GitHubSource struct {
	Org      string `toml:"org"`
	Endpoint string `toml:"endpoint,omitempty"`
	Token    string `toml:"token,omitempty"`
}

// JenkinsSource configures one Jenkins instance provider
type JenkinsSource struct {
	Endpoint string `toml:"endpoint"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service storing the config under
// the user's config directory.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "shuttle", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit path.
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when no
// file exists yet.
func (cs *configService) Load() (*Config, error) {
	data, err := os.ReadFile(cs.filePath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	return &Config{
		Version:   1,
		Matcher:   "fuzzy",
		CachePath: filepath.Join(cacheDir, "shuttle", "items.json"),
		LogPath:   filepath.Join(cacheDir, "shuttle", "shuttle.log"),
	}
}
