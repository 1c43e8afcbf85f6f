// Package config provides configuration management for the rebalancing application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "portfolio-rebalancer/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Data        DataConfig      `mapstructure:"data"`
	Filter      FilterConfig    `mapstructure:"filter"`
	Journal     JournalConfig   `mapstructure:"journal"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Sentiment   SentimentConfig `mapstructure:"sentiment"`
	Credentials Credentials     `mapstructure:"-"` // Loaded separately
}

// DataConfig holds input/output file locations. Paths are resolved relative
// to BasePath unless absolute.
type DataConfig struct {
	BasePath     string `mapstructure:"base_path"`
	AccountsFile string `mapstructure:"accounts_file"`
	HoldingsFile string `mapstructure:"holdings_file"`
	MarketFile   string `mapstructure:"market_file"`
	SectorFile   string `mapstructure:"sector_file"`
	RequestsFile string `mapstructure:"requests_file"`
	OutputDir    string `mapstructure:"output_dir"`
}

// FilterConfig holds criteria filter behavior switches.
type FilterConfig struct {
	// StrictAttributes makes the engine warn and skip criteria whose
	// attribute has no known mapping, instead of passing the name through
	// as a column name.
	StrictAttributes bool `mapstructure:"strict_attributes"`
}

// JournalConfig holds the recommendation journal configuration.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  bool   `mapstructure:"file"`
}

// SentimentConfig holds sentiment extractor configuration.
type SentimentConfig struct {
	Model       string `mapstructure:"model"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

// Credentials holds API credentials.
type Credentials struct {
	OpenAI OpenAICredentials `mapstructure:"openai"`
}

// OpenAICredentials holds OpenAI API credentials.
type OpenAICredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/rebalancer"
	}
	return filepath.Join(home, ".config", "rebalancer")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		// No config file: write the template for next time and run on
		// defaults.
		if werr := createTemplateConfig(configDir); werr != nil {
			return werr
		}
	}

	return v.Unmarshal(target)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.base_path", ".")
	v.SetDefault("data.accounts_file", "data/market_data/customer_accounts.csv")
	v.SetDefault("data.holdings_file", "data/market_data/customer_accounts_holdings.csv")
	v.SetDefault("data.market_file", "data/market_data/market_conditions.csv")
	v.SetDefault("data.sector_file", "data/market_data/sector_reference.csv")
	v.SetDefault("data.requests_file", "data/api_data/rebalance_requests.json")
	v.SetDefault("data.output_dir", "output")
	v.SetDefault("filter.strict_attributes", false)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(DefaultConfigDir(), "rebalancer.db"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", false)
	v.SetDefault("sentiment.model", "gpt-4o-mini")
	v.SetDefault("sentiment.max_attempts", 3)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateCredentials(configDir)
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Credentials.OpenAI.APIKey = v
	}
	if v := os.Getenv("REBALANCER_DATA_PATH"); v != "" {
		cfg.Data.BasePath = v
	}
	if v := os.Getenv("REBALANCER_JOURNAL_PATH"); v != "" {
		cfg.Journal.Path = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging level %q", apperrors.ErrConfigInvalid, c.Logging.Level)
	}
	if c.Sentiment.MaxAttempts < 1 {
		return fmt.Errorf("%w: sentiment.max_attempts must be >= 1, got %d", apperrors.ErrConfigInvalid, c.Sentiment.MaxAttempts)
	}
	return nil
}

// Resolve returns the given data file path joined to the base path, leaving
// absolute paths untouched.
func (c *DataConfig) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BasePath, path)
}
