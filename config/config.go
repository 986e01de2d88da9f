package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Tracker TrackerConfig `yaml:"tracker"`
	Chart   ChartConfig   `yaml:"chart"`
	Server  ServerConfig  `yaml:"server"`
	Prefs   PrefsConfig   `yaml:"prefs"`

	OverrideCoingeckoURL string `yaml:"override_coingecko_url"`
}

// TrackerConfig configures the snapshot refresh pipeline
type TrackerConfig struct {
	CoinIDs         []string      `yaml:"coin_ids"`         // CoinGecko ids to track
	Currency        string        `yaml:"currency"`         // vs_currency for all requests
	RefreshInterval time.Duration `yaml:"refresh_interval"` // Poll interval for snapshot fetches
	NoticeDuration  time.Duration `yaml:"notice_duration"`  // How long a degrade notice stays visible
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`   // Outbound requests per second to CoinGecko
}

// ChartConfig configures on-demand price history fetches
type ChartConfig struct {
	LookbackDays int           `yaml:"lookback_days"` // Days of history requested for the detail chart
	CacheTTL     time.Duration `yaml:"cache_ttl"`     // TTL for cached history series
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PrefsConfig struct {
	File string `yaml:"file"` // Path of the persisted preferences document
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the parts of the configuration that have no sensible default
func (c *Config) Validate() error {
	if len(c.Tracker.CoinIDs) == 0 {
		return fmt.Errorf("tracker: at least one coin id must be configured")
	}
	if c.Tracker.RefreshInterval < 0 {
		return fmt.Errorf("tracker: refresh_interval must not be negative")
	}
	if c.Chart.LookbackDays < 0 {
		return fmt.Errorf("chart: lookback_days must not be negative")
	}
	return nil
}

func (c *TrackerConfig) GetCurrency() string {
	if c.Currency != "" {
		return c.Currency
	}
	return "usd"
}

func (c *TrackerConfig) GetRefreshInterval() time.Duration {
	if c.RefreshInterval > 0 {
		return c.RefreshInterval
	}
	return 10 * time.Second
}

func (c *TrackerConfig) GetNoticeDuration() time.Duration {
	if c.NoticeDuration > 0 {
		return c.NoticeDuration
	}
	return 5 * time.Second
}

func (c *TrackerConfig) GetRateLimitRPS() float64 {
	if c.RateLimitRPS > 0 {
		return c.RateLimitRPS
	}
	return 2
}

func (c *ChartConfig) GetLookbackDays() int {
	if c.LookbackDays > 0 {
		return c.LookbackDays
	}
	return 7
}

func (c *ChartConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL > 0 {
		return c.CacheTTL
	}
	return 5 * time.Minute
}

func (c *ServerConfig) GetPort() string {
	if c.Port != "" {
		return c.Port
	}
	return "8080"
}

func (c *PrefsConfig) GetFile() string {
	if c.File != "" {
		return c.File
	}
	return "prefs.json"
}
