package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		CoinID  string `yaml:"coin_id"`
		Days    int    `yaml:"days"`
	} `yaml:"data_source"`
	Trending struct {
		WindowDays int `yaml:"window_days"`
		Period     int `yaml:"period"`
		TopN       int `yaml:"top_n"`
	} `yaml:"trending"`
	Output struct {
		CSVPath    string `yaml:"csv_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"output"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults reproduce the stock behavior.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("COIN_ID"); v != "" {
		cfg.DataSource.CoinID = v
	}
	if v := os.Getenv("HISTORY_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.Days = days
		}
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Output.CSVPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Output.SQLitePath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.DataSource.CoinID == "" {
		cfg.DataSource.CoinID = "blockasset"
	}
	if cfg.DataSource.Days == 0 {
		cfg.DataSource.Days = 365
	}
	if cfg.Trending.WindowDays == 0 {
		cfg.Trending.WindowDays = 15
	}
	if cfg.Trending.Period == 0 {
		cfg.Trending.Period = 14
	}
	if cfg.Trending.TopN == 0 {
		cfg.Trending.TopN = 7
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if c.DataSource.CoinID == "" {
		return fmt.Errorf("data_source.coin_id is required")
	}
	if c.DataSource.Days <= 0 {
		return fmt.Errorf("data_source.days must be positive")
	}
	if c.Trending.WindowDays <= 0 {
		return fmt.Errorf("trending.window_days must be positive")
	}
	if c.Trending.Period <= 0 {
		return fmt.Errorf("trending.period must be positive")
	}
	if c.Trending.TopN <= 0 {
		return fmt.Errorf("trending.top_n must be positive")
	}
	return nil
}
