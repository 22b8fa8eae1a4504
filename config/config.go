// Package config holds the application configuration, loadable from
// YAML or JSON with environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mfeller/tradelog/pnl"
)

// Config is the complete configuration surface of the app.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Images  ImagesConfig  `json:"images" yaml:"images"`
	Costs   CostsConfig   `json:"costs" yaml:"costs"`
	Backup  BackupConfig  `json:"backup" yaml:"backup"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// JournalConfig selects and locates the trade store backend.
type JournalConfig struct {
	Type     string `json:"type" yaml:"type"` // "json" or "sqlite"
	DataFile string `json:"data_file,omitempty" yaml:"data_file,omitempty"`
	DBPath   string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ImagesConfig locates the screenshot store.
type ImagesConfig struct {
	Dir            string `json:"dir" yaml:"dir"`
	ThumbDir       string `json:"thumb_dir" yaml:"thumb_dir"`
	MaxUploadBytes int64  `json:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// CostsConfig sets the per-contract round-turn cost suggestions shown
// on the new-trade form.
type CostsConfig struct {
	CommissionPerContract float64 `json:"commission_per_contract" yaml:"commission_per_contract"`
	FeePerContract        float64 `json:"fee_per_contract" yaml:"fee_per_contract"`
}

// BackupConfig controls archive output. Schedule is an optional cron
// expression; empty disables scheduled backups.
type BackupConfig struct {
	Dir      string `json:"dir" yaml:"dir"`
	Schedule string `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// Default returns a configuration matching the classic single-file
// journal layout.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Journal: JournalConfig{
			Type:     "json",
			DataFile: "journal_data.json",
		},
		Images: ImagesConfig{
			Dir:            "trade_images",
			ThumbDir:       "trade_images/.thumbs",
			MaxUploadBytes: 5 << 20,
		},
		Costs: CostsConfig{
			CommissionPerContract: pnl.CommissionPerContract,
			FeePerContract:        pnl.FeePerContract,
		},
		Backup: BackupConfig{
			Dir: "backups",
		},
	}
}

// Load builds the effective configuration: defaults, then the optional
// config file, then environment overrides (a local .env file is read
// if present, without clobbering already-set variables).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TRADELOG_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TRADELOG_DATA_FILE"); v != "" {
		cfg.Journal.DataFile = v
	}
	if v := os.Getenv("TRADELOG_DB_PATH"); v != "" {
		cfg.Journal.DBPath = v
	}
	if v := os.Getenv("TRADELOG_IMAGE_DIR"); v != "" {
		cfg.Images.Dir = v
	}
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, picking the format from the
// file extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Journal.Type {
	case "json":
		if c.Journal.DataFile == "" {
			return fmt.Errorf("journal.data_file required for json type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'json' or 'sqlite'")
	}
	if c.Images.Dir == "" {
		return fmt.Errorf("images.dir is required")
	}
	if c.Images.ThumbDir == "" {
		return fmt.Errorf("images.thumb_dir is required")
	}
	if c.Images.MaxUploadBytes <= 0 {
		return fmt.Errorf("images.max_upload_bytes must be positive")
	}
	if c.Costs.CommissionPerContract < 0 || c.Costs.FeePerContract < 0 {
		return fmt.Errorf("costs must be non-negative")
	}
	return nil
}
