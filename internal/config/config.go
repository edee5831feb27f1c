package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level gicbank.yaml configuration.
type Config struct {
	Bank      BankConfig  `yaml:"bank"`
	Audit     AuditConfig `yaml:"audit"`
	SeedRules []SeedRule  `yaml:"seed_rules,omitempty"`
}

// BankConfig identifies the bank shown in the shell banner.
type BankConfig struct {
	Name string `yaml:"name"`
}

// AuditConfig controls the session audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SeedRule is an interest rule applied at startup, in the same textual
// fields the shell accepts.
type SeedRule struct {
	Date   string `yaml:"date"` // YYYYMMDD
	RuleID string `yaml:"rule_id"`
	Rate   string `yaml:"rate"` // annual percent
}

// Load reads a gicbank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new install.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name: "AwesomeGIC Bank",
		},
		Audit: AuditConfig{
			Enabled: false,
			Path:    "logs/audit-log.csv",
		},
	}
}
