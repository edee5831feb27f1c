package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bank.Name = "Test Bank"
	cfg.Audit.Enabled = true
	cfg.Audit.Path = "audit.csv"
	cfg.SeedRules = []SeedRule{
		{Date: "20240101", RuleID: "RULE01", Rate: "2.00"},
	}

	path := filepath.Join(t.TempDir(), "gicbank.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, cfg.Audit.Enabled, got.Audit.Enabled)
	assert.Equal(t, cfg.Audit.Path, got.Audit.Path)
	require.Len(t, got.SeedRules, 1)
	assert.Equal(t, "RULE01", got.SeedRules[0].RuleID)
	assert.Equal(t, "2.00", got.SeedRules[0].Rate)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "AwesomeGIC Bank", cfg.Bank.Name)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, "logs/audit-log.csv", cfg.Audit.Path)
	assert.Empty(t, cfg.SeedRules)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
