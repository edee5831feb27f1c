package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/gicbank/internal/config"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["repl"])
	assert.True(t, names["import"])
	assert.True(t, names["export"])
}

func TestLoadConfig_MissingFileFallsBack(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "AwesomeGIC Bank", cfg.Bank.Name)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gicbank.yaml")
	want := config.Default()
	want.Bank.Name = "Other Bank"
	require.NoError(t, config.Save(path, want))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Other Bank", cfg.Bank.Name)
}
