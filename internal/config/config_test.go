package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
reporter:
  address: collector.example.net
  port: 9000
  enabled: true
logging:
  level: debug
  format: console
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "collector.example.net", cfg.Reporter.Address)
	require.Equal(t, 9000, cfg.Reporter.Port)
	require.True(t, cfg.Reporter.Enabled)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	// reporting is opt-in
	require.False(t, cfg.Reporter.Enabled)
	require.Equal(t, "127.0.0.1", cfg.Reporter.Address)
	require.Equal(t, 8080, cfg.Reporter.Port)
	require.Equal(t, "whackerlink.reports", cfg.Collector.Kafka.Topic)
	require.False(t, cfg.Collector.Kafka.Enabled)
	require.Equal(t, 10, cfg.Eventgen.IntervalSeconds)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadPort(t *testing.T) {
	path := writeConfig(t, "reporter:\n  port: 99999\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "port out of range")
}
