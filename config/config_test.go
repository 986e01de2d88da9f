package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
tracker:
  coin_ids:
    - bitcoin
    - ethereum
  currency: usd
  refresh_interval: 10s
  notice_duration: 5s
  rate_limit_rps: 2

chart:
  lookback_days: 7
  cache_ttl: 5m

server:
  port: "9090"

prefs:
  file: /tmp/prefs.json
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"bitcoin", "ethereum"}, cfg.Tracker.CoinIDs)
	assert.Equal(t, "usd", cfg.Tracker.GetCurrency())
	assert.Equal(t, 10*time.Second, cfg.Tracker.GetRefreshInterval())
	assert.Equal(t, 5*time.Second, cfg.Tracker.GetNoticeDuration())
	assert.Equal(t, 2.0, cfg.Tracker.GetRateLimitRPS())
	assert.Equal(t, 7, cfg.Chart.GetLookbackDays())
	assert.Equal(t, 5*time.Minute, cfg.Chart.GetCacheTTL())
	assert.Equal(t, "9090", cfg.Server.GetPort())
	assert.Equal(t, "/tmp/prefs.json", cfg.Prefs.GetFile())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "tracker: [not a map"))
	assert.Error(t, err)
}

func TestValidate_RequiresCoinIDs(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server:\n  port: \"8080\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coin id")
}

func TestDefaults(t *testing.T) {
	cfg := &Config{
		Tracker: TrackerConfig{CoinIDs: []string{"bitcoin"}},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "usd", cfg.Tracker.GetCurrency())
	assert.Equal(t, 10*time.Second, cfg.Tracker.GetRefreshInterval())
	assert.Equal(t, 5*time.Second, cfg.Tracker.GetNoticeDuration())
	assert.Equal(t, 2.0, cfg.Tracker.GetRateLimitRPS())
	assert.Equal(t, 7, cfg.Chart.GetLookbackDays())
	assert.Equal(t, 5*time.Minute, cfg.Chart.GetCacheTTL())
	assert.Equal(t, "8080", cfg.Server.GetPort())
	assert.Equal(t, "prefs.json", cfg.Prefs.GetFile())
}
