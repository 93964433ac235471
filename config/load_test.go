package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread-skew/strategy/skew"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

const sampleConfig = `
env: dev
log:
  level: debug
  outputs: [stdout]
  format: console
metrics:
  addr: ":9101"
skew:
  version: v2
  targetBaseRatio: 0.35
  baseRange: 30
  maximumSkewFactor: 5
inventory:
  base: "30"
  quote: "100"
  price: "1"
`

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9101", cfg.Metrics.Addr)

	v, err := cfg.Skew.ParsedVersion()
	require.NoError(t, err)
	assert.Equal(t, skew.V2, v)
	assert.Equal(t, skew.Params{TargetBaseRatio: 0.35, BaseRange: 30, MaximumSkewFactor: 5}, cfg.Skew.Params())

	snap, err := cfg.Inventory.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 130.0, snap.TotalValue())
}

func TestLoadDefaultsLogConfig(t *testing.T) {
	path := writeTempConfig(t, `
env: dev
skew:
  targetBaseRatio: 0.5
  baseRange: 10
  maximumSkewFactor: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Log.Outputs)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
env: prod
skew:
  version: v2
  targetBaseRatio: 0.05
  baseRange: 10
  maximumSkewFactor: 5
  rangeMultiplier: 5
`)
	t.Setenv("SKEW_VERSION", "v1")
	t.Setenv("SKEW_METRICS_ADDR", ":9200")
	cfg, err := LoadWithEnvOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", cfg.Skew.Version)
	assert.Equal(t, ":9200", cfg.Metrics.Addr)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeTempConfig(t, "env: [unclosed")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestBaseRangeDerivedFromOrders(t *testing.T) {
	sc := SkewConfig{
		TargetBaseRatio:   0.5,
		MaximumSkewFactor: 1,
		RangeMultiplier:   2,
		OrderAmount:       1,
		OrderLevelAmount:  0.5,
		OrderLevels:       3,
	}
	// (1 + 1.5 + 2) * 2
	assert.InDelta(t, 9.0, sc.BaseRangeValue(), 1e-12)

	sc.BaseRange = 4
	assert.Equal(t, 4.0, sc.BaseRangeValue())

	assert.Equal(t, 0.0, SkewConfig{}.BaseRangeValue())
}
