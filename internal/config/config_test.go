package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shift_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/scheduler
engine:
  softTarget: 2
  hardCeiling: 4
  maxPasses: 6
  splitWeekday: 4
  eveningStartHour: 17
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/scheduler", cfg.DatabaseURL)

	engineCfg := cfg.EngineConfig()
	assert.Equal(t, 2, engineCfg.SoftTarget)
	assert.Equal(t, 4, engineCfg.HardCeiling)
	assert.Equal(t, 6, engineCfg.MaxPasses)
	assert.Equal(t, 4, engineCfg.SplitWeekday)
	assert.Equal(t, 17, engineCfg.EveningStartHour)
}

func TestLoadFromPath_EngineDefaultsApplied(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost:5432/scheduler
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	engineCfg := cfg.EngineConfig()
	assert.Equal(t, 3, engineCfg.SoftTarget)
	assert.Equal(t, 5, engineCfg.HardCeiling)
	assert.Equal(t, 10, engineCfg.MaxPasses)
	assert.Equal(t, 2, engineCfg.SplitWeekday)
	assert.Equal(t, 16, engineCfg.EveningStartHour)
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	path := writeConfig(t, `
engine:
  softTarget: 3
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_CeilingBelowTarget(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/scheduler
engine:
  softTarget: 5
  hardCeiling: 3
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_SplitWeekdayOutOfRange(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/scheduler
engine:
  splitWeekday: 9
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "databaseURL: [unclosed")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
