package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[database]
connection_string = "libsql://loadout-test.turso.io"

[training]
interval = 14
default_rpe = 8
timezone = "America/Sao_Paulo"

[log]
level = "debug"
json = true

[volume.strength]
Back = 16
Glutes = 10
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN", "LOADOUT_INTERVAL",
		"LOADOUT_DEFAULT_RPE", "LOADOUT_TIMEZONE", "LOADOUT_LOG_LEVEL", "DEV_MODE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadValid(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "libsql://loadout-test.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, 14, cfg.Training.Interval)
	assert.Equal(t, 8.0, cfg.Training.DefaultRPE)
	assert.Equal(t, "America/Sao_Paulo", cfg.Training.Timezone)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)

	table, err := cfg.VolumeTable()
	require.NoError(t, err)
	assert.Equal(t, 16, table.Lookup(models.CategoryStrength, "Back"))
	assert.Equal(t, 10, table.Lookup(models.CategoryStrength, "Glutes"))
	assert.Equal(t, 20, table.Lookup(models.CategoryStrength, "Chest"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultTrainingInterval, cfg.Training.Interval)
	assert.Equal(t, float64(models.DefaultRPE), cfg.Training.DefaultRPE)
	assert.Empty(t, cfg.DB.ConnectionString)

	conn, err := cfg.ConnectionString()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "loadout", "loadout.db"), conn)
}

func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://override.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "token")
	t.Setenv("LOADOUT_INTERVAL", "21")
	t.Setenv("LOADOUT_LOG_LEVEL", "info")

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "libsql://override.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, "token", cfg.DB.AuthToken)
	assert.Equal(t, 21, cfg.Training.Interval)
	assert.Equal(t, "info", cfg.Log.Level)
	// Unchanged fields keep the file values.
	assert.Equal(t, 8.0, cfg.Training.DefaultRPE)
}

func TestDevMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "file:./local.db", cfg.DB.ConnectionString)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero interval", "[training]\ninterval = 0\n"},
		{"interval too long", "[training]\ninterval = 31\n"},
		{"rpe out of range", "[training]\ndefault_rpe = 11\n"},
		{"unknown volume category", "[volume.cardio]\nLegs = 3\n"},
		{"negative volume", "[volume.mobility]\nHips = -2\n"},
		{"unknown timezone", "[training]\ntimezone = \"Mars/Base\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeTemp(t, tt.toml))
			require.Error(t, err)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeTemp(t, "[training\ninterval = "))
	require.Error(t, err)
}
