package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadServer_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadServer(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServer(), cfg)
}

func TestLoadServer_Overrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "server.yaml", `
port: 40000
log_level: debug
maps: [hallway, classicgen]
minefield:
  trigger_delay: 250ms
  destroy_radius: 6
passwords:
  admin: ["$2a$10$abc"]
stats:
  enabled: true
`)

	cfg, err := LoadServer(path)
	require.NoError(t, err)

	assert.Equal(t, 40000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"hallway", "classicgen"}, cfg.Maps)
	assert.Equal(t, 250*time.Millisecond, cfg.Minefield.TriggerDelay)
	assert.Equal(t, float32(6), cfg.Minefield.DestroyRadius)
	// untouched keys keep defaults
	assert.Equal(t, float32(0.1), cfg.Minefield.Fuse)
	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.True(t, cfg.Stats.Enabled)
	assert.Equal(t, 64, cfg.Stats.QueueSize)
	assert.Equal(t, []string{"$2a$10$abc"}, cfg.Passwords["admin"])
}

func TestLoadServer_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "server.yaml", "port: [")
	_, err := LoadServer(path)
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "mines", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/mines?sslmode=disable", d.DSN())
}

func TestLoadMapInfo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hallway.yaml", `
name: Hallway
author: learn_more
extensions:
  minefields:
    - border: 1
      left: 59
      top: 154
      right: 451
      bottom: 355
    - area: [0, 0, 10, 10]
      height: 30
    - border: true
  spawn_points: ignored
`)

	info, err := LoadMapInfo(dir, "hallway")
	require.NoError(t, err)
	assert.Equal(t, "Hallway", info.Name)

	fields := info.Extensions.Minefields
	require.Len(t, fields, 3)

	assert.True(t, bool(fields[0].Border))
	require.NotNil(t, fields[0].Left)
	assert.Equal(t, 59.0, *fields[0].Left)
	assert.Equal(t, 355.0, *fields[0].Bottom)
	assert.Nil(t, fields[0].Height)

	assert.False(t, bool(fields[1].Border))
	assert.Equal(t, []float64{0, 0, 10, 10}, fields[1].Area)
	assert.Equal(t, 30.0, *fields[1].Height)

	assert.True(t, bool(fields[2].Border))
	assert.Nil(t, fields[2].Left)
}

func TestLoadMapInfo_NoExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.yaml", "author: somebody\n")

	info, err := LoadMapInfo(dir, "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", info.Name)
	assert.Empty(t, info.Extensions.Minefields)
}

func TestLoadMapInfo_Unknown(t *testing.T) {
	_, err := LoadMapInfo(t.TempDir(), "missing")
	require.ErrorIs(t, err, ErrUnknownMap)
}

func TestLoadMapInfo_MalformedRecordsSkipped(t *testing.T) {
	tests := []struct {
		name string
		bad  string
	}{
		{"text edge", "left: abc"},
		{"text flag", "border: maybe"},
		{"text in area", "area: [0, 0, ten, 10]"},
		{"scalar record", "just a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "mixed.yaml", `
name: Mixed
extensions:
  minefields:
    - border: 1
      left: 59
      top: 154
      right: 451
      bottom: 355
    - `+tt.bad+`
`)

			info, err := LoadMapInfo(dir, "mixed")
			require.NoError(t, err)
			assert.Equal(t, "Mixed", info.Name)

			fields := info.Extensions.Minefields
			require.Len(t, fields, 1)
			assert.True(t, bool(fields[0].Border))
			assert.Equal(t, 59.0, *fields[0].Left)
		})
	}
}

func TestLoadMapInfo_MinefieldsNotAList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "odd.yaml", "extensions:\n  minefields: yes please\n")

	info, err := LoadMapInfo(dir, "odd")
	require.NoError(t, err)
	assert.Empty(t, info.Extensions.Minefields)
}
