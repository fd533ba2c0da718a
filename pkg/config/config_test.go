package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-100-precent/LingStamp/pkg/image"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./logs/stamp.log", cfg.Log.Filename)
	assert.Equal(t, 100, cfg.Log.MaxSize)
	assert.Equal(t, 30, cfg.Log.MaxAge)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.False(t, cfg.Log.Daily)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, image.DefaultFormatSet(), cfg.Formats)
	assert.Equal(t, 90, cfg.Quality)
	assert.Empty(t, cfg.FontPath)
}

func TestLoadFrom_File(t *testing.T) {
	dir := writeConfig(t, `
mode: dev
log_level: debug
log_daily: true
stamp_quality: 75
stamp_font: /fonts/Noto.ttf
stamp_formats:
  - jpg
  - webp
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Daily)
	assert.Equal(t, 75, cfg.Quality)
	assert.Equal(t, "/fonts/Noto.ttf", cfg.FontPath)
	assert.Equal(t, []string{"jpg", "webp"}, cfg.Formats.Extensions())
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "stamp_quality: 75\nlog_level: debug\n")
	t.Setenv("STAMP_QUALITY", "60")
	t.Setenv("STAMP_FORMATS", "PNG, .gif")
	t.Setenv("LOG_CONSOLE", "false")
	t.Setenv("LOG_MAX_SIZE", "7")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Quality)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.MaxSize)
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, []string{"gif", "png"}, cfg.Formats.Extensions())
}

func TestLoadFrom_EnvOnly(t *testing.T) {
	t.Setenv("MODE", "development")
	t.Setenv("STAMP_FONT", "/fonts/Env.ttf")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, "/fonts/Env.ttf", cfg.FontPath)
}

func TestLoadFrom_BadValuesFallBack(t *testing.T) {
	t.Setenv("STAMP_QUALITY", "high")
	t.Setenv("LOG_DAILY", "sometimes")
	t.Setenv("LOG_MAX_AGE", "0")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Quality)
	assert.False(t, cfg.Log.Daily)
	assert.Equal(t, 30, cfg.Log.MaxAge)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "mode: [unterminated\n")

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestLoad_SetsGlobalConfig(t *testing.T) {
	old := GlobalConfig
	defer func() { GlobalConfig = old }()

	t.Chdir(t.TempDir())
	require.NoError(t, Load())
	require.NotNil(t, GlobalConfig)
	assert.Equal(t, "production", GlobalConfig.Mode)
}
