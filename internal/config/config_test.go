package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-numfmt/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	var cfg config.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8003", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "US", cfg.DefaultLocale)
	assert.Equal(t, "currency", cfg.DefaultStyle)
	assert.Zero(t, cfg.MaxDecimals)
	assert.Empty(t, cfg.LocaleFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NUMFMT_ADDR", "127.0.0.1:9000")
	t.Setenv("NUMFMT_READ_TIMEOUT", "3s")
	t.Setenv("NUMFMT_DEFAULT_LOCALE", "EU")
	t.Setenv("NUMFMT_LOG_FORMAT", "json")

	var cfg config.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "EU", cfg.DefaultLocale)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("NUMFMT_DEFAULT_STYLE=grouped\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("NUMFMT_DEFAULT_STYLE") })

	var cfg config.Config
	require.NoError(t, config.Load(&cfg, envFile))
	assert.Equal(t, "grouped", cfg.DefaultStyle)
}

func TestLoadInvalidDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NUMFMT_IDLE_TIMEOUT", "soon")

	var cfg config.Config
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNil(t *testing.T) {
	assert.ErrorIs(t, config.Load(nil), config.ErrNilPointer)
}

func TestResolveLocaleFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	assert.Equal(t, filepath.Join(home, "numfmt"), config.ConfigDir())
	assert.Empty(t, config.Config{}.ResolveLocaleFile())

	dir := filepath.Join(home, "numfmt")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	yamlPath := filepath.Join(dir, "locales.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("locales: []\n"), 0o600))
	assert.Equal(t, yamlPath, config.Config{}.ResolveLocaleFile())

	jsonPath := filepath.Join(dir, "locales.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"locales": []}`), 0o600))
	assert.Equal(t, jsonPath, config.Config{}.ResolveLocaleFile())

	assert.Equal(t, "/explicit.toml", config.Config{LocaleFile: "/explicit.toml"}.ResolveLocaleFile())
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var cfg config.Config
	require.NoError(t, config.Load(&cfg))
	require.NoError(t, config.Load(&cfg, filepath.Join(dir, "absent.env")))
}

func TestLoadMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NUMFMT DEFAULT_STYLE=grouped\n"), 0o600))

	var cfg config.Config
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), ".env")
}

func TestLoadLaterDotEnvAfterMissingOne(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	envFile := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(envFile, []byte("NUMFMT_MAX_DECIMALS=6\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("NUMFMT_MAX_DECIMALS") })

	var cfg config.Config
	require.NoError(t, config.Load(&cfg, filepath.Join(dir, "first.env"), envFile))
	assert.Equal(t, 6, cfg.MaxDecimals)
}

func TestLoadCORS(t *testing.T) {
	chdir(t, t.TempDir())

	var cfg config.Config
	require.NoError(t, config.Load(&cfg))
	assert.True(t, cfg.HTTP.CORSEnabled)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins())

	t.Setenv("NUMFMT_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	cfg = config.Config{}
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins())

	t.Setenv("NUMFMT_CORS_ENABLED", "false")
	cfg = config.Config{}
	require.NoError(t, config.Load(&cfg))
	assert.Nil(t, cfg.HTTP.CORSOrigins())
}
