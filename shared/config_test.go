package shared

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

const testConfigJsonc = `{
  // comments are fine
  "log_level": "Info",
  "host": "toots.example.org",
  "db_file": "toots.db",
  "session": { "duration_minutes": 10, },
  "bot": { "instance_url": "https://bots.example.org" },
}`

const testSecretsJsonc = `{
  "metrics_auth": "m3trics",
  "bot_access_token": "",
}`

func writeConfigFiles(t *testing.T, cfgText, secretsText string) (string, string) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.jsonc")
	secretsPath := filepath.Join(dir, "secrets.jsonc")
	assert.NoError(t, os.WriteFile(cfgPath, []byte(cfgText), 0644))
	assert.NoError(t, os.WriteFile(secretsPath, []byte(secretsText), 0644))
	return cfgPath, secretsPath
}

func TestReadConfigJsoncAndDefaults(t *testing.T) {
	cfgPath, secretsPath := writeConfigFiles(t, testConfigJsonc, testSecretsJsonc)
	cfg, err := ReadConfig(cfgPath, secretsPath)
	assert.NoError(t, err)
	assert.Equal(t, "toots.example.org", cfg.Host)
	assert.Equal(t, "m3trics", cfg.Secrets.MetricsAuth)
	assert.Equal(t, 10, cfg.Session.DurationMinutes)
	assert.Equal(t, defaultWarningMinutes, cfg.Session.WarningMinutes)
	assert.Equal(t, "https", cfg.SiteScheme)
	assert.False(t, cfg.Bot.Enabled(&cfg.Secrets))
}

func TestReadConfigEnvOverlay(t *testing.T) {
	t.Setenv("BOT_ACCESS_TOKEN", "from-env")
	t.Setenv("TOOTS_HOST", "other.example.org")
	cfgPath, secretsPath := writeConfigFiles(t, testConfigJsonc, testSecretsJsonc)
	cfg, err := ReadConfig(cfgPath, secretsPath)
	assert.NoError(t, err)
	assert.Equal(t, "other.example.org", cfg.Host)
	assert.Equal(t, "from-env", cfg.Secrets.BotAccessToken)
	assert.True(t, cfg.Bot.Enabled(&cfg.Secrets))
}

func TestReadConfigRejectsWarningAfterExpiry(t *testing.T) {
	cfgPath, secretsPath := writeConfigFiles(t,
		`{"session": {"duration_minutes": 5, "warning_minutes": 5}}`, `{}`)
	_, err := ReadConfig(cfgPath, secretsPath)
	assert.Error(t, err)
}

func TestReadConfigMalformed(t *testing.T) {
	cfgPath, secretsPath := writeConfigFiles(t, `{"host": `, `{}`)
	_, err := ReadConfig(cfgPath, secretsPath)
	assert.Error(t, err)
}
