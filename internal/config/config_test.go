package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testYAML = `
api:
  environment: test
  port: "8081"
  frontend_url: https://portal.example.org
  allowed_cors_domains:
    - http://localhost:5173
admin:
  enforce_api: true
rate_limit:
  requests: 5
  window: 10s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8081", conf.API.Port)
	assert.True(t, conf.Admin.EnforceAPI)
	assert.Equal(t, 5, conf.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, conf.RateLimit.Window)

	// Defaults fill whatever the file leaves out.
	assert.Equal(t, "memory", conf.Storage.Driver)
	assert.Equal(t, "admin", conf.Admin.Username)
	assert.Equal(t, 12*time.Hour, conf.Admin.TokenTTL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PORTAL_API_PORT", "9999")
	t.Setenv("PORTAL_STORAGE_DRIVER", "postgres")

	conf, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "9999", conf.API.Port)
	assert.Equal(t, "postgres", conf.Storage.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestAPIConfig_AllowedOrigins(t *testing.T) {
	c := APIConfig{
		AllowedCORSDomains: []string{"http://localhost:5173", ""},
		FrontendURL:        "https://portal.example.org",
	}

	assert.Equal(t, []string{"http://localhost:5173", "https://portal.example.org"}, c.AllowedOrigins())
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", DB: "portal", SSLMode: "disable"}

	assert.Equal(t, "host=db user=u password=p dbname=portal port=5432 sslmode=disable", c.DSN())
}

func TestWatch_LogsFileChanges(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	path := writeConfig(t, testYAML)
	require.NoError(t, Watch(path))

	require.NoError(t, os.WriteFile(path, []byte(testYAML+"\ngin:\n  mode: release\n"), 0o600))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("config file changed, restart to apply").Len() > 0
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatch_MissingFile(t *testing.T) {
	assert.Error(t, Watch(filepath.Join(t.TempDir(), "nope.yml")))
}
