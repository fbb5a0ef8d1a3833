package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"LOG_LEVEL",
	"LOG_FORMAT",
	"PINPOINT_APPLICATION_ID",
	"MESSAGING_PINPOINT_APPLICATION_ID",
	"AWS_REGION",
	"MESSAGING_AWS_REGION",
	"AWS_ENDPOINT_URL",
	"MESSAGING_AWS_ENDPOINT_URL",
}

// clearEnv unsets the variables Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Messaging.ApplicationID)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
log_level: debug
log_format: json
messaging:
  application_id: app-from-file
  region: eu-west-1
  endpoint_url: http://localhost:4566
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, Messaging{
		ApplicationID: "app-from-file",
		Region:        "eu-west-1",
		EndpointURL:   "http://localhost:4566",
	}, cfg.Messaging)
	assert.NoError(t, cfg.Messaging.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
log_level: debug
messaging:
  application_id: app-from-file
  region: eu-west-1
`)
	t.Setenv("PINPOINT_APPLICATION_ID", "app-from-env")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "app-from-env", cfg.Messaging.ApplicationID)
	assert.Equal(t, "eu-west-1", cfg.Messaging.Region)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		env      map[string]string
	}{
		{name: "bad yaml", contents: "log_level: [unterminated"},
		{name: "bad log level in file", contents: "log_level: loud"},
		{name: "bad log format in env", env: map[string]string{"LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeFile(t, tt.contents))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestMessagingValidate(t *testing.T) {
	assert.ErrorIs(t, Messaging{}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Messaging{ApplicationID: "app", EndpointURL: "::"}.Validate(), ErrInvalidConfig)
	assert.NoError(t, Messaging{ApplicationID: "app"}.Validate())
}

func TestPath(t *testing.T) {
	t.Setenv("SMS_CONFIG_FILE", "")
	assert.Equal(t, "config.yaml", Path())

	t.Setenv("SMS_CONFIG_FILE", "/var/task/sms.yaml")
	assert.Equal(t, "/var/task/sms.yaml", Path())
}
