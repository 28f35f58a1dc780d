package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadSettings_MissingFileReturnsEmpty(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
archive: false
await_timeout: 100ms
ca_certs: /etc/lurker/cert.pem
debug: true
dial_timeout: 3s
endpoint: wss://example.test:443
farewell: "See ya"
logout_grace: 2s
max_log_files: 10
min_level: 2
tick_period: 20ms
write_timeout: 4s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	require.NotNil(t, settings.Archive)
	assert.False(t, *settings.Archive)
	require.NotNil(t, settings.AwaitTimeout)
	assert.Equal(t, 100*time.Millisecond, *settings.AwaitTimeout)
	assert.Equal(t, "/etc/lurker/cert.pem", settings.CACerts)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.DialTimeout)
	assert.Equal(t, 3*time.Second, *settings.DialTimeout)
	assert.Equal(t, "wss://example.test:443", settings.Endpoint)
	assert.Equal(t, "See ya", settings.Farewell)
	require.NotNil(t, settings.LogoutGrace)
	assert.Equal(t, 2*time.Second, *settings.LogoutGrace)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 10, *settings.MaxLogFiles)
	require.NotNil(t, settings.MinLevel)
	assert.Equal(t, 2, *settings.MinLevel)
	require.NotNil(t, settings.TickPeriod)
	assert.Equal(t, 20*time.Millisecond, *settings.TickPeriod)
	require.NotNil(t, settings.WriteTimeout)
	assert.Equal(t, 4*time.Second, *settings.WriteTimeout)
}

func TestLoadSettings_ExpandsCACertsHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ca_certs: ~/cert.pem\n"), 0644))

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "cert.pem"), settings.CACerts)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("archive: [unterminated\n"), 0644))

	_, err := LoadSettings(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.yaml")
}

func TestLoadSettings_RejectsNonPositiveDurations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"await timeout", "await_timeout: 0s\n"},
		{"logout grace", "logout_grace: -1s\n"},
		{"tick period", "tick_period: 0s\n"},
		{"dial timeout", "dial_timeout: 0s\n"},
		{"write timeout", "write_timeout: -5s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSettings(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be positive")
		})
	}
}

func TestSaveSettings_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	grace := 3 * time.Second
	archive := true
	original := &Settings{Archive: &archive, Farewell: "later", LogoutGrace: &grace}

	require.NoError(t, SaveSettings(path, original))
	loaded, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	data, err := yaml.Marshal(example)
	require.NoError(t, err)

	var settings Settings
	require.NoError(t, yaml.Unmarshal(data, &settings))
	assert.NoError(t, settings.Validate())
	assert.Len(t, example, 12)
	assert.Equal(t, DefaultFarewell, example["farewell"])
}

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	grace := 2 * time.Second
	s := (&Settings{Farewell: "later", LogoutGrace: &grace}).WithDefaults()

	assert.Equal(t, "later", s.Farewell)
	assert.Equal(t, grace, *s.LogoutGrace)
	assert.Equal(t, DefaultEndpoint, s.Endpoint)
	assert.Equal(t, DefaultAwaitTimeout, *s.AwaitTimeout)
	assert.Equal(t, DefaultTickPeriod, *s.TickPeriod)
	assert.Equal(t, DefaultDialTimeout, *s.DialTimeout)
	assert.Equal(t, DefaultWriteTimeout, *s.WriteTimeout)
	assert.Equal(t, DefaultMaxLogFiles, *s.MaxLogFiles)
	assert.Equal(t, 0, *s.MinLevel)
	assert.True(t, *s.Archive)
	assert.False(t, *s.Debug)
	assert.Equal(t, "cert.pem", filepath.Base(s.CACerts))
}

func TestWithDefaults_DoesNotMutateReceiver(t *testing.T) {
	s := &Settings{}

	_ = s.WithDefaults()

	assert.Nil(t, s.AwaitTimeout)
	assert.Empty(t, s.Endpoint)
}
