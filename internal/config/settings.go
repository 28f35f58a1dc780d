package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lurkerbot/lurker/internal/paths"
)

const (
	DefaultAwaitTimeout = 250 * time.Millisecond
	DefaultDialTimeout  = 10 * time.Second
	DefaultEndpoint     = "wss://irc-ws.chat.twitch.tv:443"
	DefaultFarewell     = "Bye! BibleThump"
	DefaultLogoutGrace  = 5 * time.Second
	DefaultMaxLogFiles  = 1000
	DefaultTickPeriod   = 50 * time.Millisecond
	DefaultWriteTimeout = 10 * time.Second
)

// Settings represents the structure of $LURKER_HOME/settings.yaml.
// Unset fields are nil or empty so callers can tell "absent" from "zero".
type Settings struct {
	Archive      *bool          `yaml:"archive,omitempty"`
	AwaitTimeout *time.Duration `yaml:"await_timeout,omitempty"`
	CACerts      string         `yaml:"ca_certs,omitempty"`
	Debug        *bool          `yaml:"debug,omitempty"`
	DialTimeout  *time.Duration `yaml:"dial_timeout,omitempty"`
	Endpoint     string         `yaml:"endpoint,omitempty"`
	Farewell     string         `yaml:"farewell,omitempty"`
	LogoutGrace  *time.Duration `yaml:"logout_grace,omitempty"`
	MaxLogFiles  *int           `yaml:"max_log_files,omitempty"`
	MinLevel     *int           `yaml:"min_level,omitempty"`
	TickPeriod   *time.Duration `yaml:"tick_period,omitempty"`
	WriteTimeout *time.Duration `yaml:"write_timeout,omitempty"`
}

// LoadSettings reads settings from path.
// A missing file yields empty Settings, not an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	if settings.CACerts != "" {
		settings.CACerts = paths.ExpandPath(settings.CACerts)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	return &settings, nil
}

// SaveSettings writes settings to path, creating the parent directory
func SaveSettings(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate rejects values no component can run with
func (s *Settings) Validate() error {
	positive := []struct {
		name  string
		value *time.Duration
	}{
		{"await_timeout", s.AwaitTimeout},
		{"dial_timeout", s.DialTimeout},
		{"logout_grace", s.LogoutGrace},
		{"tick_period", s.TickPeriod},
		{"write_timeout", s.WriteTimeout},
	}
	for _, p := range positive {
		if p.value != nil && *p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", p.name, *p.value)
		}
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// WithDefaults returns a copy of s with every unset field filled in
func (s *Settings) WithDefaults() *Settings {
	out := *s
	if out.Archive == nil {
		out.Archive = ptr(true)
	}
	if out.AwaitTimeout == nil {
		out.AwaitTimeout = ptr(DefaultAwaitTimeout)
	}
	if out.CACerts == "" {
		out.CACerts = paths.GetDefaultCACertsPath()
	}
	if out.Debug == nil {
		out.Debug = ptr(false)
	}
	if out.DialTimeout == nil {
		out.DialTimeout = ptr(DefaultDialTimeout)
	}
	if out.Endpoint == "" {
		out.Endpoint = DefaultEndpoint
	}
	if out.Farewell == "" {
		out.Farewell = DefaultFarewell
	}
	if out.LogoutGrace == nil {
		out.LogoutGrace = ptr(DefaultLogoutGrace)
	}
	if out.MaxLogFiles == nil {
		out.MaxLogFiles = ptr(DefaultMaxLogFiles)
	}
	if out.MinLevel == nil {
		out.MinLevel = ptr(0)
	}
	if out.TickPeriod == nil {
		out.TickPeriod = ptr(DefaultTickPeriod)
	}
	if out.WriteTimeout == nil {
		out.WriteTimeout = ptr(DefaultWriteTimeout)
	}
	return &out
}

func ptr[T any](v T) *T {
	return &v
}
