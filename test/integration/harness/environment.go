package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own LURKER_HOME.
type TestEnvironment struct {
	LurkerHome string
	extraEnv   map[string]string
	stateHome  string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp LURKER_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	lurkerHome := filepath.Join(root, "home")
	stateHome := filepath.Join(root, "state")
	for _, dir := range []string{lurkerHome, stateHome} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return &TestEnvironment{
		LurkerHome: lurkerHome,
		extraEnv:   make(map[string]string),
		stateHome:  stateHome,
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out LURKER_* variables and sets:
//   - LURKER_HOME to the temp directory
//   - LURKER_DEBUG to empty string (disables debug logging)
//   - XDG_STATE_HOME inside the temp directory
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"LURKER_DEBUG":   true,
		"LURKER_HOME":    true,
		"XDG_STATE_HOME": true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "LURKER_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"LURKER_HOME="+e.LurkerHome,
		"LURKER_DEBUG=",
		"XDG_STATE_HOME="+e.stateHome,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// ArchivePath returns the path to the test record archive.
func (e *TestEnvironment) ArchivePath() string {
	return filepath.Join(e.LurkerHome, "archive.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.LurkerHome, "settings.yaml")
}

// WriteSettings writes content to the test settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
