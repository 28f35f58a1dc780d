package integration_test

import (
	"testing"

	"github.com/lurkerbot/lurker/test/integration/harness"
)

func TestSettings(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		settings string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "show is the default",
			args: []string{"settings"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "endpoint: wss://irc-ws.chat.twitch.tv:443")
				harness.AssertStdoutContains(t, result, "farewell: Bye! BibleThump")
				harness.AssertStdoutContains(t, result, "logout_grace: 5s")
			},
		},
		{
			name:     "show reflects the settings file",
			args:     []string{"settings", "show"},
			settings: "farewell: later\nmin_level: 3\n",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "farewell: later")
				harness.AssertStdoutContains(t, result, "min_level: 3")
			},
		},
		{
			name:     "invalid settings file falls back to defaults",
			args:     []string{"settings", "show"},
			settings: "tick_period: -1s\n",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "Warning: failed to load settings")
				harness.AssertStdoutContains(t, result, "tick_period: 50ms")
			},
		},
		{
			name: "init writes the defaults",
			args: []string{"settings", "init"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Wrote default settings to")
			},
		},
		{
			name:     "init with force replaces an existing file",
			args:     []string{"settings", "init", "--force"},
			settings: "farewell: later\n",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Wrote default settings to")
			},
		},
		{
			name: "meta table",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Example settings.yaml:")
				harness.AssertStdoutContains(t, result, "await_timeout")
			},
		},
		{
			name: "meta json",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				if _, ok := output["settings_file"]; !ok {
					t.Error("Expected 'settings_file' field in JSON output")
				}
				if _, ok := output["format"]; !ok {
					t.Error("Expected 'format' field in JSON output")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.settings != "" {
				env.WriteSettings(tt.settings)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettings_InitKeepsExistingFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings("farewell: later\n")

	result := harness.RunCommand(t, env, "settings", "init")

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "already exists")

	result = harness.RunCommand(t, env, "settings", "show")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "farewell: later")
}

func TestSettings_InitThenShow(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "init"))
	result := harness.RunCommand(t, env, "settings", "show")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "write_timeout: 10s")
	harness.AssertStdoutContains(t, result, "dial_timeout: 10s")
}
