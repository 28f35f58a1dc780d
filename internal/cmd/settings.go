package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/lurkerbot/lurker/internal/config"
	"github.com/lurkerbot/lurker/internal/paths"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"show" help:"Show the settings file location and effective settings" default:"1"`
	Init SettingsInitCmd `cmd:"init" help:"Write a settings file holding the default values"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show available settings with example values"`
}

// SettingsShowCmd prints the effective settings
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	data, err := yaml.Marshal(cli.Container.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	fmt.Printf("Settings file: %s\n\n", paths.GetSettingsPath())
	fmt.Print(string(data))
	return nil
}

// SettingsInitCmd writes the defaults to the settings file
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	settingsFile := paths.GetSettingsPath()
	if err := initSettings(settingsFile, s.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote default settings to %s\n", settingsFile)
	return nil
}

// initSettings saves the defaults to path. ca_certs is left out so the
// bundle keeps following the executable.
func initSettings(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
		}
	}

	defaults := (&config.Settings{}).WithDefaults()
	defaults.CACerts = ""
	return config.SaveSettings(path, defaults)
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := paths.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.yaml:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure lurker.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
