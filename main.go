package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lurkerbot/lurker/internal/cmd"
	"github.com/lurkerbot/lurker/internal/config"
	"github.com/lurkerbot/lurker/internal/paths"
	"github.com/lurkerbot/lurker/internal/version"
)

func main() {
	// Load settings from $LURKER_HOME/settings.yaml
	settings, err := config.LoadSettings(paths.GetSettingsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("lurker"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}
