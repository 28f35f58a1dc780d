package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lurkerbot/lurker/internal/config"
	"github.com/lurkerbot/lurker/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Lurk     LurkCmd     `cmd:"" help:"Join channels and log everything that happens (default)" default:"withargs"`
	History  HistoryCmd  `cmd:"history" help:"Show archived records from previous runs"`
	Settings SettingsCmd `cmd:"settings" help:"Show effective settings (show, meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings loaded from settings.yaml on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.yaml > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("LURKER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("LURKER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("LURKER_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("LURKER_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("LURKER_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container goes last: the archive's gorm logger writes to logging.Logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
