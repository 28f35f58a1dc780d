package cmd

import (
	"github.com/lurkerbot/lurker/internal/adapters/clock"
	adapterstorage "github.com/lurkerbot/lurker/internal/adapters/storage"
	"github.com/lurkerbot/lurker/internal/adapters/tmi"
	"github.com/lurkerbot/lurker/internal/adapters/transport"
	"github.com/lurkerbot/lurker/internal/config"
	"github.com/lurkerbot/lurker/internal/logging"
	"github.com/lurkerbot/lurker/internal/paths"
	"github.com/lurkerbot/lurker/internal/ports"
)

// Container holds all dependencies for the application
type Container struct {
	// Settings are the effective settings: settings.yaml with defaults filled in
	Settings   *config.Settings
	TimeKeeper ports.TimeKeeper

	// Internal - opened on first use, closed by Close
	archive *adapterstorage.SQLiteArchive
}

// NewContainer creates a new Container. The record archive is opened lazily
// so that commands which never touch it do not create the database.
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	return &Container{
		Settings:   settings.WithDefaults(),
		TimeKeeper: clock.NewSystem(),
	}, nil
}

// Archive returns the record archive, opening it on the first call
func (c *Container) Archive() (*adapterstorage.SQLiteArchive, error) {
	if c.archive != nil {
		return c.archive, nil
	}

	archive, err := adapterstorage.NewSQLiteArchive(paths.GetArchivePath())
	if err != nil {
		return nil, err
	}
	c.archive = archive
	return archive, nil
}

// NewMessagingClient builds the chat client with the configured logout grace
func (c *Container) NewMessagingClient() *tmi.Client {
	return tmi.NewClient(tmi.WithLogoutGrace(*c.Settings.LogoutGrace))
}

// NewConnectionFactory builds the websocket factory for endpoint, trusting
// only the certificates in caCerts
func (c *Container) NewConnectionFactory(endpoint, caCerts string) ports.ConnectionFactory {
	logging.Logger.Debug("Creating connection factory", "endpoint", endpoint, "ca_certs", caCerts,
		"dial_timeout", *c.Settings.DialTimeout, "write_timeout", *c.Settings.WriteTimeout)
	return transport.NewFactory(endpoint, caCerts,
		transport.WithDialTimeout(*c.Settings.DialTimeout),
		transport.WithWriteTimeout(*c.Settings.WriteTimeout),
	)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.archive != nil {
		return c.archive.Close()
	}
	return nil
}
