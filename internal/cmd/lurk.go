package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/lurkerbot/lurker/internal/config"
	"github.com/lurkerbot/lurker/internal/diagnostics"
	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/logging"
	"github.com/lurkerbot/lurker/internal/ports"
	"github.com/lurkerbot/lurker/internal/services"
)

// logoutSlack is how long past the client's own logout grace we keep
// waiting, so the forced close has time to be reported
const logoutSlack = time.Second

// LurkCmd joins channels and reports everything that happens in them
type LurkCmd struct {
	Channels []string `arg:"" optional:"" help:"Channels to join, with or without the leading #"`

	CACerts   string `help:"Root CA bundle used to verify the server (default: cert.pem next to the executable)" name:"ca-certs" env:"LURKER_CA_CERTS"`
	Endpoint  string `help:"Chat server websocket endpoint" default:"wss://irc-ws.chat.twitch.tv:443" env:"LURKER_ENDPOINT"`
	Farewell  string `help:"Message sent when leaving" default:"Bye! BibleThump" env:"LURKER_FAREWELL"`
	MinLevel  int    `help:"Only report records at or above this level" default:"0" env:"LURKER_MIN_LEVEL"`
	NoArchive bool   `help:"Do not persist records to the archive"`
}

// Run logs in, waits until the session ends or the process is asked to
// stop, then logs out
func (l *LurkCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	l.applySettings(settings)

	if len(l.Channels) == 0 {
		return domain.ErrNoChannels
	}

	runID := uuid.New().String()
	logging.Logger.Info("Starting lurker", "run_id", runID, "channels", l.Channels)

	sink, closeSink := l.buildSink(cli.Container, runID)
	defer closeSink()

	lurker := services.NewLurker(
		cli.Container.NewMessagingClient(),
		cli.Container.TimeKeeper,
		services.WithFarewell(l.Farewell),
		services.WithMinLevel(domain.Level(l.MinLevel)),
		services.WithTickPeriod(*settings.TickPeriod),
	)
	lurker.Configure(sink, cli.Container.NewConnectionFactory(l.Endpoint, l.CACerts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lurker.InitiateLogIn(l.Channels)

	loggedOut := lurker.Supervise(ctx, *settings.AwaitTimeout, *settings.LogoutGrace+logoutSlack)
	logging.Logger.Info("Lurker exited", "run_id", runID, "logged_out", loggedOut)
	return nil
}

// applySettings fills flags still at their defaults from settings.yaml,
// unless the matching env var is set
func (l *LurkCmd) applySettings(settings *config.Settings) {
	if l.CACerts == "" {
		if _, hasEnv := os.LookupEnv("LURKER_CA_CERTS"); !hasEnv {
			l.CACerts = settings.CACerts
		}
	}

	if l.Endpoint == config.DefaultEndpoint {
		if _, hasEnv := os.LookupEnv("LURKER_ENDPOINT"); !hasEnv {
			l.Endpoint = settings.Endpoint
		}
	}

	if l.Farewell == config.DefaultFarewell {
		if _, hasEnv := os.LookupEnv("LURKER_FAREWELL"); !hasEnv {
			l.Farewell = settings.Farewell
		}
	}

	if l.MinLevel == 0 {
		if _, hasEnv := os.LookupEnv("LURKER_MIN_LEVEL"); !hasEnv {
			l.MinLevel = *settings.MinLevel
		}
	}

	if !l.NoArchive && !*settings.Archive {
		l.NoArchive = true
	}
}

// buildSink fans records out to the console, the debug log and, unless
// disabled, the archive. The returned func flushes the archive.
func (l *LurkCmd) buildSink(container *Container, runID string) (ports.DiagnosticSink, func()) {
	sinks := []ports.DiagnosticSink{
		diagnostics.NewReporter(os.Stdout, os.Stderr, container.TimeKeeper),
		diagnostics.NewLogSink(),
	}
	closeSink := func() {}

	if !l.NoArchive {
		archive, err := container.Archive()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: record archive disabled: %v\n", err)
			logging.Logger.Warn("Failed to open record archive", "error", err)
		} else {
			archiveSink := diagnostics.NewArchiveSink(archive, container.TimeKeeper, runID,
				diagnostics.WithDropOnFull(),
				diagnostics.WithOnError(func(err error) {
					logging.Logger.Warn("Failed to archive record", "error", err, "run_id", runID)
				}),
			)
			sinks = append(sinks, archiveSink)
			closeSink = func() { _ = archiveSink.Close() }
		}
	}

	return diagnostics.NewMulti(sinks...), closeSink
}
