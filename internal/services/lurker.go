package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/lurkerbot/lurker/internal/diagnostics"
	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/logging"
	"github.com/lurkerbot/lurker/internal/ports"
)

// SourceName is the diagnostic source the lurker publishes under
const SourceName = "Lurker"

const (
	defaultFarewell   = "Bye! BibleThump"
	defaultTickPeriod = 50 * time.Millisecond
)

// SessionTicker is the periodic background activity bound to a logged-in session
type SessionTicker interface {
	Start()
	Stop()
}

// LurkerOption configures a Lurker
type LurkerOption func(*Lurker)

// WithFarewell sets the text sent when leaving the server
func WithFarewell(farewell string) LurkerOption {
	return func(l *Lurker) { l.farewell = farewell }
}

// WithMinLevel sets the lowest level forwarded to the configured sink. Default: 0.
func WithMinLevel(level domain.Level) LurkerOption {
	return func(l *Lurker) { l.minLevel = level }
}

// WithTicker replaces the session ticker
func WithTicker(ticker SessionTicker) LurkerOption {
	return func(l *Lurker) { l.ticker = ticker }
}

// WithTickPeriod sets the period of the default ticker. Default: 50ms.
func WithTickPeriod(period time.Duration) LurkerOption {
	return func(l *Lurker) { l.tickPeriod = period }
}

// WithTickHook sets the hook run by the default ticker
func WithTickHook(hook TickHook) LurkerOption {
	return func(l *Lurker) { l.tickHook = hook }
}

// Lurker joins channels anonymously and turns everything the messaging
// client reports into diagnostic records. It is safe for concurrent use:
// handler methods may arrive on client goroutines while the caller is in
// InitiateLogOut or AwaitLogOut.
type Lurker struct {
	client      ports.MessagingClient
	diagnostics *diagnostics.Sender
	farewell    string
	minLevel    domain.Level
	tickHook    TickHook
	tickPeriod  time.Duration
	ticker      SessionTicker
	timeKeeper  ports.TimeKeeper

	mu             sync.Mutex
	channelsToJoin []string
	tearingDown    bool
	loggedOut      bool
	loggedOutCh    chan struct{}
}

// Verify interface compliance at compile time
var _ ports.MessagingHandler = (*Lurker)(nil)

// NewLurker creates a Lurker driving client. timeKeeper is shared with the
// ticker and handed to the client by Configure.
func NewLurker(client ports.MessagingClient, timeKeeper ports.TimeKeeper, opts ...LurkerOption) *Lurker {
	l := &Lurker{
		client:      client,
		timeKeeper:  timeKeeper,
		diagnostics: diagnostics.NewSender(SourceName),
		farewell:    defaultFarewell,
		tickPeriod:  defaultTickPeriod,
		loggedOutCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.ticker == nil {
		l.ticker = NewTicker(l.tickPeriod, l.timeKeeper, l.tickHook)
	}
	return l
}

// Configure routes diagnostics from the lurker and its client to sink and
// installs the connection factory, the clock and the lurker as the client's
// handler. Factory errors are reported to sink at error level before being
// returned to the client.
func (l *Lurker) Configure(sink ports.DiagnosticSink, factory ports.ConnectionFactory) {
	l.diagnostics.Subscribe(sink, l.minLevel)
	l.client.SubscribeToDiagnostics(l.diagnostics.Chain(), l.minLevel)

	l.client.SetConnectionFactory(func() (ports.Connection, error) {
		conn, err := factory()
		if err != nil {
			logging.Logger.Error("Failed to open connection", "error", err)
			l.diagnostics.Send(domain.LevelError, err.Error())
			return nil, err
		}
		return conn, nil
	})
	l.client.SetTimeKeeper(l.timeKeeper)
	l.client.SetHandler(l)

	l.diagnostics.Send(domain.LevelLifecycle, "Configured.")
}

// InitiateLogIn records channels to join once logged in and starts an
// anonymous login. It returns without waiting for the outcome.
func (l *Lurker) InitiateLogIn(channels []string) {
	l.mu.Lock()
	l.channelsToJoin = slices.Clone(channels)
	l.mu.Unlock()

	logging.Logger.Info("Logging in", "channels", channels)
	l.client.LogInAnonymously()
}

// InitiateLogOut asks the client to leave with the configured farewell
func (l *Lurker) InitiateLogOut() {
	l.diagnostics.Send(domain.LevelLifecycle, "Exiting...")
	l.client.LogOut(l.farewell)
}

// AwaitLogOut waits up to timeout for the session to end and reports whether it has
func (l *Lurker) AwaitLogOut(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-l.loggedOutCh:
	case <-timer.C:
	}
	return l.LoggedOut()
}

// Supervise polls AwaitLogOut every awaitTimeout until the session ends or
// ctx is done. On ctx it initiates a logout and keeps polling for at most
// logoutBound. It reports whether the session ended.
func (l *Lurker) Supervise(ctx context.Context, awaitTimeout, logoutBound time.Duration) bool {
	for !l.AwaitLogOut(awaitTimeout) {
		if ctx.Err() != nil {
			logging.Logger.Info("Shutdown requested")
			break
		}
	}
	if l.LoggedOut() {
		return true
	}

	l.InitiateLogOut()
	deadline := time.Now().Add(logoutBound)
	for !l.AwaitLogOut(awaitTimeout) {
		if time.Now().After(deadline) {
			logging.Logger.Warn("Logout did not complete in time", "bound", logoutBound)
			return false
		}
	}
	return true
}

// LoggedOut reports whether the session has ended
func (l *Lurker) LoggedOut() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loggedOut
}

// OnLoggedIn joins the requested channels in order and starts the ticker
func (l *Lurker) OnLoggedIn() {
	l.diagnostics.Send(FormatEvent(domain.LoggedIn{}))

	l.mu.Lock()
	if l.tearingDown || l.loggedOut {
		l.mu.Unlock()
		return
	}
	channels := slices.Clone(l.channelsToJoin)
	l.mu.Unlock()

	for _, channel := range channels {
		l.client.Join(channel)
	}

	if l.isTearingDown() {
		return
	}
	l.ticker.Start()

	// The ticker lock is never taken under l.mu. A logout that began between
	// the check and Start may have stopped the ticker before it ran, so stop
	// it again here.
	if l.isTearingDown() {
		l.ticker.Stop()
	}
}

func (l *Lurker) isTearingDown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tearingDown
}

// OnLoggedOut stops the ticker and marks the session over. Only the first
// call has any effect.
func (l *Lurker) OnLoggedOut() {
	l.mu.Lock()
	if l.tearingDown || l.loggedOut {
		l.mu.Unlock()
		return
	}
	l.tearingDown = true
	l.mu.Unlock()

	// Stop joins the ticker goroutine, so it runs outside the lock.
	l.ticker.Stop()
	l.diagnostics.Send(FormatEvent(domain.LoggedOut{}))

	l.mu.Lock()
	l.loggedOut = true
	close(l.loggedOutCh)
	l.mu.Unlock()
}

func (l *Lurker) OnDoom() {
	l.diagnostics.Send(FormatEvent(domain.Doom{}))
}

func (l *Lurker) OnMembershipChanged(membership domain.Membership) {
	l.diagnostics.Send(FormatEvent(membership))
}

func (l *Lurker) OnMessage(message domain.Message) {
	l.diagnostics.Send(FormatEvent(message))
}

func (l *Lurker) OnNotice(notice domain.Notice) {
	l.diagnostics.Send(FormatEvent(notice))
}

func (l *Lurker) OnHost(host domain.Host) {
	l.diagnostics.Send(FormatEvent(host))
}

func (l *Lurker) OnRoomModeChange(change domain.RoomModeChange) {
	l.diagnostics.Send(FormatEvent(change))
}

func (l *Lurker) OnClear(announcement domain.Clear) {
	l.diagnostics.Send(FormatEvent(announcement))
}

func (l *Lurker) OnSub(sub domain.Sub) {
	l.diagnostics.Send(FormatEvent(sub))
}

func (l *Lurker) OnRaid(raid domain.Raid) {
	l.diagnostics.Send(FormatEvent(raid))
}

func (l *Lurker) OnRitual(ritual domain.Ritual) {
	l.diagnostics.Send(FormatEvent(ritual))
}
