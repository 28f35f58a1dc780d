package tmi

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	twitch "github.com/gempir/go-twitch-irc/v4"
	"golang.org/x/sync/errgroup"

	"github.com/lurkerbot/lurker/internal/diagnostics"
	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/logging"
	"github.com/lurkerbot/lurker/internal/ports"
)

// SourceName is the diagnostic source the client publishes under
const SourceName = "TMI"

const (
	capabilities = "twitch.tv/tags twitch.tv/commands twitch.tv/membership"

	defaultLoginTimeout = 30 * time.Second
	defaultLogoutGrace  = 5 * time.Second
	defaultPingInterval = 4 * time.Minute
)

var (
	errLoginTimeout  = errors.New("login timed out")
	errSessionClosed = errors.New("session closed")
)

// Option configures a Client
type Option func(*Client)

// WithLoginTimeout sets how long to wait for the end of the greeting. Default: 30s.
func WithLoginTimeout(d time.Duration) Option {
	return func(c *Client) { c.loginTimeout = d }
}

// WithLogoutGrace sets how long LogOut waits for the server to hang up. Default: 5s.
func WithLogoutGrace(d time.Duration) Option {
	return func(c *Client) { c.logoutGrace = d }
}

// WithPingInterval sets the client keepalive period. Default: 4m.
func WithPingInterval(d time.Duration) Option {
	return func(c *Client) { c.pingInterval = d }
}

// WithNickname overrides the generated anonymous nickname
func WithNickname(nick string) Option {
	return func(c *Client) { c.nickname = nick }
}

// Client speaks the Twitch chat protocol over a ports.Connection
type Client struct {
	diagnostics  *diagnostics.Sender
	loginTimeout time.Duration
	logoutGrace  time.Duration
	nickname     string
	pingInterval time.Duration

	mu         sync.Mutex
	factory    ports.ConnectionFactory
	handler    ports.MessagingHandler
	timeKeeper ports.TimeKeeper
	session    *session
}

// Verify interface compliance at compile time
var _ ports.MessagingClient = (*Client)(nil)

// NewClient creates a disconnected Client
func NewClient(opts ...Option) *Client {
	c := &Client{
		diagnostics:  diagnostics.NewSender(SourceName),
		loginTimeout: defaultLoginTimeout,
		logoutGrace:  defaultLogoutGrace,
		pingInterval: defaultPingInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetConnectionFactory(factory ports.ConnectionFactory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factory = factory
}

func (c *Client) SetHandler(handler ports.MessagingHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

func (c *Client) SetTimeKeeper(timeKeeper ports.TimeKeeper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeKeeper = timeKeeper
}

func (c *Client) SubscribeToDiagnostics(sink ports.DiagnosticSink, minLevel domain.Level) func() {
	return c.diagnostics.Subscribe(sink, minLevel)
}

// LogInAnonymously connects in the background and announces the outcome
// through the handler: OnLoggedIn once the server greeting completes, and
// OnLoggedOut exactly once when the session ends for any reason.
func (c *Client) LogInAnonymously() {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		c.diagnostics.Send(domain.LevelWarning, "already connected")
		return
	}
	factory, handler := c.factory, c.handler
	if factory == nil || handler == nil {
		c.mu.Unlock()
		c.diagnostics.Send(domain.LevelError, "connection factory and handler must be set before logging in")
		return
	}
	s := newSession()
	c.session = s
	c.mu.Unlock()

	go c.run(s, factory, handler)
}

// Join asks the server for a channel's traffic. The channel may be given
// with or without the leading '#'.
func (c *Client) Join(channel string) {
	s := c.currentSession()
	if s == nil {
		c.diagnostics.Sendf(domain.LevelWarning, "cannot join %s: %v", channel, domain.ErrNotConnected)
		return
	}
	name := channelName(strings.ToLower(channel))
	if err := s.write("JOIN " + name); err != nil {
		c.diagnostics.Sendf(domain.LevelWarning, "failed to join %s: %v", name, err)
		return
	}
	logging.Logger.Info("Joined channel", "channel", name)
}

// LogOut says goodbye and hangs up. The connection is closed by force if
// the server has not done so within the logout grace period. Without a
// session the handler is told immediately.
func (c *Client) LogOut(farewell string) {
	s := c.currentSession()
	if s == nil {
		c.mu.Lock()
		handler := c.handler
		c.mu.Unlock()
		if handler != nil {
			handler.OnLoggedOut()
		}
		return
	}
	s.quit(farewell, c.logoutGrace)
}

func (c *Client) currentSession() *session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Client) now() time.Time {
	c.mu.Lock()
	tk := c.timeKeeper
	c.mu.Unlock()
	if tk == nil {
		return time.Now()
	}
	return tk.Now()
}

func (c *Client) run(s *session, factory ports.ConnectionFactory, handler ports.MessagingHandler) {
	defer c.finish(s, handler)

	conn, err := factory()
	if err != nil {
		logging.Logger.Warn("Connection factory failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if !s.attach(conn, cancel) {
		_ = conn.Close()
		return
	}

	nick := c.nickname
	if nick == "" {
		nick = fmt.Sprintf("justinfan%05d", rand.IntN(100000))
	}
	for _, line := range []string{
		"CAP REQ :" + capabilities,
		"PASS SCHMOOPIIE",
		"NICK " + nick,
	} {
		if err := s.write(line); err != nil {
			c.diagnostics.Sendf(domain.LevelWarning, "handshake failed: %v", err)
			_ = conn.Close()
			return
		}
	}
	c.diagnostics.Sendf(domain.LevelActivity, "Connected as %s", nick)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.read(s, handler) })
	g.Go(func() error { return c.keepAlive(gctx, s) })
	g.Go(func() error { return c.watchLogin(gctx, s) })
	g.Go(func() error {
		<-gctx.Done()
		return conn.Close()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errSessionClosed) {
		c.diagnostics.Sendf(domain.LevelWarning, "disconnected: %v", err)
	}
}

// finish releases the session and reports the end of it
func (c *Client) finish(s *session, handler ports.MessagingHandler) {
	c.mu.Lock()
	if c.session == s {
		c.session = nil
	}
	c.mu.Unlock()

	s.stopGraceTimer()
	logging.Logger.Info("Session ended")
	handler.OnLoggedOut()
}

// read consumes lines until the connection fails. It never returns nil so
// that the rest of the session group is cancelled when it exits.
func (c *Client) read(s *session, handler ports.MessagingHandler) error {
	for {
		line, err := s.conn.ReadLine()
		if err != nil {
			if s.isQuitting() {
				return errSessionClosed
			}
			return fmt.Errorf("read failed: %w", err)
		}
		c.handleLine(s, handler, line)
	}
}

func (c *Client) handleLine(s *session, handler ports.MessagingHandler, line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	logging.Logger.Debug("Received line", "line", line)

	if ircCommand(line) == "376" {
		if s.markLoggedIn() {
			handler.OnLoggedIn()
		}
		return
	}

	switch m := twitch.ParseMessage(line).(type) {
	case *twitch.PingMessage:
		if err := s.write("PONG :" + m.Message); err != nil {
			c.diagnostics.Sendf(domain.LevelWarning, "failed to answer ping: %v", err)
		}
	case *twitch.PongMessage:
	default:
		for _, event := range translate(m, c.now()) {
			ports.Dispatch(handler, event)
		}
	}
}

func (c *Client) keepAlive(ctx context.Context, s *session) error {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.write("PING :tmi.twitch.tv"); err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}
		}
	}
}

func (c *Client) watchLogin(ctx context.Context, s *session) error {
	timer := time.NewTimer(c.loginTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil
	case <-s.loggedIn:
		return nil
	case <-timer.C:
		c.diagnostics.Send(domain.LevelWarning, errLoginTimeout.Error())
		return errLoginTimeout
	}
}
