package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lurkerbot/lurker/internal/logging"
	"github.com/lurkerbot/lurker/internal/ports"
)

const (
	defaultDialTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

// Option configures connections built by NewFactory
type Option func(*options)

type options struct {
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

// WithDialTimeout bounds the websocket handshake. Default: 10s.
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) { o.dialTimeout = d }
}

// WithWriteTimeout bounds each line write. Default: 10s.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = d }
}

// Conn carries protocol lines over a websocket. A single frame from the
// server may hold several CRLF-terminated lines.
type Conn struct {
	ws           *websocket.Conn
	writeTimeout time.Duration

	readMu  sync.Mutex
	pending []string

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// Verify interface compliance at compile time
var _ ports.Connection = (*Conn)(nil)

// NewFactory returns a ConnectionFactory that dials endpoint. When
// caCertsPath is set the server is verified against that bundle only; the
// bundle is read on every call so that a missing file is reported per attempt.
func NewFactory(endpoint, caCertsPath string, opts ...Option) ports.ConnectionFactory {
	o := options{
		dialTimeout:  defaultDialTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func() (ports.Connection, error) {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
		if caCertsPath != "" {
			pool, err := LoadRootCAs(caCertsPath)
			if err != nil {
				return nil, err
			}
			tlsConfig.RootCAs = pool
		}

		ctx, cancel := context.WithTimeout(context.Background(), o.dialTimeout)
		defer cancel()
		conn, err := Dial(ctx, endpoint, tlsConfig, o.writeTimeout)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

// Dial opens a websocket to endpoint
func Dial(ctx context.Context, endpoint string, tlsConfig *tls.Config, writeTimeout time.Duration) (*Conn, error) {
	dialer := websocket.Dialer{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsConfig,
	}

	logging.Logger.Debug("Dialing chat server", "endpoint", endpoint)
	ws, resp, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect to %s (status %d): %w", endpoint, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}
	return &Conn{ws: ws, writeTimeout: writeTimeout}, nil
}

// ReadLine returns the next non-empty line, reading a new frame when the
// previous one is used up
func (c *Conn) ReadLine() (string, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	for len(c.pending) == 0 {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return "", err
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimRight(line, "\r"); line != "" {
				c.pending = append(c.pending, line)
			}
		}
	}

	line := c.pending[0]
	c.pending = c.pending[1:]
	return line, nil
}

// WriteLine sends line as one text frame with the CRLF terminator added
func (c *Conn) WriteLine(line string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.ws.WriteMessage(websocket.TextMessage, []byte(line+"\r\n"))
}

// Close tears down the socket. Only the first call has an effect.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.ws.Close()
	})
	return c.closeErr
}
