// Package stream forwards search observations to a remote renderer over
// socket.io.
//
// Each snapshot becomes a "step" event carrying an observe.Frame; the run
// summary becomes a "result" event carrying a Summary. Emits are handed to
// the socket.io client and return immediately, so the hook never stalls the
// search on the network.
package stream

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/observe"
	"github.com/katalvlaran/gridpath/search"
)

// Event names emitted to the server.
const (
	EventStep   = "step"
	EventResult = "result"
)

// DefaultTimeout bounds the wait for the initial connection.
const DefaultTimeout = 15 * time.Second

var (
	// ErrBadURL indicates Config.URL is empty or not absolute.
	ErrBadURL = errors.New("stream: url must be absolute, e.g. http://localhost:3000/socket.io/")
	// ErrConnect indicates the server refused or dropped the handshake.
	ErrConnect = errors.New("stream: connection failed")
	// ErrTimeout indicates no connect event arrived within Config.Timeout.
	ErrTimeout = errors.New("stream: timed out waiting for connection")
)

// Config locates the socket.io endpoint.
type Config struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	// Timeout defaults to DefaultTimeout when zero.
	Timeout time.Duration
}

// Summary is the JSON form of a search.Result.
type Summary struct {
	Algorithm string `json:"algorithm"`
	Found     bool   `json:"found"`
	Steps     int    `json:"steps"`
	Visited   int    `json:"visited"`
	// Cost is omitted when the end was not reached; JSON has no infinity.
	Cost      *float64     `json:"cost,omitempty"`
	ElapsedMs float64      `json:"elapsed_ms"`
	Path      []grid.Coord `json:"path"`
}

// NewSummary converts res.
func NewSummary(res search.Result) Summary {
	s := Summary{
		Algorithm: res.Algorithm.String(),
		Found:     res.Found,
		Steps:     res.Steps,
		Visited:   res.Visited,
		ElapsedMs: res.ElapsedMs(),
		Path:      res.Coords(),
	}
	if !math.IsInf(res.TotalCost, 0) && !math.IsNaN(res.TotalCost) {
		cost := res.TotalCost
		s.Cost = &cost
	}

	return s
}

// Client is a connected emitter. It is safe for concurrent use.
type Client struct {
	id     string
	emit   func(event string, payload any)
	close  func()
	logger *slog.Logger

	closeOnce sync.Once
	closed    atomic.Bool
	sent      atomic.Int64
}

func newClient(id string, emit func(string, any), closeFn func(), logger *slog.Logger) *Client {
	return &Client{id: id, emit: emit, close: closeFn, logger: logger}
}

// Dial connects to cfg.URL over the websocket transport and waits for the
// connect event, ctx cancellation or cfg.Timeout, whichever comes first.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	logger := ctxlog.FromContext(ctx).With("component", "stream", "url", cfg.URL)

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadURL, cfg.URL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connected := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		select {
		case connected <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := ErrConnect
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = fmt.Errorf("%w: %w", ErrConnect, e)
			}
		}
		select {
		case connected <- err:
		default:
		}
	})

	logger.Debug("Connecting.", "namespace", cfg.Namespace)
	io.Connect()

	select {
	case err := <-connected:
		if err != nil {
			io.Disconnect()
			return nil, err
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("stream: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}

	logger.Info("Connected.", "sid", io.Id())

	return newClient(string(io.Id()),
		func(event string, payload any) { io.Emit(event, payload) },
		func() { io.Disconnect() },
		logger,
	), nil
}

// ID returns the socket id assigned by the server.
func (c *Client) ID() string { return c.id }

// Sent returns the number of events emitted so far.
func (c *Client) Sent() int64 { return c.sent.Load() }

// Hook returns an observe.Hook that emits one "step" event per snapshot.
// After Close it drops snapshots.
func (c *Client) Hook() observe.Hook {
	return func(s observe.Snapshot) {
		c.send(EventStep, observe.Capture(s))
	}
}

// EmitResult sends the run summary as a "result" event.
func (c *Client) EmitResult(sum Summary) {
	c.send(EventResult, sum)
}

func (c *Client) send(event string, payload any) {
	if c.closed.Load() {
		return
	}
	c.emit(event, payload)
	c.sent.Add(1)
}

// Close disconnects. It is idempotent.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.close()
		c.logger.Debug("Disconnected.", "sid", c.id, "sent", c.sent.Load())
	})

	return nil
}
