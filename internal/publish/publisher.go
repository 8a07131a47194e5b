// Package publish pushes a finished report to a socket.io server, typically a
// dashboard that tracks level pack statistics over time.
//
// The report is emitted with an acknowledgement. The server must call the ack
// callback of the event (ack(nil, nil) is enough) within Options.Timeout, and
// an unacknowledged report counts as not delivered.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/nxlvstats/internal/ctxlog"
)

// DefaultEvent is emitted when Options.Event is empty.
const DefaultEvent = "level_stats"

// DefaultNamespace is joined when Options.Namespace is empty.
const DefaultNamespace = "/"

// DefaultTimeout bounds the connection handshake and the wait for the
// server's acknowledgement when Options.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// Options configures a Publisher.
type Options struct {
	URL                string
	Namespace          string
	Event              string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Publisher emits reports as a single socket.io event.
type Publisher struct {
	opts   Options
	target *url.URL
}

// New validates opts and returns a Publisher. No connection is made until
// Publish is called.
func New(opts Options) (*Publisher, error) {
	if opts.URL == "" {
		return nil, errors.New("publish url must not be empty")
	}
	target, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse publish url: %w", err)
	}
	switch target.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported publish url scheme %q", target.Scheme)
	}
	if target.Host == "" {
		return nil, fmt.Errorf("publish url %q has no host", opts.URL)
	}
	if opts.Event == "" {
		opts.Event = DefaultEvent
	}
	if socket.RESERVED_EVENTS.Has(opts.Event) {
		return nil, fmt.Errorf("publish event %q is reserved by socket.io", opts.Event)
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Publisher{opts: opts, target: target}, nil
}

// Publish connects, emits payload under the configured event, waits for the
// server to acknowledge it and disconnects.
func (p *Publisher) Publish(ctx context.Context, payload any) error {
	logger := ctxlog.FromContext(ctx).With("url", p.opts.URL, "event", p.opts.Event)
	logger.Debug("Connecting to publish endpoint...")

	client, err := p.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	acked := make(chan error, 1)
	client.Timeout(p.opts.Timeout).EmitWithAck(p.opts.Event, payload)(func(_ []any, err error) {
		select {
		case acked <- err:
		default:
		}
	})

	select {
	case err := <-acked:
		if err != nil {
			return fmt.Errorf("report was not acknowledged: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for acknowledgement: %w", ctx.Err())
	}

	logger.Info("📡 Report published.", "sid", client.Id())
	return nil
}

func (p *Publisher) connect(ctx context.Context) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx)

	opts := socket.DefaultOptions()
	// A bare "/" keeps the default /socket.io/ endpoint.
	if p.target.Path != "" && p.target.Path != "/" {
		opts.SetPath(p.target.Path)
	}
	if p.opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connected := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", p.target.Scheme, p.target.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(p.opts.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		select {
		case connected <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case connected <- err:
		default:
		}
	})

	io.Connect()

	select {
	case err := <-connected:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return io, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(p.opts.Timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", p.opts.Timeout)
	}
}
