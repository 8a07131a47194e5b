package publish

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	socketio "github.com/zishang520/socket.io/v2/socket"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name      string
		opts      Options
		expectErr string
	}{
		{name: "empty url", opts: Options{}, expectErr: "must not be empty"},
		{name: "bad scheme", opts: Options{URL: "ftp://example.com"}, expectErr: `unsupported publish url scheme "ftp"`},
		{name: "missing host", opts: Options{URL: "http:///path"}, expectErr: "has no host"},
		{name: "unparseable", opts: Options{URL: "http://[::1"}, expectErr: "failed to parse publish url"},
		{name: "valid http", opts: Options{URL: "http://localhost:3000/"}},
		{name: "valid wss with namespace", opts: Options{URL: "wss://stats.example.com/socket.io/", Namespace: "/packs"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(tc.opts)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	p, err := New(Options{URL: "http://localhost:3000"})
	require.NoError(t, err)
	assert.Equal(t, DefaultEvent, p.opts.Event)
	assert.Equal(t, DefaultTimeout, p.opts.Timeout)

	p, err = New(Options{URL: "http://localhost:3000", Event: "pack_stats", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "pack_stats", p.opts.Event)
	assert.Equal(t, time.Second, p.opts.Timeout)
}

func TestNew_DefaultsNamespace(t *testing.T) {
	p, err := New(Options{URL: "http://localhost:3000"})
	require.NoError(t, err)
	assert.Equal(t, DefaultNamespace, p.opts.Namespace)
}

func TestNew_RejectsReservedEvent(t *testing.T) {
	_, err := New(Options{URL: "http://localhost:3000", Event: "disconnect"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"disconnect" is reserved`)
}

// startServer runs an in-process socket.io server and returns its URL.
// handler receives the arguments of every DefaultEvent, including the ack
// callback as the last one.
func startServer(t *testing.T, handler func(args ...any), middleware ...socketio.NamespaceMiddleware) string {
	t.Helper()

	io := socketio.NewServer(nil, nil)
	for _, mw := range middleware {
		io.Use(mw)
	}
	io.On("connection", func(clients ...any) {
		client := clients[0].(*socketio.Socket)
		client.On(DefaultEvent, handler)
	})

	srv := httptest.NewServer(io.ServeHandler(nil))
	t.Cleanup(func() {
		io.Close(nil)
		srv.Close()
	})
	return srv.URL
}

func TestPublish_DeliversWithDefaults(t *testing.T) {
	received := make(chan map[string]any, 10)
	url := startServer(t, func(args ...any) {
		if payload, ok := args[0].(map[string]any); ok {
			received <- payload
		}
		args[len(args)-1].(socketio.Ack)(nil, nil)
	})

	p, err := New(Options{URL: url, Timeout: 5 * time.Second})
	require.NoError(t, err)

	const runs = 5
	for i := 0; i < runs; i++ {
		require.NoError(t, p.Publish(context.Background(), map[string]any{"run_id": "abc", "files": i}))
	}

	require.Len(t, received, runs)
	for i := 0; i < runs; i++ {
		payload := <-received
		assert.Equal(t, "abc", payload["run_id"])
		assert.EqualValues(t, i, payload["files"])
	}
}

func TestPublish_UnacknowledgedReportFails(t *testing.T) {
	url := startServer(t, func(args ...any) {})

	p, err := New(Options{URL: url, Timeout: 300 * time.Millisecond})
	require.NoError(t, err)

	err = p.Publish(context.Background(), map[string]any{"files": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report was not acknowledged")
}

func TestPublish_ConnectErrors(t *testing.T) {
	testCases := []struct {
		name       string
		middleware socketio.NamespaceMiddleware
		expectErr  string
	}{
		{
			name: "server rejects connection",
			middleware: func(_ *socketio.Socket, next func(*socketio.ExtendedError)) {
				next(socketio.NewExtendedError("unauthorized", map[string]any{"reason": "token"}))
			},
			expectErr: "socket.io connection failed",
		},
		{
			name:       "server never completes connection",
			middleware: func(*socketio.Socket, func(*socketio.ExtendedError)) {},
			expectErr:  "timed out after 300ms",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url := startServer(t, func(args ...any) {
				args[len(args)-1].(socketio.Ack)(nil, nil)
			}, tc.middleware)

			p, err := New(Options{URL: url, Timeout: 300 * time.Millisecond})
			require.NoError(t, err)

			err = p.Publish(context.Background(), map[string]any{"files": 1})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestPublish_CancelledContext(t *testing.T) {
	url := startServer(t, func(args ...any) {}, func(*socketio.Socket, func(*socketio.ExtendedError)) {})

	p, err := New(Options{URL: url, Timeout: 5 * time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = p.Publish(ctx, map[string]any{"files": 1})
	require.ErrorIs(t, err, context.Canceled)
}
