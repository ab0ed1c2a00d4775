package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is a single established transport connection. ReadEnvelope is only
// ever called from one goroutine; WriteEnvelope and Close may be called
// concurrently with it.
type Conn interface {
	ReadEnvelope() (Envelope, error)
	WriteEnvelope(ctx context.Context, env Envelope) error
	Close() error
}

// Dialer opens transport connections for an identity.
type Dialer interface {
	Dial(ctx context.Context, id Identity) (Conn, error)
}

const defaultWriteTimeout = 10 * time.Second

// WebsocketDialer dials the realtime endpoint with gorilla/websocket. The
// token travels in the Authorization header and the user id in the userId
// query parameter.
type WebsocketDialer struct {
	url              string
	handshakeTimeout time.Duration
	writeTimeout     time.Duration
}

func NewWebsocketDialer(rawURL string, handshakeTimeout time.Duration) *WebsocketDialer {
	return &WebsocketDialer{
		url:              rawURL,
		handshakeTimeout: handshakeTimeout,
		writeTimeout:     defaultWriteTimeout,
	}
}

// Dial implements [Dialer].
func (d *WebsocketDialer) Dial(ctx context.Context, id Identity) (Conn, error) {
	u, err := url.Parse(d.url)
	if err != nil {
		return nil, fmt.Errorf("parse realtime url: %w", err)
	}
	q := u.Query()
	q.Set("userId", id.UserID)
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: d.handshakeTimeout,
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+id.Token)

	ws, resp, err := dialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("websocket handshake (http %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	return &wsConn{ws: ws, writeTimeout: d.writeTimeout}, nil
}

type wsConn struct {
	ws           *websocket.Conn
	writeTimeout time.Duration

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

func (c *wsConn) ReadEnvelope() (Envelope, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return Envelope{}, err
	}

	var env Envelope
	if err = json.Unmarshal(data, &env); err != nil || env.Event == "" {
		return Envelope{}, fmt.Errorf("%w: %q", errMalformedEnvelope, truncate(data, 64))
	}
	return env, nil
}

// gorilla allows one concurrent writer
func (c *wsConn) WriteEnvelope(ctx context.Context, env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline := time.Now().Add(c.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return err
	}

	return c.ws.WriteJSON(env)
}

func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		c.closeErr = c.ws.Close()
	})
	return c.closeErr
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
