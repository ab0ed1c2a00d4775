package realtime

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/sethvargo/go-retry"
)

// Options tune the reconnect loop.
type Options struct {
	// BackoffBase is the first reconnect delay. It doubles on every failed
	// attempt and resets after a successful connect.
	BackoffBase time.Duration

	// BackoffMax caps the reconnect delay.
	BackoffMax time.Duration
}

const (
	defaultBackoffBase = time.Second
	defaultBackoffMax  = 30 * time.Second
)

// Connection is the session's single realtime link.
type Connection struct {
	dialer Dialer
	logger *logger.Logger

	newBackoff func() retry.Backoff
	after      func(time.Duration) <-chan time.Time

	// opMu serialises Connect and Disconnect so a new loop never starts
	// while the previous one is still winding down.
	opMu sync.Mutex

	mu     sync.Mutex
	state  State
	conn   Conn
	cancel context.CancelFunc
	done   chan struct{}

	subMu   sync.RWMutex
	subs    map[uint64]Handler
	nextSub uint64
}

// NewConnection creates a Connection in the Disconnected state.
func NewConnection(dialer Dialer, opts Options, log *logger.Logger) *Connection {
	base, maxDelay := opts.BackoffBase, opts.BackoffMax
	if base <= 0 {
		base = defaultBackoffBase
	}
	if maxDelay < base {
		maxDelay = max(defaultBackoffMax, base)
	}

	return &Connection{
		dialer: dialer,
		logger: log,
		newBackoff: func() retry.Backoff {
			return retry.WithCappedDuration(maxDelay, retry.NewExponential(base))
		},
		after: time.After,
		state: Disconnected,
		subs:  make(map[uint64]Handler),
	}
}

// State returns the current lifecycle state.
func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers h for all future events and returns a function that
// removes it. The returned function is safe to call more than once.
func (c *Connection) Subscribe(h Handler) (cancel func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = h
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
		})
	}
}

func (c *Connection) dispatch(ev Event) {
	c.subMu.RLock()
	ids := make([]uint64, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	c.subMu.RUnlock()

	// subscription order
	slices.Sort(ids)
	for _, id := range ids {
		c.subMu.RLock()
		h, ok := c.subs[id]
		c.subMu.RUnlock()
		if ok {
			h(ev)
		}
	}
}

// Connect starts the connection loop for id. It is a no-op unless the
// connection is Disconnected. It does not wait for the handshake: progress
// is reported through [StateChanged] events.
func (c *Connection) Connect(ctx context.Context, id Identity) error {
	if id.UserID == "" || id.Token == "" {
		return fmt.Errorf("%w: empty identity", ErrConnectFailed)
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	if c.state != Disconnected {
		state := c.state
		c.mu.Unlock()
		c.logger.Debug().Str("func", "Connection.Connect").Stringer("state", state).Msg("connect ignored, link already active")
		return nil
	}

	// the loop outlives the caller's request context
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	c.state = Connecting
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	c.logger.Info().Str("func", "Connection.Connect").Str("user_id", id.UserID).Msg("connecting realtime link")

	go c.run(loopCtx, id, done)
	return nil
}

// Disconnect tears the link down from any state and waits for the
// background loop to exit. It is the only way back to Disconnected.
func (c *Connection) Disconnect() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	// cancel under mu: attach either sees the cancellation or publishes
	// conn before we read it
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	done, conn := c.done, c.conn
	wasActive := c.state != Disconnected
	c.mu.Unlock()

	if conn != nil {
		// unblocks the reader
		_ = conn.Close()
	}
	if done != nil {
		<-done
	}

	c.mu.Lock()
	c.state = Disconnected
	c.conn = nil
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if wasActive {
		c.logger.Info().Str("func", "Connection.Disconnect").Msg("realtime link closed")
		c.dispatch(StateChanged{State: Disconnected})
	}
}

// Emit sends event with payload to the server. It fails immediately with
// [ErrDisconnected] unless the link is Connected.
func (c *Connection) Emit(ctx context.Context, event string, payload any) error {
	c.mu.Lock()
	conn, state := c.conn, c.state
	c.mu.Unlock()

	if state != Connected || conn == nil {
		return fmt.Errorf("emit %s: %w", event, ErrDisconnected)
	}

	env, err := NewEnvelope(event, payload)
	if err != nil {
		return err
	}

	if err = conn.WriteEnvelope(ctx, env); err != nil {
		// a failed write means the transport is gone; the reader will
		// notice the close and start reconnecting
		_ = conn.Close()
		return fmt.Errorf("emit %s: %w: %w", event, ErrDisconnected, err)
	}
	return nil
}

func (c *Connection) run(ctx context.Context, id Identity, done chan struct{}) {
	defer close(done)

	log := c.logger.With().Str("user_id", id.UserID).Logger()
	backoff := c.newBackoff()

	c.dispatch(StateChanged{State: Connecting})

	for {
		conn, err := c.open(ctx, id)
		if err == nil {
			if !c.attach(ctx, conn) {
				_ = conn.Close()
				return
			}
			log.Info().Str("func", "Connection.run").Msg("realtime link connected")
			c.dispatch(StateChanged{State: Connected})
			backoff = c.newBackoff()

			err = c.readLoop(ctx, conn)
			c.detach(conn)
			_ = conn.Close()
		}

		if ctx.Err() != nil {
			return
		}

		delay, _ := backoff.Next()
		log.Warn().Err(err).
			Str("func", "Connection.run").
			Dur("retry_in", delay).
			Msg("realtime link lost, reconnecting")

		if !c.setState(ctx, Reconnecting) {
			return
		}
		c.dispatch(StateChanged{State: Reconnecting, Err: err})

		select {
		case <-ctx.Done():
			return
		case <-c.after(delay):
		}
	}
}

// open dials and re-announces the identity. Nothing is read from the
// connection before both announcements are written.
func (c *Connection) open(ctx context.Context, id Identity) (Conn, error) {
	conn, err := c.dialer.Dial(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	for _, event := range []string{EventJoin, EventAddUser} {
		env, err := NewEnvelope(event, id.UserID)
		if err == nil {
			err = conn.WriteEnvelope(ctx, env)
		}
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: announce %s: %w", ErrConnectFailed, event, err)
		}
	}

	return conn, nil
}

func (c *Connection) attach(ctx context.Context, conn Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	c.conn = conn
	c.state = Connected
	return true
}

func (c *Connection) detach(conn Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == conn {
		c.conn = nil
	}
}

func (c *Connection) setState(ctx context.Context, s State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	c.state = s
	return true
}

func (c *Connection) readLoop(ctx context.Context, conn Conn) error {
	for {
		env, err := conn.ReadEnvelope()
		if err != nil {
			if errors.Is(err, errMalformedEnvelope) {
				c.logger.Warn().Err(err).Str("func", "Connection.readLoop").Msg("skipping frame")
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		switch env.Event {
		case EventConnect:
			// handshake ack; identity was already announced
		case EventConnectError:
			return fmt.Errorf("%w: %s", ErrConnectFailed, decodeReason(env.Data))
		case EventDisconnect:
			return fmt.Errorf("server disconnect: %s", decodeReason(env.Data))
		case EventGetOnlineUsers, EventOnlineUsers:
			ids, err := decodeSnapshot(env.Data)
			if err != nil {
				c.logger.Warn().Err(err).Str("func", "Connection.readLoop").Str("event", env.Event).Msg("bad presence snapshot")
				continue
			}
			c.dispatch(PresenceSnapshot{IDs: ids})
		case EventNewMessage:
			var msg models.Message
			if err := decodeData(env.Data, &msg); err != nil {
				c.logger.Warn().Err(err).Str("func", "Connection.readLoop").Msg("bad message frame")
				continue
			}
			c.dispatch(MessageArrived{Message: msg})
		default:
			c.logger.Debug().Str("func", "Connection.readLoop").Str("event", env.Event).Msg("ignoring unknown event")
		}
	}
}
