package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	defaultAckQueueSize = 64
	defaultAckTimeout   = 5 * time.Second
	ackSenders          = 2
)

// seenAckWorker drains a bounded queue of message ids and marks each one seen
// on the server. Acks are best-effort: a failed one is logged and forgotten,
// and Enqueue drops ids once the queue is full.
type seenAckWorker struct {
	adapter adapter.ServerAdapter
	timeout time.Duration
	logger  *logger.Logger

	queue chan string

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

func newSeenAckWorker(serverAdapter adapter.ServerAdapter, queueSize int, timeout time.Duration, log *logger.Logger) *seenAckWorker {
	if queueSize <= 0 {
		queueSize = defaultAckQueueSize
	}
	if timeout <= 0 {
		timeout = defaultAckTimeout
	}
	return &seenAckWorker{
		adapter: serverAdapter,
		timeout: timeout,
		logger:  log,
		queue:   make(chan string, queueSize),
	}
}

// Enqueue implements SeenAcker.
func (w *seenAckWorker) Enqueue(messageID string) bool {
	select {
	case w.queue <- messageID:
		return true
	default:
		return false
	}
}

// Start launches the senders. Any previous run is stopped first.
func (w *seenAckWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)
	for range ackSenders {
		g.Go(func() error {
			w.drain(gctx)
			return nil
		})
	}
	w.cancel = cancel
	w.group = g
}

// Stop cancels the senders and waits for them. Queued ids that were not sent
// yet stay in the queue.
func (w *seenAckWorker) Stop() {
	w.mu.Lock()
	cancel, g := w.cancel, w.group
	w.cancel, w.group = nil, nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if g != nil {
		_ = g.Wait()
	}
}

func (w *seenAckWorker) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-w.queue:
			w.ack(ctx, id)
		}
	}
}

func (w *seenAckWorker) ack(ctx context.Context, messageID string) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.adapter.MarkSeen(ctx, messageID); err != nil {
		w.logger.Warn().Err(err).Str("func", "seenAckWorker.ack").Str("message_id", messageID).Msg("seen ack failed")
		return
	}
	w.logger.Debug().Str("func", "seenAckWorker.ack").Str("message_id", messageID).Msg("message marked seen")
}
