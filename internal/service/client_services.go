package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/internal/workers"
	"github.com/MKhiriev/go-chat-sync/models"
)

// ClientServices holds the process-wide services. Everything that lives only
// as long as one login is opened with [ClientServices.OpenChat].
type ClientServices struct {
	Session  SessionService
	Presence PresenceRegistry
	Link     RealtimeLink
	Notifier Notifier

	adapter    adapter.ServerAdapter
	workersCfg config.ClientWorkers
	logger     *logger.Logger

	// the link connects during login, before the chat is opened; messages
	// that arrive in between wait in pending until OpenChat attaches a store
	mu       sync.Mutex
	attached *conversationStore
	pending  []models.Message
}

// maxPendingMessages bounds the messages kept while no chat is open.
const maxPendingMessages = 256

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	link RealtimeLink,
	notifier Notifier,
	workersCfg config.ClientWorkers,
	log *logger.Logger,
) *ClientServices {
	presence := NewPresenceRegistry(log.Component("presence"))
	link.Subscribe(presence.HandleEvent)

	cs := &ClientServices{
		Session:    NewClientSessionService(serverAdapter, storages.SessionRepository, link, presence, notifier, log.Component("session")),
		Presence:   presence,
		Link:       link,
		Notifier:   notifier,
		adapter:    serverAdapter,
		workersCfg: workersCfg,
		logger:     log,
	}
	link.Subscribe(cs.route)

	return cs
}

// route hands realtime events to the attached store. Messages it cannot take
// are kept for the next OpenChat: on a re-login the old chat stays attached
// until the new one replaces it. Runs on the reader goroutine.
func (cs *ClientServices) route(ev realtime.Event) {
	cs.mu.Lock()
	conv := cs.attached
	if e, ok := ev.(realtime.MessageArrived); ok && (conv == nil || !e.Message.Involves(conv.self)) {
		if len(cs.pending) == maxPendingMessages {
			cs.pending = cs.pending[1:]
		}
		cs.pending = append(cs.pending, e.Message)
		conv = nil
	}
	cs.mu.Unlock()

	if conv != nil {
		conv.HandleEvent(ev)
	}
}

// attach makes conv the receiver of realtime events. Kept messages are
// replayed first, in arrival order; those for other users are dropped.
func (cs *ClientServices) attach(conv *conversationStore) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for _, msg := range cs.pending {
		if msg.Involves(conv.self) {
			conv.OnMessageArrived(msg)
		}
	}
	cs.pending = nil
	cs.attached = conv
}

func (cs *ClientServices) detach(conv *conversationStore) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.attached == conv {
		cs.attached = nil
	}
}

// ChatSession bundles the state and background work scoped to one login:
// the conversation store with its seen-ack worker and baseline refresh job.
type ChatSession struct {
	Session       models.Session
	Conversations ConversationStore

	workers *workers.Workers
	detach  func()

	expired    chan struct{}
	expireOnce sync.Once
	closeOnce  sync.Once
}

// OpenChat builds the session-scoped services for sess and starts their
// workers.
func (cs *ClientServices) OpenChat(ctx context.Context, sess models.Session) *ChatSession {
	log := cs.logger.With().Str("user_id", sess.UserID).Logger()
	l := &logger.Logger{Logger: log}

	acks := newSeenAckWorker(cs.adapter, cs.workersCfg.AckQueueSize, cs.workersCfg.AckTimeout, l.Component("seen-acks"))
	conv := newConversationStore(sess, cs.Session, cs.adapter, cs.Link, acks, cs.Notifier, l)
	job := NewBaselineJob(conv, cs.workersCfg.BaselineInterval, l.Component("baseline"))

	chat := &ChatSession{
		Session:       sess,
		Conversations: conv,
		workers:       workers.NewWorkers(acks, job),
		expired:       make(chan struct{}),
	}

	conv.refreshBaseline = job.Trigger
	conv.onAuthFailure = func() {
		chat.expireOnce.Do(func() { close(chat.expired) })
	}

	cs.attach(conv)
	chat.detach = func() { cs.detach(conv) }
	chat.workers.Start(context.WithoutCancel(ctx))
	job.Trigger()

	return chat
}

// Expired is closed once the server rejects the session token. The owner is
// expected to log out.
func (c *ChatSession) Expired() <-chan struct{} {
	return c.expired
}

// Close stops realtime delivery to the store and stops the workers.
func (c *ChatSession) Close() {
	c.closeOnce.Do(func() {
		c.detach()
		c.workers.Stop()
	})
}
