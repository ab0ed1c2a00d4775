package service

import (
	"context"

	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// RealtimeLink is the part of [realtime.Connection] the services depend on.
type RealtimeLink interface {
	Connect(ctx context.Context, id realtime.Identity) error
	Disconnect()
	Emit(ctx context.Context, event string, payload any) error
	State() realtime.State
	Subscribe(h realtime.Handler) (cancel func())
}

// Notifier delivers transient user-facing notices. Rendering them is up to
// the embedding UI.
type Notifier interface {
	Notify(n models.Notice)
}

// SessionService owns the authentication token and the identity of the
// current user. It is the only component allowed to create or destroy a
// session.
type SessionService interface {
	// Login validates creds for mode, authenticates against the server,
	// persists the token and connects the realtime link. On failure the
	// existing session, if any, is left untouched.
	Login(ctx context.Context, mode models.AuthMode, creds models.Credentials) (models.Session, error)

	// CheckSession validates token against the server. Any failure leaves
	// the client fully logged out.
	CheckSession(ctx context.Context, token string) (models.Session, error)

	// Restore loads the persisted token and checks it. Returns
	// ErrNoStoredSession when nothing is persisted.
	Restore(ctx context.Context) (models.Session, error)

	// Logout clears the token, identity and presence set, and disconnects the
	// realtime link. silent only suppresses the notice.
	Logout(ctx context.Context, silent bool)

	// UpdateProfile sends update and adopts the server-confirmed user.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// Current returns the active session, if any.
	Current() (models.Session, bool)
}

// PresenceRegistry is the set of peers currently online. Every snapshot
// replaces the set entirely.
type PresenceRegistry interface {
	ApplySnapshot(ids []string)
	IsOnline(peerID string) bool
	Online() []string
	Clear()

	// HandleEvent is the realtime subscription entry point.
	HandleEvent(ev realtime.Event)
}

// ConversationStore holds the per-peer message timelines and unseen
// counters of one session.
type ConversationStore interface {
	// ListPeers fetches the peer list. The returned unseen counters replace
	// the local ones.
	ListPeers(ctx context.Context) (models.PeerList, error)

	// LoadHistory replaces the timeline of peerID with the server's copy.
	// Returns ErrStaleResponse when the selection changed in the meantime.
	LoadHistory(ctx context.Context, peerID string) ([]models.Message, error)

	// SendMessage persists a message over HTTP, appends it locally and
	// pushes it over the realtime link. image holds raw image bytes.
	SendMessage(ctx context.Context, peerID, text string, image []byte) (models.Message, error)

	// OnMessageArrived applies a live message.
	OnMessageArrived(msg models.Message)

	// SelectPeer resets the unseen counter of peerID and loads its history.
	SelectPeer(ctx context.Context, peerID string) ([]models.Message, error)

	// Deselect clears the selection.
	Deselect()

	Selected() string
	Peers(filter string) []models.User
	Messages(peerID string) []models.Message
	Unseen(peerID string) int
	Images(peerID string) []string

	// HandleEvent is the realtime subscription entry point.
	HandleEvent(ev realtime.Event)
}

// SeenAcker sends best-effort seen acknowledgements in the background.
type SeenAcker interface {
	// Enqueue schedules an acknowledgement for messageID. It never blocks;
	// false means the ack was dropped.
	Enqueue(messageID string) bool
}

// BaselineJob periodically refreshes the authoritative unseen baseline.
type BaselineJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first.
	Start(ctx context.Context)

	// Trigger requests an immediate refresh without waiting for the ticker.
	Trigger()

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
