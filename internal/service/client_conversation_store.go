// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
	"github.com/MKhiriev/go-chat-sync/models"
)

// conversationStore is scoped to one session: it is built after login and
// dropped at logout.
//
// Lock order: mu before any timeline.mu, never the other way round.
type conversationStore struct {
	self     string
	session  SessionService
	adapter  adapter.ServerAdapter
	link     RealtimeLink
	acks     SeenAcker
	notifier Notifier
	logger   *logger.Logger
	newID    func() string

	// refreshBaseline runs on every entry into Connected and on every
	// presence snapshot. It must not block.
	refreshBaseline func()
	// onAuthFailure runs when the server rejects the session token.
	onAuthFailure func()

	mu         sync.RWMutex
	timelines  map[string]*timeline
	unseen     map[string]int
	peers      []models.User
	selected   string
	generation uint64
}

func newConversationStore(
	sess models.Session,
	sessions SessionService,
	serverAdapter adapter.ServerAdapter,
	link RealtimeLink,
	acks SeenAcker,
	notifier Notifier,
	log *logger.Logger,
) *conversationStore {
	return &conversationStore{
		self:            sess.UserID,
		session:         sessions,
		adapter:         serverAdapter,
		link:            link,
		acks:            acks,
		notifier:        notifier,
		logger:          log.Component("conversations"),
		newID:           utils.NewUUIDGenerator().Generate,
		refreshBaseline: func() {},
		onAuthFailure:   func() {},
		timelines:       make(map[string]*timeline),
		unseen:          make(map[string]int),
	}
}

func (s *conversationStore) ListPeers(ctx context.Context) (models.PeerList, error) {
	list, err := s.adapter.GetUsers(ctx)
	if err != nil {
		err = s.fail(opFetch, err, "Could not load users")
		s.logger.Err(err).Str("func", "conversationStore.ListPeers").Msg("peer list fetch failed")
		return models.PeerList{}, err
	}

	users := make([]models.User, 0, len(list.Users))
	for _, u := range list.Users {
		if u.ID != "" && u.ID != s.self {
			users = append(users, u)
		}
	}

	baseline := make(map[string]int, len(list.UnseenByPeer))
	for peer, n := range list.UnseenByPeer {
		if n > 0 && peer != s.self {
			baseline[peer] = n
		}
	}

	s.mu.Lock()
	// the open conversation is being read right now
	delete(baseline, s.selected)
	s.peers = users
	s.unseen = baseline
	s.mu.Unlock()

	s.logger.Debug().Str("func", "conversationStore.ListPeers").Int("peers", len(users)).Int("unseen_peers", len(baseline)).Msg("unseen baseline replaced")

	return models.PeerList{Users: cloneUsers(users), UnseenByPeer: maps.Clone(baseline)}, nil
}

func (s *conversationStore) LoadHistory(ctx context.Context, peerID string) ([]models.Message, error) {
	if peerID == "" {
		return nil, fmt.Errorf("%w: empty peer id", ErrValidationFailed)
	}

	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	return s.loadHistory(ctx, peerID, gen)
}

// loadHistory fetches the history of peerID and applies it unless the
// selection generation moved past gen in the meantime.
func (s *conversationStore) loadHistory(ctx context.Context, peerID string, gen uint64) ([]models.Message, error) {
	t := s.timeline(peerID)
	from, epoch := t.mark()

	msgs, err := s.adapter.GetMessages(ctx, peerID)
	if err != nil {
		err = s.fail(opFetch, err, "Could not load messages")
		s.logger.Err(err).Str("func", "conversationStore.LoadHistory").Str("peer_id", peerID).Msg("history fetch failed")
		return nil, err
	}

	// holding mu keeps a concurrent selection change from slipping in
	// between the check and the replace
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.generation != gen {
		s.logger.Debug().Str("func", "conversationStore.LoadHistory").Str("peer_id", peerID).Msg("selection changed, dropping history")
		return nil, ErrStaleResponse
	}

	return t.replace(msgs, from, epoch), nil
}

func (s *conversationStore) SendMessage(ctx context.Context, peerID, text string, image []byte) (models.Message, error) {
	if strings.TrimSpace(text) == "" && len(image) == 0 {
		return models.Message{}, fmt.Errorf("%w: %w", ErrValidationFailed, models.ErrMessageEmpty)
	}
	if peerID == "" {
		return models.Message{}, fmt.Errorf("%w: empty peer id", ErrValidationFailed)
	}

	sess, ok := s.session.Current()
	if !ok || sess.UserID != s.self {
		return models.Message{}, ErrNoActiveSession
	}
	if peerID == s.self {
		return models.Message{}, fmt.Errorf("%w: %w", ErrValidationFailed, models.ErrMessageSelfAddress)
	}

	req := models.SendMessageRequest{ID: s.newID(), Text: text}
	if len(image) > 0 {
		ref, err := utils.ImageDataURL(image)
		if err != nil {
			return models.Message{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		req.Image = ref
	}

	if state := s.link.State(); state != realtime.Connected {
		err := fmt.Errorf("%w: %w (link %s)", ErrNetworkFailure, realtime.ErrDisconnected, state)
		s.notifier.Notify(models.Notice{Level: models.NoticeError, Text: "Not connected, message not sent"})
		return models.Message{}, err
	}

	msg, err := s.adapter.SendMessage(ctx, peerID, req)
	if err != nil {
		err = s.fail(opSend, err, "Message not sent")
		s.logger.Err(err).Str("func", "conversationStore.SendMessage").Str("peer_id", peerID).Msg("send failed")
		return models.Message{}, err
	}
	if msg.SenderID == "" {
		msg.SenderID = s.self
	}
	if msg.ReceiverID == "" {
		msg.ReceiverID = peerID
	}

	s.timeline(peerID).append(msg)

	if err = s.link.Emit(ctx, realtime.EventSendMessage, msg); err != nil {
		// already persisted: the peer still gets it from history
		s.logger.Warn().Err(err).Str("func", "conversationStore.SendMessage").Str("message_id", msg.ID).Msg("live push failed")
	}

	return msg, nil
}

func (s *conversationStore) OnMessageArrived(msg models.Message) {
	if err := msg.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("func", "conversationStore.OnMessageArrived").Msg("dropping invalid message")
		return
	}
	if !msg.Involves(s.self) {
		s.logger.Warn().Str("func", "conversationStore.OnMessageArrived").Str("message_id", msg.ID).Msg("dropping message addressed to someone else")
		return
	}

	peer := msg.Counterpart(s.self)
	incoming := msg.SenderID != s.self

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.timelineLocked(peer)

	if peer == s.selected {
		if incoming {
			msg.Seen = true
		}
		if !t.append(msg) {
			return
		}
		if incoming && !s.acks.Enqueue(msg.ID) {
			s.logger.Warn().Str("func", "conversationStore.OnMessageArrived").Str("message_id", msg.ID).Msg("seen ack dropped")
		}
		return
	}

	if !t.append(msg) || !incoming {
		return
	}
	s.unseen[peer]++
}

func (s *conversationStore) SelectPeer(ctx context.Context, peerID string) ([]models.Message, error) {
	if peerID == "" {
		return nil, fmt.Errorf("%w: empty peer id", ErrValidationFailed)
	}

	s.mu.Lock()
	s.selected = peerID
	s.generation++
	gen := s.generation
	delete(s.unseen, peerID)
	s.mu.Unlock()

	return s.loadHistory(ctx, peerID, gen)
}

func (s *conversationStore) Deselect() {
	s.mu.Lock()
	s.selected = ""
	s.generation++
	s.mu.Unlock()
}

func (s *conversationStore) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Peers returns the known peers whose full name contains filter, ignoring
// case. An empty filter returns everyone.
func (s *conversationStore) Peers(filter string) []models.User {
	filter = strings.ToLower(strings.TrimSpace(filter))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.peers))
	for _, u := range s.peers {
		if filter == "" || strings.Contains(strings.ToLower(u.FullName), filter) {
			out = append(out, u)
		}
	}
	return out
}

func (s *conversationStore) Messages(peerID string) []models.Message {
	s.mu.RLock()
	t, ok := s.timelines[peerID]
	s.mu.RUnlock()
	if !ok {
		return []models.Message{}
	}
	return t.snapshot()
}

func (s *conversationStore) Unseen(peerID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unseen[peerID]
}

// Images returns the image references of the conversation with peerID in
// timeline order.
func (s *conversationStore) Images(peerID string) []string {
	s.mu.RLock()
	t, ok := s.timelines[peerID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return t.images()
}

func (s *conversationStore) HandleEvent(ev realtime.Event) {
	switch e := ev.(type) {
	case realtime.MessageArrived:
		s.OnMessageArrived(e.Message)
	case realtime.StateChanged:
		if e.State == realtime.Connected {
			// counters may have drifted while the link was down
			s.refreshBaseline()
		}
	case realtime.PresenceSnapshot:
		// a peer that just came online may be missing from the list
		s.refreshBaseline()
	}
}

func (s *conversationStore) timeline(peerID string) *timeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timelineLocked(peerID)
}

func (s *conversationStore) timelineLocked(peerID string) *timeline {
	t, ok := s.timelines[peerID]
	if !ok {
		t = newTimeline()
		s.timelines[peerID] = t
	}
	return t
}

// fail maps err, reports it to the user and fires the auth failure hook
// when the token was rejected.
func (s *conversationStore) fail(op operation, err error, notice string) error {
	err = mapAdapterError(op, err)
	if errors.Is(err, ErrTokenExpired) {
		s.onAuthFailure()
	}
	s.notifier.Notify(models.Notice{Level: models.NoticeError, Text: notice + ": " + err.Error()})
	return err
}

func cloneUsers(src []models.User) []models.User {
	dst := make([]models.User, len(src))
	copy(dst, src)
	return dst
}
