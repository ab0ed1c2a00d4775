// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
	"github.com/MKhiriev/go-chat-sync/models"
)

type clientSessionService struct {
	adapter  adapter.ServerAdapter
	slot     store.LocalSessionRepository
	link     RealtimeLink
	presence PresenceRegistry
	notifier Notifier
	logger   *logger.Logger
	now      func() time.Time

	// opMu serialises login, check and logout so two transitions never
	// interleave.
	opMu sync.Mutex

	mu      sync.RWMutex
	session models.Session
}

func NewClientSessionService(
	serverAdapter adapter.ServerAdapter,
	slot store.LocalSessionRepository,
	link RealtimeLink,
	presence PresenceRegistry,
	notifier Notifier,
	log *logger.Logger,
) SessionService {
	return &clientSessionService{
		adapter:  serverAdapter,
		slot:     slot,
		link:     link,
		presence: presence,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

func (s *clientSessionService) Login(ctx context.Context, mode models.AuthMode, creds models.Credentials) (models.Session, error) {
	if err := creds.Validate(mode); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	prevToken := s.adapter.Token()

	resp, err := s.adapter.Authenticate(ctx, mode, creds)
	if err != nil {
		err = mapAdapterError(opAuth, err)
		s.logger.Err(err).Str("func", "clientSessionService.Login").Str("mode", string(mode)).Msg("authentication failed")
		s.notifier.Notify(models.Notice{Level: models.NoticeError, Text: "Login failed: " + err.Error()})
		return models.Session{}, err
	}

	if resp.UserData.ID == "" {
		// the adapter already adopted the new token
		s.adapter.SetToken(prevToken)
		err = fmt.Errorf("%w: response carries no user", ErrInvalidCredentials)
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("authentication failed")
		s.notifier.Notify(models.Notice{Level: models.NoticeError, Text: "Login failed"})
		return models.Session{}, err
	}

	sess := models.Session{UserID: resp.UserData.ID, Token: resp.Token, User: resp.UserData}

	if err = s.slot.SaveToken(ctx, sess.Token); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Login").Msg("token not persisted, session will not survive restart")
	}

	s.activate(ctx, sess)

	text := resp.Message
	if text == "" {
		text = "Logged in as " + sess.User.FullName
	}
	s.notifier.Notify(models.Notice{Level: models.NoticeSuccess, Text: text})

	return sess, nil
}

func (s *clientSessionService) CheckSession(ctx context.Context, token string) (models.Session, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if token == "" {
		s.clear(ctx)
		return models.Session{}, ErrNoStoredSession
	}

	if utils.IsTokenExpired(token, s.now()) {
		s.logger.Info().Str("func", "clientSessionService.CheckSession").Msg("stored token expired")
		s.clear(ctx)
		return models.Session{}, fmt.Errorf("%w: exp claim in the past", ErrTokenExpired)
	}

	s.adapter.SetToken(token)

	user, err := s.adapter.CheckAuth(ctx)
	if err == nil && user.ID == "" {
		err = fmt.Errorf("%w: response carries no user", ErrTokenExpired)
	} else if err != nil {
		err = mapAdapterError(opCheck, err)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.CheckSession").Msg("session check failed, logging out")
		s.clear(ctx)
		return models.Session{}, err
	}

	sess := models.Session{UserID: user.ID, Token: token, User: user}

	if err = s.slot.SaveToken(ctx, token); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.CheckSession").Msg("token not persisted")
	}

	s.activate(ctx, sess)
	return sess, nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	token, err := s.slot.LoadToken(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.Session{}, ErrNoStoredSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load stored token: %w", err)
	}

	return s.CheckSession(ctx, token)
}

func (s *clientSessionService) Logout(ctx context.Context, silent bool) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.clear(ctx)

	if !silent {
		s.notifier.Notify(models.Notice{Level: models.NoticeSuccess, Text: "Logged out"})
	}
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	sess, ok := s.Current()
	if !ok {
		return models.User{}, ErrNoActiveSession
	}
	if update.IsEmpty() {
		return models.User{}, fmt.Errorf("%w: nothing to update", ErrValidationFailed)
	}

	user, err := s.adapter.UpdateProfile(ctx, update)
	if err == nil && user.ID == "" {
		err = fmt.Errorf("%w: response carries no user", ErrServerError)
	} else if err != nil {
		err = mapAdapterError(opFetch, err)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.UpdateProfile").Msg("profile update failed")
		if errors.Is(err, ErrTokenExpired) {
			s.Logout(ctx, true)
		}
		s.notifier.Notify(models.Notice{Level: models.NoticeError, Text: "Update failed: " + err.Error()})
		return models.User{}, err
	}

	s.mu.Lock()
	if s.session.UserID == sess.UserID {
		s.session.User = user
	}
	s.mu.Unlock()

	s.notifier.Notify(models.Notice{Level: models.NoticeSuccess, Text: "Profile updated"})
	return user, nil
}

func (s *clientSessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.session.Active()
}

// activate installs sess and brings the realtime link up for it. Must be
// called with opMu held.
func (s *clientSessionService) activate(ctx context.Context, sess models.Session) {
	s.mu.Lock()
	prev := s.session
	s.session = sess
	s.mu.Unlock()

	s.adapter.SetToken(sess.Token)

	if prev == sess && s.link.State() != realtime.Disconnected {
		return
	}
	if prev.Active() {
		s.link.Disconnect()
		s.presence.Clear()
	}

	err := s.link.Connect(ctx, realtime.Identity{UserID: sess.UserID, Token: sess.Token})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.activate").Msg("realtime connect rejected")
	}
}

// clear destroys every piece of session state. Must be called with opMu
// held.
func (s *clientSessionService) clear(ctx context.Context) {
	s.link.Disconnect()
	s.presence.Clear()

	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	s.adapter.SetToken("")

	if err := s.slot.DeleteToken(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.clear").Msg("stored token not removed")
	}
}
