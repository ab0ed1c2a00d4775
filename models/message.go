// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
	"time"
)

// Message is a single one-to-one chat message. Messages are append-only
// within a conversation: they are never edited or deleted locally.
type Message struct {
	// ID identifies the message across both delivery paths (HTTP history and
	// realtime push). It is assigned by the sender before the message is
	// persisted, so both copies of one message always carry the same ID.
	ID string `json:"_id"`

	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`

	// Text is the optional textual body.
	Text string `json:"text,omitempty"`

	// Image is an optional image reference: either a URL or a data URL.
	Image string `json:"image,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// Seen is true once the receiver has viewed the message.
	Seen bool `json:"seen"`
}

// Message validation errors.
var (
	ErrMessageEmpty         = errors.New("message has neither text nor image")
	ErrMessageSelfAddress   = errors.New("message sender equals receiver")
	ErrMessageNoID          = errors.New("message has no id")
	ErrMessageNoParticipant = errors.New("message has no sender or receiver")
)

// HasContent reports whether at least one of text or image is non-empty.
func (m Message) HasContent() bool {
	return strings.TrimSpace(m.Text) != "" || m.Image != ""
}

// Validate checks the structural rules of a message received from the
// server or the realtime channel.
func (m Message) Validate() error {
	switch {
	case m.ID == "":
		return ErrMessageNoID
	case m.SenderID == "" || m.ReceiverID == "":
		return ErrMessageNoParticipant
	case m.SenderID == m.ReceiverID:
		return ErrMessageSelfAddress
	case !m.HasContent():
		return ErrMessageEmpty
	}
	return nil
}

// Counterpart returns the peer on the other side of the conversation as seen
// by selfID.
func (m Message) Counterpart(selfID string) string {
	if m.SenderID == selfID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Involves reports whether userID is the sender or the receiver.
func (m Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
