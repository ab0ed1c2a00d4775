// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by the signup and login endpoints.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Token    string `json:"token"`
	UserData User   `json:"userData"`
}

// UserResponse is returned by the check-auth and profile update endpoints.
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// UsersResponse is returned by GET /api/messages/users.
type UsersResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Users   []User `json:"users"`

	// UnseenMessages maps peer id to the number of messages from that peer
	// the user has not seen yet. It is the authoritative unseen baseline.
	UnseenMessages map[string]int `json:"unseenMessages"`
}

// MessagesResponse is returned by GET /api/messages/{peerId}.
type MessagesResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Messages []Message `json:"messages"`
}

// SendMessageResponse is returned by POST /api/messages/send/{peerId}.
// Exactly one of Message and Error is set.
type SendMessageResponse struct {
	Message *Message `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// PeerList is the result of a peer list fetch: the peers the user can talk
// to and the authoritative unseen counters.
type PeerList struct {
	Users        []User
	UnseenByPeer map[string]int
}
