// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an immutable snapshot of a chat account as reported by the server.
// Snapshots are replaced wholesale on profile update or peer list fetch; the
// client never patches them locally.
type User struct {
	// ID is the server-assigned identifier of the account.
	ID string `json:"_id"`

	// FullName is the display name shown next to the peer.
	FullName string `json:"fullName"`

	// Email is the login identifier. The server omits it for peers.
	Email string `json:"email,omitempty"`

	// ProfilePic is an optional image reference (URL or data URL).
	ProfilePic string `json:"profilePic,omitempty"`

	// Bio is an optional free-form profile description.
	Bio string `json:"bio,omitempty"`
}

// ProfileUpdate carries the profile fields the user wants to change.
// Only non-nil fields are sent to the server.
type ProfileUpdate struct {
	FullName   *string `json:"fullName,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FullName == nil && p.Bio == nil && p.ProfilePic == nil
}
