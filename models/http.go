// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SendMessageRequest is the body of POST /api/messages/send/{peerId}.
type SendMessageRequest struct {
	// ID is the sender-assigned message identifier. The server persists the
	// message under this ID so the realtime copy can be deduplicated against
	// the history copy.
	ID string `json:"id,omitempty"`

	Text string `json:"text,omitempty"`

	// Image is an encoded image (data URL).
	Image string `json:"image,omitempty"`
}
