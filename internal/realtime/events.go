package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-chat-sync/models"
)

// Wire event names.
const (
	EventConnect        = "connect"
	EventConnectError   = "connect_error"
	EventDisconnect     = "disconnect"
	EventGetOnlineUsers = "getOnlineUsers"
	EventOnlineUsers    = "onlineUsers"
	EventNewMessage     = "newMessage"

	EventJoin        = "join"
	EventAddUser     = "addUser"
	EventSendMessage = "sendMessage"
)

// Envelope is the JSON frame exchanged over the websocket:
//
//	{"event": "newMessage", "data": {...}}
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope marshals payload into an envelope for event.
func NewEnvelope(event string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Event: event}, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return Envelope{Event: event, Data: data}, nil
}

// Identity is the credential attached to the realtime handshake.
type Identity struct {
	UserID string
	Token  string
}

// Event is delivered to subscribers. It is one of [PresenceSnapshot],
// [MessageArrived] or [StateChanged].
type Event interface {
	isEvent()
}

// PresenceSnapshot carries the complete set of online user ids. It replaces
// any earlier snapshot.
type PresenceSnapshot struct {
	IDs []string
}

// MessageArrived carries a message pushed by the server.
type MessageArrived struct {
	Message models.Message
}

// StateChanged reports a connection state transition. Err holds the cause of
// a transition into Reconnecting.
type StateChanged struct {
	State State
	Err   error
}

func (PresenceSnapshot) isEvent() {}
func (MessageArrived) isEvent()   {}
func (StateChanged) isEvent()     {}

// Handler consumes events. Handlers run on the connection's reader goroutine
// and must not call [Connection.Disconnect].
type Handler func(Event)

func decodeData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("empty payload")
	}
	return json.Unmarshal(data, v)
}

// decodeSnapshot accepts either a bare id array or {"ids": [...]} /
// {"userIds": [...]}.
func decodeSnapshot(data json.RawMessage) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		return ids, nil
	}

	var wrapped struct {
		IDs     []string `json:"ids"`
		UserIDs []string `json:"userIds"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode presence snapshot: %w", err)
	}
	if wrapped.IDs != nil {
		return wrapped.IDs, nil
	}
	return wrapped.UserIDs, nil
}

// decodeReason extracts a disconnect or connect_error reason, sent either as
// a bare string or {"reason": "..."} / {"message": "..."}.
func decodeReason(data json.RawMessage) string {
	if len(data) == 0 {
		return "no reason"
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}

	var wrapped struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Reason != "" {
			return wrapped.Reason
		}
		if wrapped.Message != "" {
			return wrapped.Message
		}
	}
	return string(data)
}
