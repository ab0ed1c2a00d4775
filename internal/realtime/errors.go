package realtime

import "errors"

var (
	// ErrConnectFailed wraps handshake failures, identity announcement
	// failures and connect_error frames.
	ErrConnectFailed = errors.New("realtime connect failed")

	// ErrDisconnected is returned by Emit when the link is not in the
	// Connected state. Nothing is queued.
	ErrDisconnected = errors.New("realtime link disconnected")

	// errMalformedEnvelope marks a frame that could not be decoded. The link
	// stays up; the frame is skipped.
	errMalformedEnvelope = errors.New("malformed envelope")
)
