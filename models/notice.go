package models

// NoticeLevel classifies a user-facing notification.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient user-facing notification. Rendering is left to the
// embedding UI.
type Notice struct {
	Level NoticeLevel
	Text  string
}
