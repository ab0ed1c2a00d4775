package service

import (
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/models"
)

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a Notifier that only writes notices to the log.
// It is used when no UI is attached.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) Notify(notice models.Notice) {
	ev := n.logger.Info()
	if notice.Level == models.NoticeError {
		ev = n.logger.Warn()
	}
	ev.Str("func", "logNotifier.Notify").Str("level", string(notice.Level)).Msg(notice.Text)
}
