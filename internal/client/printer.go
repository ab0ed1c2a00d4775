package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/service"
	"github.com/MKhiriev/go-chat-sync/models"
)

// Printer serialises terminal output coming from the command loop and from
// realtime callbacks. It doubles as the service notifier; every notice is
// also written to the log.
type Printer struct {
	mu    sync.Mutex
	out   io.Writer
	audit service.Notifier
}

func NewPrinter(out io.Writer, log *logger.Logger) *Printer {
	return &Printer{out: out, audit: service.NewLogNotifier(log)}
}

func (p *Printer) Printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, args...)
}

func (p *Printer) Notify(n models.Notice) {
	p.audit.Notify(n)
	p.Printf("[%s] %s\n", n.Level, n.Text)
}
