package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
)

type presenceRegistry struct {
	logger *logger.Logger

	mu     sync.RWMutex
	online map[string]struct{}
}

func NewPresenceRegistry(log *logger.Logger) PresenceRegistry {
	return &presenceRegistry{
		logger: log,
		online: make(map[string]struct{}),
	}
}

// ApplySnapshot replaces the whole online set. Snapshots are authoritative
// and are never merged.
func (p *presenceRegistry) ApplySnapshot(ids []string) {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			next[id] = struct{}{}
		}
	}

	p.mu.Lock()
	p.online = next
	p.mu.Unlock()

	p.logger.Debug().Str("func", "presenceRegistry.ApplySnapshot").Int("online", len(next)).Msg("presence snapshot applied")
}

func (p *presenceRegistry) IsOnline(peerID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.online[peerID]
	return ok
}

// Online returns the online peer ids in sorted order.
func (p *presenceRegistry) Online() []string {
	p.mu.RLock()
	ids := make([]string, 0, len(p.online))
	for id := range p.online {
		ids = append(ids, id)
	}
	p.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

func (p *presenceRegistry) Clear() {
	p.mu.Lock()
	p.online = make(map[string]struct{})
	p.mu.Unlock()
}

func (p *presenceRegistry) HandleEvent(ev realtime.Event) {
	switch e := ev.(type) {
	case realtime.PresenceSnapshot:
		p.ApplySnapshot(e.IDs)
	case realtime.StateChanged:
		// the set is only meaningful while a link exists
		if e.State == realtime.Disconnected {
			p.Clear()
		}
	}
}
