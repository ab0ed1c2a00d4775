package service

import (
	"sync"

	"github.com/MKhiriev/go-chat-sync/models"
)

// timeline is the ordered message sequence of one conversation. Every
// mutation goes through mu, so a history replace and a live append for the
// same peer never interleave.
type timeline struct {
	mu       sync.Mutex
	messages []models.Message
	ids      map[string]struct{}

	// epoch changes on every replace; it tells a finishing history load
	// whether messages[from:] are still the ones appended during its fetch.
	epoch uint64
}

func newTimeline() *timeline {
	return &timeline{ids: make(map[string]struct{})}
}

// mark records the position a history fetch starts from.
func (t *timeline) mark() (from int, epoch uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages), t.epoch
}

// append adds msg unless a message with the same id is already present.
func (t *timeline) append(msg models.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if msg.ID != "" {
		if _, dup := t.ids[msg.ID]; dup {
			return false
		}
		t.ids[msg.ID] = struct{}{}
	}
	t.messages = append(t.messages, msg)
	return true
}

// replace swaps the sequence for fetched. Messages appended since mark that
// the fetch does not contain are kept at the tail, in arrival order.
func (t *timeline) replace(fetched []models.Message, from int, epoch uint64) []models.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	var pending []models.Message
	if t.epoch == epoch && from <= len(t.messages) {
		pending = t.messages[from:]
	}

	next := make([]models.Message, 0, len(fetched)+len(pending))
	ids := make(map[string]struct{}, len(fetched)+len(pending))
	add := func(m models.Message) {
		if m.ID != "" {
			if _, dup := ids[m.ID]; dup {
				return
			}
			ids[m.ID] = struct{}{}
		}
		next = append(next, m)
	}
	for _, m := range fetched {
		add(m)
	}
	for _, m := range pending {
		add(m)
	}

	t.messages = next
	t.ids = ids
	t.epoch++

	return cloneMessages(next)
}

func (t *timeline) snapshot() []models.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneMessages(t.messages)
}

func (t *timeline) images() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var refs []string
	for _, m := range t.messages {
		if m.Image != "" {
			refs = append(refs, m.Image)
		}
	}
	return refs
}

func cloneMessages(src []models.Message) []models.Message {
	if src == nil {
		return []models.Message{}
	}
	dst := make([]models.Message, len(src))
	copy(dst, src)
	return dst
}
