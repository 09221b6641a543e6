package realtime

import (
	"sync"
)

// Hub fans submission-change signals out to everyone watching a quiz. It
// carries no payload: subscribers re-read the current leaderboard on each
// signal, so a slow consumer only ever misses intermediate states, never the
// final one.
type Hub struct {
	mu       sync.RWMutex
	watchers map[string]map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{watchers: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe registers a watcher for a quiz. The returned cancel function must
// be called when the viewer goes away; a dangling subscription leaks the
// channel and keeps receiving signals.
func (h *Hub) Subscribe(quizID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.watchers[quizID] == nil {
		h.watchers[quizID] = make(map[chan struct{}]struct{})
	}
	h.watchers[quizID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.watchers[quizID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.watchers, quizID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// SubmissionChanged signals every watcher of the quiz. Signals coalesce: a
// watcher that has not drained its pending signal is not queued another.
func (h *Hub) SubmissionChanged(quizID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.watchers[quizID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Watchers reports how many subscribers a quiz currently has.
func (h *Hub) Watchers(quizID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[quizID])
}
