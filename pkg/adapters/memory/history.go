package memory

import (
	"strings"
	"sync"

	"github.com/aretw0/voie/pkg/domain"
)

// History implements ports.History as an in-memory entry stack.
// Safe for concurrent use.
type History struct {
	mu        sync.Mutex
	entries   []domain.Location
	index     int
	base      string
	listeners []historyListener
	nextID    int
}

type historyListener struct {
	id int
	fn func(domain.Location)
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithBase prefixes hrefs created by CreateHref (e.g. "/app").
func WithBase(base string) HistoryOption {
	return func(h *History) {
		h.base = strings.TrimRight(base, "/")
	}
}

// WithInitialURL sets the first entry; the default is "/".
func WithInitialURL(url string) HistoryOption {
	return func(h *History) {
		h.entries[0] = domain.ParseLocation(url)
	}
}

// NewHistory creates a history holding a single entry.
func NewHistory(opts ...HistoryOption) *History {
	h := &History{
		entries: []domain.Location{{Path: "/"}},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Location returns the current entry.
func (h *History) Location() domain.Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push drops any forward entries and appends url.
func (h *History) Push(url string) {
	loc := domain.ParseLocation(url)
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], loc)
	h.index++
	h.mu.Unlock()
	h.notify(loc)
}

// Replace overwrites the current entry.
func (h *History) Replace(url string) {
	loc := domain.ParseLocation(url)
	h.mu.Lock()
	h.entries[h.index] = loc
	h.mu.Unlock()
	h.notify(loc)
}

// Back moves one entry back. It reports false at the first entry.
func (h *History) Back() bool { return h.Go(-1) }

// Forward moves one entry forward. It reports false at the last entry.
func (h *History) Forward() bool { return h.Go(1) }

// Go moves delta entries and notifies listeners. Out of range moves are ignored.
func (h *History) Go(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if delta == 0 || next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	loc := h.entries[next]
	h.mu.Unlock()
	h.notify(loc)
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.String()
	}
	return out
}

// Listen registers fn for location changes.
func (h *History) Listen(fn func(domain.Location)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners = append(h.listeners, historyListener{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, l := range h.listeners {
			if l.id == id {
				h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// CreateHref prefixes url with the configured base.
func (h *History) CreateHref(url string) string {
	if h.base == "" {
		return url
	}
	return h.base + "/" + strings.TrimLeft(url, "/")
}

func (h *History) notify(loc domain.Location) {
	h.mu.Lock()
	listeners := make([]historyListener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	for _, l := range listeners {
		l.fn(loc)
	}
}
