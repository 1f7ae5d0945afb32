package session

import (
	"sync"
	"time"

	"github.com/macproducts/routergen/internal/render"
)

// Roles of conversation entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entry is one recorded interaction: the user's request, or the generated
// and repaired result (or its failure message).
type Entry struct {
	Role    string
	Message string
	RawCSV  string
	Router  *render.View
	At      time.Time
}

// History is the append-only conversation log of one session. It is an
// explicit structure passed into handlers, never ambient state, and nothing
// in it persists beyond the process. Entries are appended at two points
// only: after the user's request is recorded, and after the result is
// recorded. Two tabs sharing one cookie hit the same History from
// concurrent handlers, so the log carries its own lock; Entries returns a
// copy so callers iterate a stable snapshot.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

// Append records an entry. Entries are never mutated or reordered.
func (h *History) Append(e Entry) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
}

// Entries returns a snapshot of the recorded entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Generated counts assistant entries, i.e. routers generated this session.
func (h *History) Generated() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, e := range h.entries {
		if e.Role == RoleAssistant {
			n++
		}
	}
	return n
}

// LastResult returns the most recent assistant entry carrying a CSV, if any.
func (h *History) LastResult() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Role == RoleAssistant && h.entries[i].RawCSV != "" {
			return h.entries[i], true
		}
	}
	return Entry{}, false
}
