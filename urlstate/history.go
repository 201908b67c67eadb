package urlstate

import (
	"net/url"
	"sync"

	"go-storefront/models"
)

// History is the navigation adapter a Binding writes to. Push records a new
// location without reloading anything.
type History interface {
	Push(location string)
	Current() string
}

// MemoryHistory is a History kept in memory
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
}

// NewMemoryHistory starts a history at initial
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) Push(location string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, location)
}

func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Back drops the current entry and returns the previous one. The first entry
// is never dropped.
func (h *MemoryHistory) Back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

// Entries returns every recorded location, oldest first
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Binding keeps a QueryState and a History in step
type Binding struct {
	mu      sync.Mutex
	path    string
	history History
	state   models.QueryState
}

// NewBinding reads the initial state from the history's current location
func NewBinding(history History) *Binding {
	b := &Binding{history: history, path: "/"}
	b.sync()
	return b
}

// State returns the bound state
func (b *Binding) State() models.QueryState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// URL returns the serialized form of the bound state
func (b *Binding) URL() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Serialize(b.path, b.state)
}

// Update applies fn to a copy of the state and pushes the new location when it
// differs from the current one.
func (b *Binding) Update(fn func(*models.QueryState)) models.QueryState {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.state
	if b.state.Price != nil {
		r := *b.state.Price
		next.Price = &r
	}
	fn(&next)
	b.set(next)
	return b.state
}

// Sync re-reads the state from the history, after a back navigation for example
func (b *Binding) Sync() models.QueryState {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sync()
	return b.state
}

func (b *Binding) set(state models.QueryState) {
	b.state = state.Normalized()
	location := Serialize(b.path, b.state)
	if location != b.history.Current() {
		b.history.Push(location)
	}
}

func (b *Binding) sync() {
	current := b.history.Current()
	u, err := url.Parse(current)
	if err != nil {
		b.state = models.QueryState{}.Normalized()
		return
	}
	if u.Path != "" {
		b.path = u.Path
	}
	b.state = Parse(u.Query())
}
