package status

import (
	"sync"
	"time"
)

const maxNotices = 20

// Level classifies a notice
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is a user-visible message about a finished or failed operation
type Notice struct {
	Op      string    `json:"op"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Tracker holds the global "saving" flag and recent notices.
// The saving flag is an availability hint for the UI, not a lock.
type Tracker struct {
	mu      sync.RWMutex
	saving  int
	ops     map[string]int
	notices []Notice
	now     func() time.Time
}

// NewTracker creates a new Tracker
func NewTracker() *Tracker {
	return &Tracker{
		ops: make(map[string]int),
		now: time.Now,
	}
}

// Begin marks op as in flight and returns the function that ends it
func (t *Tracker) Begin(op string) func() {
	t.mu.Lock()
	t.saving++
	t.ops[op]++
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.saving--
			if t.ops[op]--; t.ops[op] <= 0 {
				delete(t.ops, op)
			}
		})
	}
}

// Saving reports whether any network operation is in flight
func (t *Tracker) Saving() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.saving > 0
}

// InFlight reports whether op is in flight
func (t *Tracker) InFlight(op string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ops[op] > 0
}

// Info records an informational notice
func (t *Tracker) Info(op, message string) {
	t.add(Notice{Op: op, Level: LevelInfo, Message: message})
}

// Error records an error notice
func (t *Tracker) Error(op string, err error) {
	t.add(Notice{Op: op, Level: LevelError, Message: err.Error()})
}

// Notices returns recent notices, oldest first
func (t *Tracker) Notices() []Notice {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Notice, len(t.notices))
	copy(out, t.notices)
	return out
}

// Latest returns the most recent notice
func (t *Tracker) Latest() (Notice, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.notices) == 0 {
		return Notice{}, false
	}
	return t.notices[len(t.notices)-1], true
}

func (t *Tracker) add(n Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n.At = t.now()
	t.notices = append(t.notices, n)
	if len(t.notices) > maxNotices {
		t.notices = t.notices[len(t.notices)-maxNotices:]
	}
}
