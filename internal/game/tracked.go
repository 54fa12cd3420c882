package game

import (
	"time"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// Role tags what a tracked body is for the collision handler.
type Role uint8

const (
	RoleStatic Role = iota
	RoleNet
	RoleSensor
	RoleBall
)

func (r Role) String() string {
	switch r {
	case RoleStatic:
		return "static"
	case RoleNet:
		return "net"
	case RoleSensor:
		return "sensor"
	case RoleBall:
		return "ball"
	default:
		return "unknown"
	}
}

// TrackedBody pairs a physics body with its proxy.
type TrackedBody struct {
	Body  *physics.Body
	Proxy Proxy
	Role  Role

	// Ball-only state.
	scored        bool
	sensorIgnored bool
	launched      bool
	launchedAt    time.Time

	removing bool
}

// Label is the body's label.
func (tb *TrackedBody) Label() string { return tb.Body.Label() }

// Scored reports whether the ball has already counted.
func (tb *TrackedBody) Scored() bool { return tb.scored }

// Launched reports whether the ball has left the queue.
func (tb *TrackedBody) Launched() bool { return tb.launched }

// Removing reports whether the body is waiting for the next flush.
func (tb *TrackedBody) Removing() bool { return tb.removing }

// Tracker owns every TrackedBody. Other components add to it or ask for a
// removal; only Flush takes bodies out of the world.
type Tracker struct {
	entries []*TrackedBody
	byBody  map[*physics.Body]*TrackedBody
	pending []*TrackedBody
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{byBody: make(map[*physics.Body]*TrackedBody)}
}

// Add starts tracking tb.
func (t *Tracker) Add(tb *TrackedBody) {
	t.entries = append(t.entries, tb)
	t.byBody[tb.Body] = tb
}

// Track creates and adds a TrackedBody.
func (t *Tracker) Track(body *physics.Body, proxy Proxy, role Role) *TrackedBody {
	tb := &TrackedBody{Body: body, Proxy: proxy, Role: role}
	t.Add(tb)
	return tb
}

// RemoveLater schedules tb for removal at the next Flush. Repeated calls
// are ignored.
func (t *Tracker) RemoveLater(tb *TrackedBody) {
	if tb == nil || tb.removing {
		return
	}
	tb.removing = true
	t.pending = append(t.pending, tb)
}

// Flush removes every pending body from w and from the renderer. Returns
// the number removed.
func (t *Tracker) Flush(w *physics.World) int {
	if len(t.pending) == 0 {
		return 0
	}
	for _, tb := range t.pending {
		w.Remove(tb.Body)
		tb.Proxy.Remove()
		delete(t.byBody, tb.Body)
	}
	n := len(t.pending)
	t.pending = t.pending[:0]

	kept := t.entries[:0]
	for _, tb := range t.entries {
		if !tb.removing {
			kept = append(kept, tb)
		}
	}
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = nil
	}
	t.entries = kept
	return n
}

// Pending returns the number of bodies waiting for Flush.
func (t *Tracker) Pending() int { return len(t.pending) }

// Lookup finds the TrackedBody for b.
func (t *Tracker) Lookup(b *physics.Body) (*TrackedBody, bool) {
	tb, ok := t.byBody[b]
	return tb, ok
}

// Entries returns every tracked body. The slice must not be modified.
func (t *Tracker) Entries() []*TrackedBody { return t.entries }

// Count returns the number of tracked bodies with the given role.
func (t *Tracker) Count(r Role) int {
	n := 0
	for _, tb := range t.entries {
		if tb.Role == r {
			n++
		}
	}
	return n
}

// Sync copies each body's interpolated pose onto its proxy.
func (t *Tracker) Sync() {
	for _, tb := range t.entries {
		tb.Proxy.SetPosition(tb.Body.InterpolatedPosition())
	}
}
