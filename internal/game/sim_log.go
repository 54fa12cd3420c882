package game

import (
	"fmt"
	"strings"
)

// Log categories.
const (
	catRound = "round"
	catBall  = "ball"
	catShot  = "shot"
	catScore = "score"
	catUI    = "ui"
)

// SimLogEntry is one recorded gameplay event.
type SimLogEntry struct {
	Tick     int     // frame number
	Subject  string  // ball label e.g. "B3", or "--" for global events
	Category string  // round, ball, shot, score, ui
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] B3   shot      release          power=330 held=430ms
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Subject, e.Category, e.Key, e.Value)
}

// SimLog collects structured events from the simulation.
// Unlike EventFeed (UI ring-buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame entries such as
// charge level are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, subject, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Subject:  subject,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, subject, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, subject, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int { return len(sl.entries) }

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSubject returns entries for a specific subject label.
func (sl *SimLog) FilterSubject(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Subject == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the game state.
func (sl *SimLog) Summary(tick int, gs *GameState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", tick)
	fmt.Fprintf(&sb, "Round %d: phase=%s score=%d remaining=%ds\n",
		gs.Round.Round, gs.Round.Phase, gs.Round.Score, gs.Round.Remaining)
	fmt.Fprintf(&sb, "Queue: %d  charge: %s\n", gs.Queue.Len(), gs.Charge.Mode)
	fmt.Fprintf(&sb, "Events: spawns=%d shots=%d hits=%d rejected=%d\n",
		sl.CountCategory(catBall, "spawn"),
		sl.CountCategory(catShot, "release"),
		sl.CountCategory(catScore, "hit"),
		sl.countRejected())
	if gs.Round.Leaderboard.Len() == 0 {
		sb.WriteString("Leaderboard: empty\n")
	} else {
		sb.WriteString("Leaderboard:\n")
		sb.WriteString(gs.Round.Leaderboard.Format(0))
	}
	return sb.String()
}

func (sl *SimLog) countRejected() int {
	n := 0
	for _, e := range sl.entries {
		if strings.HasSuffix(e.Key, "_rejected") {
			n++
		}
	}
	return n
}
