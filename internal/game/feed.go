package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedKind picks the marker colour of a feed line.
type FeedKind uint8

const (
	FeedInfo FeedKind = iota
	FeedScore
	FeedWarn
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Subject string
	Kind    FeedKind
	Message string
}

// EventFeed is a ring buffer of recent gameplay events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(tick int, subject string, kind FeedKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Subject: subject,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Len returns the number of entries held.
func (f *EventFeed) Len() int { return f.count }

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func feedKindColor(k FeedKind) color.RGBA {
	switch k {
	case FeedScore:
		return color.RGBA{R: 250, G: 170, B: 40, A: 255}
	case FeedWarn:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	default:
		return color.RGBA{R: 90, G: 140, B: 210, A: 255}
	}
}

// Draw renders the feed panel on the right side of the screen.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 10, G: 11, B: 14, A: 230}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 64, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 22, G: 24, B: 32, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+feedPanelWidth), 16, 1.0, color.RGBA{R: 60, G: 64, B: 90, A: 200}, false)

	entries := f.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / feedLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 32, G: 34, B: 46, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, feedKindColor(e.Kind), false)
		line := fmt.Sprintf("%5d [%s] %s", e.Tick, e.Subject, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += feedLineHeight
	}
}
