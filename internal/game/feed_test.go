package game

import "testing"

func TestEventFeed_RingBuffer(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, "round", FeedInfo, "tick")
	}
	if f.Len() != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, f.Len())
	}
	recent := f.Recent()
	if recent[0].Tick != 5 {
		t.Fatalf("expected oldest surviving tick 5, got %d", recent[0].Tick)
	}
	if recent[len(recent)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("expected newest tick %d, got %d", feedMaxEntries+4, recent[len(recent)-1].Tick)
	}
}

func TestEventFeed_PartialFill(t *testing.T) {
	f := NewEventFeed()
	f.Add(1, "B1", FeedScore, "score!")
	f.Add(2, "ui", FeedWarn, "clipboard failed")

	recent := f.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Subject != "B1" || recent[0].Kind != FeedScore {
		t.Fatalf("expected B1 score first, got %+v", recent[0])
	}
	if recent[1].Kind != FeedWarn {
		t.Fatalf("expected warning second, got %+v", recent[1])
	}
}
