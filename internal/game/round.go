package game

import (
	"fmt"
	"time"
)

// HitResult is the outcome of a ball touching the rim sensor.
type HitResult uint8

const (
	HitScored HitResult = iota
	HitIgnoredPhase
	HitAlreadyScored
	HitNotBall
)

func (h HitResult) String() string {
	switch h {
	case HitScored:
		return "scored"
	case HitIgnoredPhase:
		return "ignored (round not running)"
	case HitAlreadyScored:
		return "already scored"
	case HitNotBall:
		return "not a ball"
	default:
		return "unknown"
	}
}

// intervalTimer fires every period while active.
type intervalTimer struct {
	period time.Duration
	next   time.Time
	active bool
}

func (t *intervalTimer) start(now time.Time) {
	t.active = true
	t.next = now.Add(t.period)
}

func (t *intervalTimer) stop() { t.active = false }

func (t *intervalTimer) due(now time.Time) bool {
	return t.active && !now.Before(t.next)
}

func (t *intervalTimer) advance() { t.next = t.next.Add(t.period) }

// RoundMachine runs idle -> running -> finished.
type RoundMachine struct {
	state  *GameState
	clock  Clock
	events *eventSink
	tuning Tuning

	timer        intervalTimer
	overlayUntil time.Time
	lastRank     int
}

// NewRoundMachine wires the round machine to the shared state.
func NewRoundMachine(gs *GameState, c Clock, events *eventSink, t Tuning) *RoundMachine {
	return &RoundMachine{
		state:  gs,
		clock:  c,
		events: events,
		tuning: t,
		timer:  intervalTimer{period: time.Second},
	}
}

// CanStart reports whether Start would begin a round.
func (rm *RoundMachine) CanStart() bool {
	return rm.state.Round.Phase != PhaseRunning
}

// Start begins a round from idle or finished. Returns false while running.
func (rm *RoundMachine) Start() bool {
	rs := &rm.state.Round
	if !rm.CanStart() {
		rm.events.record("--", catRound, "start_rejected", "already running", 0)
		return false
	}
	now := rm.clock.Now()
	rs.Phase = PhaseRunning
	rs.Score = 0
	rs.Remaining = rm.tuning.roundSeconds()
	rs.Round++
	rm.timer.start(now)
	rm.overlayUntil = time.Time{}
	rm.events.record("--", catRound, "start",
		fmt.Sprintf("round %d, %ds", rs.Round, rs.Remaining), float64(rs.Round))
	rm.events.announce("--", FeedInfo, fmt.Sprintf("round %d: go!", rs.Round))
	return true
}

// Advance fires every timer tick that is due. Returns true if the round
// finished during this call.
func (rm *RoundMachine) Advance() bool {
	now := rm.clock.Now()
	for rm.timer.due(now) {
		rm.timer.advance()
		if rm.Tick() {
			return true
		}
	}
	return false
}

// Tick counts one second down. Returns true when that finished the round.
func (rm *RoundMachine) Tick() bool {
	rs := &rm.state.Round
	if rs.Phase != PhaseRunning {
		return false
	}
	rs.Remaining--
	rm.events.record("--", catRound, "tick", fmt.Sprintf("%ds left", rs.Remaining), float64(rs.Remaining))
	// The tick that shows 0s left ends the round: a 15s round ends 15s after Start.
	if rs.Remaining <= 0 {
		rs.Remaining = 0
		rm.finish()
		return true
	}
	return false
}

func (rm *RoundMachine) finish() {
	rs := &rm.state.Round
	rs.Phase = PhaseFinished
	rm.timer.stop()
	rm.state.Charge.Reset()
	rm.lastRank = rs.Leaderboard.Record(rs.Round, rs.Score)
	rm.overlayUntil = rm.clock.Now().Add(rm.tuning.FinalOverlay)
	rm.events.record("--", catRound, "finish",
		fmt.Sprintf("score=%d rank=%d", rs.Score, rm.lastRank), float64(rs.Score))
	rm.events.announce("--", FeedScore, fmt.Sprintf("final score %d (#%d)", rs.Score, rm.lastRank))
}

// RegisterHit counts a sensor contact by tb. A ball scores at most once and
// only while the round is running.
func (rm *RoundMachine) RegisterHit(tb *TrackedBody) HitResult {
	if tb == nil || tb.Role != RoleBall {
		return HitNotBall
	}
	rs := &rm.state.Round
	if rs.Phase != PhaseRunning {
		if !tb.sensorIgnored {
			tb.sensorIgnored = true
			rm.events.record(tb.Label(), catScore, "hit_rejected", "round "+rs.Phase.String(), 0)
		}
		return HitIgnoredPhase
	}
	if tb.scored {
		return HitAlreadyScored
	}
	tb.scored = true
	rs.Score++
	rm.events.record(tb.Label(), catScore, "hit", fmt.Sprintf("score=%d", rs.Score), float64(rs.Score))
	rm.events.announce(tb.Label(), FeedScore, fmt.Sprintf("swish! %d", rs.Score))
	return HitScored
}

// OverlayVisible reports whether the final-score overlay is still showing.
func (rm *RoundMachine) OverlayVisible() bool {
	return rm.state.Round.Phase == PhaseFinished && rm.clock.Now().Before(rm.overlayUntil)
}

// LastRank is the leaderboard rank of the most recently finished round.
func (rm *RoundMachine) LastRank() int { return rm.lastRank }
