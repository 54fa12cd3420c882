package game

import (
	"time"
)

// defaultFrameStep divides whole seconds exactly, so the 1 Hz round timer
// fires on a frame boundary.
const defaultFrameStep = 20 * time.Millisecond

// harnessEpoch is the manual clock's start time.
var harnessEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// TestSim is a headless harness around Simulation used by tests and the
// headless report. It mirrors Game.Update without ebiten and drives time
// with a ManualClock.
type TestSim struct {
	Sim       *Simulation
	Scene     *Scene
	Clock     *ManualClock
	SimLog    *SimLog
	FrameStep time.Duration

	tuning  Tuning
	verbose bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // tuning, seed, frame step, verbose: applied before the sim exists
	simOptSetup                      // round start, queued balls: applied to the built sim
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithTuning replaces the whole tuning.
func WithTuning(t Tuning) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning = t
	}}
}

// WithRoundLength sets the round length.
func WithRoundLength(d time.Duration) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning.RoundLength = d
	}}
}

// WithSeed sets the burst RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning.Seed = seed
	}}
}

// WithFrameStep sets the wall-clock time between frames.
func WithFrameStep(d time.Duration) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.FrameStep = d
	}}
}

// WithVerbose enables per-frame verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithStartedRound starts a round before the test begins.
func WithStartedRound() SimOption {
	return SimOption{simOptSetup, func(ts *TestSim) {
		ts.Sim.StartRound()
	}}
}

// WithQueuedBalls spawns n balls, running frames for one cooldown between
// spawns. Needs a started round.
func WithQueuedBalls(n int) SimOption {
	return SimOption{simOptSetup, func(ts *TestSim) {
		for i := 0; i < n; i++ {
			if i > 0 {
				ts.RunFor(ts.tuning.SpawnCooldown)
			}
			ts.Sim.SpawnBall()
		}
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (tuning, seed, frame step, verbose)
//  2. Build the Simulation
//  3. Setup (round start, queued balls)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Clock:     NewManualClock(harnessEpoch),
		Scene:     NewScene(),
		FrameStep: defaultFrameStep,
		tuning:    DefaultTuning(),
	}
	ts.tuning.Seed = 1
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Sim = newSimulation(ts.tuning, ts.Clock, ts.Scene, ts.SimLog)
	for _, o := range opts {
		if o.kind == simOptSetup {
			o.fn(ts)
		}
	}
	return ts
}

// RunFrames advances the clock by FrameStep and runs a frame, n times.
func (ts *TestSim) RunFrames(n int) {
	for i := 0; i < n; i++ {
		ts.Clock.Advance(ts.FrameStep)
		ts.Sim.Frame()
	}
}

// RunFor runs as many whole frames as fit in d.
func (ts *TestSim) RunFor(d time.Duration) {
	if ts.FrameStep <= 0 {
		return
	}
	ts.RunFrames(int(d / ts.FrameStep))
}

// RunUntil runs up to maxFrames, stopping early if predicate returns true.
// Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.RunFrames(1)
		if predicate(ts) {
			return ts.Sim.FrameCount()
		}
	}
	return -1
}

// Hold presses the shot button, keeps it down for d of game time, and
// releases it.
func (ts *TestSim) Hold(d time.Duration) (Shot, bool) {
	if !ts.Sim.BeginCharge() {
		return Shot{}, false
	}
	ts.RunFor(d)
	return ts.Sim.ReleaseCharge()
}

// Elapsed is the game time since the harness was built.
func (ts *TestSim) Elapsed() time.Duration {
	return ts.Clock.Now().Sub(harnessEpoch)
}

// CurrentTick returns the current frame number.
func (ts *TestSim) CurrentTick() int {
	return ts.Sim.FrameCount()
}

// SimSnapshot is a lightweight copy of the game state.
type SimSnapshot struct {
	Tick        int
	Phase       RoundPhase
	Remaining   int
	Score       int
	Queued      int
	Balls       int
	Charging    bool
	Leaderboard []int
	Bodies      int
	Proxies     int
}

// Snapshot captures the current state.
func (ts *TestSim) Snapshot() SimSnapshot {
	gs := ts.Sim.State
	return SimSnapshot{
		Tick:        ts.Sim.FrameCount(),
		Phase:       gs.Round.Phase,
		Remaining:   gs.Round.Remaining,
		Score:       gs.Round.Score,
		Queued:      gs.Queue.Len(),
		Balls:       len(ts.Sim.Balls()),
		Charging:    gs.Charge.Charging(),
		Leaderboard: gs.Round.Leaderboard.Scores(),
		Bodies:      len(ts.Sim.World.Bodies()),
		Proxies:     ts.Scene.Len(),
	}
}
