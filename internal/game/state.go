package game

import "time"

// RoundPhase is the round state machine's phase.
type RoundPhase uint8

const (
	PhaseIdle RoundPhase = iota
	PhaseRunning
	PhaseFinished
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// RoundState is the score and countdown of the current (or last) round.
type RoundState struct {
	Phase       RoundPhase
	Remaining   int // whole seconds
	Score       int
	Round       int // rounds started this session
	Leaderboard *Leaderboard
}

// NewRoundState starts idle with an empty leaderboard.
func NewRoundState() RoundState {
	return RoundState{Leaderboard: NewLeaderboard()}
}

// Reset returns to idle, keeping the leaderboard and round counter.
func (rs *RoundState) Reset() {
	rs.Phase = PhaseIdle
	rs.Remaining = 0
	rs.Score = 0
}

// Running reports whether a round is in progress.
func (rs *RoundState) Running() bool { return rs.Phase == PhaseRunning }

// ChargeMode is whether the shot button is held.
type ChargeMode uint8

const (
	ChargeIdle ChargeMode = iota
	ChargeCharging
)

func (m ChargeMode) String() string {
	if m == ChargeCharging {
		return "charging"
	}
	return "idle"
}

// ChargeState records when the current charge began.
type ChargeState struct {
	Mode  ChargeMode
	Start time.Time
}

// Reset drops any charge in progress.
func (cs *ChargeState) Reset() {
	cs.Mode = ChargeIdle
	cs.Start = time.Time{}
}

// Charging reports whether a charge is in progress.
func (cs *ChargeState) Charging() bool { return cs.Mode == ChargeCharging }

// BallQueue holds spawned balls in spawn order.
type BallQueue struct {
	balls []*TrackedBody
}

// Push appends tb to the back of the queue.
func (q *BallQueue) Push(tb *TrackedBody) {
	q.balls = append(q.balls, tb)
}

// PopOldest removes and returns the first ball pushed, or nil.
func (q *BallQueue) PopOldest() *TrackedBody {
	if len(q.balls) == 0 {
		return nil
	}
	tb := q.balls[0]
	q.balls[0] = nil
	q.balls = q.balls[1:]
	return tb
}

// Len returns the number of queued balls.
func (q *BallQueue) Len() int { return len(q.balls) }

// Drain empties the queue and returns what it held, oldest first.
func (q *BallQueue) Drain() []*TrackedBody {
	out := q.balls
	q.balls = nil
	return out
}

// Reset empties the queue.
func (q *BallQueue) Reset() { q.balls = nil }

// GameState is the state shared by the spawner, the charger and the round
// machine.
type GameState struct {
	Round  RoundState
	Queue  BallQueue
	Charge ChargeState
}

// NewGameState returns an idle game with an empty leaderboard.
func NewGameState() *GameState {
	return &GameState{Round: NewRoundState()}
}
