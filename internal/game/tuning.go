package game

import (
	"time"

	"github.com/Garsondee/Hoop-Sense/internal/config"
	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// Court layout, in metres. Y is up, the shooter stands at the origin facing -Z.
const (
	ballRadius      = 0.12
	ballMass        = 55.0
	ballRestitution = 0.6
	ballFriction    = 0.4
	ballDamping     = 0.05

	rimHeight = 3.05
	rimDepth  = -4.5 // Z of the rim centre
	rimRadius = 0.23

	sensorDrop = 0.12 // how far below the rim plane the scoring sensor sits

	// expireFloorY is the height below which a launched ball is discarded.
	expireFloorY = -2.0

	// maxFrameDelta bounds the wall-clock time fed into one Frame.
	maxFrameDelta = 250 * time.Millisecond
)

var (
	spawnPosition = physics.V3(0, 1.5, 0)
	rimCentre     = physics.V3(0, rimHeight, rimDepth)
)

// Collision groups.
const (
	GroupStatic uint32 = 1 << iota
	GroupBall
	GroupNet
	GroupSensor
)

// launchedBallMask is the filter a ball gets back when it leaves the queue.
const launchedBallMask = GroupStatic | GroupBall | GroupNet | GroupSensor

// Tuning is the gameplay subset of config.Config the simulation reads.
type Tuning struct {
	RoundLength    time.Duration
	FinalOverlay   time.Duration
	LeaderboardTop int
	SpawnCooldown  time.Duration
	MaxHold        time.Duration
	MinPower       float64
	MaxPower       float64
	LaunchAngleDeg float64
	BallLifetime   time.Duration
	ShowSensor     bool
	Seed           int64
}

// TuningFromConfig copies the gameplay fields out of cfg.
func TuningFromConfig(cfg config.Config) Tuning {
	return Tuning{
		RoundLength:    cfg.RoundLength,
		FinalOverlay:   cfg.FinalOverlay,
		LeaderboardTop: cfg.LeaderboardTop,
		SpawnCooldown:  cfg.SpawnCooldown,
		MaxHold:        cfg.MaxHold,
		MinPower:       cfg.MinPower,
		MaxPower:       cfg.MaxPower,
		LaunchAngleDeg: cfg.LaunchAngleDeg,
		BallLifetime:   cfg.BallLifetime,
		ShowSensor:     cfg.ShowSensor,
		Seed:           cfg.Seed,
	}
}

// DefaultTuning is TuningFromConfig(config.Default()).
func DefaultTuning() Tuning {
	return TuningFromConfig(config.Default())
}

// roundSeconds is the countdown start value for a round.
func (t Tuning) roundSeconds() int {
	s := int(t.RoundLength / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}
