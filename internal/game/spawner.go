package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

var ballColor = color.RGBA{R: 232, G: 110, B: 30, A: 255}

// SpawnResult says why Spawn did or did not produce a ball.
type SpawnResult uint8

const (
	SpawnOK SpawnResult = iota
	SpawnRejectedPhase
	SpawnRejectedCooldown
)

func (r SpawnResult) String() string {
	switch r {
	case SpawnOK:
		return "ok"
	case SpawnRejectedPhase:
		return "round not running"
	case SpawnRejectedCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Spawner creates held balls at the spawn pose and queues them.
type Spawner struct {
	state    *GameState
	world    *physics.World
	renderer Renderer
	tracker  *Tracker
	clock    Clock
	events   *eventSink
	cooldown time.Duration

	last    time.Time
	spawned bool
	count   int
}

// NewSpawner wires a spawner to the shared state.
func NewSpawner(gs *GameState, w *physics.World, r Renderer, t *Tracker, c Clock, events *eventSink, cooldown time.Duration) *Spawner {
	return &Spawner{
		state:    gs,
		world:    w,
		renderer: r,
		tracker:  t,
		clock:    c,
		events:   events,
		cooldown: cooldown,
	}
}

// Spawn queues a new ball, or returns nil when the round is not running or
// the previous spawn was less than the cooldown ago.
func (sp *Spawner) Spawn() (*TrackedBody, SpawnResult) {
	now := sp.clock.Now()
	if !sp.state.Round.Running() {
		sp.events.record("--", catBall, "spawn_rejected", "round "+sp.state.Round.Phase.String(), 0)
		return nil, SpawnRejectedPhase
	}
	if sp.spawned {
		if wait := sp.cooldown - now.Sub(sp.last); wait > 0 {
			sp.events.record("--", catBall, "spawn_rejected",
				fmt.Sprintf("cooldown %dms left", wait.Milliseconds()), float64(wait.Milliseconds()))
			return nil, SpawnRejectedCooldown
		}
	}

	sp.count++
	label := fmt.Sprintf("B%d", sp.count)
	body := sp.world.AddBody(physics.BodyDef{
		Label:         label,
		Mass:          ballMass,
		Position:      spawnPosition,
		Shape:         physics.Sphere(ballRadius),
		Restitution:   ballRestitution,
		Friction:      ballFriction,
		LinearDamping: ballDamping,
		Group:         physics.GroupNone,
		Mask:          physics.GroupNone,
	})
	body.Sleep()
	proxy := sp.renderer.NewProxy(proxySpecFor(body.Shape(), ballColor, label), spawnPosition)
	tb := sp.tracker.Track(body, proxy, RoleBall)
	sp.state.Queue.Push(tb)

	sp.last = now
	sp.spawned = true
	n := sp.state.Queue.Len()
	sp.events.record(label, catBall, "spawn", fmt.Sprintf("queue=%d", n), float64(n))
	return tb, SpawnOK
}

// Spawned returns the number of balls created so far.
func (sp *Spawner) Spawned() int { return sp.count }

// Reset forgets the last spawn time so the next spawn is never throttled.
func (sp *Spawner) Reset() {
	sp.spawned = false
	sp.last = time.Time{}
}
