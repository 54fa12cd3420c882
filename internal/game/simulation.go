package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// eventSink stamps log and feed entries with the current frame.
type eventSink struct {
	log  *SimLog
	feed *EventFeed
	tick *int
}

func (e *eventSink) record(subject, category, key, value string, num float64) {
	e.log.Add(*e.tick, subject, category, key, value, num)
}

func (e *eventSink) recordVerbose(subject, category, key, value string, num float64) {
	e.log.AddVerbose(*e.tick, subject, category, key, value, num)
}

func (e *eventSink) announce(subject string, kind FeedKind, msg string) {
	e.feed.Add(*e.tick, subject, kind, msg)
}

// Simulation is the whole game minus input and drawing. Game drives it from
// ebiten; TestSim drives it from tests with a manual clock.
type Simulation struct {
	Tuning  Tuning
	World   *physics.World
	State   *GameState
	Tracker *Tracker
	Rig     []*TrackedBody
	Net     *Net
	Sensor  *TrackedBody

	Spawner *Spawner
	Charger *Charger
	Round   *RoundMachine

	Log  *SimLog
	Feed *EventFeed

	clock    Clock
	renderer Renderer
	events   *eventSink
	rng      *rand.Rand
	bursts   []*Burst

	frame      int
	lastFrame  time.Time
	lastSteps  int
	lastAlpha  float64
	showSensor bool
}

// NewSimulation builds the court, net and sensor and returns an idle game.
func NewSimulation(t Tuning, clock Clock, r Renderer) *Simulation {
	return newSimulation(t, clock, r, NewSimLog(false))
}

func newSimulation(t Tuning, clock Clock, r Renderer, log *SimLog) *Simulation {
	s := &Simulation{
		Tuning:     t,
		World:      physics.NewWorld(),
		State:      NewGameState(),
		Tracker:    NewTracker(),
		Log:        log,
		Feed:       NewEventFeed(),
		clock:      clock,
		renderer:   r,
		lastFrame:  clock.Now(),
		showSensor: t.ShowSensor,
	}
	s.events = &eventSink{log: s.Log, feed: s.Feed, tick: &s.frame}

	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic only

	s.Rig = BuildStaticRig(s.World, r, s.Tracker)
	s.Net = BuildNet(s.World, r, s.Tracker, rimCentre, DefaultNetParams())
	s.Sensor = CreateRimSensor(s.World, r, s.Tracker, rimCentre.Sub(physics.V3(0, sensorDrop, 0)))
	s.Sensor.Proxy.SetVisible(s.showSensor)
	s.World.SetCollisionHandler(s.handleCollision)

	s.Spawner = NewSpawner(s.State, s.World, r, s.Tracker, clock, s.events, t.SpawnCooldown)
	s.Charger = NewCharger(s.State, clock, s.events, t)
	s.Round = NewRoundMachine(s.State, clock, s.events, t)
	return s
}

// StartRound begins a new round. No-op while one is running.
func (s *Simulation) StartRound() bool {
	if !s.Round.Start() {
		return false
	}
	s.Spawner.Reset()
	return true
}

// SpawnBall queues a ball if the round and cooldown allow it.
func (s *Simulation) SpawnBall() (*TrackedBody, SpawnResult) {
	return s.Spawner.Spawn()
}

// BeginCharge starts charging a shot.
func (s *Simulation) BeginCharge() bool {
	return s.Charger.Begin()
}

// ReleaseCharge fires the oldest queued ball.
func (s *Simulation) ReleaseCharge() (Shot, bool) {
	return s.Charger.Release()
}

// Frame advances the game to the clock's current time. Order: deferred
// removals, due timer ticks, physics, ball expiry, bursts, proxy sync.
func (s *Simulation) Frame() {
	now := s.clock.Now()
	dt := now.Sub(s.lastFrame)
	s.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	s.frame++

	s.Tracker.Flush(s.World)

	if s.Round.Advance() {
		s.purgeBalls()
	}

	s.lastSteps, s.lastAlpha = s.World.Integrate(dt.Seconds())

	s.expireBalls(now)
	s.advanceBursts(dt.Seconds())
	s.Tracker.Sync()

	if s.Charger.Level() > 0 {
		s.events.recordVerbose("--", catShot, "level", fmt.Sprintf("%.2f", s.Charger.Level()), s.Charger.Level())
	}
}

// handleCollision is the single collision handler for the world.
func (s *Simulation) handleCollision(ev physics.CollisionEvent) {
	a, okA := s.Tracker.Lookup(ev.A)
	b, okB := s.Tracker.Lookup(ev.B)
	if !okA || !okB {
		return
	}
	if a.Role == RoleBall {
		a, b = b, a
	}
	if b.Role != RoleBall || b.removing {
		return
	}
	switch a.Role {
	case RoleSensor:
		if s.Round.RegisterHit(b) == HitScored {
			s.bursts = append(s.bursts, newBurst(s.renderer, s.rng, s.Sensor.Body.Position))
		}
	case RoleStatic:
		s.events.recordVerbose(b.Label(), catBall, "contact", a.Label(), ev.Depth)
	}
}

// purgeBalls drops every queued and in-flight ball at the next frame.
func (s *Simulation) purgeBalls() {
	s.State.Queue.Drain()
	n := 0
	for _, tb := range s.Tracker.Entries() {
		if tb.Role == RoleBall && !tb.removing {
			s.Tracker.RemoveLater(tb)
			n++
		}
	}
	if n > 0 {
		s.events.record("--", catBall, "purge", fmt.Sprintf("%d balls", n), float64(n))
	}
}

func (s *Simulation) expireBalls(now time.Time) {
	for _, tb := range s.Tracker.Entries() {
		if tb.Role != RoleBall || !tb.launched || tb.removing {
			continue
		}
		switch {
		case now.Sub(tb.launchedAt) >= s.Tuning.BallLifetime:
			s.Tracker.RemoveLater(tb)
			s.events.record(tb.Label(), catBall, "expire", "lifetime", 0)
		case tb.Body.Position.Y < expireFloorY:
			s.Tracker.RemoveLater(tb)
			s.events.record(tb.Label(), catBall, "expire", "fell out", tb.Body.Position.Y)
		}
	}
}

func (s *Simulation) advanceBursts(dt float64) {
	kept := s.bursts[:0]
	for _, b := range s.bursts {
		if !b.Advance(dt) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(s.bursts); i++ {
		s.bursts[i] = nil
	}
	s.bursts = kept
}

// ActiveBursts returns the number of bursts still in the air.
func (s *Simulation) ActiveBursts() int { return len(s.bursts) }

// FrameCount returns the number of frames run.
func (s *Simulation) FrameCount() int { return s.frame }

// LastIntegrate returns the step count and interpolation alpha of the last frame.
func (s *Simulation) LastIntegrate() (steps int, alpha float64) {
	return s.lastSteps, s.lastAlpha
}

// Balls returns every tracked ball, queued or launched.
func (s *Simulation) Balls() []*TrackedBody {
	var out []*TrackedBody
	for _, tb := range s.Tracker.Entries() {
		if tb.Role == RoleBall {
			out = append(out, tb)
		}
	}
	return out
}

// SetSensorVisible shows or hides the rim sensor's debug proxy.
func (s *Simulation) SetSensorVisible(v bool) {
	s.showSensor = v
	s.Sensor.Proxy.SetVisible(v)
}

// SensorVisible reports whether the sensor's debug proxy is shown.
func (s *Simulation) SensorVisible() bool { return s.showSensor }

// LeaderboardText is the leaderboard as plain text, one round per line.
func (s *Simulation) LeaderboardText() string {
	lb := s.State.Round.Leaderboard
	if lb.Len() == 0 {
		return "no rounds played\n"
	}
	return lb.Format(0)
}
