package game

import (
	"fmt"
	"math"
	"time"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// LaunchPower maps a hold duration onto [minPower, maxPower]. Holds beyond
// maxHold give maxPower; negative holds give minPower.
func LaunchPower(held, maxHold time.Duration, minPower, maxPower float64) float64 {
	if maxHold <= 0 {
		return maxPower
	}
	if held < 0 {
		held = 0
	}
	if held > maxHold {
		held = maxHold
	}
	t := float64(held) / float64(maxHold)
	return minPower + (maxPower-minPower)*t
}

// LaunchImpulse is (0, power, -power·sin(angle)).
func LaunchImpulse(power, angleDeg float64) physics.Vec3 {
	rad := angleDeg * math.Pi / 180
	return physics.V3(0, power, -power*math.Sin(rad))
}

// Shot describes one released charge.
type Shot struct {
	Ball    *TrackedBody
	Held    time.Duration
	Power   float64
	Impulse physics.Vec3
}

// Charger turns a press-and-hold into a launch of the oldest queued ball.
type Charger struct {
	state  *GameState
	clock  Clock
	events *eventSink
	tuning Tuning
}

// NewCharger wires a charger to the shared state.
func NewCharger(gs *GameState, c Clock, events *eventSink, t Tuning) *Charger {
	return &Charger{state: gs, clock: c, events: events, tuning: t}
}

// Begin starts charging. It needs a running round and at least one queued
// ball; a second Begin while charging is ignored.
func (c *Charger) Begin() bool {
	cs := &c.state.Charge
	if cs.Charging() {
		return false
	}
	if !c.state.Round.Running() {
		c.events.record("--", catShot, "charge_rejected", "round "+c.state.Round.Phase.String(), 0)
		return false
	}
	if c.state.Queue.Len() == 0 {
		c.events.record("--", catShot, "charge_rejected", "queue empty", 0)
		return false
	}
	cs.Mode = ChargeCharging
	cs.Start = c.clock.Now()
	c.events.record("--", catShot, "charge", fmt.Sprintf("queue=%d", c.state.Queue.Len()), 0)
	return true
}

// Release fires the oldest queued ball with power from the hold time. The
// charge always returns to idle.
func (c *Charger) Release() (Shot, bool) {
	cs := &c.state.Charge
	if !cs.Charging() {
		c.events.record("--", catShot, "release_rejected", "not charging", 0)
		return Shot{}, false
	}
	now := c.clock.Now()
	held := now.Sub(cs.Start)
	if held < 0 {
		held = 0
	}
	if held > c.tuning.MaxHold {
		held = c.tuning.MaxHold
	}
	cs.Reset()

	tb := c.state.Queue.PopOldest()
	if tb == nil {
		c.events.record("--", catShot, "release_rejected", "queue empty", 0)
		return Shot{}, false
	}

	power := LaunchPower(held, c.tuning.MaxHold, c.tuning.MinPower, c.tuning.MaxPower)
	impulse := LaunchImpulse(power, c.tuning.LaunchAngleDeg)
	launchBall(tb, impulse, now)
	c.events.record(tb.Label(), catShot, "release",
		fmt.Sprintf("power=%.0f held=%dms", power, held.Milliseconds()), power)
	return Shot{Ball: tb, Held: held, Power: power, Impulse: impulse}, true
}

// Level is the charge fraction in [0, 1]; 0 when idle.
func (c *Charger) Level() float64 {
	cs := &c.state.Charge
	if !cs.Charging() || c.tuning.MaxHold <= 0 {
		return 0
	}
	t := float64(c.clock.Now().Sub(cs.Start)) / float64(c.tuning.MaxHold)
	return math.Max(0, math.Min(1, t))
}

// Reset drops any charge in progress.
func (c *Charger) Reset() { c.state.Charge.Reset() }

// launchBall releases a held ball into play.
func launchBall(tb *TrackedBody, impulse physics.Vec3, now time.Time) {
	tb.Body.WakeUp()
	tb.Body.SetCollisionFilter(GroupBall, launchedBallMask)
	tb.Body.ApplyImpulse(impulse)
	tb.launched = true
	tb.launchedAt = now
}
