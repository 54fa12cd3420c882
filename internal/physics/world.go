package physics

import "math"

// Default world tuning.
const (
	DefaultFixedStep   = 1.0 / 60.0
	DefaultMaxSubSteps = 10
	DefaultIterations  = 10
	DefaultGravity     = -9.82
)

// World owns bodies and constraints and advances them in fixed steps.
//
// Each step: integrate velocities and positions of awake dynamic bodies,
// project distance constraints, derive velocities from the corrected
// positions, then detect and resolve contacts and hand every contact to the
// collision handler.
type World struct {
	Gravity     Vec3
	FixedStep   float64 // seconds
	MaxSubSteps int
	Iterations  int // constraint projection passes per step

	bodies      []*Body
	constraints []*DistanceConstraint
	handler     CollisionHandler

	nextID      int
	accumulator float64
	steps       int
	stepping    bool
	pending     []*Body
	events      []CollisionEvent
}

// NewWorld creates a world with default gravity and step size.
func NewWorld() *World {
	return &World{
		Gravity:     V3(0, DefaultGravity, 0),
		FixedStep:   DefaultFixedStep,
		MaxSubSteps: DefaultMaxSubSteps,
		Iterations:  DefaultIterations,
	}
}

// SetCollisionHandler installs the single handler that receives contacts.
func (w *World) SetCollisionHandler(h CollisionHandler) {
	w.handler = h
}

// AddBody creates a body from def and adds it to the world.
func (w *World) AddBody(def BodyDef) *Body {
	w.nextID++
	b := &Body{
		id:            w.nextID,
		label:         def.Label,
		world:         w,
		Position:      def.Position,
		prevPosition:  def.Position,
		interpolated:  def.Position,
		mass:          def.Mass,
		shape:         def.Shape,
		restitution:   def.Restitution,
		friction:      def.Friction,
		linearDamping: def.LinearDamping,
		response:      !def.Sensor,
		group:         def.Group,
		mask:          def.Mask,
	}
	if def.Mass > 0 {
		b.invMass = 1 / def.Mass
	}
	w.bodies = append(w.bodies, b)
	return b
}

// AddConstraint joins a and b with a distance constraint.
func (w *World) AddConstraint(a, b *Body, rest float64) *DistanceConstraint {
	c := &DistanceConstraint{A: a, B: b, RestLength: rest}
	w.constraints = append(w.constraints, c)
	return c
}

// Remove takes b out of the world along with every constraint touching it.
// Called during a step, removal waits until the step has finished.
func (w *World) Remove(b *Body) {
	if b == nil || b.removed || b.world != w {
		return
	}
	if w.stepping {
		w.pending = append(w.pending, b)
		return
	}
	w.removeNow(b)
}

func (w *World) removeNow(b *Body) {
	if b.removed {
		return
	}
	b.removed = true
	kept := w.bodies[:0]
	for _, o := range w.bodies {
		if o != b {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = kept

	cs := w.constraints[:0]
	for _, c := range w.constraints {
		if c.A != b && c.B != b {
			cs = append(cs, c)
		}
	}
	for i := len(cs); i < len(w.constraints); i++ {
		w.constraints[i] = nil
	}
	w.constraints = cs
}

// Bodies returns the live bodies. The slice must not be modified.
func (w *World) Bodies() []*Body { return w.bodies }

// Constraints returns the live constraints. The slice must not be modified.
func (w *World) Constraints() []*DistanceConstraint { return w.constraints }

// Steps returns the number of fixed steps taken so far.
func (w *World) Steps() int { return w.steps }

// Integrate advances the world by frame time dt (seconds) in whole fixed
// steps, carrying the remainder to the next call. At most MaxSubSteps are
// taken; time beyond that is dropped so a long stall cannot spiral. Returns
// the number of steps taken and the leftover fraction of a step, which is
// also used to refresh every body's interpolated position.
func (w *World) Integrate(dt float64) (steps int, alpha float64) {
	if dt > 0 {
		w.accumulator += dt
	}
	for w.accumulator >= w.FixedStep && steps < w.MaxSubSteps {
		w.Step(w.FixedStep)
		w.accumulator -= w.FixedStep
		steps++
	}
	if w.accumulator >= w.FixedStep {
		w.accumulator = math.Mod(w.accumulator, w.FixedStep)
	}
	alpha = w.accumulator / w.FixedStep
	for _, b := range w.bodies {
		b.interpolated = b.prevPosition.Lerp(b.Position, alpha)
	}
	return steps, alpha
}

// Step advances the world by exactly dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.stepping = true
	w.steps++

	for _, b := range w.bodies {
		b.prevPosition = b.Position
		if b.invMass == 0 || b.sleeping {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Scale(dt))
		if b.linearDamping > 0 {
			b.Velocity = b.Velocity.Scale(math.Pow(1-b.linearDamping, dt))
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	if len(w.constraints) > 0 {
		for i := 0; i < w.Iterations; i++ {
			for _, c := range w.constraints {
				c.solve()
			}
		}
		inv := 1 / dt
		for _, b := range w.bodies {
			if b.invMass == 0 || b.sleeping {
				continue
			}
			b.Velocity = b.Position.Sub(b.prevPosition).Scale(inv)
		}
	}

	w.detectContacts()

	if w.handler != nil {
		for _, ev := range w.events {
			w.handler(ev)
		}
	}
	w.events = w.events[:0]

	w.stepping = false
	pending := w.pending
	w.pending = nil
	for _, b := range pending {
		w.removeNow(b)
	}
}

func (w *World) detectContacts() {
	n := len(w.bodies)
	for i := 0; i < n; i++ {
		a := w.bodies[i]
		if a.mask == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := w.bodies[j]
			if !a.canCollide(b) {
				continue
			}
			// Pairs of immovable bodies are skipped.
			if a.effectiveInvMass() == 0 && b.effectiveInvMass() == 0 {
				continue
			}
			normal, depth, ok := collide(a, b)
			if !ok {
				continue
			}
			if a.response && b.response {
				resolve(a, b, normal, depth)
			}
			w.events = append(w.events, CollisionEvent{
				A:      a,
				B:      b,
				Normal: normal,
				Depth:  depth,
				Step:   w.steps,
			})
		}
	}
}
