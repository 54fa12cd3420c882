package physics

import "math"

// CollisionEvent reports that A and B overlapped during a fixed step.
// Normal points from A towards B. Events repeat every step while the
// overlap persists.
type CollisionEvent struct {
	A, B   *Body
	Normal Vec3
	Depth  float64
	Step   int
}

// Involves reports whether b is one side of the event, returning the other.
func (e CollisionEvent) Involves(b *Body) (*Body, bool) {
	switch b {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return nil, false
}

// CollisionHandler receives every contact of a step. It runs inside Step;
// bodies removed from within it leave the world once the step ends.
type CollisionHandler func(CollisionEvent)

// collide runs narrowphase on a pair. The returned normal points from a to b.
func collide(a, b *Body) (normal Vec3, depth float64, ok bool) {
	sa, sb := a.shape.Kind, b.shape.Kind
	switch {
	case sa == ShapeSphere && sb == ShapeSphere:
		return sphereSphere(a.Position, a.shape.Radius, b.Position, b.shape.Radius)
	case sa == ShapeSphere && sb == ShapeBox:
		n, d, hit := sphereBox(a.Position, a.shape.Radius, b.Position, b.shape.HalfExtents)
		// sphereBox points from the box to the sphere.
		return n.Scale(-1), d, hit
	case sa == ShapeBox && sb == ShapeSphere:
		return sphereBox(b.Position, b.shape.Radius, a.Position, a.shape.HalfExtents)
	case sa == ShapeBox && sb == ShapeBox:
		return boxBox(a.Position, a.shape.HalfExtents, b.Position, b.shape.HalfExtents)
	}
	return Vec3{}, 0, false
}

func sphereSphere(pa Vec3, ra float64, pb Vec3, rb float64) (Vec3, float64, bool) {
	d := pb.Sub(pa)
	distSq := d.LenSq()
	r := ra + rb
	if distSq >= r*r {
		return Vec3{}, 0, false
	}
	dist := math.Sqrt(distSq)
	if dist < 1e-9 {
		return V3(0, 1, 0), r, true
	}
	return d.Scale(1 / dist), r - dist, true
}

// sphereBox returns the normal from the box towards the sphere centre.
func sphereBox(ps Vec3, r float64, pb, half Vec3) (Vec3, float64, bool) {
	local := ps.Sub(pb)
	closest := local.Clamp(half.Scale(-1), half)
	d := local.Sub(closest)
	distSq := d.LenSq()
	if distSq > 1e-18 {
		if distSq >= r*r {
			return Vec3{}, 0, false
		}
		dist := math.Sqrt(distSq)
		return d.Scale(1 / dist), r - dist, true
	}

	// Centre inside the box: push out through the nearest face.
	dx := half.X - math.Abs(local.X)
	dy := half.Y - math.Abs(local.Y)
	dz := half.Z - math.Abs(local.Z)
	switch {
	case dx <= dy && dx <= dz:
		return V3(sign(local.X), 0, 0), dx + r, true
	case dy <= dz:
		return V3(0, sign(local.Y), 0), dy + r, true
	default:
		return V3(0, 0, sign(local.Z)), dz + r, true
	}
}

func boxBox(pa, ha, pb, hb Vec3) (Vec3, float64, bool) {
	d := pb.Sub(pa)
	ox := ha.X + hb.X - math.Abs(d.X)
	oy := ha.Y + hb.Y - math.Abs(d.Y)
	oz := ha.Z + hb.Z - math.Abs(d.Z)
	if ox <= 0 || oy <= 0 || oz <= 0 {
		return Vec3{}, 0, false
	}
	switch {
	case ox <= oy && ox <= oz:
		return V3(sign(d.X), 0, 0), ox, true
	case oy <= oz:
		return V3(0, sign(d.Y), 0), oy, true
	default:
		return V3(0, 0, sign(d.Z)), oz, true
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// resolve separates the pair and exchanges a normal impulse with
// restitution plus a friction impulse bounded by the Coulomb cone.
func resolve(a, b *Body, n Vec3, depth float64) {
	wa := a.effectiveInvMass()
	wb := b.effectiveInvMass()
	wsum := wa + wb
	if wsum == 0 {
		return
	}

	push := n.Scale(depth / wsum)
	a.Position = a.Position.Sub(push.Scale(wa))
	b.Position = b.Position.Add(push.Scale(wb))

	rel := b.Velocity.Sub(a.Velocity)
	vn := rel.Dot(n)
	if vn >= 0 {
		return
	}
	e := math.Max(a.restitution, b.restitution)
	j := -(1 + e) * vn / wsum
	imp := n.Scale(j)
	a.Velocity = a.Velocity.Sub(imp.Scale(wa))
	b.Velocity = b.Velocity.Add(imp.Scale(wb))

	mu := math.Sqrt(a.friction * b.friction)
	if mu == 0 {
		return
	}
	rel = b.Velocity.Sub(a.Velocity)
	tangent := rel.Sub(n.Scale(rel.Dot(n)))
	vt := tangent.Len()
	if vt < 1e-9 {
		return
	}
	jt := math.Min(vt/wsum, mu*j)
	timp := tangent.Scale(jt / vt)
	a.Velocity = a.Velocity.Add(timp.Scale(wa))
	b.Velocity = b.Velocity.Sub(timp.Scale(wb))
}
