package physics

import "testing"

func TestDistanceConstraint_ProjectsDynamicSideOnly(t *testing.T) {
	w := NewWorld()
	w.Gravity = Vec3{}
	anchor := w.AddBody(BodyDef{Shape: Sphere(0.01)})
	p := w.AddBody(BodyDef{Mass: 0.1, Position: V3(0, -2, 0), Shape: Sphere(0.01)})
	c := w.AddConstraint(anchor, p, 1)

	w.Step(w.FixedStep)

	if anchor.Position != (Vec3{}) {
		t.Fatalf("static anchor moved to %v", anchor.Position)
	}
	if !approx(c.Error(), 0) {
		t.Fatalf("expected constraint satisfied, error=%.9f", c.Error())
	}
	if !approx(p.Position.Y, -1) {
		t.Fatalf("expected particle pulled to y=-1, got %.9f", p.Position.Y)
	}
}

func TestDistanceConstraint_SplitsByInverseMass(t *testing.T) {
	w := NewWorld()
	w.Gravity = Vec3{}
	a := w.AddBody(BodyDef{Mass: 1, Position: V3(-1, 0, 0), Shape: Sphere(0.01)})
	b := w.AddBody(BodyDef{Mass: 1, Position: V3(1, 0, 0), Shape: Sphere(0.01)})
	w.AddConstraint(a, b, 1)

	w.Step(w.FixedStep)

	if !approx(a.Position.X, -0.5) || !approx(b.Position.X, 0.5) {
		t.Fatalf("expected equal masses to meet halfway, got a=%.6f b=%.6f", a.Position.X, b.Position.X)
	}
}

func TestDistanceConstraint_Connects(t *testing.T) {
	w := NewWorld()
	a := w.AddBody(BodyDef{Shape: Sphere(0.01)})
	b := w.AddBody(BodyDef{Shape: Sphere(0.01)})
	o := w.AddBody(BodyDef{Shape: Sphere(0.01)})
	c := w.AddConstraint(a, b, 1)
	if !c.Connects(a, b) || !c.Connects(b, a) {
		t.Fatal("expected constraint to connect a and b in either order")
	}
	if c.Connects(a, o) {
		t.Fatal("constraint should not connect a and o")
	}
}
