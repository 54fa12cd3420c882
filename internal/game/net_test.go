package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

func buildTestNet(p NetParams) (*Net, *physics.World, *Scene) {
	w := physics.NewWorld()
	sc := NewScene()
	net := BuildNet(w, sc, NewTracker(), rimCentre, p)
	return net, w, sc
}

func TestNet_ConstraintCount(t *testing.T) {
	p := DefaultNetParams()
	net, w, sc := buildTestNet(p)

	want := p.Rings*p.Slots + (p.Rings-1)*p.Slots
	if p.ExpectedConstraints() != want || want != 580 {
		t.Fatalf("expected 580 constraints for 15x20, got %d", p.ExpectedConstraints())
	}
	if len(w.Constraints()) != want || len(net.Links) != want {
		t.Fatalf("expected %d constraints, got world=%d links=%d", want, len(w.Constraints()), len(net.Links))
	}
	if len(w.Bodies()) != p.Rings*p.Slots {
		t.Fatalf("expected %d particles, got %d", p.Rings*p.Slots, len(w.Bodies()))
	}
	if sc.CountKind(ProxyPoint) != p.Rings*p.Slots {
		t.Fatalf("expected one point marker per particle, got %d", sc.CountKind(ProxyPoint))
	}
}

func TestNet_LinksOnlyNeighbours(t *testing.T) {
	p := DefaultNetParams()
	net, _, _ := buildTestNet(p)

	for _, l := range net.Links {
		a := net.Particle(l.Ring, l.Slot)
		var b *physics.Body
		var rest float64
		switch l.Kind {
		case LinkRing:
			b = net.Particle(l.Ring, (l.Slot+1)%p.Slots)
			rest = 2 * p.RingRadius(l.Ring) * math.Sin(math.Pi/float64(p.Slots))
		case LinkChain:
			if l.Ring == 0 {
				t.Fatal("expected no chain link above ring 0")
			}
			b = net.Particle(l.Ring-1, l.Slot)
			rest = p.Spacing
		}
		if !l.Constraint.Connects(a, b) {
			t.Fatalf("link %+v does not join its lattice neighbours", l)
		}
		if math.Abs(l.Constraint.RestLength-rest) > 1e-12 {
			t.Fatalf("link %+v: expected rest %.6f, got %.6f", l, rest, l.Constraint.RestLength)
		}
	}
}

func TestNet_RingZeroIsStaticAndPlaced(t *testing.T) {
	p := DefaultNetParams()
	net, _, _ := buildTestNet(p)

	for slot := 0; slot < p.Slots; slot++ {
		top := net.Particle(0, slot)
		if !top.IsStatic() {
			t.Fatalf("expected ring 0 slot %d static", slot)
		}
		if d := math.Hypot(top.Position.X-rimCentre.X, top.Position.Z-rimCentre.Z); math.Abs(d-p.TopRadius) > 1e-9 {
			t.Fatalf("expected ring 0 at radius %.3f, got %.6f", p.TopRadius, d)
		}
		low := net.Particle(1, slot)
		if low.IsStatic() || low.Mass() != p.ParticleMass {
			t.Fatalf("expected ring 1 mass %.3f, got %.3f", p.ParticleMass, low.Mass())
		}
	}
	last := net.Particle(p.Rings-1, 0)
	wantY := rimCentre.Y - float64(p.Rings-1)*p.Spacing
	if math.Abs(last.Position.Y-wantY) > 1e-9 {
		t.Fatalf("expected bottom ring at y=%.3f, got %.6f", wantY, last.Position.Y)
	}
	if math.Abs(p.RingRadius(p.Rings-1)-p.BottomRadius) > 1e-12 {
		t.Fatalf("expected bottom radius %.3f, got %.6f", p.BottomRadius, p.RingRadius(p.Rings-1))
	}
}

func TestNet_HangsUnderGravity(t *testing.T) {
	p := DefaultNetParams()
	net, w, _ := buildTestNet(p)
	before := net.Particle(0, 3).Position

	for i := 0; i < 120; i++ {
		w.Step(w.FixedStep)
	}

	if net.Particle(0, 3).Position != before {
		t.Fatal("expected rim ring to stay fixed")
	}
	floor := rimCentre.Y - 2*float64(p.Rings-1)*p.Spacing
	for slot := 0; slot < p.Slots; slot++ {
		y := net.Particle(p.Rings-1, slot).Position.Y
		if math.IsNaN(y) || y >= rimCentre.Y || y < floor {
			t.Fatalf("bottom ring slot %d out of range: y=%.4f (floor %.4f)", slot, y, floor)
		}
	}
}

func TestNet_SingleRing(t *testing.T) {
	p := DefaultNetParams()
	p.Rings = 1
	net, w, _ := buildTestNet(p)
	if len(w.Constraints()) != p.Slots || p.ExpectedConstraints() != p.Slots {
		t.Fatalf("expected %d ring links only, got %d", p.Slots, len(w.Constraints()))
	}
	if p.RingRadius(0) != p.TopRadius {
		t.Fatalf("expected single ring at top radius, got %.3f", p.RingRadius(0))
	}
	if len(net.Particles) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(net.Particles))
	}
}
