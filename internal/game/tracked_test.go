package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

func newTrackedBall(w *physics.World, sc *Scene, tr *Tracker, label string) *TrackedBody {
	body := w.AddBody(physics.BodyDef{
		Label:    label,
		Mass:     ballMass,
		Position: spawnPosition,
		Shape:    physics.Sphere(ballRadius),
		Group:    GroupBall,
		Mask:     launchedBallMask,
	})
	proxy := sc.NewProxy(proxySpecFor(body.Shape(), ballColor, label), spawnPosition)
	return tr.Track(body, proxy, RoleBall)
}

func TestTracker_SyncCopiesPose(t *testing.T) {
	w := physics.NewWorld()
	sc := NewScene()
	tr := NewTracker()
	tb := newTrackedBall(w, sc, tr, "B1")

	w.Integrate(w.FixedStep)
	tr.Sync()

	if tb.Proxy.Position() != tb.Body.InterpolatedPosition() {
		t.Fatalf("expected proxy at %v, got %v", tb.Body.InterpolatedPosition(), tb.Proxy.Position())
	}
	// A whole step leaves no remainder, so the proxy sits on the previous pose.
	if tb.Proxy.Position() != spawnPosition {
		t.Fatalf("expected alpha=0 pose %v, got %v", spawnPosition, tb.Proxy.Position())
	}
}

func TestTracker_SyncInterpolatesBetweenSteps(t *testing.T) {
	w := physics.NewWorld()
	sc := NewScene()
	tr := NewTracker()
	tb := newTrackedBall(w, sc, tr, "B1")

	steps, alpha := w.Integrate(1.5 * w.FixedStep)
	if steps != 1 || math.Abs(alpha-0.5) > 1e-6 {
		t.Fatalf("expected 1 step with alpha 0.5, got %d / %.6f", steps, alpha)
	}
	tr.Sync()

	y := tb.Proxy.Position().Y
	prev, cur := spawnPosition.Y, tb.Body.Position.Y
	if !(y < prev && y > cur) {
		t.Fatalf("expected proxy between %.6f and %.6f, got %.6f", cur, prev, y)
	}
	if want := prev + (cur-prev)*alpha; math.Abs(y-want) > 1e-9 {
		t.Fatalf("expected y=%.9f, got %.9f", want, y)
	}
}

func TestTracker_RemoveLaterWaitsForFlush(t *testing.T) {
	w := physics.NewWorld()
	sc := NewScene()
	tr := NewTracker()
	a := newTrackedBall(w, sc, tr, "B1")
	b := newTrackedBall(w, sc, tr, "B2")

	tr.RemoveLater(a)
	tr.RemoveLater(a)
	if tr.Pending() != 1 {
		t.Fatalf("expected 1 pending removal, got %d", tr.Pending())
	}
	if !a.Removing() || len(w.Bodies()) != 2 {
		t.Fatal("expected body flagged but still in the world before Flush")
	}

	if n := tr.Flush(w); n != 1 {
		t.Fatalf("expected Flush to remove 1, got %d", n)
	}
	if !a.Body.Removed() || len(w.Bodies()) != 1 {
		t.Fatalf("expected B1 out of the world, %d bodies left", len(w.Bodies()))
	}
	if _, ok := tr.Lookup(a.Body); ok {
		t.Fatal("expected B1 no longer tracked")
	}
	if got, ok := tr.Lookup(b.Body); !ok || got != b {
		t.Fatal("expected B2 still tracked")
	}
	if sc.Len() != 1 || tr.Count(RoleBall) != 1 {
		t.Fatalf("expected one proxy and one ball left, got %d / %d", sc.Len(), tr.Count(RoleBall))
	}
	if tr.Flush(w) != 0 {
		t.Fatal("expected empty flush to remove nothing")
	}
}

func TestRole_String(t *testing.T) {
	cases := map[Role]string{RoleStatic: "static", RoleNet: "net", RoleSensor: "sensor", RoleBall: "ball", Role(9): "unknown"}
	for r, want := range cases {
		if r.String() != want {
			t.Fatalf("expected %q, got %q", want, r.String())
		}
	}
}
