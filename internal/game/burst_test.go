package game

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

func TestBurst_LandsAndCleansUp(t *testing.T) {
	sc := NewScene()
	b := newBurst(sc, rand.New(rand.NewSource(1)), physics.V3(0, 3, 0))
	if sc.Len() != burstPoints {
		t.Fatalf("expected %d burst proxies, got %d", burstPoints, sc.Len())
	}

	frames := 0
	for !b.Advance(1.0/60) && frames < 600 {
		frames++
	}
	if !b.Done() {
		t.Fatal("expected burst to finish")
	}
	if frames >= 60*int(burstMaxAge) {
		t.Fatalf("expected points to land before the age limit, took %d frames", frames)
	}
	if sc.Len() != 0 {
		t.Fatalf("expected every burst proxy removed, got %d", sc.Len())
	}
	if !b.Advance(1.0 / 60) {
		t.Fatal("expected finished burst to stay finished")
	}
}

func TestBurst_AgesOut(t *testing.T) {
	sc := NewScene()
	b := newBurst(sc, rand.New(rand.NewSource(7)), physics.V3(0, 100, 0))
	for i := 0; i < 7; i++ {
		if b.Advance(0.5) {
			t.Fatalf("burst finished early at %.1fs", float64(i+1)*0.5)
		}
	}
	if !b.Advance(0.5) {
		t.Fatal("expected burst to age out at the limit")
	}
	if sc.Len() != 0 {
		t.Fatalf("expected proxies removed, got %d", sc.Len())
	}
}

func TestBurst_PointsRiseFirst(t *testing.T) {
	sc := NewScene()
	b := newBurst(sc, rand.New(rand.NewSource(3)), physics.V3(0, 3, 0))
	b.Advance(0.05)
	for i, p := range b.points {
		if p.pos.Y <= 3 {
			t.Fatalf("point %d did not rise: y=%.3f", i, p.pos.Y)
		}
	}
}
