package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

const (
	burstPoints   = 24
	burstMinSpeed = 2.0
	burstMaxSpeed = 4.0
	burstMaxAge   = 4.0 // seconds
)

var burstColors = []color.RGBA{
	{R: 255, G: 210, B: 60, A: 255},
	{R: 255, G: 120, B: 40, A: 255},
	{R: 120, G: 220, B: 255, A: 255},
}

type burstPoint struct {
	pos   physics.Vec3
	vel   physics.Vec3
	proxy Proxy
}

// Burst is a short-lived cloud of points thrown up from the rim when a ball
// scores. Points fly ballistically and are not part of the physics world.
type Burst struct {
	points []burstPoint
	age    float64
	done   bool
}

func newBurst(r Renderer, rng *rand.Rand, at physics.Vec3) *Burst {
	b := &Burst{points: make([]burstPoint, burstPoints)}
	for i := range b.points {
		theta := rng.Float64() * 2 * math.Pi
		lift := 0.5 + rng.Float64()*0.5 // upward share of the velocity
		speed := burstMinSpeed + rng.Float64()*(burstMaxSpeed-burstMinSpeed)
		side := math.Sqrt(1 - lift*lift)
		vel := physics.V3(math.Cos(theta)*side, lift, math.Sin(theta)*side).Scale(speed)
		col := burstColors[i%len(burstColors)]
		b.points[i] = burstPoint{
			pos:   at,
			vel:   vel,
			proxy: r.NewProxy(ProxySpec{Kind: ProxyPoint, Color: col, Label: "burst"}, at),
		}
	}
	return b
}

// Advance moves every point by dt seconds. When every point is below the
// floor (or the burst has aged out) the proxies are removed and Advance
// returns true.
func (b *Burst) Advance(dt float64) bool {
	if b.done {
		return true
	}
	b.age += dt
	g := physics.V3(0, physics.DefaultGravity, 0)
	landed := 0
	for i := range b.points {
		p := &b.points[i]
		p.vel = p.vel.Add(g.Scale(dt))
		p.pos = p.pos.Add(p.vel.Scale(dt))
		p.proxy.SetPosition(p.pos)
		if p.pos.Y < 0 {
			landed++
		}
	}
	if landed == len(b.points) || b.age >= burstMaxAge {
		for _, p := range b.points {
			p.proxy.Remove()
		}
		b.done = true
	}
	return b.done
}

// Done reports whether the burst has finished.
func (b *Burst) Done() bool { return b.done }
