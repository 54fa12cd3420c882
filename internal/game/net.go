package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// NetParams shapes the ring-and-chain net lattice.
type NetParams struct {
	Rings          int
	Slots          int
	TopRadius      float64
	BottomRadius   float64
	Spacing        float64 // vertical distance between rings
	ParticleRadius float64
	ParticleMass   float64
	Damping        float64
}

// DefaultNetParams hangs a 15×20 net under the rim.
func DefaultNetParams() NetParams {
	return NetParams{
		Rings:          15,
		Slots:          20,
		TopRadius:      rimRadius,
		BottomRadius:   0.14,
		Spacing:        0.03,
		ParticleRadius: 0.015,
		ParticleMass:   0.05,
		Damping:        0.4,
	}
}

// ExpectedConstraints is R·N intra-ring links plus (R−1)·N chain links.
func (p NetParams) ExpectedConstraints() int {
	if p.Rings <= 0 || p.Slots <= 0 {
		return 0
	}
	return p.Rings*p.Slots + (p.Rings-1)*p.Slots
}

// RingRadius interpolates from the top radius to the bottom radius.
func (p NetParams) RingRadius(r int) float64 {
	if p.Rings <= 1 {
		return p.TopRadius
	}
	t := float64(r) / float64(p.Rings-1)
	return p.TopRadius + (p.BottomRadius-p.TopRadius)*t
}

// LinkKind separates the two kinds of net constraint.
type LinkKind uint8

const (
	LinkRing  LinkKind = iota // neighbours within one ring
	LinkChain                 // same slot, adjacent rings
)

// NetLink is one net constraint with its lattice coordinates.
type NetLink struct {
	Kind       LinkKind
	Ring, Slot int // the (r, n) end; the other end is (r, n+1) or (r-1, n)
	Constraint *physics.DistanceConstraint
}

// Net is the built lattice. Particles[r][n] is ring r, slot n.
type Net struct {
	Params    NetParams
	Anchor    physics.Vec3
	Particles [][]*TrackedBody
	Links     []NetLink
}

var netColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}

// BuildNet hangs the lattice below anchor. Ring 0 has mass 0 and is the
// physical rim.
func BuildNet(w *physics.World, r Renderer, t *Tracker, anchor physics.Vec3, p NetParams) *Net {
	net := &Net{Params: p, Anchor: anchor}
	if p.Rings <= 0 || p.Slots <= 0 {
		return net
	}
	net.Particles = make([][]*TrackedBody, p.Rings)
	for ring := 0; ring < p.Rings; ring++ {
		radius := p.RingRadius(ring)
		y := -float64(ring) * p.Spacing
		mass := p.ParticleMass
		if ring == 0 {
			mass = 0
		}
		net.Particles[ring] = make([]*TrackedBody, p.Slots)
		for slot := 0; slot < p.Slots; slot++ {
			theta := 2 * math.Pi * float64(slot) / float64(p.Slots)
			pos := anchor.Add(physics.V3(math.Cos(theta)*radius, y, math.Sin(theta)*radius))
			label := fmt.Sprintf("net_%d_%d", ring, slot)
			body := w.AddBody(physics.BodyDef{
				Label:         label,
				Mass:          mass,
				Position:      pos,
				Shape:         physics.Sphere(p.ParticleRadius),
				LinearDamping: p.Damping,
				Group:         GroupNet,
				Mask:          GroupBall,
			})
			proxy := r.NewProxy(ProxySpec{Kind: ProxyPoint, Color: netColor, Label: label}, pos)
			net.Particles[ring][slot] = t.Track(body, proxy, RoleNet)
		}
	}

	for ring := 0; ring < p.Rings; ring++ {
		chord := 2 * p.RingRadius(ring) * math.Sin(math.Pi/float64(p.Slots))
		for slot := 0; slot < p.Slots; slot++ {
			a := net.Particles[ring][slot].Body
			b := net.Particles[ring][(slot+1)%p.Slots].Body
			net.Links = append(net.Links, NetLink{
				Kind:       LinkRing,
				Ring:       ring,
				Slot:       slot,
				Constraint: w.AddConstraint(a, b, chord),
			})
		}
		if ring == 0 {
			continue
		}
		for slot := 0; slot < p.Slots; slot++ {
			a := net.Particles[ring][slot].Body
			b := net.Particles[ring-1][slot].Body
			net.Links = append(net.Links, NetLink{
				Kind:       LinkChain,
				Ring:       ring,
				Slot:       slot,
				Constraint: w.AddConstraint(a, b, p.Spacing),
			})
		}
	}
	return net
}

// Particle returns the body at ring r, slot n.
func (n *Net) Particle(r, slot int) *physics.Body {
	return n.Particles[r][slot].Body
}

// MaxStretch returns the largest absolute constraint error in the net.
func (n *Net) MaxStretch() float64 {
	worst := 0.0
	for _, l := range n.Links {
		if e := math.Abs(l.Constraint.Error()); e > worst {
			worst = e
		}
	}
	return worst
}
