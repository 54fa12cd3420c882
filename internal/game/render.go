package game

import (
	"image/color"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// ProxyKind selects how a proxy is drawn.
type ProxyKind uint8

const (
	ProxyBox ProxyKind = iota
	ProxySphere
	ProxyPoint
)

// ProxySpec describes the visible stand-in for a body.
type ProxySpec struct {
	Kind        ProxyKind
	HalfExtents physics.Vec3 // box
	Radius      float64      // sphere; points use a fixed pixel size
	Color       color.RGBA
	Hidden      bool
	Label       string
}

// Proxy is the drawable counterpart of a body. The simulation only ever
// moves, shows, hides or removes it.
type Proxy interface {
	SetPosition(p physics.Vec3)
	Position() physics.Vec3
	SetVisible(v bool)
	Visible() bool
	Remove()
}

// Renderer creates proxies.
type Renderer interface {
	NewProxy(spec ProxySpec, at physics.Vec3) Proxy
}

// proxySpecFor builds a spec matching a physics shape.
func proxySpecFor(shape physics.Shape, col color.RGBA, label string) ProxySpec {
	if shape.Kind == physics.ShapeBox {
		return ProxySpec{Kind: ProxyBox, HalfExtents: shape.HalfExtents, Color: col, Label: label}
	}
	return ProxySpec{Kind: ProxySphere, Radius: shape.Radius, Color: col, Label: label}
}
