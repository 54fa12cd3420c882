package game

import (
	"math"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// nearPlane is the closest view depth that is still drawn.
const nearPlane = 0.05

var worldUp = physics.V3(0, 1, 0)

// Camera is a pinhole camera looking from Eye at Target.
type Camera struct {
	Name   string
	Eye    physics.Vec3
	Target physics.Vec3
	FOV    float64 // vertical, degrees
}

// cameraPresets are bound to keys 1, 2 and 3.
var cameraPresets = []Camera{
	{Name: "shooter", Eye: physics.V3(0, 2.2, 3.5), Target: physics.V3(0, 2.4, -4.5), FOV: 55},
	{Name: "side", Eye: physics.V3(7.5, 3.2, -1.5), Target: physics.V3(0, 2.2, -3), FOV: 50},
	{Name: "rim", Eye: physics.V3(0, 4.4, -2.4), Target: physics.V3(0, 2.9, -4.5), FOV: 60},
}

// basis returns the camera's right, up and forward unit vectors.
func (c Camera) basis() (right, up, fwd physics.Vec3) {
	fwd = c.Target.Sub(c.Eye).Normalize()
	right = fwd.Cross(worldUp).Normalize()
	if right.LenSq() == 0 {
		right = physics.V3(1, 0, 0)
	}
	up = right.Cross(fwd)
	return right, up, fwd
}

// toView expresses p in camera space: X right, Y up, Z depth along the view.
func (c Camera) toView(p physics.Vec3) physics.Vec3 {
	right, up, fwd := c.basis()
	rel := p.Sub(c.Eye)
	return physics.V3(rel.Dot(right), rel.Dot(up), rel.Dot(fwd))
}

// focal returns the focal length in pixels for a viewport h pixels tall.
func (c Camera) focal(h float64) float64 {
	return (h / 2) / math.Tan(c.FOV*math.Pi/360)
}

// projectView maps a camera-space point with positive depth to the screen.
func (c Camera) projectView(v physics.Vec3, w, h float64) (sx, sy float64) {
	f := c.focal(h)
	return w/2 + v.X*f/v.Z, h/2 - v.Y*f/v.Z
}

// Project maps world point p onto a w×h viewport. ok is false for points
// behind the near plane.
func (c Camera) Project(p physics.Vec3, w, h float64) (sx, sy, depth float64, ok bool) {
	v := c.toView(p)
	if v.Z < nearPlane {
		return 0, 0, v.Z, false
	}
	sx, sy = c.projectView(v, w, h)
	return sx, sy, v.Z, true
}

// PixelsPerMetre is the on-screen size of one metre at the given depth.
func (c Camera) PixelsPerMetre(depth, h float64) float64 {
	if depth < nearPlane {
		depth = nearPlane
	}
	return c.focal(h) / depth
}

// clipNear clips a camera-space polygon to depth >= nearPlane.
func clipNear(poly []physics.Vec3) []physics.Vec3 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]physics.Vec3, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	prevIn := prev.Z >= nearPlane
	for _, cur := range poly {
		curIn := cur.Z >= nearPlane
		if curIn != prevIn {
			t := (nearPlane - prev.Z) / (cur.Z - prev.Z)
			out = append(out, prev.Lerp(cur, t))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}
