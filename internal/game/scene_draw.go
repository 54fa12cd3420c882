package game

import (
	"image/color"
	"sort"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pointPixels is the on-screen radius of a ProxyPoint.
const pointPixels = 2.0

// boxFaces lists each box face as an outward normal and four corner indices.
// Corner index bits: 1 = +X, 2 = +Y, 4 = +Z.
var boxFaces = [6]struct {
	normal  physics.Vec3
	corners [4]int
	shade   float64
}{
	{physics.V3(1, 0, 0), [4]int{1, 3, 7, 5}, 0.7},
	{physics.V3(-1, 0, 0), [4]int{0, 4, 6, 2}, 0.7},
	{physics.V3(0, 1, 0), [4]int{2, 6, 7, 3}, 1.0},
	{physics.V3(0, -1, 0), [4]int{0, 1, 5, 4}, 0.45},
	{physics.V3(0, 0, 1), [4]int{4, 5, 7, 6}, 0.85},
	{physics.V3(0, 0, -1), [4]int{0, 2, 3, 1}, 0.85},
}

// drawItem is one depth-sorted primitive: a filled polygon or a disc.
type drawItem struct {
	depth float64
	poly  [][2]float32 // nil for discs
	cx    float32
	cy    float32
	r     float32
	col   color.RGBA
}

// drawList projects every visible proxy through cam onto a w×h viewport and
// returns the primitives ordered far to near.
func (sc *Scene) drawList(cam Camera, w, h float64) []drawItem {
	sc.compact()
	var items []drawItem
	for _, p := range sc.proxies {
		if !p.visible {
			continue
		}
		switch p.spec.Kind {
		case ProxyBox:
			items = appendBoxFaces(items, cam, p.pos, p.spec.HalfExtents, p.spec.Color, w, h)
		case ProxySphere, ProxyPoint:
			sx, sy, depth, ok := cam.Project(p.pos, w, h)
			if !ok {
				continue
			}
			r := pointPixels
			if p.spec.Kind == ProxySphere {
				r = p.spec.Radius * cam.PixelsPerMetre(depth, h)
			}
			items = append(items, drawItem{
				depth: depth,
				cx:    float32(sx),
				cy:    float32(sy),
				r:     float32(r),
				col:   p.spec.Color,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	return items
}

func appendBoxFaces(items []drawItem, cam Camera, centre, half physics.Vec3, col color.RGBA, w, h float64) []drawItem {
	var corners [8]physics.Vec3
	for i := range corners {
		c := centre.Sub(half)
		if i&1 != 0 {
			c.X = centre.X + half.X
		}
		if i&2 != 0 {
			c.Y = centre.Y + half.Y
		}
		if i&4 != 0 {
			c.Z = centre.Z + half.Z
		}
		corners[i] = c
	}
	for _, f := range boxFaces {
		faceCentre := centre.Add(physics.V3(f.normal.X*half.X, f.normal.Y*half.Y, f.normal.Z*half.Z))
		if f.normal.Dot(cam.Eye.Sub(faceCentre)) <= 0 {
			continue
		}
		view := make([]physics.Vec3, 4)
		for k, idx := range f.corners {
			view[k] = cam.toView(corners[idx])
		}
		view = clipNear(view)
		if len(view) < 3 {
			continue
		}
		poly := make([][2]float32, len(view))
		for k, v := range view {
			sx, sy := cam.projectView(v, w, h)
			poly[k] = [2]float32{float32(sx), float32(sy)}
		}
		items = append(items, drawItem{
			depth: cam.toView(faceCentre).Z,
			poly:  poly,
			col:   shade(col, f.shade),
		})
	}
	return items
}

func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// Draw renders the scene onto dst as seen by cam (painter's order).
func (sc *Scene) Draw(dst *ebiten.Image, cam Camera) {
	b := dst.Bounds()
	items := sc.drawList(cam, float64(b.Dx()), float64(b.Dy()))
	for _, it := range items {
		if it.poly == nil {
			vector.FillCircle(dst, it.cx, it.cy, it.r, it.col, true)
			continue
		}
		var path vector.Path
		path.MoveTo(it.poly[0][0], it.poly[0][1])
		for _, pt := range it.poly[1:] {
			path.LineTo(pt[0], pt[1])
		}
		path.Close()
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(it.col)
		vector.FillPath(dst, &path, &vector.FillOptions{}, op)
	}
}
