package game

import (
	"image/color"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// rigPiece is one fixed box of the court.
type rigPiece struct {
	label       string
	centre      physics.Vec3
	half        physics.Vec3
	restitution float64
	friction    float64
	col         color.RGBA
}

// staticRig is the court layout. Every piece is an axis-aligned static box.
var staticRig = []rigPiece{
	{"floor", physics.V3(0, -0.25, -2), physics.V3(10, 0.25, 10), 0.55, 0.6, color.RGBA{R: 48, G: 52, B: 58, A: 255}},
	{"court", physics.V3(0, 0.005, -3), physics.V3(4, 0.005, 4), 0.6, 0.5, color.RGBA{R: 176, G: 118, B: 64, A: 255}},
	{"back_wall", physics.V3(0, 3, -7.2), physics.V3(7, 3, 0.1), 0.3, 0.5, color.RGBA{R: 70, G: 76, B: 92, A: 255}},
	{"wall_left", physics.V3(-6.5, 3, -2), physics.V3(0.1, 3, 5.5), 0.3, 0.5, color.RGBA{R: 62, G: 68, B: 82, A: 255}},
	{"wall_right", physics.V3(6.5, 3, -2), physics.V3(0.1, 3, 5.5), 0.3, 0.5, color.RGBA{R: 62, G: 68, B: 82, A: 255}},
	{"backboard", physics.V3(0, 3.35, -4.88), physics.V3(0.9, 0.525, 0.025), 0.5, 0.3, color.RGBA{R: 230, G: 232, B: 236, A: 220}},
	{"post_left", physics.V3(-0.6, 1.8, -5.8), physics.V3(0.06, 1.8, 0.06), 0.2, 0.5, color.RGBA{R: 90, G: 90, B: 96, A: 255}},
	{"post_right", physics.V3(0.6, 1.8, -5.8), physics.V3(0.06, 1.8, 0.06), 0.2, 0.5, color.RGBA{R: 90, G: 90, B: 96, A: 255}},
	{"post_arm", physics.V3(0, 3.35, -5.35), physics.V3(0.6, 0.05, 0.45), 0.2, 0.5, color.RGBA{R: 90, G: 90, B: 96, A: 255}},
	{"bench", physics.V3(4.2, 0.25, -1), physics.V3(0.3, 0.25, 1.4), 0.3, 0.6, color.RGBA{R: 120, G: 84, B: 48, A: 255}},
}

// BuildStaticRig adds every fixed piece of the court to w with a matching
// visible proxy, and tracks them.
func BuildStaticRig(w *physics.World, r Renderer, t *Tracker) []*TrackedBody {
	out := make([]*TrackedBody, 0, len(staticRig))
	for _, p := range staticRig {
		body := w.AddBody(physics.BodyDef{
			Label:       p.label,
			Position:    p.centre,
			Shape:       physics.Box(p.half),
			Restitution: p.restitution,
			Friction:    p.friction,
			Group:       GroupStatic,
			Mask:        GroupBall,
		})
		proxy := r.NewProxy(proxySpecFor(body.Shape(), p.col, p.label), p.centre)
		out = append(out, t.Track(body, proxy, RoleStatic))
	}
	return out
}
