package game

import (
	"image/color"

	"github.com/Garsondee/Hoop-Sense/internal/physics"
)

// sensorHalfExtents is a thin slab inside the hoop, narrower than the rim so
// a ball only touches it by dropping through.
var sensorHalfExtents = physics.V3(0.12, 0.02, 0.12)

var sensorDebugColor = color.RGBA{R: 60, G: 220, B: 90, A: 140}

// CreateRimSensor adds the scoring trigger at position. The body exchanges
// no impulse and only reports contacts; its proxy starts hidden.
func CreateRimSensor(w *physics.World, r Renderer, t *Tracker, position physics.Vec3) *TrackedBody {
	body := w.AddBody(physics.BodyDef{
		Label:    "rim_sensor",
		Position: position,
		Shape:    physics.Box(sensorHalfExtents),
		Sensor:   true,
		Group:    GroupSensor,
		Mask:     GroupBall,
	})
	spec := proxySpecFor(body.Shape(), sensorDebugColor, "rim_sensor")
	spec.Hidden = true
	return t.Track(body, r.NewProxy(spec, position), RoleSensor)
}
