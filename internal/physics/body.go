package physics

// ShapeKind identifies the collision primitive attached to a body.
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is a convex collision primitive centred on its body.
// Boxes are axis aligned; bodies never rotate.
type Shape struct {
	Kind        ShapeKind
	Radius      float64 // sphere only
	HalfExtents Vec3    // box only
}

// Sphere returns a sphere shape of radius r.
func Sphere(r float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: r}
}

// Box returns an axis-aligned box shape with the given half extents.
func Box(half Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: half}
}

// Collision filter groups. A pair is tested only when each body's group is
// present in the other's mask.
const (
	GroupNone uint32 = 0
	GroupAll  uint32 = ^uint32(0)
)

// BodyDef describes a body to add to a World.
type BodyDef struct {
	Label    string
	Mass     float64 // 0 = static (infinite mass)
	Position Vec3
	Shape    Shape

	Restitution   float64 // 0 = no bounce, 1 = perfect bounce
	Friction      float64 // tangential impulse ratio
	LinearDamping float64 // fraction of velocity lost per second

	// Sensor bodies report contacts but never exchange impulse.
	Sensor bool

	Group uint32
	Mask  uint32
}

// Body is a rigid body owned by a World.
type Body struct {
	id    int
	label string
	world *World

	Position Vec3
	Velocity Vec3

	prevPosition  Vec3
	interpolated  Vec3
	mass, invMass float64
	shape         Shape
	restitution   float64
	friction      float64
	linearDamping float64
	response      bool
	group, mask   uint32
	sleeping      bool
	removed       bool
}

func (b *Body) ID() int        { return b.id }
func (b *Body) Label() string  { return b.label }
func (b *Body) Mass() float64  { return b.mass }
func (b *Body) Shape() Shape   { return b.shape }
func (b *Body) IsStatic() bool { return b.mass == 0 }

// IsSensor reports whether collision response is disabled for the body.
func (b *Body) IsSensor() bool { return !b.response }

// Sleeping reports whether the body is excluded from integration.
func (b *Body) Sleeping() bool { return b.sleeping }

// Removed reports whether the body has left its world.
func (b *Body) Removed() bool { return b.removed }

// effectiveInvMass treats sleeping bodies as immovable during contact.
func (b *Body) effectiveInvMass() float64 {
	if b.sleeping {
		return 0
	}
	return b.invMass
}

// ApplyImpulse changes velocity by j/mass at the centre of mass and wakes the
// body. Static bodies ignore impulses.
func (b *Body) ApplyImpulse(j Vec3) {
	if b.invMass == 0 {
		return
	}
	b.sleeping = false
	b.Velocity = b.Velocity.Add(j.Scale(b.invMass))
}

// Sleep freezes the body in place: no gravity, no integration, zero velocity.
func (b *Body) Sleep() {
	b.sleeping = true
	b.Velocity = Vec3{}
}

// WakeUp returns a sleeping body to integration.
func (b *Body) WakeUp() {
	b.sleeping = false
}

// SetPosition teleports the body, also resetting its interpolation history.
func (b *Body) SetPosition(p Vec3) {
	b.Position = p
	b.prevPosition = p
	b.interpolated = p
}

// SetCollisionFilter replaces the body's filter group and mask.
func (b *Body) SetCollisionFilter(group, mask uint32) {
	b.group = group
	b.mask = mask
}

// CollisionFilter returns the body's filter group and mask.
func (b *Body) CollisionFilter() (group, mask uint32) {
	return b.group, b.mask
}

// InterpolatedPosition is the pose between the last two fixed steps, blended
// by the leftover fraction of the last Integrate call.
func (b *Body) InterpolatedPosition() Vec3 {
	return b.interpolated
}

func (b *Body) canCollide(o *Body) bool {
	return b.group&o.mask != 0 && o.group&b.mask != 0
}
