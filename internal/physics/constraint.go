package physics

// DistanceConstraint holds two bodies at (approximately) RestLength apart.
// It is solved by position projection weighted by inverse mass, so a pair
// where one side is static only moves the dynamic side.
type DistanceConstraint struct {
	A, B       *Body
	RestLength float64
}

// Connects reports whether c joins a and b, in either order.
func (c *DistanceConstraint) Connects(a, b *Body) bool {
	return (c.A == a && c.B == b) || (c.A == b && c.B == a)
}

// Error returns the current stretch beyond (positive) or short of (negative)
// the rest length.
func (c *DistanceConstraint) Error() float64 {
	return c.B.Position.Sub(c.A.Position).Len() - c.RestLength
}

func (c *DistanceConstraint) solve() {
	wa := c.A.effectiveInvMass()
	wb := c.B.effectiveInvMass()
	wsum := wa + wb
	if wsum == 0 {
		return
	}
	d := c.B.Position.Sub(c.A.Position)
	dist := d.Len()
	if dist == 0 {
		return
	}
	corr := d.Scale((dist - c.RestLength) / dist / wsum)
	c.A.Position = c.A.Position.Add(corr.Scale(wa))
	c.B.Position = c.B.Position.Sub(corr.Scale(wb))
}
