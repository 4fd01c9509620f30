package core

// Rectangle is an axis-aligned box anchored at its top-left corner.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// NewCenteredRectangle builds a rectangle whose center sits at (cx, cy).
func NewCenteredRectangle(cx, cy, width, height float64) Rectangle {
	return Rectangle{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

func (r Rectangle) Left() float64   { return r.X }
func (r Rectangle) Right() float64  { return r.X + r.Width }
func (r Rectangle) Top() float64    { return r.Y }
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

func (r Rectangle) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r Rectangle) ContainsPoint(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Intersects reports whether r and other overlap. Touching edges count as overlap.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Left() <= other.Right() && r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() && r.Bottom() >= other.Top()
}
