package layout

// Box is a placed rectangle. All values are in canvas units (inches for
// slides). X and Y locate the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Inset shrinks the box by d on every side. The result never has a
// negative size.
func (b Box) Inset(d float64) Box {
	out := Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
	if out.W < 0 {
		out.X, out.W = b.CenterX(), 0
	}
	if out.H < 0 {
		out.Y, out.H = b.CenterY(), 0
	}
	return out
}

// Shrunk reports whether b is smaller than the requested size in either
// dimension, i.e. whether the placement guard clamped it.
func (b Box) Shrunk(wantW, wantH float64) bool {
	return b.W < wantW || b.H < wantH
}

// Canvas is the fixed-size area of one slide.
type Canvas struct {
	Width, Height float64
}

// tolerance absorbs float rounding in X+W after clamping.
const tolerance = 1e-9

// Contains reports whether b lies entirely inside the canvas.
func (c Canvas) Contains(b Box) bool {
	return b.X >= 0 && b.Y >= 0 && b.W >= 0 && b.H >= 0 &&
		b.Right() <= c.Width+tolerance && b.Bottom() <= c.Height+tolerance
}

// Clamp returns b adjusted to fit inside the canvas. The origin is pulled
// into the canvas first, then width and height are reduced to the space
// remaining. The result depends only on b and the canvas size.
func (c Canvas) Clamp(b Box) Box {
	b.X = clampRange(b.X, 0, c.Width)
	b.Y = clampRange(b.Y, 0, c.Height)
	b.W = clampRange(b.W, 0, c.Width-b.X)
	b.H = clampRange(b.H, 0, c.Height-b.Y)
	return b
}

// Guard clamps a freely positioned box and, when a dimension had to be
// reduced, pulls it back by inset so the element does not touch the canvas
// edge.
func (c Canvas) Guard(b Box, inset float64) Box {
	out := c.Clamp(b)
	if out.W < b.W {
		out.W = max(0, out.W-inset)
	}
	if out.H < b.H {
		out.H = max(0, out.H-inset)
	}
	return out
}

// ClampPoint moves (x, y) onto the nearest point of the canvas.
func (c Canvas) ClampPoint(x, y float64) (float64, float64) {
	return clampRange(x, 0, c.Width), clampRange(y, 0, c.Height)
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(hi, v))
}
