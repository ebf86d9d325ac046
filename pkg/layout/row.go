package layout

// Row allocates boxes left to right starting at (startX, startY). After
// perLine boxes, or when the next box would cross the right edge of the
// canvas, it wraps to a new line below the tallest box of the current line.
type Row struct {
	canvas         Canvas
	startX, startY float64
	x, y           float64
	gap, lineGap   float64
	perLine        int
	inLine         int
	lineHeight     float64
}

// RowOption configures a [Row].
type RowOption func(*Row)

// WithGap sets the horizontal gap between boxes.
func WithGap(g float64) RowOption {
	return func(r *Row) { r.gap = max(0, g) }
}

// WithLineGap sets the vertical gap between lines.
func WithLineGap(g float64) RowOption {
	return func(r *Row) { r.lineGap = max(0, g) }
}

// WithPerLine limits the number of boxes per line. Zero means unlimited.
func WithPerLine(n int) RowOption {
	return func(r *Row) { r.perLine = max(0, n) }
}

// NewRow returns a row allocator on the given canvas.
func NewRow(canvas Canvas, startX, startY float64, opts ...RowOption) *Row {
	r := &Row{canvas: canvas, startX: startX, startY: startY, x: startX, y: startY}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Place allocates a w × h box. The result is clamped to the canvas.
func (r *Row) Place(w, h float64) Box {
	w, h = max(0, w), max(0, h)
	if r.inLine > 0 && (r.perLine > 0 && r.inLine >= r.perLine || r.x+w > r.canvas.Width) {
		r.Break()
	}
	b := r.canvas.Clamp(Box{X: r.x, Y: r.y, W: w, H: h})
	r.x = b.Right() + r.gap
	r.lineHeight = max(r.lineHeight, b.H)
	r.inLine++
	return b
}

// Break ends the current line. Calling Break on an empty line does nothing.
func (r *Row) Break() {
	if r.inLine == 0 {
		return
	}
	r.x = r.startX
	r.y += r.lineHeight + r.lineGap
	r.inLine = 0
	r.lineHeight = 0
}

// Bottom returns the y coordinate below everything placed so far.
func (r *Row) Bottom() float64 {
	return r.y + r.lineHeight
}
