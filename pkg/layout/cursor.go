package layout

// Policy selects what a [Cursor] does with a block taller than the space
// left in the current column.
type Policy int

const (
	// Clamp reduces the block height to the remaining space.
	Clamp Policy = iota
	// Wrap moves the block to the top of the next column if one remains.
	Wrap
)

// String returns the policy name.
func (p Policy) String() string {
	if p == Wrap {
		return "wrap"
	}
	return "clamp"
}

const defaultMargin = 0.1

// Cursor tracks the insertion point on one slide and hands out boxes for
// consecutive blocks, top to bottom. A Cursor is not safe for concurrent
// use; each slide owns its own.
type Cursor struct {
	canvas Canvas

	startX, startY float64
	x, y           float64
	column         int

	margin       float64
	columnWidth  float64
	columns      int
	defaultWidth float64
	policy       Policy
}

// Option configures a [Cursor].
type Option func(*Cursor)

// WithMargin sets the vertical gap added after every block (default 0.1).
func WithMargin(m float64) Option {
	return func(c *Cursor) { c.margin = max(0, m) }
}

// WithColumnWidth sets the horizontal distance between column origins.
// When unset the default block width is used.
func WithColumnWidth(w float64) Option {
	return func(c *Cursor) { c.columnWidth = max(0, w) }
}

// WithColumns sets the number of columns available to the [Wrap] policy
// (default 1).
func WithColumns(n int) Option {
	return func(c *Cursor) { c.columns = max(1, n) }
}

// WithDefaultWidth sets the width used by [Cursor.Place]. When unset, blocks
// span from the start x to the right edge of the canvas.
func WithDefaultWidth(w float64) Option {
	return func(c *Cursor) { c.defaultWidth = max(0, w) }
}

// WithPolicy selects the vertical overflow policy (default [Clamp]).
func WithPolicy(p Policy) Option {
	return func(c *Cursor) { c.policy = p }
}

// New returns a cursor reset to (startX, startY) on a width × height canvas.
func New(width, height, startX, startY float64, opts ...Option) *Cursor {
	c := &Cursor{
		margin:  defaultMargin,
		columns: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset(width, height, startX, startY)
	return c
}

// Reset starts a new slide. All offsets, wraps and the column index from
// earlier placements are discarded; configuration options are kept.
func (c *Cursor) Reset(width, height, startX, startY float64) {
	c.canvas = Canvas{Width: max(0, width), Height: max(0, height)}
	c.startX, c.startY = startX, startY
	c.x, c.y = startX, startY
	c.column = 0
}

// Place allocates a block of height h at the default width.
func (c *Cursor) Place(h float64) Box {
	return c.PlaceSized(h, c.blockWidth())
}

// PlaceSized allocates a block of height h and width w at the cursor and
// advances the cursor below it. The returned box always lies inside the
// canvas: too-wide blocks are narrowed, too-tall blocks are clamped or
// wrapped according to the policy.
func (c *Cursor) PlaceSized(h, w float64) Box {
	h, w = max(0, h), max(0, w)
	// A column that is still at its top has nothing to gain from wrapping.
	if c.policy == Wrap && c.y > c.startY && c.y+h > c.canvas.Height && c.hasNextColumn() {
		c.AdvanceColumn()
	}
	b := c.canvas.Clamp(Box{X: c.x, Y: c.y, W: w, H: h})
	c.y = b.Bottom() + c.margin
	return b
}

// Skip moves the cursor down by dy without placing anything. It is used for
// blank separator lines.
func (c *Cursor) Skip(dy float64) {
	c.y += max(0, dy)
}

// AdvanceColumn moves the cursor to the top of the next column at
// startX + column*columnWidth, regardless of the column limit. Blocks placed
// there are still clamped to the canvas.
func (c *Cursor) AdvanceColumn() {
	c.column++
	c.x = c.columnX(c.column)
	c.y = c.startY
}

// X returns the current insertion x.
func (c *Cursor) X() float64 { return c.x }

// Y returns the current insertion y.
func (c *Cursor) Y() float64 { return c.y }

// Column returns the zero-based column index.
func (c *Cursor) Column() int { return c.column }

// Canvas returns the canvas the cursor allocates on.
func (c *Cursor) Canvas() Canvas { return c.canvas }

// Remaining returns the vertical space left in the current column.
func (c *Cursor) Remaining() float64 { return max(0, c.canvas.Height-c.y) }

func (c *Cursor) blockWidth() float64 {
	if c.defaultWidth > 0 {
		return c.defaultWidth
	}
	return max(0, c.canvas.Width-c.x)
}

func (c *Cursor) columnStep() float64 {
	if c.columnWidth > 0 {
		return c.columnWidth
	}
	if c.defaultWidth > 0 {
		return c.defaultWidth
	}
	return max(0, c.canvas.Width-c.startX)
}

func (c *Cursor) columnX(col int) float64 {
	return c.startX + float64(col)*c.columnStep()
}

func (c *Cursor) hasNextColumn() bool {
	next := c.column + 1
	return next < c.columns && c.columnX(next) < c.canvas.Width
}
