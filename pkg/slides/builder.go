package slides

import (
	"strconv"

	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// Geometry shared by all content slides, in inches.
const (
	headerHeight = 1.2
	contentLeft  = 1.0
	contentTop   = 1.8
	contentWidth = 14.0
	footerTop    = 8.3
	guardInset   = 0.1

	titleSize   = 32.0
	headingSize = 24.0
	itemSize    = 20.0
	bulletSize  = 18.0
	footerSize  = 12.0
	bulletMark  = "• "
)

// Builder creates slides for one deck. It holds the deck's theme and canvas
// and an optional image loader; it has no other state.
type Builder struct {
	Theme  deck.Theme
	Canvas layout.Canvas
	Images *assets.Loader
}

// NewBuilder returns a builder for a deck. images may be nil, in which case
// every image is treated as absent.
func NewBuilder(d *deck.Deck, images *assets.Loader) *Builder {
	return &Builder{Theme: d.Theme, Canvas: d.Canvas, Images: images}
}

// cursor returns a cursor reset for a new slide at (x, y).
func (b *Builder) cursor(x, y, width float64, opts ...layout.Option) *layout.Cursor {
	opts = append([]layout.Option{
		layout.WithMargin(b.Theme.Spacing.Margin),
		layout.WithDefaultWidth(width),
	}, opts...)
	return layout.New(b.Canvas.Width, b.Canvas.Height, x, y, opts...)
}

// place allocates a block and records a warning on s if it was clamped.
func (b *Builder) place(s *deck.Slide, c *layout.Cursor, step, width float64, what string) layout.Box {
	h := max(0, step-b.Theme.Spacing.Margin)
	box := c.PlaceSized(h, width)
	if box.Shrunk(width, h) {
		s.Warnf("%s clamped to %.2fx%.2f (wanted %.2fx%.2f)", what, box.W, box.H, width, h)
	}
	return box
}

// guard clamps a free-positioned box and records a warning if it moved.
func (b *Builder) guard(s *deck.Slide, box layout.Box, what string) layout.Box {
	out := b.Canvas.Guard(box, guardInset)
	if out != box {
		s.Warnf("%s clamped to canvas", what)
	}
	return out
}

// arrowWidth is the stroke of connectors between stacked boxes, in points.
const arrowWidth = 3.0

// connect draws an arrow from the bottom centre of from to the top centre
// of to. Boxes that do not leave a gap between them get no arrow.
func (b *Builder) connect(s *deck.Slide, from, to layout.Box) {
	if to.Y <= from.Bottom() {
		return
	}
	x1, y1 := b.Canvas.ClampPoint(from.CenterX(), from.Bottom())
	x2, y2 := b.Canvas.ClampPoint(to.CenterX(), to.Y)
	s.AddConnector(deck.Connector{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: arrowWidth, Arrow: true}, b.Theme.Accent)
}

// chrome adds the header bar, title and page number of a content slide.
func (b *Builder) chrome(s *deck.Slide, number int, title string) {
	bar := s.AddShape(deck.Rect, layout.Box{W: b.Canvas.Width, H: headerHeight}, b.Theme.Header)
	bar.Line = deck.Ptr(b.Theme.Header)

	s.AddText(b.guard(s, layout.Box{X: 0.5, Y: 0.2, W: contentWidth, H: 0.8}, "title"),
		deck.Paragraph{Text: title, Size: titleSize, Bold: true, Color: deck.White, Align: deck.AlignLeft})

	s.AddText(b.guard(s, layout.Box{X: 14.5, Y: footerTop, W: 1, H: 0.5}, "page number"),
		deck.Paragraph{Text: strconv.Itoa(number), Size: footerSize, Color: b.Theme.Muted, Align: deck.AlignRight})

	if b.Theme.Background != deck.White {
		s.Background = deck.Ptr(b.Theme.Background)
	}
}

// para builds a left-aligned paragraph.
func para(text string, size float64, c deck.Color) deck.Paragraph {
	return deck.Paragraph{Text: text, Size: size, Color: c, Align: deck.AlignLeft}
}

// centered builds a centred paragraph.
func centered(text string, size float64, c deck.Color) deck.Paragraph {
	return deck.Paragraph{Text: text, Size: size, Color: c, Align: deck.AlignCenter}
}

// indent shifts a box right by d while keeping its right edge.
func indent(box layout.Box, d float64) layout.Box {
	d = min(d, box.W)
	box.X += d
	box.W -= d
	return box
}

// textOn returns a readable text colour for the given fill.
func textOn(fill deck.Color, dark deck.Color) deck.Color {
	if fill.Dark() {
		return deck.White
	}
	return dark
}
