package deck

import (
	"math"
	"strings"

	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// Kind identifies what an [Element] draws.
type Kind string

const (
	KindShape Kind = "shape"
	KindText  Kind = "text"
	KindTable Kind = "table"
	KindImage Kind = "image"

	// KindConnector is a straight line between two points, drawn with the
	// element's Line colour.
	KindConnector Kind = "connector"
)

// Shape is the outline of a filled shape element.
type Shape string

const (
	Rect        Shape = "rect"
	RoundedRect Shape = "rounded-rect"
	Oval        Shape = "oval"
	Hexagon     Shape = "hexagon"

	// Pentagon is a block whose right side comes to a point, as used for
	// domain maps and timelines.
	Pentagon Shape = "pentagon"

	// Chevron is a Pentagon with a notch cut into its left side, so a row of
	// them reads as a sequence of steps.
	Chevron Shape = "chevron"
)

// Shapes lists every shape in documentation order.
var Shapes = []Shape{Rect, RoundedRect, Oval, Hexagon, Pentagon, Chevron}

// ParseShape returns the shape with the given name. The empty name is
// [RoundedRect].
func ParseShape(name string) (Shape, bool) {
	if name == "" {
		return RoundedRect, true
	}
	for _, sh := range Shapes {
		if string(sh) == name {
			return sh, true
		}
	}
	return "", false
}

// Align is horizontal paragraph alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Anchor is vertical text placement inside an element's box.
type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorMiddle Anchor = "middle"
)

// Paragraph is one line (or wrapped block) of styled text.
type Paragraph struct {
	Text  string  `json:"text"`
	Size  float64 `json:"size"` // points
	Bold  bool    `json:"bold,omitempty"`
	Mono  bool    `json:"mono,omitempty"`
	Color Color   `json:"color"`
	Align Align   `json:"align,omitempty"`
}

// Table is a grid of text cells. Row 0 is the header.
type Table struct {
	Rows       [][]string `json:"rows"`
	HeaderFill Color      `json:"header_fill"`
	HeaderText Color      `json:"header_text"`
	BodyText   Color      `json:"body_text"`
	HeaderSize float64    `json:"header_size"`
	BodySize   float64    `json:"body_size"`
}

// Columns returns the widest row length.
func (t *Table) Columns() int {
	n := 0
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	return n
}

// Connector is a line from (X1, Y1) to (X2, Y2) in inches. Width is the
// stroke width in points; Arrow puts an arrowhead on the end point.
type Connector struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
	Arrow bool    `json:"arrow,omitempty"`
}

// Bounds returns the smallest box holding both end points.
func (c Connector) Bounds() layout.Box {
	return layout.Box{
		X: math.Min(c.X1, c.X2),
		Y: math.Min(c.Y1, c.Y2),
		W: math.Abs(c.X2 - c.X1),
		H: math.Abs(c.Y2 - c.Y1),
	}
}

// Element is one positioned item on a slide. Which fields are meaningful
// depends on Kind: shapes may carry text (text inside a box), text elements
// have no fill, tables use Table, images use Image and connectors use
// Connector with Line as the stroke colour.
type Element struct {
	Kind Kind       `json:"kind"`
	Box  layout.Box `json:"box"`

	Shape        Shape   `json:"shape,omitempty"`
	Fill         *Color  `json:"fill,omitempty"`
	Line         *Color  `json:"line,omitempty"`
	Transparency float64 `json:"transparency,omitempty"` // 0 opaque, 1 invisible

	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
	Anchor     Anchor      `json:"anchor,omitempty"`

	Table     *Table        `json:"table,omitempty"`
	Image     *assets.Image `json:"image,omitempty"`
	Connector *Connector    `json:"connector,omitempty"`
}

// Text concatenates the element's paragraphs with newlines.
func (e Element) Text() string {
	lines := make([]string, len(e.Paragraphs))
	for i, p := range e.Paragraphs {
		lines[i] = p.Text
	}
	return strings.Join(lines, "\n")
}

// Ptr returns a pointer to c, for optional Fill and Line fields.
func Ptr(c Color) *Color { return &c }
