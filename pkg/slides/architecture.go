package slides

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// layerFills cycle through the layers of an architecture slide.
var layerFills = []deck.Color{
	deck.RGB(255, 230, 230),
	deck.RGB(230, 255, 230),
	deck.RGB(230, 230, 255),
	deck.RGB(240, 240, 240),
}

const (
	layerStep   = 1.5
	layerHeight = 1.3
)

// Layer is one box of a layered architecture diagram.
type Layer struct {
	Name   string
	Detail string
}

// ArchitectureSpec describes a layered architecture slide. When Image is
// set and found the layers are drawn on the left and the image on the right.
// Arrows joins consecutive layers with downward arrows.
type ArchitectureSpec struct {
	Title  string
	Layers []Layer
	Image  string
	Arrows bool
}

// Architecture builds a slide of stacked rounded layer boxes.
func (b *Builder) Architecture(number int, spec ArchitectureSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "architecture", spec.Title)
	b.chrome(s, number, spec.Title)

	x, width := 2.0, 12.0
	img, ok := b.Images.TryLoad(spec.Image)
	if ok {
		x, width = contentLeft, 6.5
	}

	c := layout.New(b.Canvas.Width, b.Canvas.Height, x, 1.5,
		layout.WithMargin(layerStep-layerHeight),
		layout.WithDefaultWidth(width),
	)
	var prev layout.Box
	for i, l := range spec.Layers {
		box := c.Place(layerHeight)
		if box.Shrunk(width, layerHeight) {
			s.Warnf("layer %q clamped to %.2fx%.2f", l.Name, box.W, box.H)
		}
		fill := layerFills[i%len(layerFills)]
		ps := []deck.Paragraph{{Text: l.Name, Size: 18, Bold: true, Color: textOn(fill, th.Heading), Align: deck.AlignCenter}}
		if l.Detail != "" {
			ps = append(ps, centered(l.Detail, 14, textOn(fill, th.Text)))
		}
		e := s.AddShape(deck.RoundedRect, box, fill, ps...)
		e.Line = deck.Ptr(th.Header)
		e.Anchor = deck.AnchorMiddle

		if spec.Arrows && i > 0 {
			b.connect(s, prev, box)
		}
		prev = box
	}

	if ok {
		b.addImage(s, img, 8, 1.5, 7)
	}
	return s
}
