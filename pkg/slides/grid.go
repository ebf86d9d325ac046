package slides

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// Card is one cell of a grid slide.
type Card struct {
	Heading string
	Items   []string
	Fill    *deck.Color // nil uses the theme's light colour
	Shape   deck.Shape  // empty is a rounded rectangle
}

// GridSpec describes a slide of cards in rows, such as a SWOT matrix.
type GridSpec struct {
	Title   string
	Cards   []Card
	PerLine int // cards per row; 0 means 2
}

// Grid builds a slide of equally sized cards filling the content area.
func (b *Builder) Grid(number int, spec GridSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "grid", spec.Title)
	b.chrome(s, number, spec.Title)

	perLine := spec.PerLine
	if perLine <= 0 {
		perLine = 2
	}
	const gap, lineGap = 0.7, 0.3
	lines := (len(spec.Cards) + perLine - 1) / perLine
	w := (contentWidth - gap*float64(perLine-1)) / float64(perLine)
	h := 2.5
	if lines > 2 {
		h = (footerTop - 1.6 - lineGap*float64(lines-1)) / float64(lines)
	}

	row := layout.NewRow(b.Canvas, contentLeft-0.3, 1.6,
		layout.WithGap(gap), layout.WithLineGap(lineGap), layout.WithPerLine(perLine))
	for _, card := range spec.Cards {
		box := row.Place(w, h)
		if box.Shrunk(w, h) {
			s.Warnf("card %q clamped to %.2fx%.2f", card.Heading, box.W, box.H)
		}
		fill := th.Light
		if card.Fill != nil {
			fill = *card.Fill
		}
		ps := []deck.Paragraph{{Text: card.Heading, Size: 20, Bold: true, Color: textOn(fill, th.Heading), Align: deck.AlignLeft}}
		for _, item := range card.Items {
			ps = append(ps, para(bulletMark+item, 14, textOn(fill, th.Text)))
		}
		shape := card.Shape
		if shape == "" {
			shape = deck.RoundedRect
		}
		e := s.AddShape(shape, box, fill, ps...)
		if shape != deck.RoundedRect && shape != deck.Rect {
			// Text in pointed or curved shapes stays clear of the corners.
			for i := range e.Paragraphs {
				e.Paragraphs[i].Align = deck.AlignCenter
			}
			e.Anchor = deck.AnchorMiddle
		}
	}
	return s
}
