package slides

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

const columnGap = 1.0

// Column is one side of a comparison.
type Column struct {
	Heading string
	Items   []string
}

// ColumnsSpec describes a slide of side-by-side lists.
type ColumnsSpec struct {
	Title   string
	Columns []Column
	Note    string // optional summary line below the columns
}

// Columns builds a comparison slide. The content width is split evenly
// between columns; each column is filled top to bottom by the same cursor,
// advanced to the next column between lists.
func (b *Builder) Columns(number int, spec ColumnsSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "columns", spec.Title)
	b.chrome(s, number, spec.Title)

	n := max(1, len(spec.Columns))
	width := (contentWidth - columnGap*float64(n-1)) / float64(n)
	c := b.cursor(contentLeft, contentTop, width, layout.WithColumnWidth(width+columnGap))

	for i, col := range spec.Columns {
		if i > 0 {
			c.AdvanceColumn()
		}
		if col.Heading != "" {
			box := b.place(s, c, th.Spacing.Heading, width, "column heading")
			p := para(col.Heading, headingSize, th.Heading)
			p.Bold = true
			s.AddText(box, p)
		}
		for _, item := range col.Items {
			box := b.place(s, c, th.Spacing.Bullet, width, "column item")
			s.AddText(box, para(bulletMark+item, bulletSize, th.Text))
		}
	}

	if spec.Note != "" {
		box := b.guard(s, layout.Box{X: contentLeft, Y: 7.2, W: contentWidth, H: 0.8}, "note")
		s.AddShape(deck.Rect, box, th.Light, centered(spec.Note, bulletSize, th.Heading)).Anchor = deck.AnchorMiddle
	}
	return s
}
