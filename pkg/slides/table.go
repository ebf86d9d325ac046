package slides

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

const (
	tableRowHeight = 0.5
	tableMaxHeight = 5.5
)

// TableSpec describes a table slide. Rows[0] is the header row.
type TableSpec struct {
	Title   string
	Rows    [][]string
	Caption string
}

// Table builds a slide holding one table. The table height grows with the
// row count up to a fixed maximum.
func (b *Builder) Table(number int, spec TableSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "table", spec.Title)
	b.chrome(s, number, spec.Title)

	if len(spec.Rows) == 0 {
		s.Warnf("table has no rows")
		return s
	}

	h := min(tableMaxHeight, tableRowHeight*float64(len(spec.Rows)))
	box := b.guard(s, layout.Box{X: contentLeft, Y: 2, W: contentWidth, H: h}, "table")
	s.Add(deck.Element{
		Kind: deck.KindTable,
		Box:  box,
		Table: &deck.Table{
			Rows:       spec.Rows,
			HeaderFill: th.Header,
			HeaderText: textOn(th.Header, th.Heading),
			BodyText:   th.Text,
			HeaderSize: 16,
			BodySize:   14,
		},
	})

	if spec.Caption != "" {
		captionBox := b.guard(s, layout.Box{X: contentLeft, Y: box.Bottom() + 0.3, W: contentWidth, H: 0.6}, "caption")
		p := para(spec.Caption, 14, th.Muted)
		s.AddText(captionBox, p)
	}
	return s
}
