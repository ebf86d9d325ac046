package slides

import (
	"strings"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// ClosingSpec describes a final "Q & A" slide.
type ClosingSpec struct {
	Title   string // defaults to "Q & A"
	Contact string // one entry per line
}

// Closing builds the last slide of a deck: a large centred title on the
// light theme colour followed by contact lines.
func (b *Builder) Closing(number int, spec ClosingSpec) *deck.Slide {
	th := b.Theme
	title := spec.Title
	if title == "" {
		title = "Q & A"
	}
	s := deck.NewSlide(number, "closing", title)
	s.Background = deck.Ptr(th.Light)

	s.AddText(b.guard(s, layout.Box{X: 1, Y: 3, W: contentWidth, H: 3}, "title"),
		deck.Paragraph{Text: title, Size: 72, Bold: true, Color: textOn(th.Light, th.Heading), Align: deck.AlignCenter})

	if spec.Contact != "" {
		var ps []deck.Paragraph
		for _, line := range strings.Split(spec.Contact, "\n") {
			ps = append(ps, centered(line, 20, textOn(th.Light, th.Text)))
		}
		s.AddText(b.guard(s, layout.Box{X: 1, Y: 6, W: contentWidth, H: 1.5}, "contact"), ps...)
	}
	return s
}
