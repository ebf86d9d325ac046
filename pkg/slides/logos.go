package slides

import (
	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

const (
	logoWidth  = 3.0
	logoHeight = 1.5
	logoGap    = 0.5
	statWidth  = 3.5
	statHeight = 1.5
	statGap    = 0.3
)

// Logo is a company or organisation shown by its logo image. When the image
// is missing a labelled placeholder is drawn instead.
type Logo struct {
	Name  string
	Image string
}

// Stat is a highlighted number with a label, such as "200+ members".
type Stat struct {
	Value string
	Label string
}

// LogosSpec describes a participants slide.
type LogosSpec struct {
	Title string
	Logos []Logo
	Stats []Stat
}

// Logos builds a slide of logos in a row followed by a row of stat boxes.
func (b *Builder) Logos(number int, spec LogosSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "logos", spec.Title)
	b.chrome(s, number, spec.Title)

	row := layout.NewRow(b.Canvas, contentLeft, 2.5, layout.WithGap(logoGap), layout.WithLineGap(0.3))
	for _, l := range spec.Logos {
		img, ok := b.Images.TryLoad(l.Image)
		if !ok {
			box := row.Place(logoWidth, logoHeight)
			if box.Shrunk(logoWidth, logoHeight) {
				s.Warnf("logo %q clamped to %.2fx%.2f", l.Name, box.W, box.H)
			}
			e := s.AddShape(deck.RoundedRect, box, th.Light, centered(l.Name, 16, th.Heading))
			e.Line = deck.Ptr(th.Muted)
			e.Anchor = deck.AnchorMiddle
			continue
		}
		h := min(logoHeight, img.FitHeight(logoWidth))
		box := row.Place(logoWidth, h)
		if box.Shrunk(logoWidth, h) {
			s.Warnf("logo %q clamped to %.2fx%.2f", l.Name, box.W, box.H)
		}
		s.Add(deck.Element{Kind: deck.KindImage, Box: box, Image: img})
	}

	top := max(5.5, row.Bottom()+0.5)
	stats := layout.NewRow(b.Canvas, contentLeft, top, layout.WithGap(statGap), layout.WithLineGap(statGap))
	for _, st := range spec.Stats {
		box := stats.Place(statWidth, statHeight)
		if box.Shrunk(statWidth, statHeight) {
			s.Warnf("stat %q clamped to %.2fx%.2f", st.Label, box.W, box.H)
		}
		e := s.AddShape(deck.Rect, box, th.Light,
			deck.Paragraph{Text: st.Value, Size: 28, Bold: true, Color: th.Accent, Align: deck.AlignCenter},
			centered(st.Label, 16, th.Text),
		)
		e.Anchor = deck.AnchorMiddle
	}
	return s
}

// addImage places img at (x, y) scaled to width w, keeping its aspect ratio
// and clamping to the canvas.
func (b *Builder) addImage(s *deck.Slide, img *assets.Image, x, y, w float64) layout.Box {
	box := b.guard(s, layout.Box{X: x, Y: y, W: w, H: img.FitHeight(w)}, "image "+img.Name)
	s.Add(deck.Element{Kind: deck.KindImage, Box: box, Image: img})
	return box
}
