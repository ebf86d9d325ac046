package slides

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// Placement is where an image sits on an image slide.
type Placement string

const (
	PlaceRight  Placement = "right"
	PlaceBottom Placement = "bottom"
	PlaceCenter Placement = "center"
)

// ImageSpec describes a slide built around one image with optional bullets.
type ImageSpec struct {
	Title     string
	Image     string
	Placement Placement
	Items     []Item
	Caption   string
}

// Image builds a slide with an image to the right of, below, or instead of
// a bullet list. When the image is missing the bullets take the full width
// and a warning is recorded.
func (b *Builder) Image(number int, spec ImageSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "image", spec.Title)
	b.chrome(s, number, spec.Title)

	img, ok := b.Images.TryLoad(spec.Image)
	if !ok && spec.Image != "" {
		s.Warnf("image %q not available", spec.Image)
	}

	width := contentWidth
	if ok && spec.Placement != PlaceBottom && spec.Placement != PlaceCenter {
		width = 8
	}
	c := b.cursor(contentLeft, contentTop, width)
	b.items(s, c, spec.Items, width)

	if !ok {
		return s
	}

	var x, y, w float64
	switch spec.Placement {
	case PlaceBottom:
		x, y, w = 2, max(5, c.Y()), 12
	case PlaceCenter:
		x, y, w = 2, 1.5, 12
	default:
		x, y, w = 9, 1.5, 6.5
	}
	// Fit to the space left above the footer.
	if h := img.FitHeight(w); y+h > footerTop {
		w = max(0, (footerTop-y)*img.Aspect())
		if spec.Placement != PlaceRight && spec.Placement != "" {
			x = (b.Canvas.Width - w) / 2
		}
	}
	box := b.addImage(s, img, x, y, w)

	if spec.Caption != "" {
		below := layout.Box{X: box.X, Y: box.Bottom() + 0.1, W: box.W, H: 0.5}
		s.AddText(b.guard(s, below, "caption"), centered(spec.Caption, 12, th.Muted))
	}
	return s
}
