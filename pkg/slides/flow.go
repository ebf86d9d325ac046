package slides

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

const (
	flowStepHeight = 1.0
	flowGap        = 0.2
	flowArrowGap   = 0.3
)

// Step is one stage of a process flow. Detail and Note are shown beside the
// step; Note is set in the monospace font, for API calls and the like.
type Step struct {
	Label  string
	Detail string
	Note   string
	Fill   *deck.Color // nil uses the theme's header colour
}

// FlowSpec describes a top-to-bottom process slide. Shape defaults to
// [deck.Chevron]. Arrows joins consecutive steps.
type FlowSpec struct {
	Title  string
	Steps  []Step
	Shape  deck.Shape
	Arrows bool
}

// Flow builds a process slide. Steps are stacked by a cursor. When any step
// has a note the steps form the left column of a three-column layout
// (step, detail, note); otherwise each step spans the content width with its
// detail inline.
func (b *Builder) Flow(number int, spec FlowSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "flow", spec.Title)
	b.chrome(s, number, spec.Title)

	shape := spec.Shape
	if shape == "" {
		shape = deck.Chevron
	}
	side := false
	for _, st := range spec.Steps {
		if st.Note != "" {
			side = true
		}
	}

	x, width := 2.0, 12.0
	if side {
		x, width = contentLeft, 3.5
	}
	gap := flowGap
	if spec.Arrows {
		gap = flowArrowGap
	}
	c := layout.New(b.Canvas.Width, b.Canvas.Height, x, contentTop,
		layout.WithMargin(gap),
		layout.WithDefaultWidth(width),
	)

	var prev layout.Box
	for i, st := range spec.Steps {
		box := c.Place(flowStepHeight)
		if box.Shrunk(width, flowStepHeight) {
			s.Warnf("step %q clamped to %.2fx%.2f", st.Label, box.W, box.H)
		}
		fill := th.Header
		if st.Fill != nil {
			fill = *st.Fill
		}

		label := st.Label
		if !side && st.Detail != "" {
			label += ": " + st.Detail
		}
		p := centered(label, bulletSize, textOn(fill, th.Heading))
		if side {
			p.Size = 14
		}
		p.Bold = true
		e := s.AddShape(shape, box, fill, p)
		e.Anchor = deck.AnchorMiddle

		if side {
			if st.Detail != "" {
				s.AddText(b.guard(s, layout.Box{X: 5, Y: box.Y, W: 4, H: box.H}, "step detail"),
					centered(st.Detail, 14, th.Muted)).Anchor = deck.AnchorMiddle
			}
			if st.Note != "" {
				note := centered(st.Note, 12, th.Accent)
				note.Mono = true
				s.AddText(b.guard(s, layout.Box{X: 9.5, Y: box.Y, W: 5.5, H: box.H}, "step note"), note).Anchor = deck.AnchorMiddle
			}
		}

		if spec.Arrows && i > 0 {
			b.connect(s, prev, box)
		}
		prev = box
	}
	return s
}
