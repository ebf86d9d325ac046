package slides

import (
	"strings"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// TitleSpec describes a cover slide.
type TitleSpec struct {
	Title      string
	Subtitle   string
	Info       string // presenter, organisation, date; one per line
	Background string // optional full-bleed image file name
}

// Title builds a cover slide.
func (b *Builder) Title(number int, spec TitleSpec) *deck.Slide {
	th := b.Theme
	s := deck.NewSlide(number, "title", spec.Title)
	s.Background = deck.Ptr(th.Cover)

	dark := th.Cover.Dark()
	if img, ok := b.Images.TryLoad(spec.Background); ok {
		s.Add(deck.Element{
			Kind:         deck.KindImage,
			Box:          layout.Box{W: b.Canvas.Width, H: b.Canvas.Height},
			Image:        img,
			Transparency: 0.5,
		})
		band := s.AddShape(deck.Rect, b.guard(s, layout.Box{X: 0, Y: 2, W: b.Canvas.Width, H: 5}, "overlay"), deck.White)
		band.Transparency = 0.3
		dark = false
	}

	titleColor, subColor, infoColor := th.Heading, th.Header, th.Text
	if dark {
		titleColor, subColor, infoColor = deck.White, th.Light, deck.White
	}

	s.AddText(b.guard(s, layout.Box{X: 1, Y: 2, W: contentWidth, H: 2}, "title"),
		deck.Paragraph{Text: spec.Title, Size: 48, Bold: true, Color: titleColor, Align: deck.AlignCenter})
	if spec.Subtitle != "" {
		s.AddText(b.guard(s, layout.Box{X: 1, Y: 4.5, W: contentWidth, H: 1}, "subtitle"),
			centered(spec.Subtitle, 24, subColor))
	}
	if spec.Info != "" {
		var ps []deck.Paragraph
		for _, line := range strings.Split(spec.Info, "\n") {
			ps = append(ps, centered(line, 18, infoColor))
		}
		s.AddText(b.guard(s, layout.Box{X: 1, Y: 6.5, W: contentWidth, H: 1.5}, "info"), ps...)
	}
	return s
}

// Item is one entry of a content slide: a plain bullet (Text), or a heading
// followed by indented bullets. An item with no fields is a blank line.
type Item struct {
	Text    string
	Heading string
	Bullets []string
}

// ContentSpec describes a bulleted content slide.
type ContentSpec struct {
	Title string
	Items []Item
	Code  string // optional code example shown in a box on the right
}

// Content builds a slide of headings and bullets laid out top to bottom.
// With a code example the list is narrowed to the left half.
func (b *Builder) Content(number int, spec ContentSpec) *deck.Slide {
	s := deck.NewSlide(number, "content", spec.Title)
	b.chrome(s, number, spec.Title)

	width := contentWidth
	if spec.Code != "" {
		width = 7
	}
	c := b.cursor(contentLeft, contentTop, width)
	b.items(s, c, spec.Items, width)

	if spec.Code != "" {
		b.codeBox(s, spec.Code)
	}
	return s
}

// items lays out content items through the cursor.
func (b *Builder) items(s *deck.Slide, c *layout.Cursor, items []Item, width float64) {
	th := b.Theme
	sp := th.Spacing
	for _, it := range items {
		switch {
		case it.Heading == "" && it.Text == "" && len(it.Bullets) == 0:
			c.Skip(sp.Bullet / 2)
		case it.Heading == "" && len(it.Bullets) == 0:
			box := b.place(s, c, sp.Item, width, "item")
			s.AddText(box, para(bulletMark+it.Text, itemSize, th.Text))
		default:
			if it.Heading != "" {
				box := b.place(s, c, sp.Heading, width, "heading")
				p := para(it.Heading, headingSize, th.Heading)
				p.Bold = true
				s.AddText(box, p)
			}
			if it.Text != "" {
				box := b.place(s, c, sp.Item, width, "item")
				s.AddText(box, para(it.Text, itemSize, th.Text))
			}
			for _, bullet := range it.Bullets {
				box := indent(b.place(s, c, sp.Bullet, width, "bullet"), 0.5)
				s.AddText(box, para(bulletMark+bullet, bulletSize, th.Text))
			}
		}
	}
}

func (b *Builder) codeBox(s *deck.Slide, code string) {
	th := b.Theme
	frame := b.guard(s, layout.Box{X: 8.5, Y: contentTop, W: 7, H: 5.5}, "code box")
	s.AddShape(deck.Rect, frame, th.CodeFill)

	var ps []deck.Paragraph
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		ps = append(ps, deck.Paragraph{Text: line, Size: 12, Mono: true, Color: deck.Black, Align: deck.AlignLeft})
	}
	s.AddText(frame.Inset(0.2), ps...)
}
