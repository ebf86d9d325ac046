package deck

import (
	"fmt"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// Default canvas size in inches (16:9).
const (
	DefaultWidth  = 16.0
	DefaultHeight = 9.0
)

// Deck is an ordered sequence of slides sharing one canvas and theme.
type Deck struct {
	Name   string        `json:"name"`
	Title  string        `json:"title"`
	Canvas layout.Canvas `json:"canvas"`
	Theme  Theme         `json:"theme"`
	Slides []*Slide      `json:"slides"`
}

// New returns an empty 16 × 9 deck.
func New(name, title string, theme Theme) *Deck {
	return &Deck{
		Name:   name,
		Title:  title,
		Canvas: layout.Canvas{Width: DefaultWidth, Height: DefaultHeight},
		Theme:  theme,
	}
}

// Append adds slides in order.
func (d *Deck) Append(s ...*Slide) {
	d.Slides = append(d.Slides, s...)
}

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.Slides) }

// Slide returns the slide with the given 1-based number.
func (d *Deck) Slide(number int) (*Slide, bool) {
	for _, s := range d.Slides {
		if s.Number == number {
			return s, true
		}
	}
	return nil, false
}

// Validate checks that slides are numbered 1..N in order and that every
// element lies inside the canvas.
func (d *Deck) Validate() error {
	for i, s := range d.Slides {
		if s.Number != i+1 {
			return errors.New(errors.ErrCodeInvalidDeck, "slide %d has number %d", i+1, s.Number)
		}
		for j, e := range s.Elements {
			if !d.Canvas.Contains(e.Box) {
				return errors.New(errors.ErrCodeInvalidDeck, "slide %d element %d (%s) outside canvas: %+v", s.Number, j, e.Kind, e.Box)
			}
		}
	}
	return nil
}

// Stats summarises a deck's contents.
type Stats struct {
	Slides     int `json:"slides"`
	Shapes     int `json:"shapes"`
	Texts      int `json:"texts"`
	Tables     int `json:"tables"`
	Images     int `json:"images"`
	Connectors int `json:"connectors"`
	Warnings   int `json:"warnings"`
}

// Stats counts elements by kind across all slides.
func (d *Deck) Stats() Stats {
	st := Stats{Slides: len(d.Slides)}
	for _, s := range d.Slides {
		st.Warnings += len(s.Warnings)
		for _, e := range s.Elements {
			switch e.Kind {
			case KindShape:
				st.Shapes++
			case KindText:
				st.Texts++
			case KindTable:
				st.Tables++
			case KindImage:
				st.Images++
			case KindConnector:
				st.Connectors++
			}
		}
	}
	return st
}

// Slide is one page of a deck. Elements are drawn in order.
type Slide struct {
	Number     int       `json:"number"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Section    string    `json:"section,omitempty"`
	Background *Color    `json:"background,omitempty"`
	Elements   []Element `json:"elements"`
	Warnings   []string  `json:"warnings,omitempty"`
}

// NewSlide returns an empty slide with the given number.
func NewSlide(number int, kind, title string) *Slide {
	return &Slide{Number: number, Kind: kind, Title: title}
}

// Add appends an element.
func (s *Slide) Add(e Element) {
	s.Elements = append(s.Elements, e)
}

// AddShape appends a filled shape, optionally holding text.
func (s *Slide) AddShape(shape Shape, box layout.Box, fill Color, paras ...Paragraph) *Element {
	s.Elements = append(s.Elements, Element{
		Kind:       KindShape,
		Shape:      shape,
		Box:        box,
		Fill:       Ptr(fill),
		Paragraphs: paras,
	})
	return &s.Elements[len(s.Elements)-1]
}

// AddText appends an unfilled text frame.
func (s *Slide) AddText(box layout.Box, paras ...Paragraph) *Element {
	s.Elements = append(s.Elements, Element{
		Kind:       KindText,
		Box:        box,
		Paragraphs: paras,
	})
	return &s.Elements[len(s.Elements)-1]
}

// AddConnector appends conn stroked in colour c.
func (s *Slide) AddConnector(conn Connector, c Color) *Element {
	s.Elements = append(s.Elements, Element{
		Kind:      KindConnector,
		Box:       conn.Bounds(),
		Line:      Ptr(c),
		Connector: &conn,
	})
	return &s.Elements[len(s.Elements)-1]
}

// Elements returns the total number of elements counted.
func (st Stats) Elements() int {
	return st.Shapes + st.Texts + st.Tables + st.Images + st.Connectors
}

// Warnf records a non-fatal layout note, such as a clamped block.
func (s *Slide) Warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}
