package sink

import (
	"encoding/json"

	"github.com/matzehuels/stackdeck/pkg/deck"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	buildID string
	source  string
}

// WithJSONBuildID records the build identifier in the output.
func WithJSONBuildID(id string) JSONOption { return func(r *jsonRenderer) { r.buildID = id } }

// WithJSONSource records where the deck was loaded from (a file path or a
// built-in name).
func WithJSONSource(src string) JSONOption { return func(r *jsonRenderer) { r.source = src } }

type jsonOutput struct {
	Name    string      `json:"name"`
	Title   string      `json:"title,omitempty"`
	Source  string      `json:"source,omitempty"`
	BuildID string      `json:"build_id,omitempty"`
	Theme   string      `json:"theme"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Stats   deck.Stats  `json:"stats"`
	Slides  []jsonSlide `json:"slides"`
}

type jsonSlide struct {
	Number   int           `json:"number"`
	Kind     string        `json:"kind"`
	Title    string        `json:"title,omitempty"`
	Section  string        `json:"section,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
	Elements []jsonElement `json:"elements"`
}

type jsonElement struct {
	Kind  string     `json:"kind"`
	Shape string     `json:"shape,omitempty"`
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	W     float64    `json:"w"`
	H     float64    `json:"h"`
	Fill  string     `json:"fill,omitempty"`
	Text  string     `json:"text,omitempty"`
	Rows  [][]string `json:"rows,omitempty"`
	Image string     `json:"image,omitempty"`

	Connector *deck.Connector `json:"connector,omitempty"`
}

// RenderJSON exports the deck layout as a pretty-printed JSON document:
// every slide with its elements' kinds, boxes in inches, text and image
// names. Image pixels are not included.
func RenderJSON(d *deck.Deck, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Name:    d.Name,
		Title:   d.Title,
		Source:  r.source,
		BuildID: r.buildID,
		Theme:   d.Theme.Name,
		Width:   d.Canvas.Width,
		Height:  d.Canvas.Height,
		Stats:   d.Stats(),
		Slides:  make([]jsonSlide, len(d.Slides)),
	}
	for i, s := range d.Slides {
		out.Slides[i] = buildJSONSlide(s)
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONSlide(s *deck.Slide) jsonSlide {
	js := jsonSlide{
		Number:   s.Number,
		Kind:     s.Kind,
		Title:    s.Title,
		Section:  s.Section,
		Warnings: s.Warnings,
		Elements: make([]jsonElement, len(s.Elements)),
	}
	for i, e := range s.Elements {
		je := jsonElement{
			Kind:  string(e.Kind),
			Shape: string(e.Shape),
			X:     e.Box.X,
			Y:     e.Box.Y,
			W:     e.Box.W,
			H:     e.Box.H,
			Text:  e.Text(),
		}
		if e.Fill != nil {
			je.Fill = e.Fill.Hex()
		}
		if e.Table != nil {
			je.Rows = e.Table.Rows
		}
		if e.Image != nil {
			je.Image = e.Image.Name
		}
		je.Connector = e.Connector
		js.Elements[i] = je
	}
	return js
}
