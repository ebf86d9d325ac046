package source

import (
	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/slides"
)

// Build turns a definition into a deck. Slides are numbered 1..N in file
// order and the number is passed to each builder explicitly. images may be
// nil; missing images never fail the build.
func Build(def *Definition, images *assets.Loader) (*deck.Deck, error) {
	th, err := def.ResolveTheme()
	if err != nil {
		return nil, err
	}

	d := deck.New(def.Name, def.Title, th)
	if def.Width > 0 {
		d.Canvas.Width = def.Width
	}
	if def.Height > 0 {
		d.Canvas.Height = def.Height
	}
	b := slides.NewBuilder(d, images)

	for i, sd := range def.Slides {
		s, err := buildSlide(b, i+1, sd)
		if err != nil {
			return nil, err
		}
		s.Section = sd.Section
		d.Append(s)
	}

	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "deck %q", def.Name)
	}
	return d, nil
}

func buildSlide(b *slides.Builder, n int, sd SlideDef) (*deck.Slide, error) {
	switch sd.Kind {
	case KindTitle:
		return b.Title(n, slides.TitleSpec{
			Title:      sd.Title,
			Subtitle:   sd.Subtitle,
			Info:       sd.Info,
			Background: sd.Background,
		}), nil

	case KindContent:
		return b.Content(n, slides.ContentSpec{Title: sd.Title, Items: items(sd.Items), Code: sd.Code}), nil

	case KindColumns:
		cols := make([]slides.Column, len(sd.Columns))
		for i, c := range sd.Columns {
			cols[i] = slides.Column{Heading: c.Heading, Items: c.Items}
		}
		return b.Columns(n, slides.ColumnsSpec{Title: sd.Title, Columns: cols, Note: sd.Note}), nil

	case KindTable:
		return b.Table(n, slides.TableSpec{Title: sd.Title, Rows: sd.Rows, Caption: sd.Caption}), nil

	case KindArchitecture:
		layers := make([]slides.Layer, len(sd.Layers))
		for i, l := range sd.Layers {
			layers[i] = slides.Layer{Name: l.Name, Detail: l.Detail}
		}
		return b.Architecture(n, slides.ArchitectureSpec{Title: sd.Title, Layers: layers, Image: sd.Image, Arrows: sd.Arrows}), nil

	case KindLogos:
		logos := make([]slides.Logo, len(sd.Logos))
		for i, l := range sd.Logos {
			logos[i] = slides.Logo{Name: l.Name, Image: l.Image}
		}
		stats := make([]slides.Stat, len(sd.Stats))
		for i, st := range sd.Stats {
			stats[i] = slides.Stat{Value: st.Value, Label: st.Label}
		}
		return b.Logos(n, slides.LogosSpec{Title: sd.Title, Logos: logos, Stats: stats}), nil

	case KindGrid:
		cards := make([]slides.Card, len(sd.Cards))
		for i, c := range sd.Cards {
			shape, _ := deck.ParseShape(c.Shape)
			cards[i] = slides.Card{Heading: c.Heading, Items: c.Items, Shape: shape}
			if c.Fill != "" {
				fill, err := deck.ParseColor(c.Fill)
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "slide %d card %q", n, c.Heading)
				}
				cards[i].Fill = &fill
			}
		}
		return b.Grid(n, slides.GridSpec{Title: sd.Title, Cards: cards, PerLine: sd.PerLine}), nil

	case KindImage:
		return b.Image(n, slides.ImageSpec{
			Title:     sd.Title,
			Image:     sd.Image,
			Placement: slides.Placement(sd.Placement),
			Items:     items(sd.Items),
			Caption:   sd.Caption,
		}), nil

	case KindFlow:
		steps := make([]slides.Step, len(sd.Steps))
		for i, st := range sd.Steps {
			steps[i] = slides.Step{Label: st.Label, Detail: st.Detail, Note: st.Note}
			if st.Fill != "" {
				fill, err := deck.ParseColor(st.Fill)
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "slide %d step %q", n, st.Label)
				}
				steps[i].Fill = &fill
			}
		}
		// An unset shape keeps the builder's chevron default.
		var shape deck.Shape
		if sd.Shape != "" {
			shape, _ = deck.ParseShape(sd.Shape)
		}
		return b.Flow(n, slides.FlowSpec{Title: sd.Title, Steps: steps, Shape: shape, Arrows: sd.Arrows}), nil

	case KindClosing:
		return b.Closing(n, slides.ClosingSpec{Title: sd.Title, Contact: sd.Contact}), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidDeck, "slide %d: unknown kind %q", n, sd.Kind)
}

func items(defs []ItemDef) []slides.Item {
	out := make([]slides.Item, len(defs))
	for i, it := range defs {
		out[i] = slides.Item{Text: it.Text, Heading: it.Heading, Bullets: it.Bullets}
	}
	return out
}
