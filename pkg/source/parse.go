package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Format is the encoding of a deck file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor infers the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported deck file %q (want .toml, .yaml or .yml)", filepath.Base(path))
	}
}

// Parse decodes and validates a deck definition. Unknown keys are rejected
// so typos in deck files surface as errors instead of silently missing
// content.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidDeck, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported deck format %q", format)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks names, theme, colours, slide kinds and image references.
func (d *Definition) Validate() error {
	if err := errors.ValidateDeckName(d.Name); err != nil {
		return err
	}
	if _, err := d.ResolveTheme(); err != nil {
		return err
	}
	if d.Width < 0 || d.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDeck, "canvas size must not be negative")
	}
	if len(d.Slides) == 0 {
		return errors.New(errors.ErrCodeInvalidDeck, "deck %q has no slides", d.Name)
	}

	for i, s := range d.Slides {
		n := i + 1
		if !slices.Contains(Kinds, s.Kind) {
			return errors.New(errors.ErrCodeInvalidDeck, "slide %d: unknown kind %q (want one of %s)", n, s.Kind, strings.Join(Kinds, ", "))
		}
		for _, img := range []string{s.Background, s.Image} {
			if err := errors.ValidateImageName(img); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDeck, err, "slide %d", n)
			}
		}
		for _, l := range s.Logos {
			if err := errors.ValidateImageName(l.Image); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDeck, err, "slide %d logo %q", n, l.Name)
			}
		}
		for _, c := range s.Cards {
			if err := validateShape(c.Shape); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDeck, err, "slide %d card %q", n, c.Heading)
			}
			if c.Fill == "" {
				continue
			}
			if _, err := deck.ParseColor(c.Fill); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidColor, err, "slide %d card %q", n, c.Heading)
			}
		}
		if err := validateShape(s.Shape); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDeck, err, "slide %d", n)
		}
		for _, st := range s.Steps {
			if st.Fill == "" {
				continue
			}
			if _, err := deck.ParseColor(st.Fill); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidColor, err, "slide %d step %q", n, st.Label)
			}
		}
		switch s.Placement {
		case "", "right", "bottom", "center":
		default:
			return errors.New(errors.ErrCodeInvalidDeck, "slide %d: unknown placement %q", n, s.Placement)
		}
	}
	return nil
}

func validateShape(name string) error {
	if _, ok := deck.ParseShape(name); ok {
		return nil
	}
	names := make([]string, len(deck.Shapes))
	for i, sh := range deck.Shapes {
		names[i] = string(sh)
	}
	return errors.New(errors.ErrCodeInvalidDeck, "unknown shape %q (want one of %s)", name, strings.Join(names, ", "))
}

// ResolveTheme returns the named theme with colour and font overrides
// applied. An empty name selects [deck.Plain].
func (d *Definition) ResolveTheme() (deck.Theme, error) {
	th := deck.Plain
	if d.Theme != "" {
		var ok bool
		if th, ok = deck.LookupTheme(d.Theme); !ok {
			return deck.Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", d.Theme)
		}
	}
	if d.Font != "" {
		th.Font = d.Font
	}

	for key, value := range d.Colors {
		c, err := deck.ParseColor(value)
		if err != nil {
			return deck.Theme{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "colors.%s", key)
		}
		slot := themeSlot(&th, key)
		if slot == nil {
			return deck.Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown colour %q", key)
		}
		*slot = c
	}
	return th, nil
}

func themeSlot(th *deck.Theme, key string) *deck.Color {
	switch key {
	case "header":
		return &th.Header
	case "cover":
		return &th.Cover
	case "heading":
		return &th.Heading
	case "text":
		return &th.Text
	case "muted":
		return &th.Muted
	case "light":
		return &th.Light
	case "accent":
		return &th.Accent
	case "code_fill":
		return &th.CodeFill
	case "background":
		return &th.Background
	}
	return nil
}
