package deck

// Theme holds the colours, fonts and vertical rhythm of a deck. It is passed
// by value into every slide builder.
type Theme struct {
	Name string `json:"name" toml:"name" yaml:"name"`

	Header     Color `json:"header" toml:"header" yaml:"header"`             // header bar fill
	Cover      Color `json:"cover" toml:"cover" yaml:"cover"`                // title slide background
	Heading    Color `json:"heading" toml:"heading" yaml:"heading"`          // section headings
	Text       Color `json:"text" toml:"text" yaml:"text"`                   // body text
	Muted      Color `json:"muted" toml:"muted" yaml:"muted"`                // page numbers, captions
	Light      Color `json:"light" toml:"light" yaml:"light"`                // stat boxes, subtitles on dark
	Accent     Color `json:"accent" toml:"accent" yaml:"accent"`             // highlighted numbers
	CodeFill   Color `json:"code_fill" toml:"code_fill" yaml:"code_fill"`    // code example background
	Background Color `json:"background" toml:"background" yaml:"background"` // content slide background

	Font     string `json:"font" toml:"font" yaml:"font"`
	MonoFont string `json:"mono_font" toml:"mono_font" yaml:"mono_font"`

	Spacing Spacing `json:"spacing" toml:"spacing" yaml:"spacing"`
}

// Spacing is the distance the layout cursor advances for each kind of
// content line, in inches, including the inter-block margin.
type Spacing struct {
	Heading float64 `json:"heading" toml:"heading" yaml:"heading"`
	Bullet  float64 `json:"bullet" toml:"bullet" yaml:"bullet"`
	Item    float64 `json:"item" toml:"item" yaml:"item"`
	Margin  float64 `json:"margin" toml:"margin" yaml:"margin"`
}

// Built-in themes.
var (
	// KETI is the blue institute palette.
	KETI = Theme{
		Name:       "keti",
		Header:     RGB(0, 82, 147),
		Cover:      RGB(0, 32, 96),
		Heading:    RGB(0, 32, 96),
		Text:       RGB(64, 64, 64),
		Muted:      RGB(128, 128, 128),
		Light:      RGB(218, 238, 243),
		Accent:     RGB(0, 82, 147),
		CodeFill:   RGB(245, 245, 245),
		Background: White,
		Font:       "Malgun Gothic",
		MonoFont:   "Consolas",
		Spacing:    Spacing{Heading: 0.8, Bullet: 0.6, Item: 0.7, Margin: 0.1},
	}

	// China is the red and navy palette.
	China = Theme{
		Name:       "china",
		Header:     RGB(0, 32, 96),
		Cover:      White,
		Heading:    RGB(238, 28, 37),
		Text:       RGB(64, 64, 64),
		Muted:      RGB(128, 128, 128),
		Light:      RGB(218, 238, 243),
		Accent:     RGB(238, 28, 37),
		CodeFill:   RGB(245, 245, 245),
		Background: White,
		Font:       "Malgun Gothic",
		MonoFont:   "Consolas",
		Spacing:    Spacing{Heading: 0.7, Bullet: 0.55, Item: 0.65, Margin: 0.1},
	}

	// Plain is a neutral palette used when a deck names no theme.
	Plain = Theme{
		Name:       "plain",
		Header:     RGB(48, 48, 48),
		Cover:      RGB(32, 32, 32),
		Heading:    RGB(32, 32, 32),
		Text:       Black,
		Muted:      RGB(128, 128, 128),
		Light:      RGB(235, 235, 235),
		Accent:     RGB(0, 102, 204),
		CodeFill:   RGB(245, 245, 245),
		Background: White,
		Font:       "Helvetica",
		MonoFont:   "Courier",
		Spacing:    Spacing{Heading: 0.8, Bullet: 0.6, Item: 0.7, Margin: 0.1},
	}
)

// Themes lists the built-in themes by name.
func Themes() map[string]Theme {
	return map[string]Theme{
		KETI.Name:  KETI,
		China.Name: China,
		Plain.Name: Plain,
	}
}

// LookupTheme returns the built-in theme with the given name.
func LookupTheme(name string) (Theme, bool) {
	t, ok := Themes()[name]
	return t, ok
}
