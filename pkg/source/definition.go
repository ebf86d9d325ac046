package source

// Slide kinds accepted in deck files.
const (
	KindTitle        = "title"
	KindContent      = "content"
	KindColumns      = "columns"
	KindTable        = "table"
	KindArchitecture = "architecture"
	KindLogos        = "logos"
	KindGrid         = "grid"
	KindImage        = "image"
	KindClosing      = "closing"
	KindFlow         = "flow"
)

// Kinds lists every slide kind in the order they are documented.
var Kinds = []string{
	KindTitle, KindContent, KindColumns, KindTable, KindArchitecture,
	KindLogos, KindGrid, KindImage, KindFlow, KindClosing,
}

// Definition is a deck file as written by a user. Field names are shared by
// the TOML and YAML encodings.
type Definition struct {
	Name   string            `toml:"name" yaml:"name" json:"name"`
	Title  string            `toml:"title" yaml:"title" json:"title"`
	Theme  string            `toml:"theme" yaml:"theme" json:"theme"`
	Colors map[string]string `toml:"colors" yaml:"colors" json:"colors,omitempty"`
	Font   string            `toml:"font" yaml:"font" json:"font,omitempty"`
	Width  float64           `toml:"width" yaml:"width" json:"width,omitempty"`
	Height float64           `toml:"height" yaml:"height" json:"height,omitempty"`
	Slides []SlideDef        `toml:"slides" yaml:"slides" json:"slides"`
}

// SlideDef is one slide in a deck file. Which fields apply depends on Kind.
type SlideDef struct {
	Kind    string `toml:"kind" yaml:"kind" json:"kind"`
	Title   string `toml:"title" yaml:"title" json:"title,omitempty"`
	Section string `toml:"section" yaml:"section" json:"section,omitempty"`

	// title
	Subtitle   string `toml:"subtitle" yaml:"subtitle" json:"subtitle,omitempty"`
	Info       string `toml:"info" yaml:"info" json:"info,omitempty"`
	Background string `toml:"background" yaml:"background" json:"background,omitempty"`

	// content, image
	Items []ItemDef `toml:"items" yaml:"items" json:"items,omitempty"`
	Code  string    `toml:"code" yaml:"code" json:"code,omitempty"`

	// columns
	Columns []ColumnDef `toml:"columns" yaml:"columns" json:"columns,omitempty"`
	Note    string      `toml:"note" yaml:"note" json:"note,omitempty"`

	// table
	Rows    [][]string `toml:"rows" yaml:"rows" json:"rows,omitempty"`
	Caption string     `toml:"caption" yaml:"caption" json:"caption,omitempty"`

	// architecture
	Layers []LayerDef `toml:"layers" yaml:"layers" json:"layers,omitempty"`

	// flow
	Steps []StepDef `toml:"steps" yaml:"steps" json:"steps,omitempty"`

	// flow: shape of every step; architecture, flow: arrows between boxes
	Shape  string `toml:"shape" yaml:"shape" json:"shape,omitempty"`
	Arrows bool   `toml:"arrows" yaml:"arrows" json:"arrows,omitempty"`

	// logos
	Logos []LogoDef `toml:"logos" yaml:"logos" json:"logos,omitempty"`
	Stats []StatDef `toml:"stats" yaml:"stats" json:"stats,omitempty"`

	// grid
	Cards   []CardDef `toml:"cards" yaml:"cards" json:"cards,omitempty"`
	PerLine int       `toml:"per_line" yaml:"per_line" json:"per_line,omitempty"`

	// architecture, image
	Image     string `toml:"image" yaml:"image" json:"image,omitempty"`
	Placement string `toml:"placement" yaml:"placement" json:"placement,omitempty"`

	// closing
	Contact string `toml:"contact" yaml:"contact" json:"contact,omitempty"`
}

// ItemDef is a content line: plain text, or a heading with bullets. An empty
// item is a blank line.
type ItemDef struct {
	Text    string   `toml:"text" yaml:"text" json:"text,omitempty"`
	Heading string   `toml:"heading" yaml:"heading" json:"heading,omitempty"`
	Bullets []string `toml:"bullets" yaml:"bullets" json:"bullets,omitempty"`
}

type ColumnDef struct {
	Heading string   `toml:"heading" yaml:"heading" json:"heading"`
	Items   []string `toml:"items" yaml:"items" json:"items"`
}

type LayerDef struct {
	Name   string `toml:"name" yaml:"name" json:"name"`
	Detail string `toml:"detail" yaml:"detail" json:"detail,omitempty"`
}

type LogoDef struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Image string `toml:"image" yaml:"image" json:"image,omitempty"`
}

type StatDef struct {
	Value string `toml:"value" yaml:"value" json:"value"`
	Label string `toml:"label" yaml:"label" json:"label"`
}

type CardDef struct {
	Heading string   `toml:"heading" yaml:"heading" json:"heading"`
	Items   []string `toml:"items" yaml:"items" json:"items,omitempty"`
	Fill    string   `toml:"fill" yaml:"fill" json:"fill,omitempty"`
	Shape   string   `toml:"shape" yaml:"shape" json:"shape,omitempty"`
}

type StepDef struct {
	Label  string `toml:"label" yaml:"label" json:"label"`
	Detail string `toml:"detail" yaml:"detail" json:"detail,omitempty"`
	Note   string `toml:"note" yaml:"note" json:"note,omitempty"`
	Fill   string `toml:"fill" yaml:"fill" json:"fill,omitempty"`
}

// Images returns every image name the definition refers to, in slide order,
// without duplicates.
func (d *Definition) Images() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, s := range d.Slides {
		add(s.Background)
		add(s.Image)
		for _, l := range s.Logos {
			add(l.Image)
		}
	}
	return out
}

// Sections returns the distinct section names in slide order.
func (d *Definition) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range d.Slides {
		if s.Section != "" && !seen[s.Section] {
			seen[s.Section] = true
			out = append(out, s.Section)
		}
	}
	return out
}
