// Package fonts resolves the typefaces used by the raster sink and the CSS
// font stacks used by the SVG sink.
//
// Theme fonts are looked up by name in the system font directories with
// go-findfont. Only TrueType files can be rasterised; anything else, and
// any name that cannot be found, falls back to the Go fonts embedded in
// golang.org/x/image, so rendering never fails for want of a font.
package fonts

import (
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a variant of a family.
type Style struct {
	Bold bool
	Mono bool
}

type key struct {
	family string
	style  Style
}

var (
	mu       sync.Mutex
	resolved = map[key]*truetype.Font{}

	fallbackOnce sync.Once
	fallback     map[Style]*truetype.Font
)

// Resolve returns the font for family in the given style. An empty family,
// or one that is not installed as TrueType, yields the matching Go font.
func Resolve(family string, style Style) *truetype.Font {
	k := key{family: strings.TrimSpace(family), style: style}

	mu.Lock()
	defer mu.Unlock()
	if f, ok := resolved[k]; ok {
		return f
	}

	f := lookup(k.family, style)
	if f == nil {
		f = Fallback(style)
	}
	resolved[k] = f
	return f
}

// Fallback returns the embedded Go font for style.
func Fallback(style Style) *truetype.Font {
	fallbackOnce.Do(func() {
		fallback = map[Style]*truetype.Font{
			{}:                       mustParse(goregular.TTF),
			{Bold: true}:             mustParse(gobold.TTF),
			{Mono: true}:             mustParse(gomono.TTF),
			{Bold: true, Mono: true}: mustParse(gomonobold.TTF),
		}
	})
	return fallback[style]
}

// Face returns a face for f at size pixels.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func lookup(family string, style Style) *truetype.Font {
	if family == "" {
		return nil
	}
	for _, name := range candidates(family, style.Bold) {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f, err := truetype.Parse(data); err == nil {
			return f
		}
	}
	return nil
}

// candidates lists file names to try for a family, most specific first:
// "Noto Sans" bold tries NotoSans-Bold.ttf, Noto Sans Bold.ttf, then the
// regular names.
func candidates(family string, bold bool) []string {
	compact := strings.ReplaceAll(family, " ", "")
	var out []string
	if bold {
		out = append(out,
			compact+"-Bold.ttf",
			family+" Bold.ttf",
			compact+"bd.ttf",
		)
	}
	return append(out,
		compact+"-Regular.ttf",
		compact+".ttf",
		family+".ttf",
	)
}

func mustParse(data []byte) *truetype.Font {
	f, err := truetype.Parse(data)
	if err != nil {
		panic("fonts: embedded Go font: " + err.Error())
	}
	return f
}

// CSSFamily returns a font-family value naming family with a generic
// fallback.
func CSSFamily(family string, mono bool) string {
	generic := "sans-serif"
	if mono {
		generic = "monospace"
	}
	family = strings.TrimSpace(family)
	if family == "" {
		return generic
	}
	return "'" + strings.ReplaceAll(family, "'", "") + "', " + generic
}
