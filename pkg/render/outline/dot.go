package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render"
)

// Options configures outline rendering.
type Options struct {
	// Detailed adds the slide kind, element count and warnings to each
	// label. When false, only the number and title are shown.
	Detailed bool
}

// ToDOT converts a deck to Graphviz DOT format.
func ToDOT(d *deck.Deck, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=white, color=%q, fontsize=14, margin=\"0.2,0.1\"];\n", d.Theme.Header.Hex())
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=note, fillcolor=%q, fontcolor=%q];\n",
		"deck", deckLabel(d), d.Theme.Header.Hex(), textOn(d.Theme.Header))

	for i, group := range sections(d.Slides) {
		indent := "  "
		if group.name != "" {
			fmt.Fprintf(&buf, "  subgraph \"cluster_%d\" {\n", i)
			fmt.Fprintf(&buf, "    label=%q;\n", group.name)
			buf.WriteString("    style=\"rounded\";\n")
			fmt.Fprintf(&buf, "    color=%q;\n", d.Theme.Muted.Hex())
			indent = "    "
		}
		for _, s := range group.slides {
			attrs := []string{fmt.Sprintf("label=%q", label(s, opts.Detailed))}
			if len(s.Warnings) > 0 {
				attrs = append(attrs, "style=\"rounded,filled,dashed\"", fmt.Sprintf("fillcolor=%q", d.Theme.Light.Hex()))
			}
			fmt.Fprintf(&buf, "%s%q [%s];\n", indent, nodeID(s), strings.Join(attrs, ", "))
		}
		if group.name != "" {
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("\n")
	prev := "deck"
	for _, s := range d.Slides {
		fmt.Fprintf(&buf, "  %q -> %q;\n", prev, nodeID(s))
		prev = nodeID(s)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type section struct {
	name   string
	slides []*deck.Slide
}

// sections groups consecutive slides with the same section name.
func sections(slides []*deck.Slide) []section {
	var out []section
	for _, s := range slides {
		if n := len(out); n > 0 && out[n-1].name == s.Section {
			out[n-1].slides = append(out[n-1].slides, s)
			continue
		}
		out = append(out, section{name: s.Section, slides: []*deck.Slide{s}})
	}
	return out
}

func nodeID(s *deck.Slide) string {
	return fmt.Sprintf("slide-%d", s.Number)
}

func deckLabel(d *deck.Deck) string {
	title := d.Title
	if title == "" {
		title = d.Name
	}
	return fmt.Sprintf("%s\n%d slides", title, d.Len())
}

func label(s *deck.Slide, detailed bool) string {
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	l := fmt.Sprintf("%d. %s", s.Number, title)
	if !detailed {
		return l
	}
	parts := []string{l, fmt.Sprintf("kind: %s", s.Kind), fmt.Sprintf("elements: %d", len(s.Elements))}
	for _, w := range s.Warnings {
		parts = append(parts, "! "+w)
	}
	return strings.Join(parts, "\n")
}

func textOn(c deck.Color) string {
	if c.Dark() {
		return deck.White.Hex()
	}
	return deck.Black.Hex()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with one whose
// width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, [][]byte{svg})
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
