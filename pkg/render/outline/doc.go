// Package outline renders the structure of a deck as a Graphviz diagram.
//
// Slides become boxes, chained in presentation order. Slides that share a
// section are grouped into a cluster labelled with the section name, so a
// reviewer can check the running order of a long deck at a glance.
//
//	dot := outline.ToDOT(d, outline.Options{Detailed: true})
//	svg, err := outline.RenderSVG(ctx, dot)
//
// Rendering uses goccy/go-graphviz, which embeds Graphviz as WebAssembly;
// no system install is needed for SVG. PNG and PDF go through
// rsvg-convert.
package outline
