// Package render turns built decks into files.
//
// # Overview
//
// The [sink] subpackage draws slides in each output format:
//
//   - SVG: one standalone document per slide
//   - PNG: one raster image per slide, drawn natively
//   - PDF: every slide's SVG combined by rsvg-convert
//   - JSON: the deck layout (boxes, text, image references)
//
// The [outline] subpackage draws the deck structure (sections and slides)
// as a Graphviz diagram.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] call the external rsvg-convert tool (from librsvg).
// PDF output requires it; PNG output does not, except for outlines.
//
//	pages := sink.RenderDeckSVG(d)
//	pdf, err := render.ToPDF(ctx, pages)
//
// [sink]: github.com/matzehuels/stackdeck/pkg/render/sink
// [outline]: github.com/matzehuels/stackdeck/pkg/render/outline
package render
