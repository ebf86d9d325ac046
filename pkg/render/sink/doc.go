// Package sink renders built decks to output formats.
//
// # Formats
//
//   - [RenderSVG] / [RenderDeckSVG]: one SVG document per slide at 96 px
//     per inch, images embedded as data URIs
//   - [RenderPNG] / [RenderDeckPNG]: native raster drawing with gg and
//     freetype, default scale 2x
//   - [RenderPDF]: all slides in one PDF via rsvg-convert
//   - [RenderJSON]: the deck layout for tooling and the preview server
//
// Each renderer takes functional options:
//
//	svg := sink.RenderSVG(d, d.Slides[0], sink.WithSVGScale(0.5))
//	png, err := sink.RenderPNG(d, d.Slides[0], sink.WithScale(1))
//	pdf, err := sink.RenderPDF(ctx, d)
//
// # Text
//
// Text frames use the same insets and line spacing in every format. The
// PNG sink measures glyphs with the resolved font; the SVG sink estimates
// widths from East Asian cell widths, since the viewer picks the font.
// Monospaced paragraphs keep their spacing and are not wrapped.
//
// Renderers never modify the deck and are safe for concurrent use.
package sink
