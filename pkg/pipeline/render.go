package pipeline

import (
	"context"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render/outline"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
)

// Render generates the pages of one format.
func Render(ctx context.Context, d *deck.Deck, format string, opts Options) ([][]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		return sink.RenderDeckSVG(d, svgOptions(opts)...), nil
	case FormatPNG:
		return sink.RenderDeckPNG(d, sink.WithScale(opts.Scale), sink.WithPNGFont(opts.Font))
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, d, sink.WithPDFSVGOptions(svgOptions(opts)...))
	case FormatJSON:
		data, err = sink.RenderJSON(d, sink.WithJSONBuildID(opts.BuildID), sink.WithJSONSource(opts.Deck))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
	}
	return [][]byte{data}, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Font != "" {
		svgOpts = append(svgOpts, sink.WithFont(opts.Font))
	}
	return svgOpts
}

// RenderOutline draws the deck structure as SVG, PNG or PDF.
func RenderOutline(ctx context.Context, d *deck.Deck, format string, detailed bool) ([]byte, error) {
	dot := outline.ToDOT(d, outline.Options{Detailed: detailed})
	switch format {
	case FormatSVG, "":
		return outline.RenderSVG(ctx, dot)
	case FormatPNG:
		return outline.RenderPNG(ctx, dot, DefaultScale)
	case FormatPDF:
		return outline.RenderPDF(ctx, dot)
	case "dot":
		return []byte(dot), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported outline format: %s (must be one of: svg, png, pdf, dot)", format)
}
