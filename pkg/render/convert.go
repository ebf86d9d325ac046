package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Converter is the external SVG converter.
const Converter = "rsvg-convert"

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

// ToPDF converts SVG pages into a single multi-page PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeRender, "no pages to convert")
	}

	dir, err := os.MkdirTemp("", "stackdeck-pdf-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "create temp dir")
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, svg := range pages {
		p := filepath.Join(dir, fmt.Sprintf("slide-%03d.svg", i+1))
		if err := os.WriteFile(p, svg, 0o600); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "write page %d", i+1)
		}
		args = append(args, p)
	}
	return rsvgConvert(ctx, nil, "pdf", args...)
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-f", "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert shells out to rsvg-convert. stdin may be nil when the inputs
// are passed as file arguments.
func rsvgConvert(ctx context.Context, stdin []byte, format string, args ...string) ([]byte, error) {
	if !Available() {
		return nil, errors.New(errors.ErrCodeRenderTool, "%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.CommandContext(ctx, Converter, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "rsvg-convert")
		}
		return nil, errors.New(errors.ErrCodeRender, "rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
