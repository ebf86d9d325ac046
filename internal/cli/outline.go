package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

// outlineCommand renders the slide structure of a deck as a Graphviz chart.
func (c *CLI) outlineCommand() *cobra.Command {
	var (
		output   string
		format   string
		images   string
		detailed bool
		cf       cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "outline [deck]",
		Short: "Render a deck outline with Graphviz",
		Long: `Render a deck outline with Graphviz.

The outline shows every slide in order, grouped by section. With
--detailed each node also lists the slide kind, its element count and any
layout warnings. Use -f dot to get the Graphviz source.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDecks,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := deckArg(args)
			if err != nil || ref == "" {
				return err
			}
			return c.runOutline(cmd.Context(), ref, outlineParams{
				output: output, format: format, images: images, detailed: detailed, cache: cf,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <deck>-outline.<format>, - for stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, pdf, dot")
	cmd.Flags().StringVar(&images, "images", pipeline.DefaultImagesDir, "directory holding slide images")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show slide kinds, element counts and warnings")
	cf.register(cmd)

	return cmd
}

type outlineParams struct {
	output   string
	format   string
	images   string
	detailed bool
	cache    cacheFlags
}

func (c *CLI) runOutline(ctx context.Context, ref string, p outlineParams) error {
	switch p.format {
	case "svg", "png", "pdf", "dot":
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid outline format %q (must be svg, png, pdf or dot)", p.format)
	}

	runner, err := c.newRunner(ctx, p.cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Deck: ref, Images: p.images}
	src, err := runner.Load(opts)
	if err != nil {
		return err
	}
	d, err := runner.Build(ctx, src, opts)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Rendering outline...")
	spinner.Start()
	data, err := pipeline.RenderOutline(ctx, d, p.format, p.detailed)
	if err != nil {
		spinner.StopWithError("Outline failed")
		return err
	}
	spinner.Stop()

	if p.output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	path := p.output
	if path == "" {
		path = src.Name + "-outline." + p.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Outlined %s (%s)", StyleValue.Render(d.Title), plural(d.Len(), "slide"))
	printFile(path)
	return nil
}
