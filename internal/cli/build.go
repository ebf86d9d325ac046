package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

// buildOpts holds the flags of the build command.
type buildOpts struct {
	output  string
	formats string
	images  string
	scale   float64
	font    string
	refresh bool
	watch   bool
	cache   cacheFlags
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{images: pipeline.DefaultImagesDir, scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "build [deck]",
		Short: "Build a deck into SVG, PNG, PDF or JSON",
		Long: `Build a deck into SVG, PNG, PDF or JSON.

The deck is a TOML or YAML file, or the name of a built-in deck (see
'stackdeck decks'). Without an argument an interactive picker lists the
built-in decks.

PDF and JSON produce one file. SVG and PNG produce one file per slide,
named <base>-01.svg, <base>-02.svg and so on. Images are looked up by file
name in --images; missing images are skipped with a warning.

Built decks and rendered pages are cached, so rebuilding an unchanged deck
is instant. Use --watch to rebuild whenever the deck file or an image
changes.`,
		Example: `  stackdeck build sdv-overview
  stackdeck build talk.toml -f pdf,png --scale 3
  stackdeck build talk.yaml -o out/talk.pdf --watch`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDecks,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormats(parseFormats(opts.formats)); err != nil {
				return err
			}
			ref, err := deckArg(args)
			if err != nil || ref == "" {
				return err
			}
			return c.runBuild(cmd.Context(), ref, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path (default: deck name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.images, "images", opts.images, "directory holding slide images")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor (1 = 96 px per inch)")
	cmd.Flags().StringVar(&opts.font, "font", "", "font family overriding the theme font")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when the deck file or images change")
	opts.cache.register(cmd)

	return cmd
}

// deckArg returns the deck reference from args, asking with the picker when
// none was given. An empty result means the user quit the picker.
func deckArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return pickDeck()
}

func (o buildOpts) pipelineOptions(ref string) pipeline.Options {
	return pipeline.Options{
		Deck:    ref,
		Images:  o.images,
		Formats: parseFormats(o.formats),
		Scale:   o.scale,
		Font:    o.font,
		Refresh: o.refresh,
	}
}

func (c *CLI) runBuild(ctx context.Context, ref string, opts buildOpts) error {
	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := c.buildOnce(ctx, runner, ref, opts)
	if err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	if res.Source.Builtin {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs a deck file, %q is built in", ref)
	}
	paths := []string{res.Source.Path, opts.images}
	printInfo("Watching %s for changes (Ctrl+C to stop)", strings.Join(paths, ", "))

	return watchFiles(ctx, paths, c.Logger, func(ctx context.Context) {
		// Later builds always reread the file; a bad edit is reported and
		// the watch goes on.
		if _, err := c.buildOnce(ctx, runner, ref, opts); err != nil {
			printError("%v", err)
		}
	})
}

// buildOnce runs the pipeline, writes the artifacts and prints a summary.
func (c *CLI) buildOnce(ctx context.Context, runner *pipeline.Runner, ref string, opts buildOpts) (*pipeline.Result, error) {
	spinner := newSpinner(ctx, fmt.Sprintf("Building %s...", ref))
	spinner.Start()
	prog := newProgress(c.Logger)

	res, err := runner.Execute(ctx, opts.pipelineOptions(ref))
	if err != nil {
		spinner.StopWithError("Build failed")
		return nil, err
	}
	spinner.Stop()

	written, err := writeArtifacts(res.Artifacts, parseFormats(opts.formats), basePath(opts.output, res.Source.Name))
	if err != nil {
		return nil, err
	}
	prog.done("Built deck", "deck", res.Source.Name, "build", res.BuildID)

	printSuccess("Built %s", StyleValue.Render(res.Deck.Title))
	fmt.Fprintln(stdout, statsLine(res.Stats.Deck, res.CacheInfo.BuildHit && res.CacheInfo.RenderHit))
	fmt.Fprintln(stdout, slideTable(res.Deck))
	for _, s := range res.Deck.Slides {
		for _, w := range s.Warnings {
			printWarning("slide %d: %s", s.Number, w)
		}
	}
	for _, p := range written {
		printFile(p)
	}
	return res, nil
}

// =============================================================================
// Output Files
// =============================================================================

// basePath derives the output base from -o, or from the deck name when -o
// is empty. A known format extension on -o is stripped.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths names the files for n pages of format. Per-slide formats get
// a two-digit slide number: talk-01.svg, talk-02.svg.
func outputPaths(base, format string, n int) []string {
	if !pipeline.PerSlide(format) {
		return []string{base + "." + format}
	}
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%02d.%s", base, i+1, format)
	}
	return paths
}

// writeArtifacts writes every page of every format, in format order, and
// returns the paths written. Existing files are overwritten.
func writeArtifacts(artifacts map[string][][]byte, formats []string, base string) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	var written []string
	for _, format := range formats {
		pages := artifacts[format]
		for i, path := range outputPaths(base, format, len(pages)) {
			if err := os.WriteFile(path, pages[i], 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
