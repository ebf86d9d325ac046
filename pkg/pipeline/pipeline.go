// Package pipeline provides the build pipeline shared by the CLI commands
// and the preview server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Resolve a deck reference to a file or built-in definition
//  2. Build: Load the images it names and run the slide builders
//  3. Render: Generate output in the requested formats (SVG, PNG, PDF, JSON)
//
// Built decks and rendered artifacts are cached. Keys hash the definition
// bytes, the fingerprints of the images and the render options, so editing
// the deck file or replacing an image invalidates exactly what it affects.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Deck:    "sdv-overview",
//	    Formats: []string{"pdf", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"][0]
//
// Run individual stages:
//
//	src, err := runner.Load(opts)
//	d, err := runner.Build(ctx, src, opts)
//	pages, err := runner.Render(ctx, d, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/source"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultImagesDir is where slide images are looked up by file name.
	DefaultImagesDir = "img"

	// DefaultScale is the PNG scale factor (2x = 192 px per inch).
	DefaultScale = 2.0

	// DefaultFormat is used when no format is requested.
	DefaultFormat = FormatPDF
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// PerSlide reports whether a format produces one file per slide.
func PerSlide(format string) bool {
	return format == FormatSVG || format == FormatPNG
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Deck   string         `json:"deck"`             // file path or built-in name
	Source *source.Source `json:"-"`                // pre-loaded source; skips the load stage
	Images string         `json:"images,omitempty"` // image directory

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Font    string   `json:"font,omitempty"`

	// Refresh bypasses cache reads. Results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger `json:"-"`
	BuildID string      `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// BuildID identifies this run in logs and in the JSON export.
	BuildID string

	// Source is the loaded deck definition.
	Source *source.Source

	// Deck is the built deck.
	Deck *deck.Deck

	// Artifacts contains rendered pages keyed by format. Per-slide formats
	// hold one entry per slide; PDF and JSON hold one entry.
	Artifacts map[string][][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Deck       deck.Stats
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool // Whether the built deck came from cache
	RenderHit bool // Whether all cacheable artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Deck == "" && o.Source == nil {
		return errors.New(errors.ErrCodeInvalidInput, "deck is required")
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset optional fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Images == "" {
		o.Images = DefaultImagesDir
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Font: o.Font}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// Cacheable reports whether a format's artifacts are stored in the cache.
// JSON embeds the build ID and is always rendered fresh.
func Cacheable(format string) bool {
	return format != FormatJSON
}
