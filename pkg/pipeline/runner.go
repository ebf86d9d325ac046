package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/observability"
	"github.com/matzehuels/stackdeck/pkg/source"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.BuildID == "" {
		opts.BuildID = uuid.NewString()
	}

	result := &Result{BuildID: opts.BuildID}
	logger := opts.Logger.With("build", shortID(opts.BuildID))

	// Stage 1: Load
	loadStart := time.Now()
	src, err := r.Load(opts)
	observability.Pipeline().OnLoad(ctx, opts.Deck, src != nil && src.Builtin, err)
	if err != nil {
		return nil, err
	}
	result.Source = src
	result.Stats.LoadTime = time.Since(loadStart)
	logger.Info("loaded deck",
		"name", src.Name,
		"builtin", src.Builtin,
		"slides", len(src.Def.Slides))

	// Stage 2: Build
	buildStart := time.Now()
	d, buildHit, err := r.BuildWithCacheInfo(ctx, src, opts)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, src.Name, 0, 0, false, time.Since(buildStart), err)
		return nil, err
	}
	result.Deck = d
	result.Stats.Deck = d.Stats()
	result.Stats.BuildTime = time.Since(buildStart)
	result.CacheInfo.BuildHit = buildHit
	observability.Pipeline().OnBuildComplete(ctx, src.Name, d.Len(), result.Stats.Deck.Warnings, buildHit, result.Stats.BuildTime, nil)

	for _, s := range d.Slides {
		for _, w := range s.Warnings {
			logger.Warn("layout", "slide", s.Number, "note", w)
		}
	}
	logger.Info("built deck",
		"slides", d.Len(),
		"elements", result.Stats.Deck.Elements(),
		"cached", buildHit,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, renderHit, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the deck reference, or returns opts.Source when set.
func (r *Runner) Load(opts Options) (*source.Source, error) {
	if opts.Source != nil {
		return opts.Source, nil
	}
	return source.Open(opts.Deck)
}

// BuildWithCacheInfo builds the deck with caching and returns cache hit info.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, src *source.Source, opts Options) (*deck.Deck, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	images := assets.NewLoader(opts.Images, opts.Logger)
	for _, name := range src.Def.Images() {
		images.TryLoad(name)
	}
	cacheKey := r.Keyer.DeckKey(cache.Hash(src.Data), cache.DeckKeyOpts{Images: images.Fingerprints()})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit := r.get(ctx, "deck", cacheKey); hit {
			var d deck.Deck
			if err := json.Unmarshal(data, &d); err == nil {
				rehydrate(&d, images)
				return &d, true, nil
			}
		}
	}

	d, err := source.Build(src.Def, images)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(d); err == nil {
		r.set(ctx, "deck", cacheKey, data, cache.TTLDeck)
	}
	return d, false, nil
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards the cache hit info.
func (r *Runner) Build(ctx context.Context, src *source.Source, opts Options) (*deck.Deck, error) {
	d, _, err := r.BuildWithCacheInfo(ctx, src, opts)
	return d, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *deck.Deck, opts Options) (map[string][][]byte, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	// Compute cache key from the built deck
	deckData, err := json.Marshal(d)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize deck for cache key")
	}
	deckHash := cache.Hash(deckData)

	artifacts := make(map[string][][]byte, len(opts.Formats))
	allCached, anyCacheable := true, false
	for _, format := range opts.Formats {
		if Cacheable(format) && !opts.Refresh {
			key := r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(format))
			if data, hit := r.get(ctx, "artifact:"+format, key); hit {
				var pages [][]byte
				if err := json.Unmarshal(data, &pages); err == nil {
					artifacts[format] = pages
					anyCacheable = true
					continue
				}
			}
		}
		if Cacheable(format) {
			anyCacheable, allCached = true, false
		}

		pages, err := Render(ctx, d, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = pages

		if Cacheable(format) {
			if data, err := json.Marshal(pages); err == nil {
				r.set(ctx, "artifact:"+format, r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(format)), data, cache.TTLArtifact)
			}
		}
	}

	return artifacts, anyCacheable && allCached, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, d *deck.Deck, opts Options) (map[string][][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads from the cache. Backend errors are logged and treated as misses.
func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// rehydrate reattaches image bytes to a deck restored from the cache, whose
// images carry only their metadata.
func rehydrate(d *deck.Deck, images *assets.Loader) {
	for _, s := range d.Slides {
		for i := range s.Elements {
			e := &s.Elements[i]
			if e.Image == nil {
				continue
			}
			if img, ok := images.TryLoad(e.Image.Name); ok {
				e.Image = img
			}
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
