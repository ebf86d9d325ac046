package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/observability"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr   string
	images string
	font   string
	scale  float64
	watch  bool
	cache  cacheFlags
}

// serveCommand starts the browser preview server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, images: pipeline.DefaultImagesDir, scale: 1}

	cmd := &cobra.Command{
		Use:   "serve [deck]",
		Short: "Preview a deck in the browser",
		Long: `Preview a deck in the browser.

The server builds the deck once and serves:

  /                  index page showing every slide
  /slides/{n}.svg    slide n as SVG
  /slides/{n}.png    slide n as PNG
  /deck.json         layout export
  /outline.svg       Graphviz outline
  /healthz           status and current build ID

With --watch the deck is rebuilt when its file or images change and open
index pages reload themselves.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDecks,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := deckArg(args)
			if err != nil || ref == "" {
				return err
			}
			return c.runServe(cmd.Context(), ref, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.images, "images", opts.images, "directory holding slide images")
	cmd.Flags().StringVar(&opts.font, "font", "", "font family overriding the theme font")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when the deck file or images change")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, ref string, opts serveOpts) error {
	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{Deck: ref, Images: opts.images, Font: opts.font, Formats: []string{pipeline.FormatJSON}}
	res, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}

	p := &preview{font: opts.font, scale: opts.scale, logger: c.Logger}
	p.set(res)

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", opts.addr, err)
	}
	srv := &http.Server{Handler: p.routes(), ReadHeaderTimeout: 10 * time.Second}

	printSuccess("Serving %s", StyleValue.Render(res.Deck.Title))
	printDetail("%s", StyleLink.Render("http://"+ln.Addr().String()+"/"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if opts.watch && !res.Source.Builtin {
		g.Go(func() error {
			return watchFiles(gctx, []string{res.Source.Path, opts.images}, c.Logger, func(ctx context.Context) {
				next, err := runner.Execute(ctx, pipeOpts)
				if err != nil {
					c.Logger.Error("rebuild failed", "err", err)
					return
				}
				p.set(next)
				c.Logger.Info("rebuilt", "deck", next.Source.Name, "slides", next.Deck.Len())
			})
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// Preview Handlers
// =============================================================================

// preview serves the most recent build. Handlers read the current result
// under a read lock; built decks are never mutated after construction.
type preview struct {
	font   string
	scale  float64
	logger *log.Logger

	mu  sync.RWMutex
	res *pipeline.Result
}

func (p *preview) set(res *pipeline.Result) {
	p.mu.Lock()
	p.res = res
	p.mu.Unlock()
}

func (p *preview) current() *pipeline.Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.res
}

func (p *preview) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(p.logRequests)

	r.Get("/", p.handleIndex)
	r.Get("/healthz", p.handleHealth)
	r.Get("/deck.json", p.handleJSON)
	r.Get("/outline.svg", p.handleOutline)
	r.Get("/slides/{n}.svg", p.handleSlideSVG)
	r.Get("/slides/{n}.png", p.handleSlidePNG)
	r.Get("/images/{name}", p.handleImage)
	return r
}

func (p *preview) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
		p.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start).Round(time.Microsecond),
			"req", middleware.GetReqID(r.Context()))
	})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; padding: 24px; background: #2b2b2b; font-family: sans-serif; color: #ddd; }
h1 { font-size: 18px; font-weight: normal; }
figure { margin: 0 0 24px; }
figure img { width: 100%; max-width: 1280px; display: block; box-shadow: 0 2px 8px #000; background: #fff; }
figcaption { font-size: 12px; color: #999; margin-top: 6px; }
</style>
</head>
<body>
<h1>{{.Title}} <small>({{len .Slides}} slides, <a href="/deck.json">json</a>, <a href="/outline.svg">outline</a>)</small></h1>
{{range .Slides}}<figure id="s{{.Number}}">
<a href="/slides/{{.Number}}.svg"><img src="/slides/{{.Number}}.svg" alt="{{.Title}}" loading="lazy"></a>
<figcaption>{{.Number}}. {{.Title}}{{range .Warnings}} · ! {{.}}{{end}}</figcaption>
</figure>
{{end}}<script>
const build = {{.BuildID}};
setInterval(async () => {
  try {
    const r = await fetch("/healthz");
    const s = await r.json();
    if (s.build !== build) location.reload();
  } catch (e) {}
}, 2000);
</script>
</body>
</html>
`))

func (p *preview) handleIndex(w http.ResponseWriter, r *http.Request) {
	res := p.current()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, struct {
		Title   string
		BuildID string
		Slides  []*deck.Slide
	}{res.Deck.Title, res.BuildID, res.Deck.Slides})
	if err != nil {
		p.logger.Warn("index", "err", err)
	}
}

func (p *preview) handleHealth(w http.ResponseWriter, r *http.Request) {
	res := p.current()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"deck":   res.Deck.Name,
		"build":  res.BuildID,
		"slides": res.Deck.Len(),
	})
}

func (p *preview) handleJSON(w http.ResponseWriter, r *http.Request) {
	res := p.current()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(res.Artifacts[pipeline.FormatJSON][0])
}

func (p *preview) handleOutline(w http.ResponseWriter, r *http.Request) {
	data, err := pipeline.RenderOutline(r.Context(), p.current().Deck, "svg", true)
	if err != nil {
		p.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (p *preview) handleSlideSVG(w http.ResponseWriter, r *http.Request) {
	d := p.current().Deck
	s, err := slideParam(r, d)
	if err != nil {
		p.writeError(w, err)
		return
	}
	data := sink.RenderSVG(d, s, sink.WithFont(p.font), sink.WithImageHref(imageHref))
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (p *preview) handleSlidePNG(w http.ResponseWriter, r *http.Request) {
	d := p.current().Deck
	s, err := slideParam(r, d)
	if err != nil {
		p.writeError(w, err)
		return
	}
	data, err := sink.RenderPNG(d, s, sink.WithScale(p.scale), sink.WithPNGFont(p.font))
	if err != nil {
		p.writeError(w, errors.Wrap(errors.ErrCodeRender, err, "slide %d", s.Number))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (p *preview) handleImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	img := findImage(p.current().Deck, name)
	if img == nil {
		p.writeError(w, errors.New(errors.ErrCodeNotFound, "image %q is not used by this deck", name))
		return
	}
	w.Header().Set("Content-Type", img.MIME())
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(img.Bytes())
}

// slideParam resolves the {n} route parameter to a slide.
func slideParam(r *http.Request, d *deck.Deck) (*deck.Slide, error) {
	raw := chi.URLParam(r, "n")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "slide number %q is not a number", raw)
	}
	s, ok := d.Slide(n)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "slide %d not found (deck has %d)", n, d.Len())
	}
	return s, nil
}

func imageHref(img *assets.Image) string {
	return "/images/" + url.PathEscape(img.Name)
}

func findImage(d *deck.Deck, name string) *assets.Image {
	for _, s := range d.Slides {
		for _, e := range s.Elements {
			if e.Image != nil && e.Image.Name == name {
				return e.Image
			}
		}
	}
	return nil
}

func (p *preview) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		p.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
