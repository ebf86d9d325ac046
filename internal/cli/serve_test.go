package cli

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackdeck/pkg/observability"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

const previewDeck = `
name = "preview"
title = "Preview & Test"

[[slides]]
kind = "title"
title = "Hello <world>"

[[slides]]
kind = "image"
title = "Photo"
image = "photo.png"
items = [{ text = "caption" }]
`

func newTestPreview(t *testing.T) (*preview, *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "preview.toml")
	if err := os.WriteFile(deckPath, []byte(previewDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	imgDir := filepath.Join(dir, "img")
	if err := os.Mkdir(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestPNG(t, filepath.Join(imgDir, "photo.png"))

	runner := pipeline.NewRunner(nil, nil, log.New(io.Discard))
	res, err := runner.Execute(context.Background(), pipeline.Options{
		Deck: deckPath, Images: imgDir, Formats: []string{pipeline.FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	p := &preview{scale: 0.25, logger: log.New(io.Discard)}
	p.set(res)
	srv := httptest.NewServer(p.routes())
	t.Cleanup(srv.Close)
	return p, srv
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for x := range 40 {
		for y := range 20 {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestPreviewRoutes(t *testing.T) {
	_, srv := newTestPreview(t)

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/", 200, "text/html", `src="/slides/2.svg"`},
		{"/slides/1.svg", 200, "image/svg+xml", "Hello &lt;world&gt;"},
		{"/slides/2.svg", 200, "image/svg+xml", `xlink:href="/images/photo.png"`},
		{"/slides/1.png", 200, "image/png", "\x89PNG"},
		{"/deck.json", 200, "application/json", `"name": "preview"`},
		{"/images/photo.png", 200, "image/png", "\x89PNG"},
		{"/images/other.png", 404, "application/json", "not used"},
		{"/slides/9.svg", 404, "application/json", "NOT_FOUND"},
		{"/slides/two.svg", 400, "application/json", "not a number"},
		{"/nope", 404, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv, tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body does not contain %q:\n%.300s", tt.contains, body)
			}
		})
	}
}

func TestPreviewHealthTracksBuild(t *testing.T) {
	p, srv := newTestPreview(t)

	_, body := get(t, srv, "/healthz")
	var health struct {
		Status string `json:"status"`
		Build  string `json:"build"`
		Slides int    `json:"slides"`
	}
	if err := json.Unmarshal([]byte(body), &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "ok" || health.Build != p.current().BuildID || health.Slides != 2 {
		t.Errorf("health = %+v", health)
	}

	next := *p.current()
	next.BuildID = "rebuilt"
	p.set(&next)

	_, body = get(t, srv, "/healthz")
	if !strings.Contains(body, `"build":"rebuilt"`) {
		t.Errorf("health after rebuild = %s", body)
	}
	_, index := get(t, srv, "/")
	if !strings.Contains(index, `"rebuilt"`) {
		t.Error("index page does not embed the current build ID")
	}
}

type statusHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses map[string]int
}

func (h *statusHooks) OnResponse(_ context.Context, _, path string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses[path] = status
}

func TestPreviewHTTPHooks(t *testing.T) {
	hooks := &statusHooks{statuses: map[string]int{}}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	_, srv := newTestPreview(t)
	get(t, srv, "/slides/1.svg")
	get(t, srv, "/slides/7.svg")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.statuses["/slides/1.svg"] != 200 || hooks.statuses["/slides/7.svg"] != 404 {
		t.Errorf("statuses = %v", hooks.statuses)
	}
}
