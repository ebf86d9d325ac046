package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to pdf", "", []string{"pdf"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and empties", " svg, ,json ", []string{"svg", "json"}},
		{"only separators defaults to pdf", " , ,", []string{"pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, name, want string
	}{
		{"", "sdv-v4", "sdv-v4"},
		{"out/talk.pdf", "sdv-v4", "out/talk"},
		{"out/talk.svg", "x", "out/talk"},
		{"out/talk", "x", "out/talk"},
		{"talk.v2", "x", "talk.v2"}, // unknown extension kept
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.name); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.name, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	if got := outputPaths("talk", "pdf", 1); !slices.Equal(got, []string{"talk.pdf"}) {
		t.Errorf("pdf paths = %v", got)
	}
	if got := outputPaths("talk", "json", 1); !slices.Equal(got, []string{"talk.json"}) {
		t.Errorf("json paths = %v", got)
	}
	got := outputPaths("out/talk", "svg", 12)
	if len(got) != 12 || got[0] != "out/talk-01.svg" || got[11] != "out/talk-12.svg" {
		t.Errorf("svg paths = %v", got)
	}
	if got := outputPaths("talk", "png", 0); len(got) != 0 {
		t.Errorf("empty deck paths = %v", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "talk")
	artifacts := map[string][][]byte{
		"svg":  {[]byte("<svg>1</svg>"), []byte("<svg>2</svg>")},
		"json": {[]byte("{}")},
	}

	written, err := writeArtifacts(artifacts, []string{"svg", "json"}, base)
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{base + "-01.svg", base + "-02.svg", base + ".json"}
	if !slices.Equal(written, want) {
		t.Fatalf("written = %v, want %v", written, want)
	}
	data, err := os.ReadFile(base + "-02.svg")
	if err != nil || !strings.Contains(string(data), "2") {
		t.Errorf("page 2 = %q, %v", data, err)
	}

	// Second write overwrites.
	artifacts["json"] = [][]byte{[]byte(`{"v":2}`)}
	if _, err := writeArtifacts(artifacts, []string{"json"}, base); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(base + ".json"); string(data) != `{"v":2}` {
		t.Errorf("json not overwritten: %q", data)
	}
}
