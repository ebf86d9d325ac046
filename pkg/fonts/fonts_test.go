package fonts

import (
	"slices"
	"testing"
)

func TestResolveFallsBack(t *testing.T) {
	f := Resolve("No Such Font Family 1234", Style{Bold: true})
	if f != Fallback(Style{Bold: true}) {
		t.Error("unknown family did not fall back to Go Bold")
	}
	if Resolve("", Style{}) != Fallback(Style{}) {
		t.Error("empty family did not fall back to Go Regular")
	}
	if Resolve("No Such Font Family 1234", Style{Bold: true}) != f {
		t.Error("second lookup not memoised")
	}
}

func TestFallbackVariants(t *testing.T) {
	seen := map[any]bool{}
	for _, st := range []Style{{}, {Bold: true}, {Mono: true}, {Bold: true, Mono: true}} {
		f := Fallback(st)
		if f == nil {
			t.Fatalf("Fallback(%+v) = nil", st)
		}
		seen[f] = true
	}
	if len(seen) != 4 {
		t.Errorf("got %d distinct fallback fonts, want 4", len(seen))
	}
}

func TestFace(t *testing.T) {
	face := Face(Fallback(Style{}), 24)
	defer face.Close()
	if h := face.Metrics().Height.Ceil(); h < 24 {
		t.Errorf("line height = %d, want >= 24", h)
	}
}

func TestCandidates(t *testing.T) {
	got := candidates("Noto Sans", true)
	want := []string{
		"NotoSans-Bold.ttf", "Noto Sans Bold.ttf", "NotoSansbd.ttf",
		"NotoSans-Regular.ttf", "NotoSans.ttf", "Noto Sans.ttf",
	}
	if !slices.Equal(got, want) {
		t.Errorf("candidates() = %v", got)
	}
	if n := len(candidates("Arial", false)); n != 3 {
		t.Errorf("regular candidates = %d, want 3", n)
	}
}

func TestCSSFamily(t *testing.T) {
	tests := []struct {
		family string
		mono   bool
		want   string
	}{
		{"Malgun Gothic", false, "'Malgun Gothic', sans-serif"},
		{"Consolas", true, "'Consolas', monospace"},
		{"", false, "sans-serif"},
		{"Bad'Name", false, "'BadName', sans-serif"},
	}
	for _, tt := range tests {
		if got := CSSFamily(tt.family, tt.mono); got != tt.want {
			t.Errorf("CSSFamily(%q, %v) = %q, want %q", tt.family, tt.mono, got, tt.want)
		}
	}
}
