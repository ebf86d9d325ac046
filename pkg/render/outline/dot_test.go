package outline

import (
	"strings"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/deck"
)

func outlineDeck() *deck.Deck {
	d := deck.New("sdv", "SDV overview", deck.KETI)
	titles := []struct{ title, section string }{
		{"Cover", ""},
		{"Goals", "Intro"},
		{"Scope", "Intro"},
		{"Domains", "Standard"},
		{"Q & A", ""},
	}
	for i, tt := range titles {
		s := deck.NewSlide(i+1, "content", tt.title)
		s.Section = tt.section
		d.Append(s)
	}
	d.Slides[3].Warnf("block clamped")
	return d
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(outlineDeck(), Options{})

	for _, want := range []string{
		"digraph G",
		`"deck" [label="SDV overview\n5 slides"`,
		`"slide-1" [label="1. Cover"]`,
		`"deck" -> "slide-1"`,
		`"slide-4" -> "slide-5"`,
		`label="5. Q & A"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOT_Sections(t *testing.T) {
	dot := ToDOT(outlineDeck(), Options{})

	if n := strings.Count(dot, "subgraph"); n != 2 {
		t.Errorf("clusters = %d, want 2", n)
	}
	if !strings.Contains(dot, `label="Intro";`) || !strings.Contains(dot, `label="Standard";`) {
		t.Error("ToDOT() missing section labels")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(outlineDeck(), Options{Detailed: true})

	if !strings.Contains(dot, `kind: content`) {
		t.Error("ToDOT() detailed output missing kind")
	}
	if !strings.Contains(dot, `! block clamped`) {
		t.Error("ToDOT() detailed output missing warning")
	}
	if !strings.Contains(dot, "dashed") {
		t.Error("slide with warnings not dashed")
	}
}

func TestSections(t *testing.T) {
	d := outlineDeck()
	got := sections(d.Slides)
	want := []struct {
		name string
		n    int
	}{{"", 1}, {"Intro", 2}, {"Standard", 1}, {"", 1}}
	if len(got) != len(want) {
		t.Fatalf("sections = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].name != w.name || len(got[i].slides) != w.n {
			t.Errorf("section %d = %q/%d, want %q/%d", i, got[i].name, len(got[i].slides), w.name, w.n)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if strings.Contains(out, "pt\"") {
		t.Error("pt units kept")
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox modified")
	}
}
