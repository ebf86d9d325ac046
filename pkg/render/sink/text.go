package sink

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

const (
	pxPerInch = 96.0

	// Text frame insets in inches.
	insetX = 0.1
	insetY = 0.05

	lineSpacing = 1.2
	baselineAt  = 0.9 // baseline offset from line top, in em
)

// line is one laid-out line of text. Coordinates are pixels.
type line struct {
	Text     string
	X        float64 // left, centre or right edge, per Para.Align
	Baseline float64
	Size     float64
	Para     deck.Paragraph
}

// measureFunc returns the rendered width in pixels of s set in p at size
// pixels.
type measureFunc func(p deck.Paragraph, size float64, s string) float64

// layoutText wraps and positions paragraphs inside box. k is pixels per
// inch.
func layoutText(box layout.Box, paras []deck.Paragraph, anchor deck.Anchor, k float64, measure measureFunc) []line {
	x0 := (box.X + insetX) * k
	w := max(0, box.W-2*insetX) * k
	y0 := (box.Y + insetY) * k
	h := max(0, box.H-2*insetY) * k

	var lines []line
	y := 0.0
	for _, p := range paras {
		size := p.Size * k / 72
		fit := func(s string) float64 { return measure(p, size, s) }
		for _, text := range wrap(p, w, fit) {
			x := x0
			switch p.Align {
			case deck.AlignCenter:
				x = x0 + w/2
			case deck.AlignRight:
				x = x0 + w
			}
			lines = append(lines, line{Text: text, X: x, Baseline: y + baselineAt*size, Size: size, Para: p})
			y += size * lineSpacing
		}
	}

	top := y0
	if anchor == deck.AnchorMiddle {
		top = y0 + (h-y)/2
	}
	for i := range lines {
		lines[i].Baseline += top
	}
	return lines
}

// wrap breaks a paragraph into lines no wider than width. Monospaced text
// keeps its line breaks and spacing and is never wrapped.
func wrap(p deck.Paragraph, width float64, measure func(string) float64) []string {
	parts := strings.Split(p.Text, "\n")
	if p.Mono {
		return parts
	}
	var out []string
	for _, s := range parts {
		out = append(out, wrapLine(s, width, measure)...)
	}
	return out
}

func wrapLine(s string, width float64, measure func(string) float64) []string {
	if width <= 0 || measure(s) <= width {
		return []string{s}
	}

	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if measure(candidate) <= width {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		// Words wider than the frame (long identifiers, unspaced CJK) are
		// broken between runes.
		for measure(word) > width {
			n := fitRunes(word, width, measure)
			lines = append(lines, word[:n])
			word = word[n:]
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// fitRunes returns the byte length of the longest rune prefix of s that
// fits in width. At least one rune is always taken.
func fitRunes(s string, width float64, measure func(string) float64) int {
	end := 0
	for i, r := range s {
		next := i + utf8.RuneLen(r)
		if end > 0 && measure(s[:next]) > width {
			break
		}
		end = next
	}
	return end
}

// estimateWidth approximates text width from East Asian cell widths, for
// sinks that cannot measure glyphs.
func estimateWidth(p deck.Paragraph, size float64, s string) float64 {
	em := 0.52
	if p.Mono {
		em = 0.6
	} else if p.Bold {
		em = 0.56
	}
	return float64(runewidth.StringWidth(s)) * em * size
}

// cell is one table cell resolved to a box and a paragraph.
type cell struct {
	Box  layout.Box
	Fill deck.Color
	Para deck.Paragraph
}

// tableCells splits box evenly into the table's rows and columns.
func tableCells(t *deck.Table, box layout.Box) []cell {
	cols, rows := t.Columns(), len(t.Rows)
	if cols == 0 || rows == 0 {
		return nil
	}
	cw, rh := box.W/float64(cols), box.H/float64(rows)

	cells := make([]cell, 0, cols*rows)
	for r, row := range t.Rows {
		for c := range cols {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			cl := cell{
				Box:  layout.Box{X: box.X + float64(c)*cw, Y: box.Y + float64(r)*rh, W: cw, H: rh},
				Fill: deck.White,
				Para: deck.Paragraph{Text: text, Size: t.BodySize, Color: t.BodyText},
			}
			if r == 0 {
				cl.Fill = t.HeaderFill
				cl.Para = deck.Paragraph{Text: text, Size: t.HeaderSize, Bold: true, Color: t.HeaderText}
			}
			cells = append(cells, cl)
		}
	}
	return cells
}

// cornerRadius matches the default rounding of a rounded rectangle shape.
func cornerRadius(w, h float64) float64 {
	return min(w, h) / 6
}

func opacity(transparency float64) float64 {
	return 1 - max(0, min(1, transparency))
}

func fontFamily(th deck.Theme, override string, mono bool) string {
	if mono {
		return th.MonoFont
	}
	if override != "" {
		return override
	}
	return th.Font
}
