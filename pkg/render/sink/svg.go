package sink

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/fonts"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

const tableBorder = "#bfbfbf"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale     float64
	font      string
	imageHref func(*assets.Image) string
}

// WithSVGScale multiplies the document's width and height attributes. The
// viewBox stays at 96 px per inch.
func WithSVGScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithFont overrides the theme's proportional font.
func WithFont(family string) SVGOption { return func(r *svgRenderer) { r.font = family } }

// WithImageHref links images through fn instead of embedding them as data
// URIs. The preview server uses this to keep pages small.
func WithImageHref(fn func(*assets.Image) string) SVGOption {
	return func(r *svgRenderer) { r.imageHref = fn }
}

// RenderSVG renders one slide as a standalone SVG document.
func RenderSVG(d *deck.Deck, s *deck.Slide, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	w, h := d.Canvas.Width*pxPerInch, d.Canvas.Height*pxPerInch

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w*r.scale, h*r.scale)
	fmt.Fprintf(&buf, "  <title>%d. %s</title>\n", s.Number, EscapeXML(s.Title))

	bg := d.Theme.Background
	if s.Background != nil {
		bg = *s.Background
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, bg.Hex())

	for _, e := range s.Elements {
		switch e.Kind {
		case deck.KindShape:
			r.shape(&buf, e)
			r.text(&buf, d.Theme, e.Box, e.Paragraphs, e.Anchor)
		case deck.KindText:
			r.text(&buf, d.Theme, e.Box, e.Paragraphs, e.Anchor)
		case deck.KindTable:
			r.table(&buf, d.Theme, e)
		case deck.KindImage:
			r.image(&buf, e)
		case deck.KindConnector:
			r.connector(&buf, e)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderDeckSVG renders every slide in order.
func RenderDeckSVG(d *deck.Deck, opts ...SVGOption) [][]byte {
	pages := make([][]byte, len(d.Slides))
	for i, s := range d.Slides {
		pages[i] = RenderSVG(d, s, opts...)
	}
	return pages
}

func (r *svgRenderer) shape(buf *bytes.Buffer, e deck.Element) {
	x, y, w, h := px(e.Box)

	fill := `fill="none"`
	if e.Fill != nil {
		fill = fmt.Sprintf(`fill="%s"`, e.Fill.Hex())
		if e.Transparency > 0 {
			fill += fmt.Sprintf(` fill-opacity="%.2f"`, opacity(e.Transparency))
		}
	}
	stroke := ""
	if e.Line != nil {
		stroke = fmt.Sprintf(` stroke="%s" stroke-width="1.5"`, e.Line.Hex())
	}

	switch e.Shape {
	case deck.Oval:
		fmt.Fprintf(buf, `  <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" %s%s/>`+"\n",
			x+w/2, y+h/2, w/2, h/2, fill, stroke)
		return
	case deck.Hexagon, deck.Pentagon, deck.Chevron:
		fmt.Fprintf(buf, `  <polygon points="%s" %s%s/>`+"\n", pointsAttr(outline(e.Shape, x, y, w, h)), fill, stroke)
		return
	}

	rx := 0.0
	if e.Shape == deck.RoundedRect {
		rx = cornerRadius(w, h)
	}
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" %s%s/>`+"\n",
		x, y, w, h, rx, fill, stroke)
}

func (r *svgRenderer) connector(buf *bytes.Buffer, e deck.Element) {
	c := e.Connector
	if c == nil || e.Line == nil {
		return
	}
	col := e.Line.Hex()
	sw := strokeWidth(c.Width, pxPerInch)
	x1, y1 := c.X1*pxPerInch, c.Y1*pxPerInch
	x2, y2 := c.X2*pxPerInch, c.Y2*pxPerInch

	var head []point
	if c.Arrow {
		head, x2, y2 = arrowHead(x1, y1, x2, y2, sw, pxPerInch)
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x1, y1, x2, y2, col, sw)
	if head != nil {
		fmt.Fprintf(buf, `  <polygon points="%s" fill="%s"/>`+"\n", pointsAttr(head), col)
	}
}

func (r *svgRenderer) text(buf *bytes.Buffer, th deck.Theme, box layout.Box, paras []deck.Paragraph, anchor deck.Anchor) {
	for _, ln := range layoutText(box, paras, anchor, pxPerInch, estimateWidth) {
		if ln.Text == "" {
			continue
		}
		p := ln.Para
		attrs := fmt.Sprintf(`font-family="%s" font-size="%.1f" fill="%s"`,
			EscapeXML(fonts.CSSFamily(fontFamily(th, r.font, p.Mono), p.Mono)), ln.Size, p.Color.Hex())
		if p.Bold {
			attrs += ` font-weight="bold"`
		}
		switch p.Align {
		case deck.AlignCenter:
			attrs += ` text-anchor="middle"`
		case deck.AlignRight:
			attrs += ` text-anchor="end"`
		}
		if p.Mono {
			attrs += ` xml:space="preserve"`
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" %s>%s</text>`+"\n", ln.X, ln.Baseline, attrs, EscapeXML(ln.Text))
	}
}

func (r *svgRenderer) table(buf *bytes.Buffer, th deck.Theme, e deck.Element) {
	if e.Table == nil {
		return
	}
	fmt.Fprintf(buf, "  <g class=\"table\">\n")
	for _, c := range tableCells(e.Table, e.Box) {
		x, y, w, h := px(c.Box)
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			x, y, w, h, c.Fill.Hex(), tableBorder)
		r.text(buf, th, c.Box, []deck.Paragraph{c.Para}, deck.AnchorMiddle)
	}
	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) image(buf *bytes.Buffer, e deck.Element) {
	img := e.Image
	if img == nil {
		return
	}
	var href string
	switch {
	case r.imageHref != nil:
		href = r.imageHref(img)
	case len(img.Bytes()) > 0:
		href = "data:" + img.MIME() + ";base64," + base64.StdEncoding.EncodeToString(img.Bytes())
	default:
		return
	}

	x, y, w, h := px(e.Box)
	op := ""
	if e.Transparency > 0 {
		op = fmt.Sprintf(` opacity="%.2f"`, opacity(e.Transparency))
	}
	fmt.Fprintf(buf, `  <image x="%.1f" y="%.1f" width="%.1f" height="%.1f" preserveAspectRatio="xMidYMid meet"%s xlink:href="%s"/>`+"\n",
		x, y, w, h, op, EscapeXML(href))
}

func px(b layout.Box) (x, y, w, h float64) {
	return b.X * pxPerInch, b.Y * pxPerInch, b.W * pxPerInch, b.H * pxPerInch
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
