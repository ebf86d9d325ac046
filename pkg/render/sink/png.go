package sink

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/fonts"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	font  string
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
// Scale 1 draws at 96 px per inch.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGFont overrides the theme's proportional font.
func WithPNGFont(family string) PNGOption {
	return func(r *pngRenderer) { r.font = family }
}

// RenderPNG rasterises one slide.
func RenderPNG(d *deck.Deck, s *deck.Slide, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 2.0
	}

	k := pxPerInch * r.scale
	w := int(math.Round(d.Canvas.Width * k))
	h := int(math.Round(d.Canvas.Height * k))

	p := &painter{
		dc:    gg.NewContext(w, h),
		k:     k,
		theme: d.Theme,
		font:  r.font,
		faces: map[faceKey]font.Face{},
	}
	defer p.close()

	bg := d.Theme.Background
	if s.Background != nil {
		bg = *s.Background
	}
	p.dc.SetColor(bg)
	p.dc.Clear()

	for _, e := range s.Elements {
		switch e.Kind {
		case deck.KindShape:
			p.shape(e)
			p.text(e.Box, e.Paragraphs, e.Anchor)
		case deck.KindText:
			p.text(e.Box, e.Paragraphs, e.Anchor)
		case deck.KindTable:
			p.table(e)
		case deck.KindImage:
			p.image(e)
		case deck.KindConnector:
			p.connector(e)
		}
	}

	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode slide %d", s.Number)
	}
	return buf.Bytes(), nil
}

// RenderDeckPNG rasterises every slide in order.
func RenderDeckPNG(d *deck.Deck, opts ...PNGOption) ([][]byte, error) {
	pages := make([][]byte, len(d.Slides))
	for i, s := range d.Slides {
		data, err := RenderPNG(d, s, opts...)
		if err != nil {
			return nil, err
		}
		pages[i] = data
	}
	return pages, nil
}

type faceKey struct {
	family string
	style  fonts.Style
	size   float64
}

type painter struct {
	dc    *gg.Context
	k     float64
	theme deck.Theme
	font  string
	faces map[faceKey]font.Face
}

func (p *painter) close() {
	for _, f := range p.faces {
		_ = f.Close()
	}
}

func (p *painter) face(para deck.Paragraph, size float64) font.Face {
	k := faceKey{
		family: fontFamily(p.theme, p.font, para.Mono),
		style:  fonts.Style{Bold: para.Bold, Mono: para.Mono},
		size:   size,
	}
	if f, ok := p.faces[k]; ok {
		return f
	}
	f := fonts.Face(fonts.Resolve(k.family, k.style), size)
	p.faces[k] = f
	return f
}

func (p *painter) measure(para deck.Paragraph, size float64, s string) float64 {
	p.dc.SetFontFace(p.face(para, size))
	w, _ := p.dc.MeasureString(s)
	return w
}

func (p *painter) rect(b layout.Box, rounded bool) {
	x, y, w, h := b.X*p.k, b.Y*p.k, b.W*p.k, b.H*p.k
	if rounded {
		p.dc.DrawRoundedRectangle(x, y, w, h, cornerRadius(w, h))
	} else {
		p.dc.DrawRectangle(x, y, w, h)
	}
}

func (p *painter) polygon(pts []point) {
	for i, pt := range pts {
		if i == 0 {
			p.dc.MoveTo(pt.X, pt.Y)
		} else {
			p.dc.LineTo(pt.X, pt.Y)
		}
	}
	p.dc.ClosePath()
}

func (p *painter) shape(e deck.Element) {
	x, y, w, h := e.Box.X*p.k, e.Box.Y*p.k, e.Box.W*p.k, e.Box.H*p.k
	switch e.Shape {
	case deck.Oval:
		p.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	case deck.Hexagon, deck.Pentagon, deck.Chevron:
		p.polygon(outline(e.Shape, x, y, w, h))
	default:
		p.rect(e.Box, e.Shape == deck.RoundedRect)
	}
	if e.Fill != nil {
		p.dc.SetColor(withAlpha(*e.Fill, opacity(e.Transparency)))
		if e.Line != nil {
			p.dc.FillPreserve()
		} else {
			p.dc.Fill()
		}
	}
	if e.Line != nil {
		p.dc.SetColor(*e.Line)
		p.dc.SetLineWidth(1.5 * p.k / pxPerInch)
		p.dc.Stroke()
	}
	p.dc.ClearPath()
}

func (p *painter) connector(e deck.Element) {
	c := e.Connector
	if c == nil || e.Line == nil {
		return
	}
	sw := strokeWidth(c.Width, p.k)
	x1, y1 := c.X1*p.k, c.Y1*p.k
	x2, y2 := c.X2*p.k, c.Y2*p.k

	var head []point
	if c.Arrow {
		head, x2, y2 = arrowHead(x1, y1, x2, y2, sw, p.k)
	}
	p.dc.SetColor(*e.Line)
	p.dc.SetLineWidth(sw)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
	if head != nil {
		p.polygon(head)
		p.dc.Fill()
	}
}

func (p *painter) text(box layout.Box, paras []deck.Paragraph, anchor deck.Anchor) {
	for _, ln := range layoutText(box, paras, anchor, p.k, p.measure) {
		if ln.Text == "" {
			continue
		}
		ax := 0.0
		switch ln.Para.Align {
		case deck.AlignCenter:
			ax = 0.5
		case deck.AlignRight:
			ax = 1
		}
		p.dc.SetFontFace(p.face(ln.Para, ln.Size))
		p.dc.SetColor(ln.Para.Color)
		p.dc.DrawStringAnchored(ln.Text, ln.X, ln.Baseline, ax, 0)
	}
}

func (p *painter) table(e deck.Element) {
	if e.Table == nil {
		return
	}
	border := color.NRGBA{R: 0xbf, G: 0xbf, B: 0xbf, A: 0xff}
	for _, c := range tableCells(e.Table, e.Box) {
		p.rect(c.Box, false)
		p.dc.SetColor(c.Fill)
		p.dc.FillPreserve()
		p.dc.SetColor(border)
		p.dc.SetLineWidth(p.k / pxPerInch)
		p.dc.Stroke()
		p.text(c.Box, []deck.Paragraph{c.Para}, deck.AnchorMiddle)
	}
}

func (p *painter) image(e deck.Element) {
	img := e.Image
	if img == nil || img.Decoded() == nil {
		return
	}
	bw, bh := int(e.Box.W*p.k), int(e.Box.H*p.k)
	if bw <= 0 || bh <= 0 {
		return
	}
	scaled := img.Scaled(bw, bh)
	sb := scaled.Bounds()
	x := int(e.Box.X*p.k) + (bw-sb.Dx())/2
	y := int(e.Box.Y*p.k) + (bh-sb.Dy())/2

	if e.Transparency <= 0 {
		p.dc.DrawImage(scaled, x, y)
		return
	}
	blended := imaging.Overlay(p.dc.Image(), scaled, image.Pt(x, y), opacity(e.Transparency))
	p.dc = gg.NewContextForImage(blended)
}

func withAlpha(c deck.Color, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}
