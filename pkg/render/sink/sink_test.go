package sink

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/assets"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
)

func testImage(t *testing.T) *assets.Image {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for x := range 40 {
		for y := range 20 {
			src.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	img, err := assets.Decode("logo.png", buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d := deck.New("test", "Test", deck.KETI)

	s := deck.NewSlide(1, "content", "Agenda <draft>")
	s.AddShape(deck.Rect, layout.Box{X: 1, Y: 1, W: 2, H: 2}, deck.RGB(255, 0, 0))
	s.AddText(layout.Box{X: 1, Y: 4, W: 10, H: 1}, deck.Paragraph{Text: "R&D <core>", Size: 20, Color: deck.Black})
	s.Add(deck.Element{
		Kind: deck.KindTable,
		Box:  layout.Box{X: 1, Y: 5, W: 8, H: 1},
		Table: &deck.Table{
			Rows:       [][]string{{"Item", "V4"}, {"Domains", "6"}},
			HeaderFill: deck.KETI.Header,
			HeaderText: deck.White,
			BodyText:   deck.Black,
			HeaderSize: 16,
			BodySize:   14,
		},
	})
	d.Append(s)

	s2 := deck.NewSlide(2, "image", "Picture")
	s2.Add(deck.Element{Kind: deck.KindImage, Box: layout.Box{X: 8, Y: 1, W: 4, H: 2}, Image: testImage(t)})
	s2.Add(deck.Element{Kind: deck.KindImage, Box: layout.Box{X: 1, Y: 1, W: 4, H: 2}})
	d.Append(s2)
	return d
}

func TestRenderSVG(t *testing.T) {
	d := testDeck(t)
	svg := string(RenderSVG(d, d.Slides[0]))

	for _, want := range []string{
		`viewBox="0 0 1536.0 864.0" width="1536" height="864"`,
		`<title>1. Agenda &lt;draft&gt;</title>`,
		`R&amp;D &lt;core&gt;`,
		`fill="#ff0000"`,
		`font-family="&#39;Malgun Gothic&#39;, sans-serif"`,
		`<g class="table">`,
		`font-weight="bold"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(svg, "R&D") {
		t.Error("unescaped text in SVG")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	d := testDeck(t)

	svg := string(RenderSVG(d, d.Slides[0], WithSVGScale(0.5), WithFont("Noto Sans")))
	if !strings.Contains(svg, `width="768" height="432"`) {
		t.Error("scale not applied to width/height")
	}
	if !strings.Contains(svg, "Noto Sans") {
		t.Error("font override not applied")
	}
}

func TestRenderSVGImages(t *testing.T) {
	d := testDeck(t)

	svg := string(RenderSVG(d, d.Slides[1]))
	if n := strings.Count(svg, "<image "); n != 1 {
		t.Errorf("image count = %d, want 1 (nil image skipped)", n)
	}
	if !strings.Contains(svg, "data:image/png;base64,") {
		t.Error("image not embedded")
	}

	linked := string(RenderSVG(d, d.Slides[1], WithImageHref(func(img *assets.Image) string {
		return "/images/" + img.Name
	})))
	if !strings.Contains(linked, `xlink:href="/images/logo.png"`) || strings.Contains(linked, "base64") {
		t.Error("WithImageHref not used")
	}
}

func TestRenderDeckSVG(t *testing.T) {
	d := testDeck(t)
	pages := RenderDeckSVG(d)
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(pages))
	}
	if !bytes.Contains(pages[1], []byte("<title>2. Picture</title>")) {
		t.Error("pages out of order")
	}
}

func TestRenderPNG(t *testing.T) {
	d := testDeck(t)
	data, err := RenderPNG(d, d.Slides[0], WithScale(0.25))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if b := img.Bounds(); b.Dx() != 384 || b.Dy() != 216 {
		t.Fatalf("size = %dx%d, want 384x216", b.Dx(), b.Dy())
	}
	// 24 px per inch: the red square spans 24..72.
	if r, g, b, _ := img.At(48, 48).RGBA(); r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("shape pixel = %d,%d,%d; want red", r>>8, g>>8, b>>8)
	}
	if r, g, b, _ := img.At(5, 5).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background pixel = %d,%d,%d; want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGImage(t *testing.T) {
	d := testDeck(t)
	data, err := RenderPNG(d, d.Slides[1], WithScale(0.25))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	// Image box centre (10in, 2in) is blue.
	if r, g, b, _ := img.At(240, 48).RGBA(); r>>8 != 0 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("image pixel = %d,%d,%d; want blue", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGTransparentImage(t *testing.T) {
	d := deck.New("t", "", deck.Plain)
	s := deck.NewSlide(1, "title", "")
	s.Add(deck.Element{Kind: deck.KindImage, Box: layout.Box{X: 0, Y: 0, W: 16, H: 8}, Image: testImage(t), Transparency: 0.5})
	d.Append(s)

	data, err := RenderPNG(d, s, WithScale(0.25))
	if err != nil {
		t.Fatal(err)
	}
	img, _ := png.Decode(bytes.NewReader(data))
	r, _, b, _ := img.At(192, 96).RGBA()
	if r>>8 < 100 || r>>8 > 155 || b>>8 != 255 {
		t.Errorf("blended pixel r=%d b=%d; want half-transparent blue over white", r>>8, b>>8)
	}
}

func TestRenderJSON(t *testing.T) {
	d := testDeck(t)
	data, err := RenderJSON(d, WithJSONBuildID("build-1"), WithJSONSource("test.toml"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.BuildID != "build-1" || out.Source != "test.toml" || out.Theme != "keti" {
		t.Errorf("header = %+v", out)
	}
	if out.Width != 16 || out.Height != 9 {
		t.Errorf("canvas = %vx%v", out.Width, out.Height)
	}
	if len(out.Slides) != 2 {
		t.Fatalf("slides = %d, want 2", len(out.Slides))
	}
	els := out.Slides[0].Elements
	if len(els) != 3 || els[1].Text != "R&D <core>" || els[0].Fill != "#ff0000" {
		t.Errorf("elements = %+v", els)
	}
	if len(els[2].Rows) != 2 {
		t.Errorf("table rows = %v", els[2].Rows)
	}
	if out.Slides[1].Elements[0].Image != "logo.png" {
		t.Errorf("image name = %q", out.Slides[1].Elements[0].Image)
	}
	if out.Stats.Tables != 1 || out.Stats.Images != 2 {
		t.Errorf("stats = %+v", out.Stats)
	}
}

func shapesDeck() *deck.Deck {
	d := deck.New("shapes", "Shapes", deck.Plain)
	s := deck.NewSlide(1, "flow", "")
	s.AddShape(deck.Oval, layout.Box{X: 1, Y: 1, W: 2, H: 2}, deck.RGB(255, 0, 0))
	s.AddShape(deck.Chevron, layout.Box{X: 4, Y: 1, W: 4, H: 2}, deck.RGB(0, 0, 255))
	s.AddShape(deck.Hexagon, layout.Box{X: 9, Y: 1, W: 3, H: 2}, deck.RGB(0, 255, 0))
	s.AddShape(deck.Pentagon, layout.Box{X: 12.5, Y: 1, W: 3, H: 2}, deck.RGB(0, 255, 0))
	s.AddConnector(deck.Connector{X1: 2, Y1: 4, X2: 2, Y2: 8, Width: 12, Arrow: true}, deck.Black)
	d.Append(s)
	return d
}

func TestRenderSVGShapes(t *testing.T) {
	d := shapesDeck()
	svg := string(RenderSVG(d, d.Slides[0]))

	if !strings.Contains(svg, `<ellipse cx="192.0" cy="192.0" rx="96.0" ry="96.0" fill="#ff0000"/>`) {
		t.Error("oval not drawn as ellipse")
	}
	// Chevron, hexagon, pentagon and the arrowhead.
	if n := strings.Count(svg, "<polygon "); n != 4 {
		t.Errorf("polygons = %d, want 4", n)
	}
	if !strings.Contains(svg, `<polygon points="384.0,96.0 672.0,96.0 768.0,192.0 672.0,288.0 384.0,288.0 480.0,192.0" fill="#0000ff"/>`) {
		t.Error("chevron outline wrong")
	}
	// 12pt is 16px; the line stops at the base of a 48px head.
	if !strings.Contains(svg, `<line x1="192.0" y1="384.0" x2="192.0" y2="720.0" stroke="#000000" stroke-width="16.0"/>`) {
		t.Errorf("connector line wrong:\n%s", svg)
	}
}

func TestRenderPNGShapes(t *testing.T) {
	d := shapesDeck()
	data, err := RenderPNG(d, d.Slides[0], WithScale(0.25))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	rgb := func(x, y int) [3]uint32 {
		r, g, b, _ := img.At(x, y).RGBA()
		return [3]uint32{r >> 8, g >> 8, b >> 8}
	}
	white := [3]uint32{255, 255, 255}
	tests := []struct {
		name string
		x, y int
		want [3]uint32
	}{
		{"oval centre", 48, 48, [3]uint32{255, 0, 0}},
		{"oval corner is empty", 25, 25, white},
		{"chevron body", 104, 26, [3]uint32{0, 0, 255}},
		{"chevron notch is empty", 100, 48, white},
		{"connector line", 48, 120, [3]uint32{0, 0, 0}},
		{"arrowhead", 48, 186, [3]uint32{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := rgb(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderJSONConnector(t *testing.T) {
	data, err := RenderJSON(shapesDeck())
	if err != nil {
		t.Fatal(err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	els := out.Slides[0].Elements
	last := els[len(els)-1]
	if last.Kind != "connector" || last.Connector == nil || !last.Connector.Arrow || last.Connector.Y2 != 8 {
		t.Errorf("connector = %+v", last)
	}
	if els[1].Shape != "chevron" {
		t.Errorf("shape = %q, want chevron", els[1].Shape)
	}
	if out.Stats.Connectors != 1 || out.Stats.Shapes != 4 {
		t.Errorf("stats = %+v", out.Stats)
	}
}

func TestArrowHead(t *testing.T) {
	head, ex, ey := arrowHead(0, 0, 0, 100, 2, 96)
	if len(head) != 3 || head[0] != (point{0, 100}) {
		t.Fatalf("head = %v", head)
	}
	// max(0.1in, 3*stroke) = 9.6px
	if !near(ey, 90.4) || ex != 0 {
		t.Errorf("line end = (%v, %v), want (0, 90.4)", ex, ey)
	}
	if !near(head[1].X, -4.8) || !near(head[2].X, 4.8) {
		t.Errorf("base = %v, %v", head[1], head[2])
	}

	if h, _, _ := arrowHead(5, 5, 5, 5, 2, 96); h != nil {
		t.Errorf("zero-length head = %v, want nil", h)
	}
}

func byteWidth(s string) float64 { return float64(len(s)) }

func byteMeasure(_ deck.Paragraph, _ float64, s string) float64 { return byteWidth(s) }

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"words", "aaaa bbbb cccc", 10, []string{"aaaa bbbb", "cccc"}},
		{"long word", "abcdefghijklm", 5, []string{"abcde", "fghij", "klm"}},
		{"zero width", "anything goes", 0, []string{"anything goes"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapLine(tt.text, tt.width, byteWidth); !slices.Equal(got, tt.want) {
				t.Errorf("wrapLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapMono(t *testing.T) {
	p := deck.Paragraph{Text: "func main() {\n    run()\n}", Mono: true}
	got := wrap(p, 3, byteWidth)
	want := []string{"func main() {", "    run()", "}"}
	if !slices.Equal(got, want) {
		t.Errorf("wrap(mono) = %q, want %q", got, want)
	}
}

func TestFitRunesCJK(t *testing.T) {
	s := "표준화"
	n := fitRunes(s, 2, func(s string) float64 { return float64(len([]rune(s))) })
	if s[:n] != "표준" {
		t.Errorf("fitRunes = %q", s[:n])
	}
	if n := fitRunes(s, 0, byteWidth); s[:n] != "표" {
		t.Errorf("fitRunes always takes one rune, got %q", s[:n])
	}
}

func TestLayoutText(t *testing.T) {
	box := layout.Box{X: 1, Y: 1, W: 4, H: 2}
	paras := []deck.Paragraph{
		{Text: "a", Size: 72},
		{Text: "b", Size: 72, Align: deck.AlignCenter},
	}

	top := layoutText(box, paras, deck.AnchorTop, 72, byteMeasure)
	if len(top) != 2 {
		t.Fatalf("lines = %d", len(top))
	}
	// 72 px per inch and 72 pt: size 72 px, line 86.4 px.
	if !near(top[0].X, 1.1*72) || !near(top[0].Baseline, 1.05*72+0.9*72) {
		t.Errorf("first line at %v,%v", top[0].X, top[0].Baseline)
	}
	if !near(top[1].X, 1.1*72+3.8*72/2) || !near(top[1].Baseline-top[0].Baseline, 86.4) {
		t.Errorf("second line at %v,%v", top[1].X, top[1].Baseline)
	}

	mid := layoutText(box, paras, deck.AnchorMiddle, 72, byteMeasure)
	shift := (1.9*72 - 2*86.4) / 2
	if !near(mid[0].Baseline-top[0].Baseline, shift) {
		t.Errorf("middle shift = %v, want %v", mid[0].Baseline-top[0].Baseline, shift)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestTableCells(t *testing.T) {
	tbl := &deck.Table{
		Rows:       [][]string{{"a", "b", "c"}, {"d"}},
		HeaderFill: deck.RGB(1, 2, 3),
		HeaderSize: 16,
		BodySize:   14,
	}
	cells := tableCells(tbl, layout.Box{X: 0, Y: 0, W: 6, H: 2})
	if len(cells) != 6 {
		t.Fatalf("cells = %d, want 6", len(cells))
	}
	if cells[0].Fill != tbl.HeaderFill || !cells[0].Para.Bold || cells[0].Para.Size != 16 {
		t.Errorf("header cell = %+v", cells[0])
	}
	if cells[5].Para.Text != "" || cells[5].Box != (layout.Box{X: 4, Y: 1, W: 2, H: 1}) {
		t.Errorf("padded cell = %+v", cells[5])
	}
	if tableCells(&deck.Table{}, layout.Box{W: 1, H: 1}) != nil {
		t.Error("empty table produced cells")
	}
}
