package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/layout"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
)

func ExampleRenderSVG() {
	d := deck.New("demo", "Demo", deck.Plain)
	s := deck.NewSlide(1, "content", "Hello")
	s.AddText(layout.Box{X: 1, Y: 1, W: 6, H: 1}, deck.Paragraph{Text: "Hello, slides", Size: 24, Color: deck.Black})
	d.Append(s)

	svg := string(sink.RenderSVG(d, s, sink.WithSVGScale(0.5)))
	fmt.Println(strings.Contains(svg, `width="768"`))
	fmt.Println(strings.Count(svg, "<text "))
	// Output:
	// true
	// 1
}

func ExampleEscapeXML() {
	fmt.Println(sink.EscapeXML(`V3 <-> V4 & "more"`))
	// Output: V3 &lt;-&gt; V4 &amp; &#34;more&#34;
}
