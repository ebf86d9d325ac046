package sink

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/stackdeck/pkg/deck"
)

type point struct{ X, Y float64 }

// outline returns the corners of a polygonal shape filling the box
// (x, y, w, h). Rectangles and ovals have native primitives in both sinks
// and return nil.
func outline(shape deck.Shape, x, y, w, h float64) []point {
	d := min(w, h)
	switch shape {
	case deck.Hexagon:
		d /= 4
		return []point{{x + d, y}, {x + w - d, y}, {x + w, y + h/2}, {x + w - d, y + h}, {x + d, y + h}, {x, y + h/2}}
	case deck.Pentagon:
		d /= 2
		return []point{{x, y}, {x + w - d, y}, {x + w, y + h/2}, {x + w - d, y + h}, {x, y + h}}
	case deck.Chevron:
		d /= 2
		return []point{{x, y}, {x + w - d, y}, {x + w, y + h/2}, {x + w - d, y + h}, {x, y + h}, {x + d, y + h/2}}
	}
	return nil
}

// strokeWidth converts a connector width in points to drawing units, where
// unit is the number of drawing units per inch. Zero means one point.
func strokeWidth(points, unit float64) float64 {
	if points <= 0 {
		points = 1
	}
	return points * unit / 72
}

// arrowHead returns the triangle with its tip at (x2, y2) for a line coming
// from (x1, y1), and the point where the line should stop so its end stays
// hidden under the head. A zero-length line has no head.
func arrowHead(x1, y1, x2, y2, stroke, unit float64) (head []point, endX, endY float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil, x2, y2
	}
	size := min(l, max(0.1*unit, 3*stroke))
	ux, uy := dx/l, dy/l
	bx, by := x2-ux*size, y2-uy*size
	half := size / 2
	head = []point{
		{x2, y2},
		{bx - uy*half, by + ux*half},
		{bx + uy*half, by - ux*half},
	}
	return head, bx, by
}

func pointsAttr(pts []point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
