package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Centered returns the w x h rectangle whose centre is c.
func Centered(c dmath.Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// RectsOverlap reports whether a and b share interior area. Rectangles that
// only touch along an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CircleRect reports whether the circle at c with radius r touches rect.
func CircleRect(c dmath.Vec2, r float64, rect Rect) bool {
	halfW, halfH := rect.W/2, rect.H/2
	dx := math.Abs(c.X - (rect.X + halfW))
	dy := math.Abs(c.Y - (rect.Y + halfH))

	if dx > halfW+r || dy > halfH+r {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cx, cy := dx-halfW, dy-halfH
	return cx*cx+cy*cy <= r*r
}

// CircleSegment reports whether the circle at c with radius r touches the
// segment ab.
func CircleSegment(c dmath.Vec2, r float64, a, b dmath.Vec2) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby

	t := 0.0
	if lenSq > 0 {
		t = ((c.X-a.X)*abx + (c.Y-a.Y)*aby) / lenSq
		t = math.Max(0, math.Min(1, t))
	}

	px := a.X + t*abx - c.X
	py := a.Y + t*aby - c.Y
	return px*px+py*py <= r*r
}

// CircleTriangleEdges reports whether the circle touches any side of t.
func CircleTriangleEdges(c dmath.Vec2, r float64, t Triangle) bool {
	for _, e := range t.Edges() {
		if CircleSegment(c, r, e[0], e[1]) {
			return true
		}
	}
	return false
}
