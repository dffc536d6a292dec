package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// OffscreenSpawn walks back from point, away from target, to the nearest
// screen edge and then margin further. It returns the spawn position and the
// unit direction from point toward target.
//
// A zero-length direction aims at the screen centre instead, and +X if point
// is the centre too.
func OffscreenSpawn(point, target dmath.Vec2, width, height, margin float64) (spawn, dir dmath.Vec2) {
	dir, ok := unit(target.X-point.X, target.Y-point.Y)
	if !ok {
		dir, ok = unit(width/2-point.X, height/2-point.Y)
	}
	if !ok {
		dir = dmath.Vec2{X: 1}
	}

	back := math.Min(
		edgeDistance(point.X, -dir.X, width),
		edgeDistance(point.Y, -dir.Y, height),
	) + margin

	spawn = dmath.Vec2{
		X: point.X - dir.X*back,
		Y: point.Y - dir.Y*back,
	}
	return spawn, dir
}

// edgeDistance is how far along a 1D step d you can travel from p before
// reaching 0 or size.
func edgeDistance(p, d, size float64) float64 {
	switch {
	case d > 0:
		return math.Max(0, size-p) / d
	case d < 0:
		return math.Max(0, p) / -d
	}
	return math.Inf(1)
}

func unit(x, y float64) (dmath.Vec2, bool) {
	l := math.Hypot(x, y)
	if l == 0 {
		return dmath.Vec2{}, false
	}
	return dmath.Vec2{X: x / l, Y: y / l}, true
}

// Velocity returns speed * (cos, sin)(angle).
func Velocity(angle, speed float64) dmath.Vec2 {
	sin, cos := math.Sincos(angle)
	return dmath.Vec2{X: cos * speed, Y: sin * speed}
}

// OutOfBounds reports whether p has crossed the screen edge it is moving
// toward. Positions outside the screen on the side it is coming from are
// still in bounds.
func OutOfBounds(p, v dmath.Vec2, width, height float64) bool {
	return (v.Y > 0 && p.Y > height) || (v.Y < 0 && p.Y < 0) ||
		(v.X > 0 && p.X > width) || (v.X < 0 && p.X < 0)
}
