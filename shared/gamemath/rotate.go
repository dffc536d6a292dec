package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Triangle is three points, in drawing order.
type Triangle struct {
	A, B, C dmath.Vec2
}

// Edges returns the triangle's sides as point pairs: bc, ab, ac.
func (t Triangle) Edges() [3][2]dmath.Vec2 {
	return [3][2]dmath.Vec2{
		{t.B, t.C},
		{t.A, t.B},
		{t.A, t.C},
	}
}

// RotatePointAround rotates point about pivot by angle radians.
func RotatePointAround(point, pivot dmath.Vec2, angle float64) dmath.Vec2 {
	dx := point.X - pivot.X
	dy := point.Y - pivot.Y
	sin, cos := math.Sincos(angle)
	return dmath.Vec2{
		X: dx*cos - dy*sin + pivot.X,
		Y: dx*sin + dy*cos + pivot.Y,
	}
}

// RotateTriangleAround rotates each vertex of t about pivot.
func RotateTriangleAround(t Triangle, pivot dmath.Vec2, angle float64) Triangle {
	return Triangle{
		A: RotatePointAround(t.A, pivot, angle),
		B: RotatePointAround(t.B, pivot, angle),
		C: RotatePointAround(t.C, pivot, angle),
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
