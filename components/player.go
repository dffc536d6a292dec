package components

import (
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Position   math.Vec2 // centre of the bounding rectangle
	Rotation   float64   // facing, in degrees
	Punch      bool
	PunchFrame int // frame the current punch started on
	Fist       gamemath.Triangle
}

var Player = donburi.NewComponentType[PlayerData]()
