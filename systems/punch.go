package systems

import (
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePunch expires a finished punch, starts a new one on the punch press
// edge and keeps the fist hitbox on the player while a punch is live.
// A press while a punch is live is ignored.
func UpdatePunch(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	frame := GetGame(e).Frame

	if player.Punch && player.PunchFrame+cfg.Player.PunchFrames <= frame {
		player.Punch = false
	}

	if !player.Punch && GetAction(getOrCreateInput(e), cfg.ActionPunch).JustPressed {
		player.Punch = true
		player.PunchFrame = frame
	}

	if player.Punch {
		player.Fist = FistHitbox(player.Position, player.Rotation)
	}
}

// FistHitbox is the punch triangle for a player centred on pos facing
// rotation degrees. Its tip sits half a body in front of the centre and it
// fans out forward.
func FistHitbox(pos math.Vec2, rotation float64) gamemath.Triangle {
	w, h := cfg.Player.Width, cfg.Player.Height
	reach := w * cfg.Player.FistReach

	a := math.Vec2{X: pos.X + w/2, Y: pos.Y}
	fist := gamemath.Triangle{
		A: a,
		B: math.Vec2{X: a.X + reach, Y: a.Y + h},
		C: math.Vec2{X: a.X + reach, Y: a.Y - h},
	}
	return gamemath.RotateTriangleAround(fist, pos, gamemath.DegToRad(rotation))
}
