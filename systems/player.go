package systems

import (
	"math"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/systems/factory"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player by the movement axes and, in the combat
// game, turns it to face the aim stick.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(e)
	vc := cfg.For(GetGame(e).Variant)
	dz := vc.AxisDeadzone

	if vc.Aim {
		aimX, aimY := input.Axes[cfg.AxisAimX], input.Axes[cfg.AxisAimY]
		if gamemath.PastDeadzone(aimX, dz) && gamemath.PastDeadzone(aimY, dz) {
			player.Rotation = gamemath.RadToDeg(math.Atan2(aimY, aimX))
		}
	}

	player.Position.X += gamemath.ApplyDeadzone(input.Axes[cfg.AxisMoveX], dz) * cfg.Player.Speed
	player.Position.Y += gamemath.ApplyDeadzone(input.Axes[cfg.AxisMoveY], dz) * cfg.Player.Speed

	factory.SyncPlayerObject(playerEntry)
}
