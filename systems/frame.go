package systems

import (
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrameCounter advances the round clock and, when the variant ramps,
// shortens the spawn period every RampInterval frames.
func UpdateFrameCounter(e *ecs.ECS) {
	game := GetGame(e)
	game.Frame++

	vc := cfg.For(game.Variant)
	if vc.RampInterval > 0 && game.Frame%vc.RampInterval == 0 {
		game.SpawnRate = gamemath.RampSpawnRate(game.SpawnRate, vc.SpawnRateMin)
	}
}
