package factory

import (
	"math/rand"

	"github.com/automoto/unicorn-defense/archetypes"
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds everything a round needs: the collision space, the game
// state, the player and the projectile pool, then resets them to the start
// of a round.
func CreateArena(ecs *ecs.ECS, variant cfg.Variant, rng *rand.Rand, sprite *ebiten.Image) *donburi.Entry {
	vc := cfg.For(variant)

	spaceEntry := CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.C.CellSize, cfg.C.CellSize)
	space := components.Space.Get(spaceEntry)

	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		Variant: variant,
		Rand:    rng,
	})
	components.Pool.SetValue(game, components.PoolData{
		Slots: CreatePool(ecs, vc),
	})

	CreatePlayer(ecs, space, sprite)
	ResetGame(ecs)

	return game
}

// ResetGame zeroes the round state, recentres the player and empties the
// pool. Used for both the first round and every restart.
func ResetGame(ecs *ecs.ECS) {
	gameEntry := components.Game.MustFirst(ecs.World)
	game := components.Game.Get(gameEntry)
	vc := cfg.For(game.Variant)

	*game = components.GameData{
		Variant:       game.Variant,
		SpawnRate:     vc.SpawnRate,
		LosingEnabled: vc.LosingEnabled,
		Rand:          game.Rand,
	}

	components.HUD.SetValue(gameEntry, components.HUDData{Scale: 1})

	if player, ok := components.Player.First(ecs.World); ok {
		ResetPlayer(player)
	}

	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	for _, e := range components.Pool.Get(gameEntry).Slots {
		Deactivate(space, ecs.World.Entry(e))
	}
}
