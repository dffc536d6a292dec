package systems

import (
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetGame returns the round state. The arena must have been created.
func GetGame(e *ecs.ECS) *components.GameData {
	return components.Game.Get(components.Game.MustFirst(e.World))
}

// UpdatePause toggles pause on the pause action's press edge. Has no effect
// once the round is over.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	game := GetGame(e)
	if game.Over {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionPause).JustPressed {
		game.Paused = !game.Paused
	}
}

// UpdateGameOver restarts the round on the restart action's press edge.
// Must run AFTER UpdatePause and BEFORE the gameplay systems, so a round that
// ends this frame shows its game over screen until a later press.
func UpdateGameOver(e *ecs.ECS) {
	game := GetGame(e)
	if !game.Over {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionRestart).JustPressed {
		factory.ResetGame(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when
// the round is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if game := GetGame(e); game.Paused || game.Over {
			return
		}
		system(e)
	}
}

// GameplaySystems returns the per-frame simulation for a variant, in order,
// already wrapped with WithGameplayChecks.
func GameplaySystems(variant cfg.Variant) []ecs.System {
	vc := cfg.For(variant)

	systems := []ecs.System{UpdateLoseCondition, UpdatePlayer}
	if vc.Punch {
		systems = append(systems, UpdatePunch)
	}
	if vc.Shape == cfg.ShapeCircle {
		systems = append(systems, UpdateRocks)
	} else {
		systems = append(systems, UpdateDeathSquares)
	}
	systems = append(systems, UpdateSpawner, UpdateFrameCounter, UpdateHUD)

	for i, s := range systems {
		systems[i] = WithGameplayChecks(s)
	}
	return systems
}

// forEachSlot visits every pool slot in index order.
func forEachSlot(e *ecs.ECS, fn func(entry *donburi.Entry, p *components.ProjectileData)) {
	pool := components.Pool.Get(components.Pool.MustFirst(e.World))
	for _, ent := range pool.Slots {
		entry := e.World.Entry(ent)
		fn(entry, components.Projectile.Get(entry))
	}
}

// forEachActive visits every active projectile in slot order.
func forEachActive(e *ecs.ECS, fn func(entry *donburi.Entry, p *components.ProjectileData)) {
	forEachSlot(e, func(entry *donburi.Entry, p *components.ProjectileData) {
		if p.Active {
			fn(entry, p)
		}
	})
}
