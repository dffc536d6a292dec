package systems

import (
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLoseCondition ends the round when any active projectile touches the
// player. With losing disabled the contact is only counted.
func UpdateLoseCondition(e *ecs.ECS) {
	game := GetGame(e)
	vc := cfg.For(game.Variant)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	box := playerBox(player)

	hit := false
	for _, entry := range contactCandidates(e, playerEntry) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			continue
		}
		if touchesPlayer(vc, p, box) {
			hit = true
			break
		}
	}
	if !hit {
		return
	}

	if game.LosingEnabled {
		game.Over = true
		return
	}
	game.Hits++
}

func playerBox(p *components.PlayerData) gamemath.Rect {
	return gamemath.Centered(p.Position, cfg.Player.Width, cfg.Player.Height)
}

func touchesPlayer(vc cfg.VariantConfig, p *components.ProjectileData, box gamemath.Rect) bool {
	if vc.Shape == cfg.ShapeCircle {
		return gamemath.CircleRect(p.Position, vc.Size, box)
	}
	return gamemath.RectsOverlap(
		gamemath.Rect{X: p.Position.X, Y: p.Position.Y, W: vc.Size, H: vc.Size},
		box,
	)
}

// contactCandidates returns the projectiles sharing a collision cell with
// the player. When the player has wandered outside the space the cells
// cannot be trusted, so every slot is a candidate.
func contactCandidates(e *ecs.ECS, playerEntry *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(playerEntry)
	if !insideScreen(obj.X, obj.Y, obj.W, obj.H) {
		var all []*donburi.Entry
		forEachActive(e, func(entry *donburi.Entry, _ *components.ProjectileData) {
			all = append(all, entry)
		})
		return all
	}

	collision := obj.Check(0, 0, tags.ResolvProjectile)
	if collision == nil {
		return nil
	}

	candidates := make([]*donburi.Entry, 0, len(collision.Objects))
	for _, o := range collision.Objects {
		if entry, ok := o.Data.(*donburi.Entry); ok {
			candidates = append(candidates, entry)
		}
	}
	return candidates
}

func insideScreen(x, y, w, h float64) bool {
	return x >= 0 && y >= 0 &&
		x+w <= float64(cfg.C.Width) && y+h <= float64(cfg.C.Height)
}
