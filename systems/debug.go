package systems

import (
	"image/color"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box in the space and the fist edges.
// The player box turns red while a projectile is touching it.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	game := GetGame(ecs)
	touching := false
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		vc := cfg.For(game.Variant)
		box := playerBox(player)
		for _, entry := range contactCandidates(ecs, playerEntry) {
			if p := components.Projectile.Get(entry); p.Active && touchesPlayer(vc, p, box) {
				touching = true
				break
			}
		}

		if player.Punch {
			for _, edge := range player.Fist.Edges() {
				vector.StrokeLine(screen,
					float32(edge[0].X), float32(edge[0].Y),
					float32(edge[1].X), float32(edge[1].Y),
					2, cfg.Debug.FistColor, false)
			}
		}
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.Debug.RockColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Debug.PlayerColor
			if touching {
				c = cfg.Debug.HitColor
			}
		}
		strokeBox(screen, obj.X, obj.Y, obj.W, obj.H, c)
	}
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
