package systems

import (
	"image/color"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spriteDrawOp = &ebiten.DrawImageOptions{}

// DrawProjectiles draws every active projectile in the variant's shape.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game.Over {
		return
	}
	vc := cfg.For(game.Variant)

	forEachActive(e, func(_ *donburi.Entry, p *components.ProjectileData) {
		x, y := float32(p.Position.X), float32(p.Position.Y)
		if vc.Shape == cfg.ShapeCircle {
			vector.FillCircle(screen, x, y, float32(vc.Size), vc.Color, true)
			return
		}
		vector.FillRect(screen, x, y, float32(vc.Size), float32(vc.Size), vc.Color, false)
	})
}

// DrawPlayer draws the sprite scaled to the player's box and centred on its
// position, turned to its facing in the combat game.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game.Over {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(playerEntry)
	if sprite.Image == nil {
		return
	}
	player := components.Player.Get(playerEntry)

	b := sprite.Image.Bounds()
	spriteDrawOp.GeoM.Reset()
	spriteDrawOp.GeoM.Scale(sprite.Width/float64(b.Dx()), sprite.Height/float64(b.Dy()))
	spriteDrawOp.GeoM.Translate(-sprite.Width/2, -sprite.Height/2)
	if cfg.For(game.Variant).Aim {
		spriteDrawOp.GeoM.Rotate(gamemath.DegToRad(player.Rotation))
	}
	spriteDrawOp.GeoM.Translate(player.Position.X, player.Position.Y)
	spriteDrawOp.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, spriteDrawOp)
}

// DrawFist fills the punch triangle while a punch is live.
func DrawFist(e *ecs.ECS, screen *ebiten.Image) {
	if GetGame(e).Over {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Punch {
		return
	}

	fillTriangle(screen, player.Fist, cfg.Red)
}

func fillTriangle(screen *ebiten.Image, t gamemath.Triangle, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(t.A.X), float32(t.A.Y))
	path.LineTo(float32(t.B.X), float32(t.B.Y))
	path.LineTo(float32(t.C.X), float32(t.C.Y))
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}
