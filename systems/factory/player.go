package factory

import (
	"github.com/automoto/unicorn-defense/archetypes"
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// playerObjectPad grows the player's collision object past its box on every
// side. resolv assigns cells from X+W-1, so without it an overlap of under a
// pixel across a cell boundary never reaches the exact test.
const playerObjectPad = 1

// CreatePlayer spawns the unicorn centred on the screen and adds its
// collision box to space. sprite may be nil.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, sprite *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width+2*playerObjectPad, cfg.Player.Height+2*playerObjectPad
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Sprite.SetValue(player, components.SpriteData{
		Image:  sprite,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})

	ResetPlayer(player)
	space.Add(obj)

	return player
}

// ResetPlayer puts the player back at the screen centre, facing right, with
// no punch in progress.
func ResetPlayer(player *donburi.Entry) {
	centre := math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2}
	components.Player.SetValue(player, components.PlayerData{
		Position: centre,
	})
	SyncPlayerObject(player)
}

// SyncPlayerObject moves the player's collision object to match its position.
func SyncPlayerObject(player *donburi.Entry) {
	p := components.Player.Get(player)
	obj := components.Object.Get(player)
	box := gamemath.Centered(p.Position, cfg.Player.Width, cfg.Player.Height)
	obj.X, obj.Y = box.X-playerObjectPad, box.Y-playerObjectPad
	obj.Update()
}
