package systems

import (
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/systems/factory"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateRocks retires rocks that have left the screen, knocks away rocks the
// fist touches and moves the rest.
func UpdateRocks(e *ecs.ECS) {
	game := GetGame(e)
	vc := cfg.For(game.Variant)
	space := getSpace(e)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	var player *components.PlayerData
	if playerEntry, ok := tags.Player.First(e.World); ok {
		player = components.Player.Get(playerEntry)
	}

	forEachActive(e, func(entry *donburi.Entry, p *components.ProjectileData) {
		if gamemath.OutOfBounds(p.Position, p.Velocity, w, h) {
			factory.Deactivate(space, entry)
			return
		}

		if player != nil && player.Punch && !p.Punched &&
			gamemath.CircleTriangleEdges(p.Position, vc.Size, player.Fist) {
			p.Velocity = gamemath.Velocity(
				gamemath.DegToRad(player.Rotation),
				vc.Speed*cfg.Player.PunchSpeedFactor,
			)
			p.Punched = true
			game.Score++
		}

		move(vc, entry, p)
	})
}

// UpdateDeathSquares drops every active square by its fall speed and retires
// squares that have fallen past the bottom edge.
func UpdateDeathSquares(e *ecs.ECS) {
	vc := cfg.For(GetGame(e).Variant)
	space := getSpace(e)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	forEachActive(e, func(entry *donburi.Entry, p *components.ProjectileData) {
		if gamemath.OutOfBounds(p.Position, p.Velocity, w, h) {
			factory.Deactivate(space, entry)
			return
		}
		move(vc, entry, p)
	})
}

func move(vc cfg.VariantConfig, entry *donburi.Entry, p *components.ProjectileData) {
	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y
	syncProjectileObject(vc, entry, p)
}

// activate claims a free slot and launches it from pos with velocity vel.
func activate(space *resolv.Space, vc cfg.VariantConfig, entry *donburi.Entry, pos, vel math.Vec2) {
	p := components.Projectile.Get(entry)
	p.Position = pos
	p.Velocity = vel
	p.Active = true
	p.Punched = false

	obj := components.Object.Get(entry)
	r := factory.ProjectileRect(vc, p)
	obj.X, obj.Y = r.X, r.Y
	space.Add(obj.Object)
}

func syncProjectileObject(vc cfg.VariantConfig, entry *donburi.Entry, p *components.ProjectileData) {
	obj := components.Object.Get(entry)
	r := factory.ProjectileRect(vc, p)
	obj.X, obj.Y = r.X, r.Y
	obj.Update()
}

func getSpace(e *ecs.ECS) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(e.World))
}
