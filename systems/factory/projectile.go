package factory

import (
	"github.com/automoto/unicorn-defense/archetypes"
	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePool pre-allocates every projectile slot for the variant. Slots start
// inactive and outside the collision space.
func CreatePool(ecs *ecs.ECS, vc cfg.VariantConfig) []donburi.Entity {
	slots := make([]donburi.Entity, vc.PoolSize)
	w, h := ProjectileBounds(vc)
	for i := range slots {
		p := archetypes.Projectile.Spawn(ecs)

		obj := resolv.NewObject(0, 0, w, h, tags.ResolvProjectile)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = p
		components.Object.SetValue(p, components.ObjectData{Object: obj})
		components.Projectile.SetValue(p, components.ProjectileData{Slot: i})

		slots[i] = p.Entity()
	}
	return slots
}

// ProjectileBounds returns the collision box size of one projectile.
func ProjectileBounds(vc cfg.VariantConfig) (w, h float64) {
	if vc.Shape == cfg.ShapeCircle {
		return vc.Size * 2, vc.Size * 2
	}
	return vc.Size, vc.Size
}

// ProjectileRect is the projectile's bounding box at its current position.
func ProjectileRect(vc cfg.VariantConfig, p *components.ProjectileData) gamemath.Rect {
	w, h := ProjectileBounds(vc)
	if vc.Shape == cfg.ShapeCircle {
		return gamemath.Rect{X: p.Position.X - vc.Size, Y: p.Position.Y - vc.Size, W: w, H: h}
	}
	return gamemath.Rect{X: p.Position.X, Y: p.Position.Y, W: w, H: h}
}

// Deactivate returns a slot to the pool.
func Deactivate(space *resolv.Space, entry *donburi.Entry) {
	p := components.Projectile.Get(entry)
	if p.Active {
		space.Remove(components.Object.Get(entry).Object)
	}
	p.Active = false
	p.Punched = false
}
