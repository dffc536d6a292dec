package systems

import (
	"math/rand"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateSpawner launches one projectile on every spawn tick, into the first
// free slot. A tick with no free slot is dropped.
func UpdateSpawner(e *ecs.ECS) {
	game := GetGame(e)
	if game.SpawnRate <= 0 || game.Frame%game.SpawnRate != 0 {
		return
	}

	slot := freeSlot(e)
	if slot == nil {
		return
	}

	vc := cfg.For(game.Variant)
	var pos, vel math.Vec2
	if vc.Shape == cfg.ShapeCircle {
		pos, vel = rockLaunch(game.Rand, vc)
	} else {
		pos, vel = squareLaunch(game.Rand, vc)
	}
	activate(getSpace(e), vc, slot, pos, vel)
}

// rockLaunch aims from a random point toward a jittered screen centre and
// backs the start off-screen along that line.
func rockLaunch(r *rand.Rand, vc cfg.VariantConfig) (pos, vel math.Vec2) {
	w, h := cfg.C.Width, cfg.C.Height
	point := math.Vec2{X: float64(randRange(r, 0, w)), Y: float64(randRange(r, 0, h))}

	box := w / 4
	target := math.Vec2{
		X: float64(w/2 + randRange(r, -box, box)),
		Y: float64(h/2 + randRange(r, -box, box)),
	}

	pos, dir := gamemath.OffscreenSpawn(point, target, float64(w), float64(h), vc.Size)
	return pos, math.Vec2{X: dir.X * vc.Speed, Y: dir.Y * vc.Speed}
}

// squareLaunch places a square just above the top edge at a random column.
func squareLaunch(r *rand.Rand, vc cfg.VariantConfig) (pos, vel math.Vec2) {
	x := randRange(r, 0, cfg.C.Width-int(vc.Size))
	return math.Vec2{X: float64(x), Y: -vc.Size}, math.Vec2{Y: vc.Speed}
}

func freeSlot(e *ecs.ECS) *donburi.Entry {
	pool := components.Pool.Get(components.Pool.MustFirst(e.World))
	for _, ent := range pool.Slots {
		entry := e.World.Entry(ent)
		if !components.Projectile.Get(entry).Active {
			return entry
		}
	}
	return nil
}

// randRange returns an int in [min, max].
func randRange(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}
