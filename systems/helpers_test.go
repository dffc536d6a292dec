package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/systems/factory"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newArena builds a headless arena with a fixed seed and no sprite.
func newArena(t *testing.T, variant cfg.Variant) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, variant, rand.New(rand.NewSource(1)), nil)
	getOrCreateInput(e)
	return e
}

// step runs one frame of the simulation with the given input held, the same
// way the arena scene orders its systems.
func step(e *ecs.ECS, held ...cfg.ActionID) {
	stepAxes(e, [cfg.AxisCount]float64{}, held...)
}

func stepAxes(e *ecs.ECS, axes [cfg.AxisCount]float64, held ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}
	input.Axes = axes

	UpdatePause(e)
	UpdateGameOver(e)
	for _, s := range GameplaySystems(GetGame(e).Variant) {
		s(e)
	}
}

func stopSpawning(e *ecs.ECS) {
	GetGame(e).SpawnRate = 0
}

func slot(e *ecs.ECS, i int) *donburi.Entry {
	pool := components.Pool.Get(components.Pool.MustFirst(e.World))
	return e.World.Entry(pool.Slots[i])
}

func launch(e *ecs.ECS, i int, pos, vel math.Vec2) *components.ProjectileData {
	entry := slot(e, i)
	activate(getSpace(e), cfg.For(GetGame(e).Variant), entry, pos, vel)
	return components.Projectile.Get(entry)
}

func player(e *ecs.ECS) *components.PlayerData {
	return components.Player.Get(tags.Player.MustFirst(e.World))
}

func activeCount(e *ecs.ECS) int {
	n := 0
	forEachActive(e, func(*donburi.Entry, *components.ProjectileData) { n++ })
	return n
}

type snapshot struct {
	player      math.Vec2
	rotation    float64
	projectiles []math.Vec2
	score       int
	frame       int
}

func takeSnapshot(e *ecs.ECS) snapshot {
	s := snapshot{
		player:   player(e).Position,
		rotation: player(e).Rotation,
		score:    GetGame(e).Score,
		frame:    GetGame(e).Frame,
	}
	forEachSlot(e, func(_ *donburi.Entry, p *components.ProjectileData) {
		s.projectiles = append(s.projectiles, p.Position)
	})
	return s
}
