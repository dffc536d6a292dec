package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is one slot of the rock / death square pool. Position and
// Velocity are only meaningful while Active.
type ProjectileData struct {
	Slot     int
	Position math.Vec2 // circle centre, or square top-left
	Velocity math.Vec2
	Active   bool
	Punched  bool // already scored against a punch
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// PoolData holds the projectile slots in scan order.
type PoolData struct {
	Slots []donburi.Entity
}

var Pool = donburi.NewComponentType[PoolData]()
