package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collision queries
const (
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
)
