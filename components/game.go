package components

import (
	"math/rand"

	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/yohamta/donburi"
)

// GameData is the arena's round state. Reset to a fixed baseline on start
// and on restart.
type GameData struct {
	Variant cfg.Variant
	Frame   int // frames simulated while unpaused
	Score   int
	Paused  bool
	Over    bool

	SpawnRate     int // frames between spawn ticks
	LosingEnabled bool
	Hits          int // player contacts seen while losing is disabled

	Rand *rand.Rand
}

var Game = donburi.NewComponentType[GameData]()
