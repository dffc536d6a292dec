package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData drives the score readout's pulse after each point.
type HUDData struct {
	Pulse     *gween.Tween
	Scale     float32
	LastScore int
}

var HUD = donburi.NewComponentType[HUDData]()
