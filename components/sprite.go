package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  *ebiten.Image
	Width  float64 // drawn size, independent of the image's own size
	Height float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
