package scenes

import (
	"image"
	"log"

	"github.com/automoto/unicorn-defense/assets"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(variant cfg.Variant) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  NewArenaScene(variant),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

// Close releases what the game loaded. Call after RunGame returns.
func (g *Game) Close() {
	assets.UnloadSprite(cfg.C.SpritePath)
}

// Run opens the window and plays variant until the window is closed.
func Run(variant cfg.Variant) {
	ebiten.SetWindowSize(cfg.C.WindowW, cfg.C.WindowH)
	ebiten.SetWindowTitle(cfg.For(variant).Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.C.TPS)

	g := NewGame(variant)
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
