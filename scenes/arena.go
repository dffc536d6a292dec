package scenes

import (
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/unicorn-defense/assets"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/fonts"
	"github.com/automoto/unicorn-defense/systems"
	"github.com/automoto/unicorn-defense/systems/factory"
	"github.com/automoto/unicorn-defense/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene plays one variant on a single screen, round after round.
type ArenaScene struct {
	ecs     *ecs.ECS
	variant cfg.Variant
	overlay *ui.OverlayUI
	once    sync.Once
}

func NewArenaScene(variant cfg.Variant) *ArenaScene {
	return &ArenaScene{variant: variant}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	as.overlay.Sync(systems.GetGame(as.ecs))
	as.overlay.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.RayWhite)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.overlay.Draw(screen)
}

func (as *ArenaScene) configure() {
	if err := fonts.LoadDefaults(cfg.HUD.FontSize, cfg.Pause.FontSize, cfg.GameOver.FontSize); err != nil {
		panic("failed to load fonts: " + err.Error())
	}
	sprite := assets.LoadSprite(cfg.C.SpritePath)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateGameOver)

	// Game systems wrapped with pause and game over checks
	for _, s := range systems.GameplaySystems(as.variant) {
		ecs.AddSystem(s)
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawFist)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	factory.CreateArena(ecs, as.variant, rng, sprite)

	as.ecs = ecs
	as.overlay = ui.NewOverlayUI()
}
