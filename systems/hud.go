package systems

import (
	"fmt"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD starts a score pulse whenever the score changes and advances the
// running one.
func UpdateHUD(e *ecs.ECS) {
	gameEntry := components.Game.MustFirst(e.World)
	game := components.Game.Get(gameEntry)
	hud := components.HUD.Get(gameEntry)

	if game.Score != hud.LastScore {
		hud.LastScore = game.Score
		hud.Pulse = gween.New(cfg.HUD.PulseScale, 1, cfg.HUD.PulseSeconds, ease.OutQuad)
	}

	if hud.Pulse == nil {
		hud.Scale = 1
		return
	}

	scale, done := hud.Pulse.Update(1 / float32(cfg.C.TPS))
	hud.Scale = scale
	if done {
		hud.Pulse = nil
	}
}

// ScoreText formats a score as at least four zero-padded digits.
func ScoreText(score int) string {
	return fmt.Sprintf("%04d", score)
}

// DrawHUD renders the score in the top-right corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	gameEntry := components.Game.MustFirst(e.World)
	game := components.Game.Get(gameEntry)
	if game.Over || !cfg.For(game.Variant).Scored {
		return
	}
	hud := components.HUD.Get(gameEntry)

	face := fonts.Score.Get()
	s := ScoreText(game.Score)
	w := float64(fonts.Width(face, s))
	ascent := float64(face.Metrics().Ascent.Ceil())

	// Scale about the top-right corner so the pulse grows into the screen.
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-w, ascent)
	hudDrawOp.GeoM.Scale(float64(hud.Scale), float64(hud.Scale))
	hudDrawOp.GeoM.Translate(float64(screen.Bounds().Dx())-cfg.HUD.MarginRight, cfg.HUD.MarginTop)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)

	text.DrawWithOptions(screen, s, face, hudDrawOp)
}
