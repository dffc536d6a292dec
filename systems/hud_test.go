package systems

import (
	"testing"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
)

func TestScoreText(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0000"},
		{7, "0007"},
		{1234, "1234"},
		{98765, "98765"},
	}
	for _, tt := range tests {
		if got := ScoreText(tt.score); got != tt.want {
			t.Fatalf("ScoreText(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestUpdateHUD_PulsesOnScore(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	hud := components.HUD.Get(components.Game.MustFirst(e.World))

	UpdateHUD(e)
	if hud.Pulse != nil || hud.Scale != 1 {
		t.Fatalf("expected no pulse without a point, got %+v", hud)
	}

	GetGame(e).Score = 1
	UpdateHUD(e)
	if hud.Pulse == nil {
		t.Fatal("expected a pulse after scoring")
	}
	if hud.Scale <= 1 || hud.Scale > cfg.HUD.PulseScale {
		t.Fatalf("scale %v outside the pulse range", hud.Scale)
	}

	for i := 0; i < cfg.C.TPS; i++ {
		UpdateHUD(e)
	}
	if hud.Pulse != nil || hud.Scale != 1 {
		t.Fatalf("expected the pulse to settle, got %+v", hud)
	}
}
