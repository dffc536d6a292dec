package systems

import (
	"testing"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/systems/factory"
	"github.com/automoto/unicorn-defense/tags"
	"github.com/yohamta/donburi/features/math"
)

func TestPause_FreezesSimulation(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	move := [cfg.AxisCount]float64{cfg.AxisMoveX: 1, cfg.AxisAimX: 0.5, cfg.AxisAimY: 0.5}

	// Frame 0 spawns a rock; let it and the player move a little.
	for i := 0; i < 5; i++ {
		stepAxes(e, move)
	}
	if activeCount(e) == 0 {
		t.Fatal("expected a rock after the first spawn tick")
	}

	stepAxes(e, move, cfg.ActionPause)
	if !GetGame(e).Paused {
		t.Fatal("expected pause press to pause")
	}
	before := takeSnapshot(e)

	for i := 0; i < 200; i++ {
		stepAxes(e, move, cfg.ActionPunch)
	}

	after := takeSnapshot(e)
	if after.player != before.player || after.rotation != before.rotation {
		t.Fatalf("player changed while paused: %+v -> %+v", before.player, after.player)
	}
	if after.score != before.score || after.frame != before.frame {
		t.Fatalf("counters changed while paused: score %d->%d frame %d->%d",
			before.score, after.score, before.frame, after.frame)
	}
	for i := range before.projectiles {
		if before.projectiles[i] != after.projectiles[i] {
			t.Fatalf("projectile %d moved while paused", i)
		}
	}
	if player(e).Punch {
		t.Fatal("punch started while paused")
	}

	// Release, then press again to resume.
	stepAxes(e, move)
	stepAxes(e, move, cfg.ActionPause)
	if GetGame(e).Paused {
		t.Fatal("expected second pause press to resume")
	}
	if GetGame(e).Frame != before.frame+1 {
		t.Fatalf("expected frame %d after resuming, got %d", before.frame+1, GetGame(e).Frame)
	}
}

func TestPause_HeldButtonTogglesOnce(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	for i := 0; i < 10; i++ {
		step(e, cfg.ActionPause)
	}
	if !GetGame(e).Paused {
		t.Fatal("expected holding pause to toggle exactly once")
	}
}

func TestPause_IgnoredWhenOver(t *testing.T) {
	e := newArena(t, cfg.VariantDodge)
	GetGame(e).Over = true
	step(e, cfg.ActionPause)
	if GetGame(e).Paused {
		t.Fatal("pause toggled during game over")
	}
}

func TestLoseCondition_EndsDodgeRound(t *testing.T) {
	e := newArena(t, cfg.VariantDodge)
	stopSpawning(e)

	centre := player(e).Position
	launch(e, 0, math.Vec2{X: centre.X - 10, Y: centre.Y - 20}, math.Vec2{Y: 6})

	step(e)
	game := GetGame(e)
	if !game.Over {
		t.Fatal("expected overlap with a death square to end the round")
	}
	if game.Frame != 0 {
		t.Fatalf("expected the rest of the frame to be skipped, frame is %d", game.Frame)
	}

	frozen := takeSnapshot(e)
	for i := 0; i < 20; i++ {
		step(e)
	}
	if takeSnapshot(e).frame != frozen.frame {
		t.Fatal("simulation advanced during game over")
	}
}

func TestLoseCondition_TouchingEdgeIsSafe(t *testing.T) {
	e := newArena(t, cfg.VariantDodge)
	stopSpawning(e)

	// Square directly above the player box, sharing its top edge.
	centre := player(e).Position
	top := centre.Y - cfg.Player.Height/2
	launch(e, 0, math.Vec2{X: centre.X, Y: top - cfg.Dodge.Size}, math.Vec2{Y: 6})

	UpdateLoseCondition(e)
	if GetGame(e).Over {
		t.Fatal("expected edge contact not to count as overlap")
	}
}

func TestLoseCondition_KidModeCountsButContinues(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	stopSpawning(e)

	launch(e, 0, player(e).Position, math.Vec2{X: 4})

	step(e)
	game := GetGame(e)
	if game.Over {
		t.Fatal("combat round ended with losing disabled")
	}
	if game.Hits != 1 {
		t.Fatalf("expected contact to be counted once, got %d", game.Hits)
	}
	if game.Frame != 1 {
		t.Fatalf("expected the frame to complete, frame is %d", game.Frame)
	}
}

func TestLoseCondition_SubPixelOverlapAcrossCells(t *testing.T) {
	// Player box spans x 1000.5..1080.5, so its right edge sits just past the
	// 1080 cell boundary.
	tests := []struct {
		name    string
		variant cfg.Variant
		pos     math.Vec2
	}{
		{"square", cfg.VariantDodge, math.Vec2{X: 1080, Y: 520}},
		{"rock", cfg.VariantCombat, math.Vec2{X: 1130.4, Y: 540}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newArena(t, tt.variant)
			stopSpawning(e)

			p := player(e)
			p.Position = math.Vec2{X: 1040.5, Y: 540}
			factory.SyncPlayerObject(tags.Player.MustFirst(e.World))
			launch(e, 0, tt.pos, math.Vec2{Y: 6})

			UpdateLoseCondition(e)

			game := GetGame(e)
			if !game.Over && game.Hits != 1 {
				t.Fatal("expected a half-pixel overlap to count as contact")
			}
		})
	}
}

func TestLoseCondition_PlayerOffScreen(t *testing.T) {
	e := newArena(t, cfg.VariantDodge)
	stopSpawning(e)

	// Walk the player off the left edge and drop a square onto it there.
	p := player(e)
	p.Position = math.Vec2{X: -200, Y: 300}
	UpdatePlayer(e)
	launch(e, 0, math.Vec2{X: -210, Y: 290}, math.Vec2{Y: 6})

	UpdateLoseCondition(e)
	if !GetGame(e).Over {
		t.Fatal("expected a hit outside the collision space to be detected")
	}
}

func TestRestart_ResetsRound(t *testing.T) {
	e := newArena(t, cfg.VariantDodge)

	for i := 0; i < 45; i++ {
		stepAxes(e, [cfg.AxisCount]float64{cfg.AxisMoveX: 1})
	}
	game := GetGame(e)
	game.Score = 7
	game.Over = true

	// Restart needs a fresh press, not a held button.
	step(e)
	step(e, cfg.ActionRestart)

	// The restart frame also simulates frame 0 of the new round.
	game = GetGame(e)
	if game.Over || game.Paused {
		t.Fatalf("expected a running round, got over=%v paused=%v", game.Over, game.Paused)
	}
	if game.Score != 0 || game.Frame != 1 || game.Hits != 0 {
		t.Fatalf("expected fresh counters, got score=%d frame=%d hits=%d", game.Score, game.Frame, game.Hits)
	}
	if game.SpawnRate != cfg.Dodge.SpawnRate {
		t.Fatalf("expected spawn rate %d, got %d", cfg.Dodge.SpawnRate, game.SpawnRate)
	}
	want := math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2}
	if player(e).Position != want {
		t.Fatalf("expected player at %v, got %v", want, player(e).Position)
	}
	if n := activeCount(e); n != 1 {
		t.Fatalf("expected only the frame 0 square, %d active", n)
	}
	if sq := components.Projectile.Get(slot(e, 0)); !sq.Active || sq.Position.Y != -cfg.Dodge.Size {
		t.Fatalf("expected slot 0 relaunched above the screen, got %+v", sq)
	}
	if objs := getSpace(e).Objects(); len(objs) != 2 {
		t.Fatalf("expected the player and one square in the collision space, got %d objects", len(objs))
	}
}

func TestRestart_NotOnTheFrameThatEndsTheRound(t *testing.T) {
	e := newArena(t, cfg.VariantDodge)
	stopSpawning(e)

	centre := player(e).Position
	launch(e, 0, math.Vec2{X: centre.X - 10, Y: centre.Y - 20}, math.Vec2{Y: 6})

	step(e, cfg.ActionRestart)
	if !GetGame(e).Over {
		t.Fatal("a restart press on the losing frame skipped the game over screen")
	}

	step(e)
	step(e, cfg.ActionRestart)
	if GetGame(e).Over {
		t.Fatal("expected a later press to restart")
	}
}

func TestRestart_IgnoredWhilePlaying(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	for i := 0; i < 3; i++ {
		step(e)
	}
	step(e, cfg.ActionRestart)
	if GetGame(e).Frame != 4 {
		t.Fatalf("restart input reset a running round, frame is %d", GetGame(e).Frame)
	}
}

func TestGameplaySystems_VariantPipelines(t *testing.T) {
	if got := len(GameplaySystems(cfg.VariantCombat)); got != 7 {
		t.Fatalf("expected 7 combat systems, got %d", got)
	}
	if got := len(GameplaySystems(cfg.VariantDodge)); got != 6 {
		t.Fatalf("expected 6 dodge systems, got %d", got)
	}
}
