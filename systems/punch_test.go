package systems

import (
	stdmath "math"
	"testing"

	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/yohamta/donburi/features/math"
)

func TestFistHitbox_FacingRight(t *testing.T) {
	fist := FistHitbox(math.Vec2{X: 960, Y: 540}, 0)
	if fist.A != (math.Vec2{X: 1000, Y: 540}) {
		t.Fatalf("unexpected anchor %v", fist.A)
	}
	if fist.B != (math.Vec2{X: 1160, Y: 605}) || fist.C != (math.Vec2{X: 1160, Y: 475}) {
		t.Fatalf("unexpected fan points %v %v", fist.B, fist.C)
	}
}

func TestFistHitbox_FollowsRotation(t *testing.T) {
	fist := FistHitbox(math.Vec2{X: 0, Y: 0}, 90)
	// Facing down on screen: the anchor sits below the centre.
	if stdmath.Abs(fist.A.X) > 1e-9 || stdmath.Abs(fist.A.Y-40) > 1e-9 {
		t.Fatalf("expected anchor at (0, 40), got %v", fist.A)
	}
}

func TestPunch_LastsTenFrames(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	stopSpawning(e)

	step(e, cfg.ActionPunch)
	p := player(e)
	if !p.Punch || p.PunchFrame != 0 {
		t.Fatalf("expected punch started on frame 0, got punch=%v frame=%d", p.Punch, p.PunchFrame)
	}

	// Holding the button is not a new press.
	for i := 1; i < cfg.Player.PunchFrames; i++ {
		step(e, cfg.ActionPunch)
		if !p.Punch {
			t.Fatalf("punch ended early on frame %d", i)
		}
	}
	step(e, cfg.ActionPunch)
	if p.Punch {
		t.Fatal("expected punch to expire after ten frames")
	}

	step(e)
	step(e, cfg.ActionPunch)
	if !p.Punch || p.PunchFrame != 12 {
		t.Fatalf("expected a new punch on frame 12, got punch=%v frame=%d", p.Punch, p.PunchFrame)
	}
}

func TestPunch_PressMidPunchIgnored(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	stopSpawning(e)

	step(e, cfg.ActionPunch)
	step(e)
	step(e, cfg.ActionPunch)

	if p := player(e); p.PunchFrame != 0 {
		t.Fatalf("expected the first punch to keep running, started on %d", p.PunchFrame)
	}
}

func TestPunch_KnocksRockAwayAndScores(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	stopSpawning(e)

	// Centre of the rock sits exactly on the far edge of the fist.
	rock := launch(e, 0, math.Vec2{X: 1160, Y: 540}, math.Vec2{X: -4})

	step(e, cfg.ActionPunch)

	game := GetGame(e)
	if !rock.Punched {
		t.Fatal("expected rock to be punched")
	}
	if game.Score != 1 {
		t.Fatalf("expected score 1, got %d", game.Score)
	}
	speed := stdmath.Hypot(rock.Velocity.X, rock.Velocity.Y)
	if want := cfg.Combat.Speed * cfg.Player.PunchSpeedFactor; stdmath.Abs(speed-want) > 1e-9 {
		t.Fatalf("expected speed %v, got %v", want, speed)
	}
	if rock.Velocity.X <= 0 || stdmath.Abs(rock.Velocity.Y) > 1e-9 {
		t.Fatalf("expected velocity along the aim (facing right), got %v", rock.Velocity)
	}

	// Still inside the fist for the rest of the punch, but never scores twice.
	for i := 0; i < 9; i++ {
		step(e, cfg.ActionPunch)
	}
	if game.Score != 1 {
		t.Fatalf("expected one point per rock, got %d", game.Score)
	}
}

func TestPunch_RedirectFollowsAim(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	stopSpawning(e)

	aim := [cfg.AxisCount]float64{cfg.AxisAimX: -0.5, cfg.AxisAimY: 0.5}
	stepAxes(e, aim)
	if got := player(e).Rotation; stdmath.Abs(got-135) > 1e-9 {
		t.Fatalf("expected facing 135 degrees, got %v", got)
	}

	fist := FistHitbox(player(e).Position, player(e).Rotation)
	rock := launch(e, 0, fist.A, math.Vec2{X: 4})

	stepAxes(e, aim, cfg.ActionPunch)
	if !rock.Punched {
		t.Fatal("expected rock on the fist anchor to be punched")
	}
	want := math.Vec2{X: -16 / stdmath.Sqrt2, Y: 16 / stdmath.Sqrt2}
	if stdmath.Abs(rock.Velocity.X-want.X) > 1e-9 || stdmath.Abs(rock.Velocity.Y-want.Y) > 1e-9 {
		t.Fatalf("expected velocity %v, got %v", want, rock.Velocity)
	}
}

func TestPunch_MissOutsideFist(t *testing.T) {
	e := newArena(t, cfg.VariantCombat)
	stopSpawning(e)

	rock := launch(e, 0, math.Vec2{X: 1300, Y: 540}, math.Vec2{X: -4})
	step(e, cfg.ActionPunch)

	if rock.Punched || GetGame(e).Score != 0 {
		t.Fatal("rock out of reach was punched")
	}
}
