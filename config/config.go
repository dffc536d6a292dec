package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer draws on.
const Default ecs.LayerID = 0

// Variant selects which rule set the arena runs with.
type Variant int

const (
	VariantCombat Variant = iota // circular rocks, fist hitbox, score
	VariantDodge                 // falling death squares, difficulty ramp
)

func (v Variant) String() string {
	switch v {
	case VariantCombat:
		return "combat"
	case VariantDodge:
		return "dodge"
	}
	return "unknown"
}

// ProjectileShape is the collision and draw shape of a projectile.
type ProjectileShape int

const (
	ShapeCircle ProjectileShape = iota
	ShapeSquare
)

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	TPS        int
	Title      string
	WindowW    int
	WindowH    int
	SpritePath string
	CellSize   int // collision space cell edge in pixels
}

// PlayerConfig contains the unicorn's movement and punch values
type PlayerConfig struct {
	Speed  float64 // pixels per frame at full axis deflection
	Width  float64
	Height float64

	// Punch
	PunchFrames      int     // frames a punch stays active
	FistReach        float64 // multiples of Width the fist extends past its anchor
	PunchSpeedFactor float64 // punched rock speed as a multiple of base speed
}

// VariantConfig contains the rules that differ between the two games
type VariantConfig struct {
	Title         string
	PoolSize      int
	Shape         ProjectileShape
	Size          float64 // radius for circles, side length for squares
	Speed         float64 // base projectile speed in pixels per frame
	SpawnRate     int     // initial frames between spawn ticks
	SpawnRateMin  int     // floor for the ramp
	RampInterval  int     // frames between ramp steps, 0 disables the ramp
	LosingEnabled bool
	AxisDeadzone  float64
	Scored        bool
	Aim           bool
	Punch         bool
	Color         color.RGBA
}

// HUDConfig contains score display configuration
type HUDConfig struct {
	FontSize     float64
	MarginRight  float64
	MarginTop    float64
	TextColor    color.RGBA
	PulseScale   float32 // starting scale of the score pulse
	PulseSeconds float32
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	Text      string
	FontSize  float64
	TextColor color.RGBA
	OffsetY   float64 // shift from screen centre, negative is up
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	Text      string
	FontSize  float64
	TextColor color.RGBA
	OffsetY   float64
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled     bool // start with the debug overlay visible
	PlayerColor color.RGBA
	RockColor   color.RGBA
	FistColor   color.RGBA
	HitColor    color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Combat VariantConfig
var Dodge VariantConfig
var HUD HUDConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RayWhite = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Gray     = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	Pink     = color.RGBA{R: 255, G: 109, B: 194, A: 255}
	Red      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Maroon   = color.RGBA{R: 190, G: 33, B: 55, A: 255}
	Blue     = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Clear    = color.RGBA{}
)

// For returns the rule set for a variant.
func For(v Variant) VariantConfig {
	if v == VariantDodge {
		return Dodge
	}
	return Combat
}

func init() {
	C = &Config{
		Width:      1920,
		Height:     1080,
		TPS:        60,
		Title:      "Unicorn Defense!",
		WindowW:    960,
		WindowH:    540,
		SpritePath: "resources/unicorn.png",
		CellSize:   60,
	}

	Player = PlayerConfig{
		Speed:            10,
		Width:            80,
		Height:           65,
		PunchFrames:      10,
		FistReach:        2,
		PunchSpeedFactor: 4,
	}

	Combat = VariantConfig{
		Title:         "Unicorn Defense!",
		PoolSize:      25,
		Shape:         ShapeCircle,
		Size:          50,
		Speed:         4,
		SpawnRate:     80,
		SpawnRateMin:  80,
		RampInterval:  0,
		LosingEnabled: false, // kid mode
		AxisDeadzone:  0.04,
		Scored:        true,
		Aim:           true,
		Punch:         true,
		Color:         Pink,
	}

	Dodge = VariantConfig{
		Title:         "Death Squares",
		PoolSize:      300,
		Shape:         ShapeSquare,
		Size:          40,
		Speed:         6,
		SpawnRate:     20,
		SpawnRateMin:  4,
		RampInterval:  40,
		LosingEnabled: true,
		AxisDeadzone:  0.03,
		Color:         Maroon,
	}

	HUD = HUDConfig{
		FontSize:     40,
		MarginRight:  4,
		MarginTop:    2,
		TextColor:    Gray,
		PulseScale:   1.5,
		PulseSeconds: 0.25,
	}

	Pause = PauseConfig{
		Text:      "GAME PAUSED",
		FontSize:  40,
		TextColor: Gray,
		OffsetY:   -40,
	}

	GameOver = GameOverConfig{
		Text:      "PRESS [ENTER/START] TO PLAY AGAIN",
		FontSize:  20,
		TextColor: Gray,
		OffsetY:   -50,
	}

	Debug = DebugConfig{
		Enabled:     false,
		PlayerColor: Blue,
		RockColor:   Cyan,
		FistColor:   Yellow,
		HitColor:    Red,
	}
}
