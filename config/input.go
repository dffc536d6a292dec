package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPunch
	ActionPause
	ActionRestart
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// AxisID represents one analog input axis
type AxisID int

const (
	AxisMoveX AxisID = iota
	AxisMoveY
	AxisAimX
	AxisAimY
	AxisCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AxisBinding maps an analog axis to a gamepad stick axis plus a pair of
// keys that push the axis to -1 and +1.
type AxisBinding struct {
	StandardGamepadAxis ebiten.StandardGamepadAxis
	NegativeKeys        []ebiten.Key
	PositiveKeys        []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	Axes     [AxisCount]AxisBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPunch: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
		Axes: [AxisCount]AxisBinding{
			AxisMoveX: {
				StandardGamepadAxis: ebiten.StandardGamepadAxisLeftStickHorizontal,
				NegativeKeys:        []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				PositiveKeys:        []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			AxisMoveY: {
				StandardGamepadAxis: ebiten.StandardGamepadAxisLeftStickVertical,
				NegativeKeys:        []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				PositiveKeys:        []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			AxisAimX: {
				StandardGamepadAxis: ebiten.StandardGamepadAxisRightStickHorizontal,
				NegativeKeys:        []ebiten.Key{ebiten.KeyJ},
				PositiveKeys:        []ebiten.Key{ebiten.KeyL},
			},
			AxisAimY: {
				StandardGamepadAxis: ebiten.StandardGamepadAxisRightStickVertical,
				NegativeKeys:        []ebiten.Key{ebiten.KeyI},
				PositiveKeys:        []ebiten.Key{ebiten.KeyK},
			},
		},
	}
}
