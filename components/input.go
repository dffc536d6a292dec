package components

import (
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus this frame's analog axes in [-1, 1]. Deadzones are applied by
// the systems that read the axes.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Axes            [cfg.AxisCount]float64
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
