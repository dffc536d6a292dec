package ui

import (
	"image/color"

	"github.com/automoto/unicorn-defense/components"
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OverlayUI holds the pause and game over screens. At most one is shown,
// chosen from the round state on every Sync.
type OverlayUI struct {
	pause    *ebitenui.UI
	gameOver *ebitenui.UI
	active   *ebitenui.UI

	pauseFace    text.Face
	gameOverFace text.Face
}

// NewOverlayUI creates the overlay widget trees. The fonts package must
// already hold the Overlay and Small faces.
func NewOverlayUI() *OverlayUI {
	o := &OverlayUI{}

	o.pauseFace, o.gameOverFace = overlayFaces()
	o.pause = o.buildScreen(cfg.Pause.Text, &o.pauseFace, cfg.Pause.TextColor, cfg.Pause.OffsetY)
	o.gameOver = o.buildScreen(cfg.GameOver.Text, &o.gameOverFace, cfg.GameOver.TextColor, cfg.GameOver.OffsetY)

	return o
}

// overlayFaces wraps the registered freetype faces for ebitenui labels.
func overlayFaces() (pause, gameOver text.Face) {
	return text.NewGoXFace(fonts.Overlay.Get()), text.NewGoXFace(fonts.Small.Get())
}

// buildScreen centres one line of text, shifted vertically by offsetY.
func (o *OverlayUI) buildScreen(msg string, face *text.Face, clr color.RGBA, offsetY float64) *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Clear)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Padding on one side pushes the centred content the other way by half.
	padding := widget.Insets{}
	if offsetY < 0 {
		padding.Bottom = int(-2 * offsetY)
	} else {
		padding.Top = int(2 * offsetY)
	}

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text(msg, face, &widget.LabelColor{
			Idle: clr,
		}),
	)
	contentContainer.AddChild(label)
	rootContainer.AddChild(contentContainer)

	return &ebitenui.UI{Container: rootContainer}
}

// Sync picks the screen matching the round state. Game over wins over pause.
func (o *OverlayUI) Sync(game *components.GameData) {
	switch {
	case game.Over:
		o.active = o.gameOver
	case game.Paused:
		o.active = o.pause
	default:
		o.active = nil
	}
}

func (o *OverlayUI) Update() {
	if o.active != nil {
		o.active.Update()
	}
}

func (o *OverlayUI) Draw(screen *ebiten.Image) {
	if o.active != nil {
		o.active.Draw(screen)
	}
}
