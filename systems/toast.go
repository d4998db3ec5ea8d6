package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowToast replaces the current toast and restarts its timer.
func ShowToast(w donburi.World, message string) {
	toastEntry, ok := components.Toast.First(w)
	if !ok {
		return
	}
	toast := components.Toast.Get(toastEntry)
	toast.Text = message
	toast.Timer = cfg.Toast.DisplayDuration
}

// UpdateToast counts the active toast down.
func UpdateToast(e *ecs.ECS) {
	toastEntry, ok := components.Toast.First(e.World)
	if !ok {
		return
	}
	toast := components.Toast.Get(toastEntry)
	if toast.Timer > 0 {
		toast.Timer--
		if toast.Timer == 0 {
			toast.Text = ""
		}
	}
}

// DrawToast renders the active toast in a box at the top center.
func DrawToast(e *ecs.ECS, screen *ebiten.Image) {
	toastEntry, ok := components.Toast.First(e.World)
	if !ok {
		return
	}
	toast := components.Toast.Get(toastEntry)
	if toast.Timer <= 0 || toast.Text == "" {
		return
	}

	face := fonts.Label.Get()
	bounds := text.BoundString(face, toast.Text) //nolint:staticcheck
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Toast.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Toast.TopMargin)

	vector.FillRect(
		screen,
		boxX, boxY,
		boxWidth, boxHeight,
		cfg.Toast.BoxColor,
		false,
	)

	text.Draw(screen, toast.Text, face,
		int(boxX+float32(padding)),
		int(boxY+float32(padding)+float32(textHeight)),
		cfg.Toast.TextColor)
}
