package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/verdantco/showroom/components"
	"github.com/verdantco/showroom/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackdrop renders the ambient float-card stage behind the page.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	stageEntry, ok := tags.Backdrop.First(e.World)
	if !ok {
		return
	}
	components.Stage.Get(stageEntry).Stage.Render(screen)
}

// DrawCards renders the category card stage. The stage camera's origin
// already tracks the sticky section, so nothing draws while the
// section is fully off screen.
func DrawCards(e *ecs.ECS, screen *ebiten.Image) {
	stageEntry, ok := tags.CardStage.First(e.World)
	if !ok {
		return
	}
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)

	y := page.CardsCanvasY()
	if y <= -page.ViewportH || y >= page.ViewportH {
		return
	}
	components.Stage.Get(stageEntry).Stage.Render(screen)
}
