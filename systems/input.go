package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer polls the mouse and refreshes the shared pointer
// snapshot. Must run before every system that reads pointer or scroll
// state. The pointer is the only input producer; everything downstream
// reads the latest value, last write wins.
func UpdatePointer(e *ecs.ECS) {
	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(pointerEntry)
	page := components.Page.Get(pageEntry)

	pointer.PrevPressed = pointer.Pressed
	pointer.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 || float64(cx) >= page.ViewportW || float64(cy) >= page.ViewportH {
		// Pointer left the render surface: park it at the sentinel so
		// no card can be picked until it comes back.
		pointer.Reset()
	} else {
		pointer.X = float64(cx)/page.ViewportW*2 - 1
		pointer.Y = 1 - float64(cy)/page.ViewportH*2
		pointer.OnSurface = true
	}

	updateScrollIntent(page)
}

// updateScrollIntent merges wheel and keyboard input into the scroll
// target the page offset chases.
func updateScrollIntent(page *components.PageData) {
	_, wheelY := ebiten.Wheel()
	page.Target -= wheelY * cfg.Scroll.WheelSpeed

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		page.Target += cfg.Scroll.KeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		page.Target -= cfg.Scroll.KeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		page.Target += page.ViewportH
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		page.Target -= page.ViewportH
	}
	if ebiten.IsKeyPressed(ebiten.KeyHome) {
		page.Target = 0
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnd) {
		page.Target = page.MaxScroll()
	}

	if page.Target < 0 {
		page.Target = 0
	}
	if max := page.MaxScroll(); page.Target > max {
		page.Target = max
	}
}
