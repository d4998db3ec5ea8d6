package scenes

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/events"
	"github.com/verdantco/showroom/systems"
	"github.com/verdantco/showroom/systems/factory"
	"github.com/verdantco/showroom/tags"
	"github.com/verdantco/showroom/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HomeScene is the marketing homepage and the animation driver: it
// owns the ECS world, both stages, the cards and all interaction
// state. Nothing here is a package-level global; the scene is built by
// configure and released by Teardown.
type HomeScene struct {
	ecs *ecs.ECS
	nav *ui.NavBar

	width  int
	height int

	once     sync.Once
	tornDown bool
}

func NewHomeScene() *HomeScene {
	return &HomeScene{
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
}

// SetBounds records the current render surface size. Called by the
// game's Layout, so a resize is always visible before the next Update.
func (hs *HomeScene) SetBounds(width, height int) {
	hs.width = width
	hs.height = height
}

func (hs *HomeScene) Update() {
	hs.once.Do(hs.configure)
	if hs.tornDown || hs.ecs == nil {
		return
	}

	// Stale geometry must never feed a progress computation, so the
	// projection and section layout are re-derived before any system
	// runs on this frame.
	hs.syncViewport()

	hs.nav.UI.Update()
	hs.ecs.Update()
}

func (hs *HomeScene) Draw(screen *ebiten.Image) {
	if hs.tornDown || hs.ecs == nil {
		return
	}
	screen.Fill(cfg.Page.BackgroundColor)
	hs.ecs.Draw(screen)
	hs.nav.UI.Draw(screen)
}

// Teardown detaches the scene from the host: hover affordance reset,
// world dropped. Safe to call more than once.
func (hs *HomeScene) Teardown() {
	if hs.tornDown {
		return
	}
	hs.tornDown = true
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	hs.ecs = nil
	hs.nav = nil
}

// syncViewport pushes a changed surface size into the page geometry
// and both stage projections.
func (hs *HomeScene) syncViewport() {
	pageEntry, ok := components.Page.First(hs.ecs.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)

	w := float64(hs.width)
	h := float64(hs.height)
	if page.ViewportW == w && page.ViewportH == h {
		return
	}
	page.ViewportW = w
	page.ViewportH = h

	if stageEntry, ok := tags.CardStage.First(hs.ecs.World); ok {
		components.Stage.Get(stageEntry).Stage.Resize(w, h)
	}
	if stageEntry, ok := tags.Backdrop.First(hs.ecs.World); ok {
		components.Stage.Get(stageEntry).Stage.Resize(w, h)
	}
}

func (hs *HomeScene) configure() {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	// Input first, then geometry, then the animation pipeline in
	// dependency order: progress -> phases -> poses -> picking.
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdatePage)
	e.AddSystem(systems.UpdateScrollProgress)
	e.AddSystem(systems.UpdatePhases)
	e.AddSystem(systems.UpdateCardPoses)
	e.AddSystem(systems.UpdateHover)
	e.AddSystem(systems.UpdateFloatCards)
	e.AddSystem(systems.UpdateReviews)
	e.AddSystem(systems.UpdateToast)
	e.AddSystem(systems.PumpEvents)

	e.AddRenderer(cfg.Default, systems.DrawBackdrop)
	e.AddRenderer(cfg.Default, systems.DrawPage)
	e.AddRenderer(cfg.Default, systems.DrawCards)
	e.AddRenderer(cfg.Default, systems.DrawReviews)
	e.AddRenderer(cfg.Default, systems.DrawToast)

	hs.ecs = e

	w := float64(hs.width)
	h := float64(hs.height)

	pageEntry := factory.CreatePage(e, w, h)
	factory.CreatePointer(e)
	factory.CreateProgress(e)
	factory.CreateHover(e)
	factory.CreateToast(e)
	factory.CreateReviews(e)

	cardStage := factory.CreateCardStage(e, w, h)
	factory.CreateCategoryCards(e, components.Stage.Get(cardStage).Stage)

	backdrop := factory.CreateBackdrop(e, w, h)
	factory.CreateFloatCards(e, components.Stage.Get(backdrop).Stage)

	// Page glue: a qualifying card click surfaces as a toast.
	events.CardSelectedEvent.Subscribe(world, func(w donburi.World, ev events.CardSelected) {
		systems.ShowToast(w, fmt.Sprintf("Browsing %s", ev.Category))
	})

	page := components.Page.Get(pageEntry)
	hs.nav = ui.NewNavBar(
		func() { page.Target = 0 },
		func() { page.Target = page.CardsTop() + cfg.Scroll.AnimationDistance },
		func() { page.Target = page.ReviewsTop() },
	)
}
