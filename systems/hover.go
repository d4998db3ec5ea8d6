package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/verdantco/showroom/components"
	"github.com/verdantco/showroom/events"
	"github.com/verdantco/showroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHover runs the pick state machine against the card stage.
//
// While interactions are disabled nothing is ever hovered. On the
// enable edge any stale hover is cleared before picking resumes. While
// enabled, the pointer is cast against the animated card poses every
// frame; the nearest hit becomes the hovered card, no hit or an
// off-surface pointer clears it. A click with a hovered card publishes
// exactly one CardSelected notification.
func UpdateHover(e *ecs.ECS) {
	hoverEntry, ok := components.Hover.First(e.World)
	if !ok {
		return
	}
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	stageEntry, ok := tags.CardStage.First(e.World)
	if !ok {
		return
	}

	hover := components.Hover.Get(hoverEntry)
	progress := components.Progress.Get(progressEntry)
	pointer := components.Pointer.Get(pointerEntry)
	st := components.Stage.Get(stageEntry)

	if !progress.InteractionsEnabled {
		if hover.State != components.HoverDisabled {
			hover.State = components.HoverDisabled
			hover.Clear()
			ebiten.SetCursorShape(hover.Cursor)
		}
		return
	}

	if hover.State == components.HoverDisabled {
		// Enable edge: drop whatever was hovered before, unconditionally.
		hover.State = components.HoverIdle
		hover.Clear()
	}

	prevHovered := hover.Hovered
	prevHas := hover.HasHovered

	picked, hasPick := pickCard(st, pointer)
	if hasPick {
		hover.Hovered = picked
		hover.HasHovered = true
		hover.State = components.HoverActive
		hover.Cursor = ebiten.CursorShapePointer
	} else {
		hover.Clear()
		hover.State = components.HoverIdle
	}

	if hover.HasHovered != prevHas || hover.Hovered != prevHovered {
		ebiten.SetCursorShape(hover.Cursor)
	}

	if pointer.JustClicked() && hover.HasHovered {
		emitSelection(e, hover.Hovered)
	}
}

// pickCard casts the pointer through the camera and returns the
// nearest card entity under it, if any. An off-surface pointer never
// picks.
func pickCard(st *components.StageData, pointer *components.PointerData) (donburi.Entity, bool) {
	if !pointer.OnSurface {
		var none donburi.Entity
		return none, false
	}
	hits := st.Stage.RaycastFromScreen(pointer.X, pointer.Y)
	for _, hit := range hits {
		if ent, ok := hit.Data.(donburi.Entity); ok {
			return ent, true
		}
	}
	var none donburi.Entity
	return none, false
}

func emitSelection(e *ecs.ECS, ent donburi.Entity) {
	entry := e.World.Entry(ent)
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Card) {
		return
	}
	card := components.Card.Get(entry)
	events.CardSelectedEvent.Publish(e.World, events.CardSelected{
		Category: card.Label,
		Index:    card.Index,
	})
}
