package factory

import (
	"github.com/verdantco/showroom/archetypes"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePage(e *ecs.ECS, viewportW, viewportH float64) *donburi.Entry {
	entry := archetypes.Page.Spawn(e)
	components.Page.SetValue(entry, components.PageData{
		ViewportW: viewportW,
		ViewportH: viewportH,
	})
	return entry
}

func CreatePointer(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Pointer.Spawn(e)
	var pointer components.PointerData
	pointer.Reset()
	components.Pointer.SetValue(entry, pointer)
	return entry
}

func CreateProgress(e *ecs.ECS) *donburi.Entry {
	return archetypes.Progress.Spawn(e)
}

func CreateHover(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Hover.Spawn(e)
	components.Hover.SetValue(entry, components.HoverData{
		State: components.HoverDisabled,
	})
	return entry
}

func CreateToast(e *ecs.ECS) *donburi.Entry {
	return archetypes.Toast.Spawn(e)
}

func CreateReviews(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Reviews.Spawn(e)
	components.Reviews.SetValue(entry, components.ReviewsData{
		Phase: components.ReviewHold,
		Timer: cfg.Reviews.HoldFrames,
		Alpha: 1,
	})
	return entry
}
