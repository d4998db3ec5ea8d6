package archetypes

import (
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	CategoryCard = newArchetype(
		tags.CategoryCard,
		components.Card,
	)
	FloatCard = newArchetype(
		tags.FloatCard,
		components.Float,
	)
	CardStage = newArchetype(
		tags.CardStage,
		components.Stage,
	)
	Backdrop = newArchetype(
		tags.Backdrop,
		components.Stage,
	)
	Page = newArchetype(
		components.Page,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Hover = newArchetype(
		components.Hover,
	)
	Toast = newArchetype(
		components.Toast,
	)
	Reviews = newArchetype(
		components.Reviews,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
