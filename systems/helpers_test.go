package systems

import (
	"github.com/verdantco/showroom/archetypes"
	"github.com/verdantco/showroom/components"
	"github.com/verdantco/showroom/stage"
	"github.com/verdantco/showroom/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// newTestWorld spawns the singleton set every animation system expects.
func newTestWorld() (*ecs.ECS, *components.PageData, *components.ProgressData, *components.HoverData, *components.PointerData) {
	e := newTestECS()
	pageEntry := factory.CreatePage(e, 1280, 720)
	progressEntry := factory.CreateProgress(e)
	hoverEntry := factory.CreateHover(e)
	pointerEntry := factory.CreatePointer(e)

	return e,
		components.Page.Get(pageEntry),
		components.Progress.Get(progressEntry),
		components.Hover.Get(hoverEntry),
		components.Pointer.Get(pointerEntry)
}

// poseRecorder is a fake renderable handle capturing the last
// committed pose.
type poseRecorder struct {
	position stage.Vec3
	rotation float64
	scale    float64
	calls    int
}

func (r *poseRecorder) SetPose(position stage.Vec3, rotation, scale float64) {
	r.position = position
	r.rotation = rotation
	r.scale = scale
	r.calls++
}

// spawnTestCard creates a category card with a recorder handle instead
// of a stage quad.
func spawnTestCard(e *ecs.ECS, index int, targetX float64) (*donburi.Entry, *poseRecorder) {
	entry := archetypes.CategoryCard.Spawn(e)
	recorder := &poseRecorder{}
	components.Card.SetValue(entry, components.CardData{
		Index:           index,
		Label:           "Card",
		InitialPosition: stage.Vec3{},
		TargetPosition:  stage.Vec3{X: targetX},
		InitialRotation: 3.141592653589793,
		TargetRotation:  0,
		BaseElevation:   float64(index) * 0.02,
		HoverScale:      1.0,
		HoverElevation:  0.0,
		Handle:          recorder,
	})
	return entry, recorder
}
