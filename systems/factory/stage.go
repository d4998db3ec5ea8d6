package factory

import (
	"github.com/verdantco/showroom/archetypes"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCardStage spawns the foreground stage the category cards live
// on. Its camera origin is slaved to the sticky section each frame.
func CreateCardStage(e *ecs.ECS, viewportW, viewportH float64) *donburi.Entry {
	entry := archetypes.CardStage.Spawn(e)
	camera := stage.NewCamera(cfg.Stage.FocalLength, cfg.Stage.CameraDistance, viewportW, viewportH)
	components.Stage.SetValue(entry, components.StageData{
		Stage: stage.NewStage(camera),
	})
	return entry
}

// CreateBackdrop spawns the fixed background stage for the ambient
// float cards.
func CreateBackdrop(e *ecs.ECS, viewportW, viewportH float64) *donburi.Entry {
	entry := archetypes.Backdrop.Spawn(e)
	camera := stage.NewCamera(cfg.Stage.FocalLength, cfg.Stage.CameraDistance, viewportW, viewportH)
	components.Stage.SetValue(entry, components.StageData{
		Stage: stage.NewStage(camera),
	})
	return entry
}
