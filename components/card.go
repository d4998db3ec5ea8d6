package components

import (
	"github.com/verdantco/showroom/stage"
	"github.com/yohamta/donburi"
)

// Renderable is the opaque pose capability the stage hands back for
// each created object. Systems never see meshes or textures, only this.
type Renderable interface {
	SetPose(position stage.Vec3, rotation, scale float64)
}

// CardData is one category card. Everything except the two smoothed
// hover values is set at creation and never mutated.
type CardData struct {
	Index int
	Label string

	InitialPosition stage.Vec3 // stacked pile position
	TargetPosition  stage.Vec3 // final spread position, index-symmetric about center

	InitialRotation float64 // pi: back face visible
	TargetRotation  float64 // 0: front face visible

	// BaseElevation is the static per-card stacking depth.
	BaseElevation float64

	// Smoothed hover feedback, advanced every frame.
	HoverScale     float64 // starts at 1.0
	HoverElevation float64 // starts at 0.0

	Handle Renderable
}

var Card = donburi.NewComponentType[CardData]()
