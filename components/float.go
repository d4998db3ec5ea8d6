package components

import (
	"github.com/tanema/gween"
	"github.com/verdantco/showroom/stage"
	"github.com/yohamta/donburi"
)

// FloatData is one ambient background card on an orbital path. The
// vertical bob runs on a looping tween sequence; orbital speed picks
// up while the page is scrolling.
type FloatData struct {
	Center stage.Vec3
	Radius float64
	Speed  float64 // base radians per frame
	Angle  float64

	Drift *gween.Sequence // vertical bob, stage units

	Handle Renderable
}

var Float = donburi.NewComponentType[FloatData]()
