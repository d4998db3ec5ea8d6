package systems

import (
	"math"

	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/stage"
	"github.com/verdantco/showroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// floatTickSeconds is the fixed timestep fed to the drift tweens.
const floatTickSeconds = 1.0 / 60.0

// UpdateFloatCards advances the ambient background cards along their
// orbits. Orbital speed picks up with the smoothed page scroll speed,
// so the backdrop stirs while the user moves and settles when they
// stop. The vertical bob runs on a looping tween sequence.
func UpdateFloatCards(e *ecs.ECS) {
	boost := 0.0
	if pageEntry, ok := components.Page.First(e.World); ok {
		page := components.Page.Get(pageEntry)
		boost = page.SmoothedSpeed * cfg.Float.ScrollBoost
	}

	tags.FloatCard.Each(e.World, func(entry *donburi.Entry) {
		f := components.Float.Get(entry)

		f.Angle += f.Speed + boost

		drift := 0.0
		if f.Drift != nil {
			v, _, done := f.Drift.Update(floatTickSeconds)
			if done {
				f.Drift.Reset()
			}
			drift = float64(v)
		}

		position := stage.Vec3{
			X: f.Center.X + math.Cos(f.Angle)*f.Radius,
			Y: f.Center.Y + math.Sin(f.Angle)*f.Radius*0.35 + drift,
			Z: f.Center.Z,
		}
		rotation := f.Angle * cfg.Float.SpinRate

		if f.Handle != nil {
			f.Handle.SetPose(position, rotation, 1)
		}
	})
}
