package systems

import (
	"github.com/tanema/gween/ease"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhases splits scroll progress into the flip and spread
// sub-phases and eases each independently.
//
// Spread stays at exactly zero until the raw flip ratio reaches 1;
// the flip finishing before the spread starts is a hard ordering
// invariant because interaction enablement hangs off flip completion.
func UpdatePhases(e *ecs.ECS) {
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(progressEntry)

	p := clamp01(progress.ScrollProgress)
	flipEnd := cfg.Phase.FlipEnd

	var flipRaw, spreadRaw float64
	switch {
	case flipEnd <= 0:
		flipRaw = 1
		spreadRaw = p
	case flipEnd >= 1:
		flipRaw = p
		spreadRaw = 0
	default:
		flipRaw = clamp01(p / flipEnd)
		spreadRaw = clamp01((p - flipEnd) / (1 - flipEnd))
	}

	progress.FlipRaw = flipRaw
	progress.FlipEased = easeInOutCubic(flipRaw)
	progress.SpreadEased = easeInOutCubic(spreadRaw)
	progress.InteractionsEnabled = flipRaw >= 1
}

// easeInOutCubic evaluates the shared response curve for both phases:
// 4t^3 below the midpoint, 1-(-2t+2)^3/2 above it.
func easeInOutCubic(t float64) float64 {
	return float64(ease.InOutCubic(float32(t), 0, 1, 1))
}
