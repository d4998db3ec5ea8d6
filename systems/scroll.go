package systems

import (
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScrollProgress maps live page geometry to the normalized
// progress of the sticky card section.
//
// The section counts as pinned while its top edge sits at or above the
// viewport top. The frame pinning is first seen, the current scroll
// offset becomes the anchor; progress is then scroll-since-anchor over
// the configured animation distance, clamped to [0,1]. Leaving the
// pinned state zeroes progress and drops the anchor, so pinning again
// restarts the mapping from wherever the page is then - the animation
// is tied to scroll-since-pinned, never to absolute page position.
// Scrolling back above the pin point snaps progress to 0 with no
// reverse easing.
func UpdateScrollProgress(e *ecs.ECS) {
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(progressEntry)
	page := components.Page.Get(pageEntry)

	if page.CardsTopEdge() > 0 {
		progress.ScrollProgress = 0
		progress.Anchored = false
		return
	}

	if !progress.Anchored {
		progress.Anchor = page.Offset
		progress.Anchored = true
	}

	distance := cfg.Scroll.AnimationDistance
	if distance <= 0 {
		// A degenerate distance would divide by zero or run the
		// animation backwards; treat the section as fully animated.
		progress.ScrollProgress = 1
		return
	}

	progress.ScrollProgress = clamp01((page.Offset - progress.Anchor) / distance)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
