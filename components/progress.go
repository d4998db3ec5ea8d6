package components

import "github.com/yohamta/donburi"

// ProgressData is the singleton animation state for the card section.
// Every value is recomputed from live geometry each frame; none of it
// is persisted and ScrollProgress is free to snap back to 0.
type ProgressData struct {
	// ScrollProgress in [0,1], how far through the sticky phase.
	ScrollProgress float64

	// Anchor is the global scroll offset recorded the frame the
	// section pinned. Valid only while Anchored.
	Anchor   float64
	Anchored bool

	FlipRaw     float64
	FlipEased   float64
	SpreadEased float64

	// InteractionsEnabled is true iff the flip sub-phase has completed.
	InteractionsEnabled bool
}

var Progress = donburi.NewComponentType[ProgressData]()
