package components

import "github.com/yohamta/donburi"

// PointerOffscreen is the sentinel NDC value used while the pointer is
// outside the render surface; no card can ever be picked at it.
const PointerOffscreen = -2.0

// PointerData is the latest pointer snapshot in normalized device
// coordinates. The input system is the only writer, the frame systems
// are readers; last write wins, there is no queue.
type PointerData struct {
	X, Y      float64
	OnSurface bool

	Pressed     bool
	PrevPressed bool
}

// JustClicked reports a press edge this frame.
func (p *PointerData) JustClicked() bool {
	return p.Pressed && !p.PrevPressed
}

// Reset parks the pointer at the offscreen sentinel.
func (p *PointerData) Reset() {
	p.X = PointerOffscreen
	p.Y = PointerOffscreen
	p.OnSurface = false
}

var Pointer = donburi.NewComponentType[PointerData]()
