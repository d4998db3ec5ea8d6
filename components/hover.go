package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// HoverState is the pick controller's state machine position.
type HoverState int

const (
	HoverDisabled HoverState = iota // interactions off
	HoverIdle                       // enabled, nothing under the pointer
	HoverActive                     // enabled, pointer over a card
)

// HoverData tracks the at-most-one hovered card and the pointer
// affordance that mirrors it.
type HoverData struct {
	State HoverState

	Hovered    donburi.Entity
	HasHovered bool

	// Cursor is the shape the state machine wants this frame; the
	// hover system applies it on transitions only.
	Cursor ebiten.CursorShapeType
}

// Clear drops any hovered card and resets the pointer affordance.
func (h *HoverData) Clear() {
	var none donburi.Entity
	h.Hovered = none
	h.HasHovered = false
	h.Cursor = ebiten.CursorShapeDefault
}

var Hover = donburi.NewComponentType[HoverData]()
