package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ReviewPhase is the carousel's position in its hold/fade cycle.
type ReviewPhase int

const (
	ReviewHold ReviewPhase = iota
	ReviewFadeOut
	ReviewFadeIn
)

// ReviewsData drives the auto-advancing quote carousel.
type ReviewsData struct {
	Index int
	Phase ReviewPhase
	Timer int // frames left in the hold phase

	Fade  *gween.Tween // active fade, nil while holding
	Alpha float64
}

var Reviews = donburi.NewComponentType[ReviewsData]()
