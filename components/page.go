package components

import (
	cfg "github.com/verdantco/showroom/config"
	"github.com/yohamta/donburi"
)

// PageData is the scrollable homepage layout singleton: the current
// scroll offset, the target it chases, and the section geometry every
// other system measures against. Offsets are in pixels.
type PageData struct {
	Offset float64 // current global scroll offset
	Target float64 // offset the smooth scroll chases

	// SmoothedSpeed is the low-passed |d offset| per frame, used to
	// modulate the ambient background motion.
	SmoothedSpeed float64

	ViewportW float64
	ViewportH float64
}

// CardsSectionHeight is the sticky section's total scroll footprint:
// one viewport of pinned canvas plus the animation scroll distance.
func (p *PageData) CardsSectionHeight() float64 {
	return p.ViewportH + cfg.Scroll.AnimationDistance
}

func (p *PageData) CardsTop() float64 {
	return cfg.Page.HeroHeight
}

// CardsTopEdge is the section's top edge relative to the viewport top;
// at or below zero means the section is pinned.
func (p *PageData) CardsTopEdge() float64 {
	return p.CardsTop() - p.Offset
}

// CardsCanvasY is the screen-space Y the card canvas draws at:
// approaching from below, pinned at zero through the sticky phase,
// then scrolling away upward.
func (p *PageData) CardsCanvasY() float64 {
	y := p.CardsTopEdge()
	if y > 0 {
		return y // still approaching from below
	}
	leave := p.CardsTop() + cfg.Scroll.AnimationDistance - p.Offset
	if leave < 0 {
		return leave // sticky phase done, section scrolls away
	}
	return 0 // pinned
}

func (p *PageData) ReviewsTop() float64 {
	return p.CardsTop() + p.CardsSectionHeight()
}

func (p *PageData) FooterTop() float64 {
	return p.ReviewsTop() + cfg.Page.ReviewsHeight
}

func (p *PageData) PageHeight() float64 {
	return p.FooterTop() + cfg.Page.FooterHeight
}

// MaxScroll clamps the scroll target so the footer bottoms out at the
// viewport edge.
func (p *PageData) MaxScroll() float64 {
	m := p.PageHeight() - p.ViewportH
	if m < 0 {
		return 0
	}
	return m
}

var Page = donburi.NewComponentType[PageData]()
