package components

import (
	"testing"

	cfg "github.com/verdantco/showroom/config"
)

// TestPageData_SectionGeometry tests the derived section edges against
// the configured layout.
func TestPageData_SectionGeometry(t *testing.T) {
	p := &PageData{ViewportW: 1280, ViewportH: 720}

	if p.CardsTop() != cfg.Page.HeroHeight {
		t.Errorf("Expected cards top %v, got %v", cfg.Page.HeroHeight, p.CardsTop())
	}
	wantSection := 720 + cfg.Scroll.AnimationDistance
	if p.CardsSectionHeight() != wantSection {
		t.Errorf("Expected section height %v, got %v", wantSection, p.CardsSectionHeight())
	}
	if p.ReviewsTop() != p.CardsTop()+wantSection {
		t.Errorf("Expected reviews top %v, got %v", p.CardsTop()+wantSection, p.ReviewsTop())
	}
	if p.FooterTop() != p.ReviewsTop()+cfg.Page.ReviewsHeight {
		t.Errorf("Expected footer top %v, got %v", p.ReviewsTop()+cfg.Page.ReviewsHeight, p.FooterTop())
	}
	if p.PageHeight() != p.FooterTop()+cfg.Page.FooterHeight {
		t.Errorf("Expected page height %v, got %v", p.FooterTop()+cfg.Page.FooterHeight, p.PageHeight())
	}
}

// TestPageData_CardsTopEdge tests the pin predicate input: positive
// approaching, zero at the boundary, negative past it.
func TestPageData_CardsTopEdge(t *testing.T) {
	p := &PageData{ViewportW: 1280, ViewportH: 720}

	p.Offset = 0
	if p.CardsTopEdge() != p.CardsTop() {
		t.Errorf("Expected top edge %v at rest, got %v", p.CardsTop(), p.CardsTopEdge())
	}

	p.Offset = p.CardsTop()
	if p.CardsTopEdge() != 0 {
		t.Errorf("Expected top edge 0 at the pin boundary, got %v", p.CardsTopEdge())
	}

	p.Offset = p.CardsTop() + 300
	if p.CardsTopEdge() != -300 {
		t.Errorf("Expected top edge -300 past the boundary, got %v", p.CardsTopEdge())
	}
}

// TestPageData_CardsCanvasY tests the sticky canvas position piecewise:
// sliding up from below, held at zero through the animation distance,
// then leaving upward.
func TestPageData_CardsCanvasY(t *testing.T) {
	p := &PageData{ViewportW: 1280, ViewportH: 720}

	p.Offset = p.CardsTop() - 200
	if p.CardsCanvasY() != 200 {
		t.Errorf("Expected canvas approaching at 200, got %v", p.CardsCanvasY())
	}

	for _, into := range []float64{0, 1, cfg.Scroll.AnimationDistance / 2, cfg.Scroll.AnimationDistance} {
		p.Offset = p.CardsTop() + into
		if p.CardsCanvasY() != 0 {
			t.Errorf("Expected canvas pinned at 0 with %v into the section, got %v", into, p.CardsCanvasY())
		}
	}

	p.Offset = p.CardsTop() + cfg.Scroll.AnimationDistance + 150
	if p.CardsCanvasY() != -150 {
		t.Errorf("Expected canvas leaving at -150, got %v", p.CardsCanvasY())
	}
}

// TestPageData_MaxScroll tests the scroll clamp: the sticky section
// spans one viewport plus the animation distance, so the reachable
// range is the fixed section stack regardless of viewport height.
func TestPageData_MaxScroll(t *testing.T) {
	want := cfg.Page.HeroHeight + cfg.Scroll.AnimationDistance +
		cfg.Page.ReviewsHeight + cfg.Page.FooterHeight

	for _, vh := range []float64{480.0, 720.0, 1440.0} {
		p := &PageData{ViewportW: 1280, ViewportH: vh}
		if p.MaxScroll() != want {
			t.Errorf("Expected max scroll %v at viewport height %v, got %v", want, vh, p.MaxScroll())
		}
	}
}
