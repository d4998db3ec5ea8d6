package systems

import (
	"testing"

	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/systems/factory"
)

// fadeFrames is enough frames to complete one fade leg with margin.
func fadeFrames() int {
	return int(cfg.Reviews.FadeSeconds*60) + 5
}

// TestUpdateReviews_CycleAdvancesIndex tests one full carousel cycle:
// hold, fade out, index advance, fade back in, hold again.
func TestUpdateReviews_CycleAdvancesIndex(t *testing.T) {
	e, _, _, _, _ := newTestWorld()
	r := components.Reviews.Get(factory.CreateReviews(e))

	if r.Phase != components.ReviewHold || r.Timer != cfg.Reviews.HoldFrames {
		t.Fatalf("Expected a fresh hold phase, got phase=%v timer=%d", r.Phase, r.Timer)
	}

	for i := 0; i < cfg.Reviews.HoldFrames; i++ {
		UpdateReviews(e)
	}
	if r.Phase != components.ReviewFadeOut {
		t.Fatalf("Expected fade out after the hold, got %v", r.Phase)
	}

	for i := 0; i < fadeFrames() && r.Phase == components.ReviewFadeOut; i++ {
		UpdateReviews(e)
	}
	if r.Phase != components.ReviewFadeIn {
		t.Fatalf("Expected fade in after fade out, got %v", r.Phase)
	}
	if r.Index != 1 {
		t.Errorf("Expected index advanced to 1, got %d", r.Index)
	}

	for i := 0; i < fadeFrames() && r.Phase == components.ReviewFadeIn; i++ {
		UpdateReviews(e)
	}
	if r.Phase != components.ReviewHold {
		t.Fatalf("Expected hold after fade in, got %v", r.Phase)
	}
	if r.Timer != cfg.Reviews.HoldFrames {
		t.Errorf("Expected hold timer reset to %d, got %d", cfg.Reviews.HoldFrames, r.Timer)
	}
	if r.Fade != nil {
		t.Error("Expected fade tween released while holding")
	}
}

// TestUpdateReviews_AlphaStaysNormalized tests that the fade alpha
// never leaves [0,1] across several full cycles.
func TestUpdateReviews_AlphaStaysNormalized(t *testing.T) {
	e, _, _, _, _ := newTestWorld()
	r := components.Reviews.Get(factory.CreateReviews(e))

	cycle := cfg.Reviews.HoldFrames + 2*fadeFrames()
	for i := 0; i < cycle*3; i++ {
		UpdateReviews(e)
		if r.Alpha < 0 || r.Alpha > 1 {
			t.Fatalf("Alpha out of range at frame %d: %v", i, r.Alpha)
		}
	}
}

// TestUpdateReviews_IndexWraps tests that the carousel wraps back to
// the first quote after the last.
func TestUpdateReviews_IndexWraps(t *testing.T) {
	e, _, _, _, _ := newTestWorld()
	r := components.Reviews.Get(factory.CreateReviews(e))
	n := len(cfg.Reviews.Reviews)
	r.Index = n - 1

	r.Timer = 1
	for i := 0; i < 1+fadeFrames() && r.Index == n-1; i++ {
		UpdateReviews(e)
	}
	if r.Index != 0 {
		t.Errorf("Expected index wrapped to 0, got %d", r.Index)
	}
}
