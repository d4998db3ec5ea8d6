package systems

import (
	"math"
	"testing"

	cfg "github.com/verdantco/showroom/config"
)

// TestUpdatePhases_ClampedOverSweep tests that both eased phase values
// stay inside [0,1] for any progress, including out-of-range inputs.
func TestUpdatePhases_ClampedOverSweep(t *testing.T) {
	e, _, progress, _, _ := newTestWorld()

	for p := -0.25; p <= 1.25; p += 0.01 {
		progress.ScrollProgress = p
		UpdatePhases(e)

		if progress.FlipEased < 0 || progress.FlipEased > 1 {
			t.Fatalf("FlipEased out of range at p=%v: %v", p, progress.FlipEased)
		}
		if progress.SpreadEased < 0 || progress.SpreadEased > 1 {
			t.Fatalf("SpreadEased out of range at p=%v: %v", p, progress.SpreadEased)
		}
	}
}

// TestUpdatePhases_SpreadWaitsForFlip tests the phase ordering: spread
// stays at exactly zero until the flip sub-phase completes.
func TestUpdatePhases_SpreadWaitsForFlip(t *testing.T) {
	e, _, progress, _, _ := newTestWorld()

	for _, p := range []float64{0, 0.1, 0.25, 0.39, 0.4} {
		progress.ScrollProgress = p
		UpdatePhases(e)
		if progress.SpreadEased != 0 {
			t.Errorf("Expected SpreadEased=0 at p=%v, got %v", p, progress.SpreadEased)
		}
	}

	progress.ScrollProgress = cfg.Phase.FlipEnd
	UpdatePhases(e)
	if progress.FlipEased != 1 {
		t.Errorf("Expected FlipEased=1 at flip end, got %v", progress.FlipEased)
	}

	for _, p := range []float64{0.41, 0.7, 1.0} {
		progress.ScrollProgress = p
		UpdatePhases(e)
		if progress.FlipEased != 1 {
			t.Errorf("Expected FlipEased=1 at p=%v, got %v", p, progress.FlipEased)
		}
	}

	progress.ScrollProgress = 1
	UpdatePhases(e)
	if progress.SpreadEased != 1 {
		t.Errorf("Expected SpreadEased=1 at p=1, got %v", progress.SpreadEased)
	}
}

// TestUpdatePhases_InteractionBoundary tests that interactions unlock
// exactly when the raw flip ratio reaches 1 and not a frame earlier.
func TestUpdatePhases_InteractionBoundary(t *testing.T) {
	e, _, progress, _, _ := newTestWorld()

	progress.ScrollProgress = 0.399
	UpdatePhases(e)
	if progress.InteractionsEnabled {
		t.Error("Expected interactions disabled just below the flip boundary")
	}

	progress.ScrollProgress = cfg.Phase.FlipEnd
	UpdatePhases(e)
	if !progress.InteractionsEnabled {
		t.Error("Expected interactions enabled at the flip boundary")
	}

	progress.ScrollProgress = 1
	UpdatePhases(e)
	if !progress.InteractionsEnabled {
		t.Error("Expected interactions enabled at p=1")
	}
}

// TestUpdatePhases_DegenerateFlipEnd tests the flip split at its two
// degenerate configurations: no flip share, and all flip share.
func TestUpdatePhases_DegenerateFlipEnd(t *testing.T) {
	e, _, progress, _, _ := newTestWorld()
	saved := cfg.Phase.FlipEnd
	defer func() { cfg.Phase.FlipEnd = saved }()

	cfg.Phase.FlipEnd = 0
	progress.ScrollProgress = 0
	UpdatePhases(e)
	if progress.FlipEased != 1 || !progress.InteractionsEnabled {
		t.Errorf("Expected flip pre-completed with FlipEnd=0, got eased=%v enabled=%v",
			progress.FlipEased, progress.InteractionsEnabled)
	}

	cfg.Phase.FlipEnd = 1
	progress.ScrollProgress = 0.8
	UpdatePhases(e)
	if progress.SpreadEased != 0 {
		t.Errorf("Expected no spread with FlipEnd=1, got %v", progress.SpreadEased)
	}
	if progress.InteractionsEnabled {
		t.Error("Expected interactions disabled before a full-length flip completes")
	}
	progress.ScrollProgress = 1
	UpdatePhases(e)
	if !progress.InteractionsEnabled {
		t.Error("Expected interactions enabled once the full-length flip completes")
	}
}

// TestEaseInOutCubic_Curve tests the response curve against its closed
// form: 4t^3 below the midpoint, 1-(-2t+2)^3/2 above it.
func TestEaseInOutCubic_Curve(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.25, 4 * 0.25 * 0.25 * 0.25},
		{0.5, 0.5},
		{0.75, 1 - math.Pow(-2*0.75+2, 3)/2},
		{1, 1},
	}
	for _, tt := range tests {
		got := easeInOutCubic(tt.in)
		if math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("easeInOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestUpdatePhases_SnapBackDisablesInteractions tests that a snap back
// to progress 0 kills interaction enablement in the same frame.
func TestUpdatePhases_SnapBackDisablesInteractions(t *testing.T) {
	e, page, progress, _, _ := newTestWorld()

	page.Offset = page.CardsTop()
	UpdateScrollProgress(e)
	page.Offset = page.CardsTop() + cfg.Scroll.AnimationDistance
	UpdateScrollProgress(e)
	UpdatePhases(e)
	if !progress.InteractionsEnabled {
		t.Fatal("Expected interactions enabled at full progress")
	}

	page.Offset = 0
	UpdateScrollProgress(e)
	UpdatePhases(e)
	if progress.ScrollProgress != 0 {
		t.Errorf("Expected progress snapped to 0, got %v", progress.ScrollProgress)
	}
	if progress.InteractionsEnabled {
		t.Error("Expected interactions disabled after snap back")
	}
	if progress.SpreadEased != 0 || progress.FlipEased != 0 {
		t.Errorf("Expected both phases at rest, got flip=%v spread=%v",
			progress.FlipEased, progress.SpreadEased)
	}
}

// TestUpdatePhases_Monotonic tests that both eased values are
// non-decreasing in progress.
func TestUpdatePhases_Monotonic(t *testing.T) {
	e, _, progress, _, _ := newTestWorld()

	prevFlip, prevSpread := -1.0, -1.0
	for p := 0.0; p <= 1.0; p += 0.005 {
		progress.ScrollProgress = p
		UpdatePhases(e)
		if progress.FlipEased < prevFlip {
			t.Fatalf("FlipEased decreased at p=%v: %v < %v", p, progress.FlipEased, prevFlip)
		}
		if progress.SpreadEased < prevSpread {
			t.Fatalf("SpreadEased decreased at p=%v: %v < %v", p, progress.SpreadEased, prevSpread)
		}
		prevFlip, prevSpread = progress.FlipEased, progress.SpreadEased
	}
}
