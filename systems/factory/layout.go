package factory

// SpreadX returns the final spread-row X for a card: symmetric about
// the section's horizontal center and monotonically ordered by index.
func SpreadX(index, count int, spacing float64) float64 {
	return (float64(index) - float64(count-1)/2) * spacing
}

// StackElevation returns the static per-card pile depth. The gap stays
// small; it only exists so stacked cards don't z-fight.
func StackElevation(index int, gap float64) float64 {
	return float64(index) * gap
}
