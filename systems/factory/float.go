package factory

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/verdantco/showroom/archetypes"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatCards populates the backdrop with ambient orbiting cards.
// Parameters are spread deterministically over the configured ranges;
// the motion is decoration, it needs variety, not randomness.
func CreateFloatCards(e *ecs.ECS, st *stage.Stage) []*donburi.Entry {
	count := cfg.Float.Count
	entries := make([]*donburi.Entry, 0, count)

	tile := renderFloatTile()

	for i := 0; i < count; i++ {
		entry := archetypes.FloatCard.Spawn(e)

		t := 0.0
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		radius := cfg.Float.MinRadius + (cfg.Float.MaxRadius-cfg.Float.MinRadius)*t
		span := float32(cfg.Float.DriftSpan)
		period := float32(cfg.Float.DriftPeriod)

		drift := gween.NewSequence(
			gween.New(-span, span, period, ease.InOutSine),
			gween.New(span, -span, period, ease.InOutSine),
		)

		quad := st.CreateQuad(tile, tile, cfg.Float.CardW, cfg.Float.CardH, nil)

		components.Float.SetValue(entry, components.FloatData{
			Center: stage.Vec3{Z: -4 - 5*t},
			Radius: radius,
			Speed:  cfg.Float.BaseSpeed * (0.6 + 0.8*(1-t)),
			Angle:  t * 2 * math.Pi,
			Drift:  drift,
			Handle: quad,
		})
		entries = append(entries, entry)
	}
	return entries
}

func renderFloatTile() *ebiten.Image {
	w := int(cfg.Float.CardW * texelsPerUnit)
	h := int(cfg.Float.CardH * texelsPerUnit)
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.Deck.BackColor)
	return img
}
