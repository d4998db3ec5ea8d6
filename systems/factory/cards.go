package factory

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/verdantco/showroom/archetypes"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/fonts"
	"github.com/verdantco/showroom/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Texture resolution per stage unit. Faces are generated, not loaded;
// asset pipelines are page-glue territory.
const texelsPerUnit = 50

// CreateCategoryCards builds the card deck: one entity plus one stage
// quad per category, stacked back-face-up at the pile position with
// spread targets symmetric about the center.
func CreateCategoryCards(e *ecs.ECS, st *stage.Stage) []*donburi.Entry {
	count := len(cfg.Deck.Categories)
	back := renderCardBack()

	entries := make([]*donburi.Entry, 0, count)
	for i, label := range cfg.Deck.Categories {
		entry := archetypes.CategoryCard.Spawn(e)

		face := renderCardFace(label, faceColor(i))
		quad := st.CreateQuad(face, back, cfg.Deck.CardW, cfg.Deck.CardH, entry.Entity())

		components.Card.SetValue(entry, components.CardData{
			Index:           i,
			Label:           label,
			InitialPosition: stage.Vec3{},
			TargetPosition:  stage.Vec3{X: SpreadX(i, count, cfg.Deck.Spacing)},
			InitialRotation: math.Pi,
			TargetRotation:  0,
			BaseElevation:   StackElevation(i, cfg.Deck.StackGap),
			HoverScale:      1.0,
			HoverElevation:  0.0,
			Handle:          quad,
		})
		entries = append(entries, entry)
	}
	return entries
}

func faceColor(index int) color.RGBA {
	if len(cfg.Deck.FaceColors) == 0 {
		return cfg.Moss
	}
	return cfg.Deck.FaceColors[index%len(cfg.Deck.FaceColors)]
}

func renderCardFace(label string, clr color.RGBA) *ebiten.Image {
	w := int(cfg.Deck.CardW * texelsPerUnit)
	h := int(cfg.Deck.CardH * texelsPerUnit)
	img := ebiten.NewImage(w, h)
	img.Fill(clr)

	vector.StrokeRect(img, 6, 6, float32(w-12), float32(h-12), 2, cfg.White, false)

	face := fonts.Label.Get()
	lines := wrapLabel(label, w-32)
	baseY := h - 40 - (len(lines)-1)*28
	for i, line := range lines {
		bounds := text.BoundString(face, line) //nolint:staticcheck
		x := (w - bounds.Dx()) / 2
		text.Draw(img, line, face, x, baseY+i*28, cfg.White)
	}
	return img
}

func renderCardBack() *ebiten.Image {
	w := int(cfg.Deck.CardW * texelsPerUnit)
	h := int(cfg.Deck.CardH * texelsPerUnit)
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.Deck.BackColor)

	vector.StrokeRect(img, 6, 6, float32(w-12), float32(h-12), 2, cfg.Fern, false)

	mark := "V&Co"
	face := fonts.Label.Get()
	bounds := text.BoundString(face, mark) //nolint:staticcheck
	text.Draw(img, mark, face, (w-bounds.Dx())/2, h/2, cfg.Fern)
	return img
}

// wrapLabel splits a label into lines that fit the card face width.
func wrapLabel(label string, maxWidth int) []string {
	face := fonts.Label.Get()
	words := strings.Fields(label)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		joined := current + " " + word
		if text.BoundString(face, joined).Dx() > maxWidth { //nolint:staticcheck
			lines = append(lines, current)
			current = word
		} else {
			current = joined
		}
	}
	return append(lines, current)
}
