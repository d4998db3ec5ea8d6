package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/fonts"
	"github.com/verdantco/showroom/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePage advances the smoothed scroll offset toward its target and
// slides the card stage's viewport origin to match the sticky section.
func UpdatePage(e *ecs.ECS) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)

	prev := page.Offset
	page.Offset += (page.Target - page.Offset) * cfg.Scroll.Smoothing
	if math.Abs(page.Target-page.Offset) < 0.1 {
		page.Offset = page.Target
	}

	// Low-pass the scroll speed for the ambient backdrop.
	speed := math.Abs(page.Offset - prev)
	page.SmoothedSpeed += (speed - page.SmoothedSpeed) * 0.1

	// The sticky card canvas travels with the page until it pins.
	if stageEntry, ok := tags.CardStage.First(e.World); ok {
		st := components.Stage.Get(stageEntry)
		st.Stage.Camera.OriginY = page.CardsCanvasY()
	}
}

// DrawPage renders the static page sections: hero, section panels and
// footer. The card and backdrop stages draw separately.
func DrawPage(e *ecs.ECS, screen *ebiten.Image) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)

	drawHero(screen, page)
	drawFooter(screen, page)
}

func drawHero(screen *ebiten.Image, page *components.PageData) {
	y := -page.Offset
	if y+cfg.Page.HeroHeight < 0 || y > page.ViewportH {
		return
	}

	titleFont := fonts.Title.Get()
	bodyFont := fonts.Label.Get()

	titleBounds := text.BoundString(titleFont, cfg.Page.HeroTitle) //nolint:staticcheck
	titleX := int((page.ViewportW - float64(titleBounds.Dx())) / 2)
	titleY := int(y + cfg.Page.HeroHeight*0.42)
	text.Draw(screen, cfg.Page.HeroTitle, titleFont, titleX, titleY, cfg.Page.HeadingColor)

	subBounds := text.BoundString(bodyFont, cfg.Page.HeroSubtitle) //nolint:staticcheck
	subX := int((page.ViewportW - float64(subBounds.Dx())) / 2)
	text.Draw(screen, cfg.Page.HeroSubtitle, bodyFont, subX, titleY+48, cfg.Page.BodyColor)

	hint := "scroll to browse"
	hintFont := fonts.Caption.Get()
	hintBounds := text.BoundString(hintFont, hint) //nolint:staticcheck
	text.Draw(screen, hint, hintFont,
		int((page.ViewportW-float64(hintBounds.Dx()))/2),
		int(y+cfg.Page.HeroHeight-48),
		cfg.Page.BodyColor)
}

func drawFooter(screen *ebiten.Image, page *components.PageData) {
	y := page.FooterTop() - page.Offset
	if y > page.ViewportH || y+cfg.Page.FooterHeight < 0 {
		return
	}

	vector.FillRect(
		screen,
		0, float32(y),
		float32(page.ViewportW), float32(cfg.Page.FooterHeight),
		cfg.Page.PanelColor,
		false,
	)

	bodyFont := fonts.Body.Get()
	bounds := text.BoundString(bodyFont, cfg.Page.FooterText) //nolint:staticcheck
	text.Draw(screen, cfg.Page.FooterText, bodyFont,
		int((page.ViewportW-float64(bounds.Dx()))/2),
		int(y+cfg.Page.FooterHeight/2),
		cfg.Page.BodyColor)
}
