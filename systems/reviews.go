package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReviews drives the quote carousel: hold, fade out, advance,
// fade back in.
func UpdateReviews(e *ecs.ECS) {
	reviewsEntry, ok := components.Reviews.First(e.World)
	if !ok {
		return
	}
	r := components.Reviews.Get(reviewsEntry)

	n := len(cfg.Reviews.Reviews)
	if n == 0 {
		return
	}

	switch r.Phase {
	case components.ReviewHold:
		r.Alpha = 1
		r.Timer--
		if r.Timer <= 0 {
			r.Phase = components.ReviewFadeOut
			r.Fade = gween.New(1, 0, float32(cfg.Reviews.FadeSeconds), ease.OutQuad)
		}
	case components.ReviewFadeOut:
		v, done := r.Fade.Update(floatTickSeconds)
		r.Alpha = float64(v)
		if done {
			r.Index = (r.Index + 1) % n
			r.Phase = components.ReviewFadeIn
			r.Fade = gween.New(0, 1, float32(cfg.Reviews.FadeSeconds), ease.OutQuad)
		}
	case components.ReviewFadeIn:
		v, done := r.Fade.Update(floatTickSeconds)
		r.Alpha = float64(v)
		if done {
			r.Phase = components.ReviewHold
			r.Timer = cfg.Reviews.HoldFrames
			r.Fade = nil
		}
	}
}

// DrawReviews renders the carousel inside the reviews section.
func DrawReviews(e *ecs.ECS, screen *ebiten.Image) {
	reviewsEntry, ok := components.Reviews.First(e.World)
	if !ok {
		return
	}
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	r := components.Reviews.Get(reviewsEntry)
	page := components.Page.Get(pageEntry)

	if len(cfg.Reviews.Reviews) == 0 {
		return
	}

	y := page.ReviewsTop() - page.Offset
	if y > page.ViewportH || y+cfg.Page.ReviewsHeight < 0 {
		return
	}

	heading := "WHAT PEOPLE SAY"
	headingFont := fonts.Label.Get()
	hb := text.BoundString(headingFont, heading) //nolint:staticcheck
	text.Draw(screen, heading, headingFont,
		int((page.ViewportW-float64(hb.Dx()))/2),
		int(y+96),
		cfg.Page.HeadingColor)

	review := cfg.Reviews.Reviews[r.Index]
	quote := "\"" + review.Quote + "\""

	quoteFont := fonts.Label.Get()
	authorFont := fonts.Body.Get()

	qc := fadeColor(cfg.Page.HeadingColor, r.Alpha)
	ac := fadeColor(cfg.Page.BodyColor, r.Alpha)

	qb := text.BoundString(quoteFont, quote) //nolint:staticcheck
	text.Draw(screen, quote, quoteFont,
		int((page.ViewportW-float64(qb.Dx()))/2),
		int(y+cfg.Page.ReviewsHeight/2),
		qc)

	author := "- " + review.Author
	ab := text.BoundString(authorFont, author) //nolint:staticcheck
	text.Draw(screen, author, authorFont,
		int((page.ViewportW-float64(ab.Dx()))/2),
		int(y+cfg.Page.ReviewsHeight/2+40),
		ac)
}

func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
