package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ScrollConfig contains page scrolling and progress-mapping values
type ScrollConfig struct {
	// AnimationDistance is the scroll distance in pixels that maps the
	// sticky card section from progress 0 to 1.
	AnimationDistance float64

	WheelSpeed float64 // pixels of scroll target per wheel notch
	KeyStep    float64 // pixels per arrow key press
	Smoothing  float64 // offset chase factor per frame (0.0-1.0)
}

// PhaseConfig contains the flip/spread phase split
type PhaseConfig struct {
	// FlipEnd is the share of scroll progress spent flipping; the
	// spread phase covers the remainder. Interactions unlock when the
	// raw flip ratio reaches 1.
	FlipEnd float64
}

// DeckConfig describes the category card set and its layout. The
// numeric constants here are tuning, not contract; ship pages have
// drifted them between revisions.
type DeckConfig struct {
	Categories []string

	CardW   float64 // stage units
	CardH   float64 // stage units
	Spacing float64 // horizontal gap between spread targets, stage units
	// StackGap is the per-index depth offset in the initial pile,
	// kept small so stacked cards don't z-fight.
	StackGap float64

	FaceColors []color.RGBA
	BackColor  color.RGBA
}

// HoverConfig contains hover feedback tuning
type HoverConfig struct {
	ScaleTarget float64 // uniform scale while hovered
	Lift        float64 // elevation offset toward the camera, stage units
	Smoothing   float64 // exponential approach factor per frame
}

// StageConfig contains camera projection values
type StageConfig struct {
	FocalLength    float64 // pixels per stage unit at distance 1
	CameraDistance float64 // stage units
}

// PageConfig contains the homepage section layout, in pixels
type PageConfig struct {
	HeroHeight    float64
	ReviewsHeight float64
	FooterHeight  float64

	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	HeadingColor    color.RGBA
	BodyColor       color.RGBA

	HeroTitle    string
	HeroSubtitle string
	FooterText   string
}

// FloatConfig contains the ambient background card tuning
type FloatConfig struct {
	Count       int
	MinRadius   float64
	MaxRadius   float64
	BaseSpeed   float64 // radians per frame
	ScrollBoost float64 // extra speed per smoothed scroll pixel/frame
	DriftSpan   float64 // vertical drift amplitude, stage units
	DriftPeriod float64 // seconds for one drift leg
	SpinRate    float64 // card spin per orbit radian
	CardW       float64
	CardH       float64
}

// Review is one carousel quote
type Review struct {
	Quote  string
	Author string
}

// ReviewsConfig contains the review carousel tuning
type ReviewsConfig struct {
	Reviews     []Review
	HoldFrames  int     // frames a quote stays fully visible
	FadeSeconds float64 // fade out/in duration
}

// ToastConfig contains the selection toast popup tuning
type ToastConfig struct {
	DisplayDuration int // frames
	BoxPadding      float64
	TopMargin       float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
}

// Global configuration instances
var C *Config
var Scroll ScrollConfig
var Phase PhaseConfig
var Deck DeckConfig
var Hover HoverConfig
var Stage StageConfig
var Page PageConfig
var Float FloatConfig
var Reviews ReviewsConfig
var Toast ToastConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 245, G: 247, B: 244, A: 255}
	Ink   = color.RGBA{R: 28, G: 34, B: 30, A: 255}
	Moss  = color.RGBA{R: 64, G: 110, B: 76, A: 255}
	Fern  = color.RGBA{R: 104, G: 156, B: 104, A: 255}
	Clay  = color.RGBA{R: 190, G: 120, B: 84, A: 255}
	Sand  = color.RGBA{R: 214, G: 196, B: 158, A: 255}
	Slate = color.RGBA{R: 96, G: 110, B: 118, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Verdant & Co.",
	}

	Scroll = ScrollConfig{
		AnimationDistance: 1200,
		WheelSpeed:        48,
		KeyStep:           64,
		Smoothing:         0.18,
	}

	Phase = PhaseConfig{
		FlipEnd: 0.4,
	}

	Deck = DeckConfig{
		Categories: []string{
			"Indoor Plants",
			"Outdoor",
			"Pots & Planters",
			"Care Tools",
			"Gifts",
		},
		CardW:    4.4,
		CardH:    6.0,
		Spacing:  5.0,
		StackGap: 0.02,
		FaceColors: []color.RGBA{
			Moss,
			Fern,
			Clay,
			Slate,
			Sand,
		},
		BackColor: color.RGBA{R: 38, G: 52, B: 42, A: 255},
	}

	Hover = HoverConfig{
		ScaleTarget: 1.1,
		Lift:        1.5,
		Smoothing:   0.15,
	}

	Stage = StageConfig{
		FocalLength:    420,
		CameraDistance: 10,
	}

	Page = PageConfig{
		HeroHeight:    720,
		ReviewsHeight: 560,
		FooterHeight:  320,

		BackgroundColor: color.RGBA{R: 16, G: 22, B: 18, A: 255},
		PanelColor:      color.RGBA{R: 22, G: 30, B: 24, A: 200},
		HeadingColor:    White,
		BodyColor:       color.RGBA{R: 188, G: 198, B: 188, A: 255},

		HeroTitle:    "VERDANT & CO.",
		HeroSubtitle: "Everything your plants have been asking for",
		FooterText:   "Verdant & Co. - grown with patience",
	}

	Float = FloatConfig{
		Count:       8,
		MinRadius:   4.0,
		MaxRadius:   9.0,
		BaseSpeed:   0.004,
		ScrollBoost: 0.0009,
		DriftSpan:   0.8,
		DriftPeriod: 3.0,
		SpinRate:    0.5,
		CardW:       2.2,
		CardH:       3.0,
	}

	Reviews = ReviewsConfig{
		Reviews: []Review{
			{Quote: "My monstera has never looked happier.", Author: "Priya S."},
			{Quote: "Fast shipping and the pots are gorgeous.", Author: "Daniel K."},
			{Quote: "The care guide alone is worth it.", Author: "Mara L."},
			{Quote: "Bought a gift set, kept it for myself.", Author: "Tom W."},
		},
		HoldFrames:  240,
		FadeSeconds: 0.5,
	}

	Toast = ToastConfig{
		DisplayDuration: 180,
		BoxPadding:      10,
		TopMargin:       84,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
	}
}
