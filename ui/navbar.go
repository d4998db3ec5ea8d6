package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NavBar is the fixed top navigation: brand mark on the left, section
// links on the right. Clicking a link hands a scroll destination back
// to the scene through the callbacks.
type NavBar struct {
	UI *ebitenui.UI

	OnHome    func()
	OnBrowse  func()
	OnReviews func()

	brandFace text.Face
	linkFace  text.Face
}

func NewNavBar(onHome, onBrowse, onReviews func()) *NavBar {
	nb := &NavBar{
		OnHome:    onHome,
		OnBrowse:  onBrowse,
		OnReviews: onReviews,
	}

	nb.loadFonts()
	nb.buildUI()

	return nb
}

func (nb *NavBar) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	nb.brandFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	nb.linkFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (nb *NavBar) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{12, 18, 14, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	brand := widget.NewLabel(
		widget.LabelOpts.Text("VERDANT & CO.", &nb.brandFace, &widget.LabelColor{
			Idle: color.RGBA{245, 247, 244, 255},
		}),
	)
	bar.AddChild(brand)

	bar.AddChild(nb.linkButton("Home", func() {
		if nb.OnHome != nil {
			nb.OnHome()
		}
	}))
	bar.AddChild(nb.linkButton("Browse", func() {
		if nb.OnBrowse != nil {
			nb.OnBrowse()
		}
	}))
	bar.AddChild(nb.linkButton("Reviews", func() {
		if nb.OnReviews != nil {
			nb.OnReviews()
		}
	}))

	rootContainer.AddChild(bar)

	nb.UI = &ebitenui.UI{Container: rootContainer}
}

func (nb *NavBar) linkButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 24),
		),
		widget.ButtonOpts.Image(nb.buttonImage()),
		widget.ButtonOpts.Text(label, &nb.linkFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{208, 216, 208, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{170, 186, 170, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (nb *NavBar) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{26, 36, 28, 255})
	hover := image.NewNineSliceColor(color.RGBA{40, 56, 44, 255})
	pressed := image.NewNineSliceColor(color.RGBA{18, 26, 20, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
