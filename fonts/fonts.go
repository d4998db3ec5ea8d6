package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body    FontName = "body"
	Label   FontName = "label"
	Title   FontName = "title"
	Caption FontName = "caption"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load parses the bundled typeface at the sizes the page uses. Called
// once at startup before any scene runs.
func Load() {
	LoadFontWithSize(Body, goregular.TTF, 16)
	LoadFontWithSize(Label, goregular.TTF, 22)
	LoadFontWithSize(Title, goregular.TTF, 44)
	LoadFontWithSize(Caption, goregular.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
