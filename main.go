package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/fonts"
	"github.com/verdantco/showroom/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	SetBounds(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	fonts.Load()
	return &Game{
		scene: scenes.NewHomeScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	// Render at the real surface size; the scene re-derives camera and
	// section geometry whenever this changes.
	g.scene.SetBounds(width, height)
	return width, height
}

func main() {
	tuning := flag.String("tuning", "showroom.yaml", "optional YAML tuning overrides")
	flag.Parse()

	if err := cfg.LoadOverrides(*tuning); err != nil {
		log.Fatalf("Failed to load tuning overrides: %v", err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame()
	defer func() {
		if hs, ok := game.scene.(*scenes.HomeScene); ok {
			hs.Teardown()
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
