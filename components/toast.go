package components

import "github.com/yohamta/donburi"

// ToastData is a singleton timed popup, shown when a category card is
// selected.
type ToastData struct {
	Text  string
	Timer int // frames remaining, 0 = hidden
}

var Toast = donburi.NewComponentType[ToastData]()
