package components

import (
	"github.com/verdantco/showroom/stage"
	"github.com/yohamta/donburi"
)

// StageData wraps one rendering backend instance. The home scene owns
// two: the foreground card stage and the background float stage.
type StageData struct {
	Stage *stage.Stage
}

var Stage = donburi.NewComponentType[StageData]()
