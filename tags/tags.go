package tags

import "github.com/yohamta/donburi"

var (
	CategoryCard = donburi.NewTag().SetName("CategoryCard")
	FloatCard    = donburi.NewTag().SetName("FloatCard")
	CardStage    = donburi.NewTag().SetName("CardStage")
	Backdrop     = donburi.NewTag().SetName("Backdrop")
)
