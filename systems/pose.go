package systems

import (
	"github.com/verdantco/showroom/components"
	cfg "github.com/verdantco/showroom/config"
	"github.com/verdantco/showroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCardPoses resolves every category card's per-frame pose from
// the eased phase values and commits it to the rendering backend.
//
// Hover feedback is smoothed unconditionally every frame, whatever the
// scroll phase: each value chases its target exponentially, so a card
// that loses hover mid-flip still settles back to rest.
func UpdateCardPoses(e *ecs.ECS) {
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	hoverEntry, ok := components.Hover.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(progressEntry)
	hover := components.Hover.Get(hoverEntry)

	tags.CategoryCard.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)

		hovered := progress.InteractionsEnabled &&
			hover.HasHovered && hover.Hovered == entry.Entity()

		scaleTarget := 1.0
		liftTarget := 0.0
		if hovered {
			scaleTarget = cfg.Hover.ScaleTarget
			liftTarget = cfg.Hover.Lift
		}
		card.HoverScale += (scaleTarget - card.HoverScale) * cfg.Hover.Smoothing
		card.HoverElevation += (liftTarget - card.HoverElevation) * cfg.Hover.Smoothing

		rotation := card.InitialRotation +
			(card.TargetRotation-card.InitialRotation)*progress.FlipEased

		position := card.InitialPosition
		position.X += (card.TargetPosition.X - position.X) * progress.SpreadEased
		position.Z = card.BaseElevation + card.HoverElevation

		if card.Handle != nil {
			card.Handle.SetPose(position, rotation, card.HoverScale)
		}
	})
}
