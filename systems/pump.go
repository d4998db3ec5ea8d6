package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// PumpEvents delivers queued notifications to their subscribers. Runs
// last so a click emitted this frame reaches page glue in the same
// frame.
func PumpEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
