// Package events defines the notifications the card showcase emits for
// page glue to consume.
package events

import "github.com/yohamta/donburi/features/events"

// CardSelected fires at most once per qualifying click: interactions
// enabled and a card under the pointer.
type CardSelected struct {
	Category string
	Index    int
}

var CardSelectedEvent = events.NewEventType[CardSelected]()
