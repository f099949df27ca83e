package service

import (
	"time"

	"github.com/ikkim/shop-api/internal/app/model"
)

type EventType string

const (
	EventItemCreated   EventType = "item.created"
	EventItemUpdated   EventType = "item.updated"
	EventItemPatched   EventType = "item.patched"
	EventItemDeleted   EventType = "item.deleted"
	EventCartCreated   EventType = "cart.created"
	EventCartItemAdded EventType = "cart.item_added"
)

// Event describes a successful mutation of the shop state.
type Event struct {
	Type       EventType   `json:"type"`
	Item       *model.Item `json:"item,omitempty"`
	Cart       *model.Cart `json:"cart,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventPublisher receives shop events. Publish is called while the shop lock
// is held and must not block.
type EventPublisher interface {
	Publish(event Event)
}
