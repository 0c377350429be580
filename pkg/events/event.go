package events

import "time"

// Event is the contract for everything published on the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "ORDER_PLACED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation the typed constructors below build.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes.
const (
	TypeOrderPlaced        = "ORDER_PLACED"
	TypeFeedbackRecorded   = "FEEDBACK_RECORDED"
	TypeExperimentExposure = "EXPERIMENT_EXPOSURE"
)

// NewOrderPlaced signals a completed order, which feeds the behavior profile
// rebuild.
func NewOrderPlaced(orderID, userID string, skus []string, total float64) Event {
	return BaseEvent{
		Type: TypeOrderPlaced,
		Data: map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
			"skus":     skus,
			"total":    total,
		},
		OccurredAt: time.Now(),
	}
}

// NewFeedbackRecorded signals explicit like/dislike feedback on a menu item.
func NewFeedbackRecorded(userID, sku, action string) Event {
	return BaseEvent{
		Type: TypeFeedbackRecorded,
		Data: map[string]interface{}{
			"user_id": userID,
			"sku":     sku,
			"action":  action,
		},
		OccurredAt: time.Now(),
	}
}

// NewExperimentExposure records that a user saw a ranked result from a
// specific experiment variant.
func NewExperimentExposure(experimentID, userID, variant string) Event {
	return BaseEvent{
		Type: TypeExperimentExposure,
		Data: map[string]interface{}{
			"experiment_id": experimentID,
			"user_id":       userID,
			"variant":       variant,
		},
		OccurredAt: time.Now(),
	}
}
