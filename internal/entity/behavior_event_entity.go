package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	BehaviorActionView  = "view"
	BehaviorActionClick = "click"
)

// BehaviorEvent is one implicit signal (a view or a click) on a menu item.
// Orders carry the explicit signals and live in their own table.
type BehaviorEvent struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string
	Action    string
	SKU       string
	Category  string
	Tags      []string
	CreatedAt time.Time
}
