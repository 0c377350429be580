package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

type Feedback struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string
	SKU       string
	Action    string
	Reason    string
	CreatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
