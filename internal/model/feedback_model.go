package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string         `gorm:"type:varchar(64);not null;index"`
	SKU       string         `gorm:"type:varchar(32);not null;index"`
	Action    string         `gorm:"type:varchar(16);not null"`
	Reason    string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
