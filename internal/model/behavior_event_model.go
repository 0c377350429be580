package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BehaviorEvent struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string         `gorm:"type:varchar(64);not null;index"`
	Action    string         `gorm:"type:varchar(16);not null"`
	SKU       string         `gorm:"type:varchar(32);index"`
	Category  string         `gorm:"type:varchar(32)"`
	Tags      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (BehaviorEvent) TableName() string {
	return "behavior_events"
}
