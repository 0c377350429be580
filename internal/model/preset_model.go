package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Preset struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       string         `gorm:"type:varchar(64);not null;index"`
	Name         string         `gorm:"type:varchar(64);not null"`
	Temperature  string         `gorm:"type:varchar(16)"`
	CupSize      string         `gorm:"type:varchar(16)"`
	SugarLevel   string         `gorm:"type:varchar(16)"`
	MilkType     string         `gorm:"type:varchar(16)"`
	ExtraShot    bool           `gorm:"default:false"`
	WhippedCream bool           `gorm:"default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Preset) TableName() string {
	return "presets"
}
