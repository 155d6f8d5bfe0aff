package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudySession struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Type      string         `gorm:"type:text;not null;index"`
	Title     string         `gorm:"type:text;not null"`
	Result    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
