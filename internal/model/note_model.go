package model

import (
	"time"

	"github.com/google/uuid"
)

// Note carries the FK constraints that make customer and user deletes
// cascade inside the database transaction instead of application fan-out.
type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Customer Customer `gorm:"foreignKey:CustomerId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     User     `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
