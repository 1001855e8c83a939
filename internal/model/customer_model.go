package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Customer) TableName() string {
	return "customers"
}
