package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	CustomerId uuid.UUID
	UserId     uuid.UUID
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
