package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
