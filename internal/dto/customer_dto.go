package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateCustomerEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CustomerResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
