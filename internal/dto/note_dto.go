package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type NoteResponse struct {
	Id         uuid.UUID `json:"id"`
	CustomerId uuid.UUID `json:"customer_id"`
	UserId     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListNotesQuery carries already-validated pagination and filter knobs.
type ListNotesQuery struct {
	Limit  int
	Offset int
	Search string
}

type NoteListResponse struct {
	Items   []*NoteResponse `json:"items"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	HasMore bool            `json:"has_more"`
}
