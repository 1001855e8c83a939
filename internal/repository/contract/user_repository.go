package contract

import (
	"context"

	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// Delete reports whether a row existed. No endpoint exposes it; the
	// database-level cascade on dependent notes is exercised through it.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
