package contract

import (
	"context"

	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete reports whether a row existed; dependent notes go with it via
	// the FK cascade, inside the same transaction.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
