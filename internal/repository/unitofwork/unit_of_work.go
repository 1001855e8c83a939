package unitofwork

import (
	"context"

	"customer-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CustomerRepository() contract.CustomerRepository
	NoteRepository() contract.NoteRepository
}
