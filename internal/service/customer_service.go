package service

import (
	"context"
	"errors"
	"time"

	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/repository/specification"
	"customer-notes-be/internal/repository/unitofwork"
	"customer-notes-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ICustomerService interface {
	// Create is idempotent by email: colliding with an existing customer
	// returns that row and created=false instead of a conflict.
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (res *dto.CustomerResponse, created bool, err error)
	List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerEmailRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCustomerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ICustomerService {
	return &customerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer := entity.Customer{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	err := uow.CustomerRepository().Create(ctx, &customer)
	if err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, err
		}
		existing, findErr := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if findErr != nil {
			return nil, false, findErr
		}
		if existing == nil {
			// Row vanished between the violation and the lookup.
			return nil, false, err
		}
		return toCustomerResponse(existing), false, nil
	}

	return toCustomerResponse(&customer), true, nil
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		result[i] = toCustomerResponse(customer)
	}
	return result, nil
}

func (s *customerService) Show(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer not found")
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) UpdateEmail(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerEmailRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer not found")
	}

	customer.Email = req.Email
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Email already in use")
		}
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The FK cascade removes dependent notes inside the same transaction.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	existed, err := uow.CustomerRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return apperror.NotFound("Customer not found")
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.Publish(ctx, events.BaseEvent{
		Type: events.CustomerDeleted,
		Data: map[string]interface{}{
			"customer_id": id,
		},
		OccurredAt: time.Now(),
	})

	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
