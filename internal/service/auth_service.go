package service

import (
	"context"
	"errors"
	"time"

	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/security"
	"customer-notes-be/internal/repository/specification"
	"customer-notes-be/internal/repository/unitofwork"
	"customer-notes-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	credentials      *security.Credentials
	publisherService IPublisherService
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	credentials *security.Credentials,
	publisherService IPublisherService,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		credentials:      credentials,
		publisherService: publisherService,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Conflict category, surfaced as 400 per the auth API contract.
		return nil, apperror.New(apperror.CodeConflict, fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// A concurrent signup can slip between the lookup and the insert;
		// the unique index reports it the same way as the lookup would.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(apperror.CodeConflict, fiber.StatusBadRequest, "Email already registered")
		}
		return nil, err
	}

	_ = s.publisherService.Publish(ctx, events.BaseEvent{
		Type: events.UserRegistered,
		Data: map[string]interface{}{
			"user_id": user.Id,
			"email":   user.Email,
		},
		OccurredAt: time.Now(),
	})

	return &dto.SignupResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unknown email and wrong password respond identically.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil || !s.credentials.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.Unauthenticated("Invalid credentials")
	}

	token, err := s.credentials.IssueToken(user.Id)
	if err != nil {
		return nil, err
	}

	_ = s.publisherService.Publish(ctx, events.BaseEvent{
		Type: events.UserLogin,
		Data: map[string]interface{}{
			"user_id": user.Id,
		},
		OccurredAt: time.Now(),
	})

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
