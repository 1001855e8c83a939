package serverutils

import (
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/security"
	"customer-notes-be/internal/repository/specification"
	"customer-notes-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

const (
	UserIdKey      = "user_id"
	CurrentUserKey = "current_user"
)

// NewAuthMiddleware resolves a bearer token to a caller identity. Missing
// or malformed headers, invalid/expired tokens and tokens whose subject no
// longer exists all collapse to the same unauthenticated outcome.
func NewAuthMiddleware(creds *security.Credentials, uowFactory unitofwork.RepositoryFactory) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return apperror.Unauthenticated("Not authenticated")
		}

		subject, err := creds.ValidateToken(authHeader[7:])
		if err != nil {
			return apperror.Unauthenticated("Invalid or expired token")
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: subject})
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.Unauthenticated("User not found")
		}

		ctx.Locals(UserIdKey, user.Id.String())
		ctx.Locals(CurrentUserKey, user)
		return ctx.Next()
	}
}
