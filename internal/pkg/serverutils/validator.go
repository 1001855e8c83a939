package serverutils

import (
	"customer-notes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and maps failures to the
// validation_failed taxonomy (422).
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}
