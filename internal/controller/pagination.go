package controller

import (
	"fmt"
	"strconv"

	"customer-notes-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// parsePagination reads the limit/offset query knobs. Out-of-range and
// non-numeric values are rejected at the boundary so services only ever
// see sane windows.
func parsePagination(ctx *fiber.Ctx) (limit, offset int, err error) {
	limit = defaultLimit
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, apperror.Validation(fmt.Sprintf("limit must be an integer, got %q", raw))
		}
	}
	if limit < 1 || limit > maxLimit {
		return 0, 0, apperror.Validation(fmt.Sprintf("limit must be between 1 and %d", maxLimit))
	}

	if raw := ctx.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, apperror.Validation(fmt.Sprintf("offset must be an integer, got %q", raw))
		}
	}
	if offset < 0 {
		return 0, 0, apperror.Validation("offset must be greater than or equal to 0")
	}

	return limit, offset, nil
}
