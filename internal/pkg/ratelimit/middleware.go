package ratelimit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
)

// exemptPaths bypass counting and rejection but still receive
// informational headers reflecting full quota.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
	"/version": {},
}

// Middleware rejects over-quota clients before any handler work. Every
// response carries the configured limit and the remaining quota; rejected
// responses add Retry-After equal to the window length.
func Middleware(l *Limiter) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Set(HeaderLimit, strconv.Itoa(l.Limit()))

		if _, exempt := exemptPaths[ctx.Path()]; exempt {
			ctx.Set(HeaderRemaining, strconv.Itoa(l.Limit()))
			return ctx.Next()
		}

		allowed, remaining := l.Allow(clientID(ctx))
		ctx.Set(HeaderRemaining, strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(l.Window().Seconds())
			ctx.Set("Retry-After", strconv.Itoa(retryAfter))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Rate Limit Exceeded",
				"message":     fmt.Sprintf("Too many requests. Limit: %d requests per minute.", l.Limit()),
				"retry_after": retryAfter,
			})
		}

		return ctx.Next()
	}
}

// clientID prefers the first forwarded-for hop, then the peer address.
func clientID(ctx *fiber.Ctx) string {
	if forwarded := ctx.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if ip := ctx.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
