// Package security owns password hashing and bearer-token issuance.
// Token validation failures are classified internally; callers are expected
// to collapse every reason into a single unauthenticated outcome.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrTokenMalformed = errors.New("token malformed or badly signed")
	ErrTokenExpired   = errors.New("token expired")
)

type Credentials struct {
	secret []byte
	ttl    time.Duration
	cost   int
}

// NewCredentials builds the credential service. cost <= 0 selects the
// bcrypt default.
func NewCredentials(secret string, ttl time.Duration, cost int) *Credentials {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Credentials{
		secret: []byte(secret),
		ttl:    ttl,
		cost:   cost,
	}
}

func (c *Credentials) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), c.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (c *Credentials) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueToken signs an HS256 token carrying the subject id, issued-at and
// expiry claims.
func (c *Credentials) IssueToken(subject uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject.String(),
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// ValidateToken verifies signature and expiry and returns the subject id.
func (c *Credentials) ValidateToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenMalformed
	}
	if !token.Valid {
		return uuid.Nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrTokenMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrTokenMalformed
	}
	subject, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}
	return subject, nil
}
