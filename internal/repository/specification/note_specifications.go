package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCustomerID struct {
	CustomerID uuid.UUID
}

func (s ByCustomerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

type NoteOwnedByUser struct {
	UserID uuid.UUID
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

// ContentContains matches note content by case-insensitive literal
// substring. The term is escaped so %, _ and \ in user input match
// themselves instead of acting as pattern metacharacters.
type ContentContains struct {
	Search string
}

func (s ContentContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`content ILIKE ? ESCAPE '\'`, "%"+escapeLikeTerm(s.Search)+"%")
}

var likeTermEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikeTerm(term string) string {
	return likeTermEscaper.Replace(term)
}
