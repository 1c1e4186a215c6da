// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Page applies an offset window ordered by ascending primary key, which is
// creation order for every table in this service.
//
//	tx.Scopes(db.Page(0, 100)).Find(&rows)
func Page(skip, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).Offset(skip).Limit(limit)
	}
}

// Equals filters column by exact value.
func Equals(column string, value any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

// ContainsFold filters column by case-insensitive substring. LIKE wildcards
// in value match literally.
func ContainsFold(column, value string) func(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(strings.ToLower(value)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Expr{
			SQL:  "LOWER(?) LIKE ? ESCAPE '!'",
			Vars: []any{clause.Column{Name: column}, pattern},
		})
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
