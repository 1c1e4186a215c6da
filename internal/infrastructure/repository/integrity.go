package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/orris-inc/warden/internal/shared/errors"
)

// translate turns uniqueness and foreign key violations into an
// IntegrityRejected error. Anything else is wrapped as a store failure.
func (s *GormStore[E, M]) translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateError(err):
		return s.rejected(s.uniqueDetail(err))
	case errors.Is(err, gorm.ErrForeignKeyViolated) || apperrors.IsForeignKeyError(err):
		return s.rejected("foreign key violation: " + err.Error())
	default:
		return fmt.Errorf("failed to %s %s: %w", op, s.noun(), err)
	}
}

func (s *GormStore[E, M]) rejected(detail string) error {
	return apperrors.NewIntegrityRejectedError(
		fmt.Sprintf("Object %s was not accepted", strings.ToUpper(s.schema.Entity)),
		detail,
	)
}

// uniqueDetail names the unique index a duplicate hit. MySQL and Postgres
// report the index name; SQLite lists table.column pairs instead.
func (s *GormStore[E, M]) uniqueDetail(err error) string {
	msg := err.Error()

	names := make([]string, 0, len(s.schema.UniqueIndexes))
	for name := range s.schema.UniqueIndexes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.Contains(msg, name) {
			return fmt.Sprintf("unique index %s: %s", name, msg)
		}
	}

	for _, name := range names {
		if s.matchesColumns(msg, s.schema.UniqueIndexes[name]) {
			return fmt.Sprintf("unique index %s: %s", name, msg)
		}
	}

	return "unique constraint: " + msg
}

func (s *GormStore[E, M]) matchesColumns(msg string, columns []string) bool {
	i := strings.Index(msg, "UNIQUE constraint failed:")
	if i < 0 {
		return false
	}

	failed := map[string]bool{}
	for _, part := range strings.Split(msg[i+len("UNIQUE constraint failed:"):], ",") {
		failed[strings.TrimSpace(part)] = true
	}
	if len(failed) != len(columns) {
		return false
	}
	for _, c := range columns {
		if !failed[s.schema.Table+"."+c] {
			return false
		}
	}
	return true
}
