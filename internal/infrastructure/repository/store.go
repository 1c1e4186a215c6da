package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/shared/db"
	apperrors "github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/query"
)

// storedEntity is what the generic store needs from a domain entity.
type storedEntity interface {
	comparable
	ID() uint
	SetID(id uint) error
}

// Schema describes how one entity maps onto its table.
type Schema[E any, M any] struct {
	// Entity is the display name used in error messages, e.g. "Role".
	Entity string
	Table  string
	Mapper mappers.EntityMapper[E, M]

	// UpdateColumns are the only columns an update writes. updated_at is
	// always added.
	UpdateColumns []string

	// TextFilters map a query key to a column matched by case-insensitive
	// substring; NumberFilters map a key to a column matched by equality.
	TextFilters   map[string]string
	NumberFilters map[string]string

	// UniqueIndexes name each unique index and its columns, so a rejected
	// write can say which one it hit.
	UniqueIndexes map[string][]string
}

// GormStore implements shared.Repository for any entity described by a Schema.
type GormStore[E storedEntity, M any] struct {
	db     *gorm.DB
	schema Schema[E, M]
}

func NewGormStore[E storedEntity, M any](gdb *gorm.DB, schema Schema[E, M]) *GormStore[E, M] {
	return &GormStore[E, M]{db: gdb, schema: schema}
}

func (s *GormStore[E, M]) conn(ctx context.Context) *gorm.DB {
	return db.Conn(ctx, s.db)
}

func (s *GormStore[E, M]) noun() string {
	return strings.ToLower(s.schema.Entity)
}

// GetByID returns the zero entity when no row matches.
func (s *GormStore[E, M]) GetByID(ctx context.Context, id uint) (E, error) {
	return s.findOne(ctx, "id = ?", id)
}

func (s *GormStore[E, M]) findOne(ctx context.Context, where string, args ...interface{}) (E, error) {
	var zero E
	var model M
	if err := s.conn(ctx).Where(where, args...).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("failed to get %s: %w", s.noun(), err)
	}

	return s.schema.Mapper.ToEntity(&model)
}

func (s *GormStore[E, M]) List(ctx context.Context, q query.ListQuery) ([]E, error) {
	tx := s.conn(ctx).Model(new(M))

	for key, value := range q.Filters {
		if column, ok := s.schema.TextFilters[key]; ok {
			tx = tx.Scopes(db.ContainsFold(column, value))
			continue
		}
		if column, ok := s.schema.NumberFilters[key]; ok {
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, apperrors.NewValidationError(fmt.Sprintf("invalid value for %s", key), value)
			}
			tx = tx.Scopes(db.Equals(column, n))
		}
	}

	var rows []*M
	if err := tx.Scopes(db.Page(q.Skip, q.Limit)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.noun(), err)
	}

	return s.schema.Mapper.ToEntities(rows)
}

func (s *GormStore[E, M]) Create(ctx context.Context, entity E) error {
	model, err := s.schema.Mapper.ToModel(entity)
	if err != nil {
		return err
	}

	if err := s.conn(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return s.translate("create", err)
	}

	created, err := s.schema.Mapper.ToEntity(model)
	if err != nil {
		return err
	}
	return entity.SetID(created.ID())
}

// Update writes the mutable columns of entity onto row id. Audit origin,
// login and created_at keep their stored values.
func (s *GormStore[E, M]) Update(ctx context.Context, id uint, entity E) error {
	model, err := s.schema.Mapper.ToModel(entity)
	if err != nil {
		return err
	}

	columns := append(append([]string{}, s.schema.UpdateColumns...), "updated_at")
	result := s.conn(ctx).
		Model(new(M)).
		Where("id = ?", id).
		Omit(clause.Associations).
		Select(columns).
		Updates(model)
	if result.Error != nil {
		return s.translate("update", result.Error)
	}
	return nil
}

func (s *GormStore[E, M]) Delete(ctx context.Context, id uint) error {
	if err := s.conn(ctx).Delete(new(M), id).Error; err != nil {
		return s.translate("delete", err)
	}
	return nil
}
