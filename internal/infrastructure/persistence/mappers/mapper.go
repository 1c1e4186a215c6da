// Package mappers converts between domain entities and gorm models.
package mappers

import (
	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
)

// EntityMapper is the conversion contract the generic store depends on.
type EntityMapper[E any, M any] interface {
	ToEntity(model *M) (E, error)
	ToModel(entity E) (*M, error)
	ToEntities(models []*M) ([]E, error)
}

func auditToColumns(a shared.Audit) models.AuditColumns {
	return models.AuditColumns{
		AuditUserIP:    a.OriginIP(),
		AuditUserLogin: a.Login(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

func columnsToAudit(c models.AuditColumns) shared.Audit {
	return shared.ReconstructAudit(c.AuditUserIP, c.AuditUserLogin, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
}
