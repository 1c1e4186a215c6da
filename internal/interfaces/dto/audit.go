// Package dto holds the request and response shapes of the HTTP API and
// their conversion to domain entities.
package dto

import (
	"time"

	"github.com/orris-inc/warden/internal/domain/shared"
)

// Caller identifies who issued a write, for the audit columns.
type Caller struct {
	OriginIP string
	Login    string
}

func (c Caller) audit() shared.Audit {
	return shared.NewAudit(c.OriginIP, c.Login)
}

// AuditResponse is embedded in every entity response.
type AuditResponse struct {
	AuditUserIP    string    `json:"audit_user_ip"`
	AuditUserLogin string    `json:"audit_user_login"`
	AuditCreatedAt time.Time `json:"audit_created_at"`
	AuditUpdatedOn time.Time `json:"audit_updated_on"`
}

func toAuditResponse(a shared.Audit) AuditResponse {
	return AuditResponse{
		AuditUserIP:    a.OriginIP(),
		AuditUserLogin: a.Login(),
		AuditCreatedAt: a.CreatedAt().UTC(),
		AuditUpdatedOn: a.UpdatedAt().UTC(),
	}
}

// DetailResponse is the body of a successful delete.
type DetailResponse struct {
	Detail string `json:"detail"`
}
