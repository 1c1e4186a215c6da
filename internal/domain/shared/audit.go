package shared

import (
	"time"

	"github.com/orris-inc/warden/internal/shared/biztime"
)

// Audit is the provenance stamped on every stored row: who wrote it, from
// where, and when. Creation fields never change after the first write.
type Audit struct {
	originIP  string
	login     string
	createdAt time.Time
	updatedAt time.Time
}

// NewAudit stamps a fresh write by login from originIP.
func NewAudit(originIP, login string) Audit {
	now := biztime.NowUTC()
	return Audit{
		originIP:  originIP,
		login:     login,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructAudit(originIP, login string, createdAt, updatedAt time.Time) Audit {
	return Audit{
		originIP:  originIP,
		login:     login,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a Audit) OriginIP() string {
	return a.originIP
}

func (a Audit) Login() string {
	return a.login
}

func (a Audit) CreatedAt() time.Time {
	return a.createdAt
}

func (a Audit) UpdatedAt() time.Time {
	return a.updatedAt
}
