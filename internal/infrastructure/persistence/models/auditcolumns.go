package models

import "time"

// AuditColumns is embedded by every table. Updates never write the
// audit_user_* columns or created_at.
type AuditColumns struct {
	AuditUserIP    string `gorm:"column:audit_user_ip;size:45"`
	AuditUserLogin string `gorm:"column:audit_user_login;size:50"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
