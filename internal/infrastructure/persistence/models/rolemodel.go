package models

import "github.com/orris-inc/warden/internal/shared/constants"

type RoleModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:50;uniqueIndex:idx_role_name"`
	Description string `gorm:"type:text"`
	AuditColumns
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
