package models

import "github.com/orris-inc/warden/internal/shared/constants"

// AssignmentModel links a user to a role. The association fields only
// declare the foreign keys; writes omit them.
type AssignmentModel struct {
	ID     uint       `gorm:"primarykey"`
	UserID uint       `gorm:"not null;uniqueIndex:idx_user_role"`
	RoleID uint       `gorm:"not null;uniqueIndex:idx_user_role"`
	User   *UserModel `gorm:"foreignKey:UserID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Role   *RoleModel `gorm:"foreignKey:RoleID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	AuditColumns
}

func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}

// AuthorizationModel links a role to a transaction.
type AuthorizationModel struct {
	ID            uint              `gorm:"primarykey"`
	RoleID        uint              `gorm:"not null;uniqueIndex:idx_role_transaction"`
	TransactionID uint              `gorm:"not null;uniqueIndex:idx_role_transaction"`
	Role          *RoleModel        `gorm:"foreignKey:RoleID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Transaction   *TransactionModel `gorm:"foreignKey:TransactionID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	AuditColumns
}

func (AuthorizationModel) TableName() string {
	return constants.TableAuthorizations
}

// All returns every model in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&RoleModel{},
		&TransactionModel{},
		&AssignmentModel{},
		&AuthorizationModel{},
	}
}
