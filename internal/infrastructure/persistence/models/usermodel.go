package models

import "github.com/orris-inc/warden/internal/shared/constants"

type UserModel struct {
	ID          uint   `gorm:"primarykey"`
	Username    string `gorm:"not null;size:50;uniqueIndex:idx_user_username"`
	DisplayName string `gorm:"not null;size:100"`
	Email       string `gorm:"not null;size:120;uniqueIndex:idx_user_email"`
	Password    string `gorm:"not null;size:255"`
	AuditColumns
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
