// Package seeds loads the operation code registry and the bootstrap super
// user. Every seed is idempotent: existing rows are left untouched.
package seeds

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/biztime"
	"github.com/orris-inc/warden/internal/shared/config"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

// PasswordHasher hashes the bootstrap password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

func systemAudit() models.AuditColumns {
	now := biztime.NowUTC()
	return models.AuditColumns{
		AuditUserIP:    constants.SystemOriginIP,
		AuditUserLogin: constants.SystemLogin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SeedTransactions makes sure every registered operation code has a row.
func SeedTransactions(db *gorm.DB) error {
	for _, def := range opcode.Catalog() {
		var row models.TransactionModel
		err := db.Where(models.TransactionModel{OperationCode: def.Code}).
			Attrs(models.TransactionModel{
				Name:         def.Name,
				Description:  def.Description,
				AuditColumns: systemAudit(),
			}).
			FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", def.Code, err)
		}
	}
	return nil
}

// SeedSuperUser creates the admin user and role, assigns one to the other
// and authorizes the role for every seeded transaction.
func SeedSuperUser(db *gorm.DB, cfg config.SeedConfig, hasher PasswordHasher) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.UserModel
		err := tx.Where(models.UserModel{Username: cfg.AdminUsername}).Take(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, hashErr := hasher.Hash(cfg.AdminPassword)
			if hashErr != nil {
				return fmt.Errorf("failed to hash admin password: %w", hashErr)
			}
			admin = models.UserModel{
				Username:     cfg.AdminUsername,
				DisplayName:  cfg.AdminDisplayName,
				Email:        cfg.AdminEmail,
				Password:     hash,
				AuditColumns: systemAudit(),
			}
			err = tx.Create(&admin).Error
		}
		if err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		var role models.RoleModel
		if err := tx.Where(models.RoleModel{Name: cfg.AdminRole}).
			Attrs(models.RoleModel{
				Description:  "Role for system Administrator",
				AuditColumns: systemAudit(),
			}).
			FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed admin role: %w", err)
		}

		var assignment models.AssignmentModel
		if err := tx.Where(models.AssignmentModel{UserID: admin.ID, RoleID: role.ID}).
			Attrs(models.AssignmentModel{AuditColumns: systemAudit()}).
			FirstOrCreate(&assignment).Error; err != nil {
			return fmt.Errorf("failed to seed admin assignment: %w", err)
		}

		var transactions []models.TransactionModel
		if err := tx.Order("id").Find(&transactions).Error; err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}

		for _, t := range transactions {
			var grant models.AuthorizationModel
			if err := tx.Where(models.AuthorizationModel{RoleID: role.ID, TransactionID: t.ID}).
				Attrs(models.AuthorizationModel{AuditColumns: systemAudit()}).
				FirstOrCreate(&grant).Error; err != nil {
				return fmt.Errorf("failed to authorize %s for admin role: %w", t.OperationCode, err)
			}
		}
		return nil
	})
}

// Run seeds the registry first, then the super user.
func Run(db *gorm.DB, cfg config.SeedConfig, hasher PasswordHasher) error {
	if err := SeedTransactions(db); err != nil {
		return err
	}
	return SeedSuperUser(db, cfg, hasher)
}
