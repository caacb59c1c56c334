// Package driverdir validates driver identities against the platform's user
// directory. The directory is owned by another subsystem; this adapter only
// reads it, and only to answer one question: is this identity an active driver
// of this tenant.
package driverdir

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
)

// roleDriver is the role value the platform assigns to delivery drivers.
const roleDriver = "driver"

// UserDTO maps the subset of the platform's users table this adapter reads.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null"`
	Role     string    `gorm:"not null"`
	Active   bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for user rows.
func (UserDTO) TableName() string {
	return "users"
}

// GormDriverValidator implements DriverValidator against the users table.
type GormDriverValidator struct {
	db *gorm.DB
}

// NewGormDriverValidator creates a validator reading the shared user directory.
func NewGormDriverValidator(db *gorm.DB) *GormDriverValidator {
	return &GormDriverValidator{db: db}
}

// IsDriver reports whether driverID is an active driver of the tenant.
func (v *GormDriverValidator) IsDriver(ctx context.Context, tenantID, driverID kernel.UUID) (bool, error) {
	if err := errors.Join(tenantID.Validate(), driverID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := v.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ? AND tenant_id = ? AND role = ? AND active",
			driverID.Bytes(), tenantID.Bytes(), roleDriver).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
