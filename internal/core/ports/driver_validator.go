package ports

import (
	"context"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
)

// DriverValidator confirms that an identity may be assigned as a driver.
// The identity directory lives outside this core; the validator is an opaque
// boolean-returning dependency that checks the identity belongs to the tenant
// and holds the driver role.
type DriverValidator interface {
	// IsDriver reports whether driverID is a valid driver of the tenant.
	// An error indicates the validator itself failed, not an invalid driver.
	IsDriver(ctx context.Context, tenantID, driverID kernel.UUID) (bool, error)
}
