package admins

import (
	"context"
	"time"
)

// Storer is the interface admin entries are persisted and swept
// through. CreateAdmin and DeleteExpiredAdmins each cover a full
// read-modify-write of the underlying resource; implementations must
// serialize them against each other so concurrent callers never lose
// each other's writes.
type Storer interface {
	// AdminList returns every group line and admin entry in stored
	// order.
	AdminList(ctx context.Context) (AdminList, error)

	// CreateAdmin appends the passed Admin. Existing entries for the
	// same SteamID are left untouched; re-granting an identity stacks
	// a second entry.
	CreateAdmin(ctx context.Context, admin Admin) error

	// DeleteExpiredAdmins removes every admin whose expiry is at or
	// before now, returning how many were removed. When nothing has
	// expired the stored resource is left untouched.
	DeleteExpiredAdmins(ctx context.Context, now time.Time) (int, error)

	// Path returns the location of the durable resource, for callers
	// that serve its raw contents.
	Path() string
}
