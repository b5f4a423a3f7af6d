// Package repo implements the user directory: lookup, save and delete
// of user records keyed by id or email. Implementations are selected at
// startup from configuration; all of them enforce the one-record-per-
// email invariant atomically inside Save.
package repo

import (
	"context"

	"github.com/AstroBookings/api-system/internal/model"
)

// UserRepository is the contract the orchestration layer depends on.
//
// Find methods return apperr.ErrNotFound when no record matches. Save
// returns apperr.ErrConflict when a record with the same email already
// exists; the check is atomic with the insert, so a racing duplicate
// registration cannot slip through between a lookup and a save.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}
