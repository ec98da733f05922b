// Package store persists the vehicle collection and the app's key-value
// settings in PostgreSQL.
package store

import (
	"context"
	"errors"

	"github.com/fairental/fleet/internal/fleet"
)

// ErrNotFound is returned when an id does not match any stored record.
var ErrNotFound = errors.New("record not found")

// VehicleStorage is the record-store contract the rest of the app programs
// against. Listing is ordered by creation time, newest first. Insert and
// Update return the stored record with its assigned id and timestamps.
type VehicleStorage interface {
	List(ctx context.Context) ([]fleet.Vehicle, error)
	Get(ctx context.Context, id string) (fleet.Vehicle, error)
	Insert(ctx context.Context, d fleet.Draft) (fleet.Vehicle, error)
	BatchInsert(ctx context.Context, drafts []fleet.Draft) (int64, error)
	Update(ctx context.Context, id string, d fleet.Draft) (fleet.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// KVStorage holds small process-wide settings under fixed keys.
type KVStorage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
