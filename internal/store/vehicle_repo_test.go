package store

import (
	"context"
	"errors"
	"testing"

	"github.com/fairental/fleet/internal/fleet"
)

// Query paths need a live pool, but the malformed-id guard must answer
// before any query is issued, so a nil pool proves the short-circuit.
func TestVehicleRepo_MalformedID(t *testing.T) {
	repo := NewVehicleRepo(nil)
	ctx := context.Background()

	for _, id := range []string{"", "nope", "123", "d94e4bb6-0000-zzzz-0000-000000000000"} {
		t.Run("id "+id, func(t *testing.T) {
			if _, err := repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(%q) error = %v, want ErrNotFound", id, err)
			}
			if _, err := repo.Update(ctx, id, fleet.Draft{}); !errors.Is(err, ErrNotFound) {
				t.Errorf("Update(%q) error = %v, want ErrNotFound", id, err)
			}
			if err := repo.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
				t.Errorf("Delete(%q) error = %v, want ErrNotFound", id, err)
			}
		})
	}
}

func TestVehicleRepo_BatchInsertEmpty(t *testing.T) {
	repo := NewVehicleRepo(nil)

	n, err := repo.BatchInsert(context.Background(), nil)
	if err != nil {
		t.Fatalf("BatchInsert(nil) error = %v", err)
	}
	if n != 0 {
		t.Errorf("BatchInsert(nil) = %d, want 0", n)
	}
}
