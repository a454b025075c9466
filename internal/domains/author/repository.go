package author

import (
	"context"

	"gallery-backend/internal/shared"
)

// Repository defines the storage contract for the authors collection.
// Implementations live in the repository subpackage (memory, postgres, redis).
type Repository interface {
	// FindByID returns (nil, nil) when no author has the given id.
	FindByID(ctx context.Context, id string) (*Author, error)

	// FindAll returns authors ordered by opts.SortBy (ascending) and windowed by Skip/Limit.
	// An empty SortBy keeps the storage default order.
	FindAll(ctx context.Context, opts shared.FindOptions) ([]Author, error)

	// Insert stores a new author and returns it with a generated ID.
	Insert(ctx context.Context, a *Author) (*Author, error)

	// Save overwrites the stored author identified by a.ID.
	Save(ctx context.Context, a *Author) (*Author, error)

	// DeleteByID removes the author and reports how many records were removed.
	DeleteByID(ctx context.Context, id string) (int64, error)

	// Count returns the number of stored authors.
	Count(ctx context.Context) (int64, error)
}
