package picture

import (
	"context"

	"gallery-backend/internal/shared"
)

// Repository defines the storage contract for the pictures collection.
type Repository interface {
	// FindByID returns (nil, nil) when no picture has the given id.
	FindByID(ctx context.Context, id string) (*Picture, error)

	// FindAll returns pictures ordered by opts.SortBy and windowed by Skip/Limit.
	FindAll(ctx context.Context, opts shared.FindOptions) ([]Picture, error)

	// FindWhere returns every picture matching filter, in storage default order.
	FindWhere(ctx context.Context, filter Filter) ([]Picture, error)

	// Insert stores a new picture and returns it with a generated ID.
	Insert(ctx context.Context, p *Picture) (*Picture, error)

	// Save overwrites the stored picture identified by p.ID.
	Save(ctx context.Context, p *Picture) (*Picture, error)

	// DeleteByID removes the picture and reports how many records were removed.
	DeleteByID(ctx context.Context, id string) (int64, error)

	Count(ctx context.Context) (int64, error)
}
