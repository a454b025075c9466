package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/infrastructure/memory"
	"gallery-backend/internal/shared"
)

// memoryRepository keeps authors in process memory.
// Default order is insertion order, like a document store without an index.
type memoryRepository struct {
	docs *memory.Collection[author.Author]
}

func NewMemoryRepository() author.Repository {
	return &memoryRepository{docs: memory.NewCollection[author.Author]()}
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*author.Author, error) {
	a, ok := r.docs.Get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]author.Author, error) {
	if err := validateSort(opts.SortBy); err != nil {
		return nil, err
	}

	authors := r.docs.All()
	if opts.SortBy != "" {
		sort.SliceStable(authors, func(i, j int) bool {
			return author.Less(authors[i], authors[j], opts.SortBy)
		})
	}
	return shared.Window(authors, opts), nil
}

func (r *memoryRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	created := *a
	created.ID = uuid.NewString()
	r.docs.Put(created.ID, created)
	return &created, nil
}

func (r *memoryRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	if !r.docs.Replace(a.ID, *a) {
		return nil, author.ErrAuthorNotFound
	}
	saved := *a
	return &saved, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.docs.Delete(id), nil
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.docs.Len()), nil
}
