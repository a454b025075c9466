package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"gallery-backend/internal/domains/picture"
	"gallery-backend/internal/infrastructure/memory"
	"gallery-backend/internal/shared"
)

type memoryRepository struct {
	docs *memory.Collection[picture.Picture]
}

func NewMemoryRepository() picture.Repository {
	return &memoryRepository{docs: memory.NewCollection[picture.Picture]()}
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*picture.Picture, error) {
	p, ok := r.docs.Get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]picture.Picture, error) {
	if err := validateSort(opts.SortBy); err != nil {
		return nil, err
	}

	pictures := r.docs.All()
	if opts.SortBy != "" {
		sort.SliceStable(pictures, func(i, j int) bool {
			return picture.Less(pictures[i], pictures[j], opts.SortBy)
		})
	}
	return shared.Window(pictures, opts), nil
}

func (r *memoryRepository) FindWhere(ctx context.Context, filter picture.Filter) ([]picture.Picture, error) {
	return r.docs.Filter(filter.Matches), nil
}

func (r *memoryRepository) Insert(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	created := p.Detached()
	created.ID = uuid.NewString()
	r.docs.Put(created.ID, created)
	return &created, nil
}

func (r *memoryRepository) Save(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	saved := p.Detached()
	if !r.docs.Replace(saved.ID, saved) {
		return nil, picture.ErrPictureNotFound
	}
	return &saved, nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.docs.Delete(id), nil
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.docs.Len()), nil
}
