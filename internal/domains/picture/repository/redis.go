package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"gallery-backend/internal/domains/picture"
	"gallery-backend/internal/infrastructure/kv"
	"gallery-backend/internal/shared"
)

const authorIDField = "authorId"

type redisRepository struct {
	store *kv.DocumentStore[picture.Picture]
}

func NewRedisRepository(client redis.UniversalClient, prefix string) picture.Repository {
	return &redisRepository{
		store: kv.NewDocumentStore(client, kv.DocumentStoreConfig[picture.Picture]{
			Prefix:     prefix,
			Collection: "pictures",
			ID:         func(p picture.Picture) string { return p.ID },
			SetID:      func(p *picture.Picture, id string) { p.ID = id },
			Sorts: []kv.SortIndex[picture.Picture]{
				{Field: picture.SortByTitle, Value: func(p picture.Picture) string { return p.Title }},
				{Field: picture.SortByGenre, Value: func(p picture.Picture) string { return p.Genre }},
			},
			Groups: []kv.GroupIndex[picture.Picture]{
				{Field: authorIDField, Value: func(p picture.Picture) string { return p.AuthorID }},
			},
		}),
	}
}

func (r *redisRepository) FindByID(ctx context.Context, id string) (*picture.Picture, error) {
	return r.store.Get(ctx, id)
}

func (r *redisRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]picture.Picture, error) {
	if err := validateSort(opts.SortBy); err != nil {
		return nil, err
	}
	if opts.SortBy == "" {
		return r.store.List(ctx, opts.Skip, opts.Limit)
	}
	return r.store.ListSorted(ctx, opts.SortBy, opts.Skip, opts.Limit)
}

func (r *redisRepository) FindWhere(ctx context.Context, filter picture.Filter) ([]picture.Picture, error) {
	if filter.AuthorID == "" {
		return r.store.List(ctx, 0, 0)
	}
	return r.store.ListWhere(ctx, authorIDField, filter.AuthorID)
}

func (r *redisRepository) Insert(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	return r.store.Insert(ctx, p)
}

func (r *redisRepository) Save(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	saved, err := r.store.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, picture.ErrPictureNotFound
	}
	return saved, nil
}

func (r *redisRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.store.Delete(ctx, id)
}

func (r *redisRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}
