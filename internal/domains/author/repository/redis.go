package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/infrastructure/kv"
	"gallery-backend/internal/shared"
)

// redisRepository stores authors as JSON documents with lexicographic sort indexes
type redisRepository struct {
	store *kv.DocumentStore[author.Author]
}

func NewRedisRepository(client redis.UniversalClient, prefix string) author.Repository {
	return &redisRepository{
		store: kv.NewDocumentStore(client, kv.DocumentStoreConfig[author.Author]{
			Prefix:     prefix,
			Collection: "authors",
			ID:         func(a author.Author) string { return a.ID },
			SetID:      func(a *author.Author, id string) { a.ID = id },
			Sorts: []kv.SortIndex[author.Author]{
				{Field: author.SortByName, Value: func(a author.Author) string { return a.Name }},
				{Field: author.SortByLastName, Value: func(a author.Author) string { return a.LastName }},
			},
		}),
	}
}

func (r *redisRepository) FindByID(ctx context.Context, id string) (*author.Author, error) {
	return r.store.Get(ctx, id)
}

func (r *redisRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]author.Author, error) {
	if err := validateSort(opts.SortBy); err != nil {
		return nil, err
	}
	if opts.SortBy == "" {
		return r.store.List(ctx, opts.Skip, opts.Limit)
	}
	return r.store.ListSorted(ctx, opts.SortBy, opts.Skip, opts.Limit)
}

func (r *redisRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	return r.store.Insert(ctx, a)
}

func (r *redisRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	saved, err := r.store.Save(ctx, a)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, author.ErrAuthorNotFound
	}
	return saved, nil
}

func (r *redisRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.store.Delete(ctx, id)
}

func (r *redisRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}
