package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Key layout for a collection "pictures" under prefix "gallery":
//
//	gallery:pictures:seq              counter, insertion sequence
//	gallery:pictures:ids              zset id -> seq (default order)
//	gallery:pictures:doc:<id>         JSON document
//	gallery:pictures:sort:<field>     zset, score 0, member "<value>\x00<id>" (lex order)
//	gallery:pictures:by:<field>:<v>   zset id -> seq (equality filter)
const memberSep = "\x00"

// SortIndex keeps a lexicographic index on one string field.
type SortIndex[T any] struct {
	Field string
	Value func(T) string
}

// GroupIndex keeps an equality index on one string field.
type GroupIndex[T any] struct {
	Field string
	Value func(T) string
}

// DocumentStore stores JSON documents in redis with secondary indexes
// maintained in the same MULTI/EXEC as the document write. Save and Delete
// WATCH the document key so concurrent writers never leave stale index entries.
type DocumentStore[T any] struct {
	client redis.UniversalClient
	base   string
	id     func(T) string
	setID  func(*T, string)
	sorts  []SortIndex[T]
	groups []GroupIndex[T]
}

type DocumentStoreConfig[T any] struct {
	Prefix     string
	Collection string
	ID         func(T) string
	SetID      func(*T, string)
	Sorts      []SortIndex[T]
	Groups     []GroupIndex[T]
}

func NewDocumentStore[T any](client redis.UniversalClient, cfg DocumentStoreConfig[T]) *DocumentStore[T] {
	base := cfg.Collection
	if cfg.Prefix != "" {
		base = cfg.Prefix + ":" + cfg.Collection
	}
	return &DocumentStore[T]{
		client: client,
		base:   base,
		id:     cfg.ID,
		setID:  cfg.SetID,
		sorts:  cfg.Sorts,
		groups: cfg.Groups,
	}
}

func (s *DocumentStore[T]) docKey(id string) string     { return s.base + ":doc:" + id }
func (s *DocumentStore[T]) idsKey() string              { return s.base + ":ids" }
func (s *DocumentStore[T]) seqKey() string              { return s.base + ":seq" }
func (s *DocumentStore[T]) sortKey(field string) string { return s.base + ":sort:" + field }
func (s *DocumentStore[T]) groupKey(field, v string) string {
	return s.base + ":by:" + field + ":" + v
}

func sortMember(value, id string) string { return value + memberSep + id }

// maxWatchRetries bounds optimistic retries of Save and Delete under contention.
const maxWatchRetries = 100

// ErrConflict is returned when a document kept changing for maxWatchRetries attempts.
var ErrConflict = errors.New("document modified concurrently")

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *DocumentStore[T]) read(ctx context.Context, c getter, id string) (*T, error) {
	raw, err := c.Get(ctx, s.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return &doc, nil
}

// Get returns (nil, nil) when the document does not exist.
func (s *DocumentStore[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.read(ctx, s.client, id)
}

// Insert assigns a new id to doc and stores it with its indexes.
func (s *DocumentStore[T]) Insert(ctx context.Context, doc *T) (*T, error) {
	created := *doc
	s.setID(&created, uuid.NewString())
	id := s.id(created)

	seq, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate sequence: %w", err)
	}

	data, err := json.Marshal(created)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(id), data, 0)
		pipe.ZAdd(ctx, s.idsKey(), redis.Z{Score: float64(seq), Member: id})
		for _, idx := range s.sorts {
			pipe.ZAdd(ctx, s.sortKey(idx.Field), redis.Z{Member: sortMember(idx.Value(created), id)})
		}
		for _, g := range s.groups {
			pipe.ZAdd(ctx, s.groupKey(g.Field, g.Value(created)), redis.Z{Score: float64(seq), Member: id})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return &created, nil
}

// watch runs fn under WATCH on the document key and retries while another
// client changes it before EXEC.
func (s *DocumentStore[T]) watch(ctx context.Context, id string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, fn, s.docKey(id))
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrConflict, id)
}

// Save overwrites an existing document. It returns (nil, nil) when the id is unknown.
func (s *DocumentStore[T]) Save(ctx context.Context, doc *T) (*T, error) {
	id := s.id(*doc)

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	found := false
	err = s.watch(ctx, id, func(tx *redis.Tx) error {
		old, err := s.read(ctx, tx, id)
		if err != nil {
			return err
		}
		found = old != nil
		if !found {
			return nil
		}

		seq, err := tx.ZScore(ctx, s.idsKey(), id).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read sequence for %s: %w", id, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.docKey(id), data, 0)
			for _, idx := range s.sorts {
				pipe.ZRem(ctx, s.sortKey(idx.Field), sortMember(idx.Value(*old), id))
				pipe.ZAdd(ctx, s.sortKey(idx.Field), redis.Z{Member: sortMember(idx.Value(*doc), id)})
			}
			for _, g := range s.groups {
				pipe.ZRem(ctx, s.groupKey(g.Field, g.Value(*old)), id)
				pipe.ZAdd(ctx, s.groupKey(g.Field, g.Value(*doc)), redis.Z{Score: seq, Member: id})
			}
			return nil
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save document %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	saved := *doc
	return &saved, nil
}

// Delete removes the document and its index entries, returning the number of removed documents.
func (s *DocumentStore[T]) Delete(ctx context.Context, id string) (int64, error) {
	var removed int64
	err := s.watch(ctx, id, func(tx *redis.Tx) error {
		removed = 0
		old, err := s.read(ctx, tx, id)
		if err != nil || old == nil {
			return err
		}

		var del *redis.IntCmd
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			del = pipe.Del(ctx, s.docKey(id))
			pipe.ZRem(ctx, s.idsKey(), id)
			for _, idx := range s.sorts {
				pipe.ZRem(ctx, s.sortKey(idx.Field), sortMember(idx.Value(*old), id))
			}
			for _, g := range s.groups {
				pipe.ZRem(ctx, s.groupKey(g.Field, g.Value(*old)), id)
			}
			return nil
		})
		if err != nil {
			return err
		}
		removed = del.Val()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	return removed, nil
}

// List returns documents in insertion order, windowed by skip/limit (limit 0 = all).
func (s *DocumentStore[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(skip + limit - 1)
	}
	ids, err := s.client.ZRange(ctx, s.idsKey(), int64(skip), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list ids: %w", err)
	}
	return s.load(ctx, ids)
}

// ListSorted returns documents ordered by the lexicographic index on field.
func (s *DocumentStore[T]) ListSorted(ctx context.Context, field string, skip, limit int) ([]T, error) {
	count := int64(-1)
	if limit > 0 {
		count = int64(limit)
	}
	members, err := s.client.ZRangeByLex(ctx, s.sortKey(field), &redis.ZRangeBy{
		Min:    "-",
		Max:    "+",
		Offset: int64(skip),
		Count:  count,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to range index %s: %w", field, err)
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		if i := strings.LastIndex(m, memberSep); i >= 0 {
			ids = append(ids, m[i+len(memberSep):])
		}
	}
	return s.load(ctx, ids)
}

// ListWhere returns documents whose field equals value, in insertion order.
func (s *DocumentStore[T]) ListWhere(ctx context.Context, field, value string) ([]T, error) {
	ids, err := s.client.ZRange(ctx, s.groupKey(field, value), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s=%s: %w", field, value, err)
	}
	return s.load(ctx, ids)
}

// Count returns the number of stored documents.
func (s *DocumentStore[T]) Count(ctx context.Context) (int64, error) {
	n, err := s.client.ZCard(ctx, s.idsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

func (s *DocumentStore[T]) load(ctx context.Context, ids []string) ([]T, error) {
	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// removed between the index read and the load
			continue
		}
		var doc T
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", ids[i], err)
		}
		out = append(out, doc)
	}
	return out, nil
}
