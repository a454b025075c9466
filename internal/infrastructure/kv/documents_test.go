package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

func newNoteStore(t *testing.T) (*DocumentStore[note], *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewDocumentStore(client, DocumentStoreConfig[note]{
		Prefix:     "test",
		Collection: "notes",
		ID:         func(n note) string { return n.ID },
		SetID:      func(n *note, id string) { n.ID = id },
		Sorts: []SortIndex[note]{
			{Field: "title", Value: func(n note) string { return n.Title }},
		},
		Groups: []GroupIndex[note]{
			{Field: "tag", Value: func(n note) string { return n.Tag }},
		},
	}), mr
}

func insertNotes(t *testing.T, s *DocumentStore[note], notes ...note) []note {
	t.Helper()

	out := make([]note, len(notes))
	for i := range notes {
		created, err := s.Insert(context.Background(), &notes[i])
		require.NoError(t, err)
		out[i] = *created
	}
	return out
}

func titles(notes []note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestDocumentStore_InsertAndGet(t *testing.T) {
	s, mr := newNoteStore(t)
	ctx := context.Background()

	in := note{Title: "first", Tag: "a"}
	created, err := s.Insert(ctx, &in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Empty(t, in.ID, "input must not be mutated")

	assert.True(t, mr.Exists("test:notes:doc:"+created.ID))

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	missing, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDocumentStore_ListOrders(t *testing.T) {
	s, _ := newNoteStore(t)
	ctx := context.Background()
	insertNotes(t, s,
		note{Title: "charlie"},
		note{Title: "alpha"},
		note{Title: "bravo"},
		note{Title: "alpha"},
	)

	byInsertion, err := s.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"charlie", "alpha", "bravo", "alpha"}, titles(byInsertion))

	window, err := s.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, titles(window))

	sorted, err := s.ListSorted(ctx, "title", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "alpha", "bravo", "charlie"}, titles(sorted))
	assert.Less(t, sorted[0].ID, sorted[1].ID, "ties are ordered by id")

	page, err := s.ListSorted(ctx, "title", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"bravo", "charlie"}, titles(page))

	past, err := s.ListSorted(ctx, "title", 10, 5)
	require.NoError(t, err)
	assert.NotNil(t, past)
	assert.Empty(t, past)
}

func TestDocumentStore_SortPrefixValues(t *testing.T) {
	s, _ := newNoteStore(t)
	insertNotes(t, s, note{Title: "ab"}, note{Title: "a"}, note{Title: "B"})

	sorted, err := s.ListSorted(context.Background(), "title", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "a", "ab"}, titles(sorted))
}

func TestDocumentStore_SaveMovesIndexes(t *testing.T) {
	s, _ := newNoteStore(t)
	ctx := context.Background()
	notes := insertNotes(t, s, note{Title: "zulu", Tag: "x"}, note{Title: "mike", Tag: "x"})

	changed := notes[0]
	changed.Title = "alpha"
	changed.Tag = "y"
	saved, err := s.Save(ctx, &changed)
	require.NoError(t, err)
	assert.Equal(t, &changed, saved)

	sorted, err := s.ListSorted(ctx, "title", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mike"}, titles(sorted))

	xs, err := s.ListWhere(ctx, "tag", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"mike"}, titles(xs))

	ys, err := s.ListWhere(ctx, "tag", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, titles(ys))

	byInsertion, err := s.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, notes[0].ID, byInsertion[0].ID, "save keeps insertion position")

	unknown := note{ID: "nope", Title: "x"}
	missing, err := s.Save(ctx, &unknown)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDocumentStore_Delete(t *testing.T) {
	s, mr := newNoteStore(t)
	ctx := context.Background()
	notes := insertNotes(t, s, note{Title: "one", Tag: "t"}, note{Title: "two", Tag: "t"})

	n, err := s.Delete(ctx, notes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Delete(ctx, notes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.False(t, mr.Exists("test:notes:doc:"+notes[0].ID))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	sorted, err := s.ListSorted(ctx, "title", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, titles(sorted))

	tagged, err := s.ListWhere(ctx, "tag", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, titles(tagged))
}

const writers = 8

// runConcurrently starts every fn at once and returns their errors.
func runConcurrently(fns ...func() error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, len(fns))
	)
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func() error) {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}(i, fn)
	}
	close(start)
	wg.Wait()
	return errs
}

func TestDocumentStore_ConcurrentSavesKeepOneIndexEntry(t *testing.T) {
	s, _ := newNoteStore(t)
	ctx := context.Background()

	for round := 0; round < 10; round++ {
		n := insertNotes(t, s, note{Title: "start", Tag: "start"})[0]

		fns := make([]func() error, writers)
		for i := range fns {
			update := note{ID: n.ID, Title: fmt.Sprintf("t%d", i), Tag: fmt.Sprintf("g%d", i)}
			fns[i] = func() error {
				_, err := s.Save(ctx, &update)
				return err
			}
		}
		for _, err := range runConcurrently(fns...) {
			require.NoError(t, err)
		}

		final, err := s.Get(ctx, n.ID)
		require.NoError(t, err)
		require.NotNil(t, final)

		sorted, err := s.ListSorted(ctx, "title", 0, 0)
		require.NoError(t, err)
		require.Len(t, sorted, 1, "round %d", round)
		assert.Equal(t, *final, sorted[0])
		assert.Equal(t, int64(1), s.client.ZCard(ctx, s.sortKey("title")).Val())

		tagged := 0
		for i := 0; i < writers; i++ {
			members, err := s.ListWhere(ctx, "tag", fmt.Sprintf("g%d", i))
			require.NoError(t, err)
			tagged += len(members)
		}
		stale, err := s.ListWhere(ctx, "tag", "start")
		require.NoError(t, err)
		assert.Empty(t, stale)
		assert.Equal(t, 1, tagged, "round %d", round)

		deleted, err := s.Delete(ctx, n.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), deleted)
	}
}

func TestDocumentStore_SaveRacingDeleteDoesNotResurrect(t *testing.T) {
	s, mr := newNoteStore(t)
	ctx := context.Background()

	for round := 0; round < 10; round++ {
		n := insertNotes(t, s, note{Title: "start", Tag: "x"})[0]

		var removed int64
		fns := []func() error{func() error {
			var err error
			removed, err = s.Delete(ctx, n.ID)
			return err
		}}
		for i := 0; i < writers; i++ {
			update := note{ID: n.ID, Title: fmt.Sprintf("t%d", i), Tag: "x"}
			fns = append(fns, func() error {
				_, err := s.Save(ctx, &update)
				return err
			})
		}
		for _, err := range runConcurrently(fns...) {
			require.NoError(t, err)
		}
		require.Equal(t, int64(1), removed)

		assert.False(t, mr.Exists("test:notes:doc:"+n.ID), "round %d", round)

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		assert.Zero(t, s.client.ZCard(ctx, s.sortKey("title")).Val(), "round %d", round)
		assert.Zero(t, s.client.ZCard(ctx, s.groupKey("tag", "x")).Val(), "round %d", round)
	}
}

func TestDocumentStore_ConnectionFailure(t *testing.T) {
	s, mr := newNoteStore(t)
	mr.Close()

	_, err := s.List(context.Background(), 0, 0)
	assert.Error(t, err)

	_, err = s.Get(context.Background(), "x")
	assert.Error(t, err)
}

func TestRedisClient_HealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)

	rc := NewRedisClient(mr.Addr(), "", 0)
	defer rc.Close()

	require.NoError(t, rc.Connect(context.Background()))
	assert.NoError(t, rc.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, rc.HealthCheck(context.Background()))
}
