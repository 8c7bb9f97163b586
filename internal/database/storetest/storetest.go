// Package storetest holds the behaviour every services.VerseStore must show.
// Store packages call Run from their own tests.
package storetest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

// Factory returns an empty store for a single subtest.
type Factory func(t *testing.T) services.VerseStore

// Run executes the shared store suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("create assigns unique non-empty ids", func(t *testing.T) {
		store := newStore(t)

		ids := make(map[string]struct{})
		for i := 1; i <= 50; i++ {
			v := entities.NewVerse("Genesis", 1, i, "text", 1)
			require.NoError(t, store.Create(v))
			require.NotEmpty(t, v.ID)
			ids[v.ID] = struct{}{}
		}
		assert.Len(t, ids, 50)

		all, err := store.GetAll()
		require.NoError(t, err)
		assert.Len(t, all, 50)
	})

	t.Run("create fills a missing id", func(t *testing.T) {
		store := newStore(t)

		v := &entities.Verse{Book: "Ruth", Chapter: 1, VerseNumber: 16, Text: "Whither thou goest", BookIndex: 8}
		require.NoError(t, store.Create(v))
		assert.NotEmpty(t, v.ID)

		got, err := store.GetByID(v.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ruth", got.Book)
	})

	t.Run("fields round-trip unchanged", func(t *testing.T) {
		store := newStore(t)

		v := entities.NewVerse("Genesis", 1, 1, "In the beginning...", 1)
		require.NoError(t, store.Create(v))

		got, err := store.GetByID(v.ID)
		require.NoError(t, err)
		assert.Equal(t, v.ID, got.ID)
		assert.Equal(t, "Genesis", got.Book)
		assert.Equal(t, 1, got.Chapter)
		assert.Equal(t, 1, got.VerseNumber)
		assert.Equal(t, "In the beginning...", got.Text)
		assert.Equal(t, 1, got.BookIndex)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("identical content is not deduplicated", func(t *testing.T) {
		store := newStore(t)

		a := entities.NewVerse("Psalms", 23, 1, "The Lord is my shepherd", 19)
		b := entities.NewVerse("Psalms", 23, 1, "The Lord is my shepherd", 19)
		require.NoError(t, store.Create(a))
		require.NoError(t, store.Create(b))

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		store := newStore(t)

		v := entities.NewVerse("John", 3, 16, "For God so loved the world", 43)
		require.NoError(t, store.Create(v))

		dup := entities.NewVerse("John", 3, 17, "other", 43)
		dup.ID = v.ID
		err := store.Create(dup)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrDuplicateID))

		got, err := store.GetByID(v.ID)
		require.NoError(t, err)
		assert.Equal(t, 16, got.VerseNumber)
	})

	t.Run("get all returns canonical order", func(t *testing.T) {
		store := newStore(t)

		for _, v := range []*entities.Verse{
			entities.NewVerse("Exodus", 1, 1, "e1", 2),
			entities.NewVerse("Genesis", 2, 1, "g2", 1),
			entities.NewVerse("Genesis", 1, 10, "g1-10", 1),
			entities.NewVerse("Genesis", 1, 2, "g1-2", 1),
			entities.NewVerse("Genesis", 1, 1, "g1-1", 1),
		} {
			require.NoError(t, store.Create(v))
		}

		all, err := store.GetAll()
		require.NoError(t, err)

		var texts []string
		for _, v := range all {
			texts = append(texts, v.Text)
		}
		assert.Equal(t, []string{"g1-1", "g1-2", "g1-10", "g2", "e1"}, texts)
	})

	t.Run("get by book filters by exact name", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Create(entities.NewVerse("Genesis", 1, 2, "g2", 1)))
		require.NoError(t, store.Create(entities.NewVerse("Genesis", 1, 1, "g1", 1)))
		require.NoError(t, store.Create(entities.NewVerse("Exodus", 1, 1, "e1", 2)))

		genesis, err := store.GetByBook("Genesis")
		require.NoError(t, err)
		require.Len(t, genesis, 2)
		assert.Equal(t, "g1", genesis[0].Text)
		assert.Equal(t, "g2", genesis[1].Text)

		lower, err := store.GetByBook("genesis")
		require.NoError(t, err)
		assert.Empty(t, lower)

		missing, err := store.GetByBook("Revelation")
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("get by id reports not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.GetByID("does-not-exist")
		assert.True(t, errors.Is(err, services.ErrVerseNotFound))
	})

	t.Run("create batch stores all verses", func(t *testing.T) {
		store := newStore(t)

		batch := []entities.Verse{
			*entities.NewVerse("Genesis", 1, 1, "g1", 1),
			*entities.NewVerse("Genesis", 1, 2, "g2", 1),
			{Book: "Genesis", Chapter: 1, VerseNumber: 3, Text: "g3", BookIndex: 1},
		}
		require.NoError(t, store.CreateBatch(batch))
		assert.NotEmpty(t, batch[2].ID)

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("create batch is all or nothing", func(t *testing.T) {
		store := newStore(t)

		existing := entities.NewVerse("Genesis", 1, 1, "g1", 1)
		require.NoError(t, store.Create(existing))

		clash := *entities.NewVerse("Genesis", 1, 3, "g3", 1)
		clash.ID = existing.ID
		err := store.CreateBatch([]entities.Verse{
			*entities.NewVerse("Genesis", 1, 2, "g2", 1),
			clash,
		})
		assert.True(t, errors.Is(err, services.ErrDuplicateID))

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("create batch rejects duplicates inside the batch", func(t *testing.T) {
		store := newStore(t)

		v := *entities.NewVerse("Genesis", 1, 1, "g1", 1)
		err := store.CreateBatch([]entities.Verse{v, v})
		assert.True(t, errors.Is(err, services.ErrDuplicateID))

		count, err := store.Count()
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("list books orders by book index", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.CreateBatch([]entities.Verse{
			*entities.NewVerse("Exodus", 1, 1, "e1", 2),
			*entities.NewVerse("Genesis", 1, 1, "g1", 1),
			*entities.NewVerse("Genesis", 1, 2, "g2", 1),
		}))

		books, err := store.ListBooks()
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, entities.BookSummary{Book: "Genesis", BookIndex: 1, VerseCount: 2}, books[0])
		assert.Equal(t, entities.BookSummary{Book: "Exodus", BookIndex: 2, VerseCount: 1}, books[1])
	})

	t.Run("delete all empties the store", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Create(entities.NewVerse("Genesis", 1, 1, "g1", 1)))
		require.NoError(t, store.Create(entities.NewVerse("Genesis", 1, 2, "g2", 1)))

		deleted, err := store.DeleteAll()
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		all, err := store.GetAll()
		require.NoError(t, err)
		assert.Empty(t, all)

		deleted, err = store.DeleteAll()
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
