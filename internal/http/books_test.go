package http

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/sacredsteps/sacredsteps/internal/database"
	"github.com/sacredsteps/sacredsteps/internal/database/verses"
	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksController_List(t *testing.T) {
	t.Run("returns empty list when store is empty", func(t *testing.T) {
		db := setupHealthTestDB(t)
		defer db.Close()
		router := setupVersesRouter(t, verses.NewRepository(db.DB))

		w := performRequest(router, "GET", "/api/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(0), response["count"])
		assert.Equal(t, []interface{}{}, response["books"])
	})

	t.Run("returns books in canonical order with counts", func(t *testing.T) {
		db, err := database.NewDatabase(filepath.Join(t.TempDir(), "books.db"), "silent")
		require.NoError(t, err)
		defer db.Close()

		store := verses.NewRepository(db.DB)
		require.NoError(t, store.CreateBatch([]entities.Verse{
			*entities.NewVerse("Matthew", 1, 1, "m1", 40),
			*entities.NewVerse("Genesis", 1, 1, "g1", 1),
			*entities.NewVerse("Genesis", 1, 2, "g2", 1),
		}))
		router := setupVersesRouter(t, store)

		w := performRequest(router, "GET", "/api/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Books []entities.BookSummary `json:"books"`
			Count int                    `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 2, response.Count)
		assert.Equal(t, "Genesis", response.Books[0].Book)
		assert.Equal(t, int64(2), response.Books[0].VerseCount)
		assert.Equal(t, "Matthew", response.Books[1].Book)
		assert.Equal(t, 40, response.Books[1].BookIndex)
	})
}
