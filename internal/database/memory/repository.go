// Package memory provides a process-local verse store.
//
// It is used for the "memory" store backend and in tests that do not need
// a database file. Records are copied on the way in and out, so callers
// cannot mutate stored verses.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

// Repository keeps verses in a map keyed by ID.
type Repository struct {
	mu     sync.RWMutex
	verses map[string]entities.Verse
	now    func() time.Time
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		verses: make(map[string]entities.Verse),
		now:    time.Now,
	}
}

// Create stores a copy of verse, generating an ID if it has none.
func (r *Repository) Create(verse *entities.Verse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if verse.ID == "" {
		verse.ID = entities.NewVerseID()
	}
	if _, exists := r.verses[verse.ID]; exists {
		return fmt.Errorf("%w: %s", services.ErrDuplicateID, verse.ID)
	}
	if verse.CreatedAt.IsZero() {
		verse.CreatedAt = r.now()
	}
	r.verses[verse.ID] = *verse
	return nil
}

// CreateBatch stores all verses or none of them.
func (r *Repository) CreateBatch(verses []entities.Verse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(verses))
	for i := range verses {
		if verses[i].ID == "" {
			verses[i].ID = entities.NewVerseID()
		}
		id := verses[i].ID
		if _, exists := r.verses[id]; exists {
			return fmt.Errorf("%w: %s", services.ErrDuplicateID, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", services.ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	now := r.now()
	for i := range verses {
		if verses[i].CreatedAt.IsZero() {
			verses[i].CreatedAt = now
		}
		r.verses[verses[i].ID] = verses[i]
	}
	return nil
}

// GetAll returns every verse in canonical reading order.
func (r *Repository) GetAll() ([]entities.Verse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	verses := make([]entities.Verse, 0, len(r.verses))
	for _, v := range r.verses {
		verses = append(verses, v)
	}
	entities.SortCanonical(verses)
	return verses, nil
}

// GetByBook returns the verses of one book in reading order.
func (r *Repository) GetByBook(book string) ([]entities.Verse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	verses := make([]entities.Verse, 0)
	for _, v := range r.verses {
		if v.Book == book {
			verses = append(verses, v)
		}
	}
	entities.SortCanonical(verses)
	return verses, nil
}

// GetByID retrieves a verse by ID.
func (r *Repository) GetByID(id string) (*entities.Verse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.verses[id]
	if !ok {
		return nil, services.ErrVerseNotFound
	}
	return &v, nil
}

// Count returns the number of stored verses.
func (r *Repository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.verses)), nil
}

// ListBooks returns one summary per distinct book ordered by book index.
func (r *Repository) ListBooks() ([]entities.BookSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byBook := make(map[string]*entities.BookSummary)
	for _, v := range r.verses {
		s, ok := byBook[v.Book]
		if !ok {
			byBook[v.Book] = &entities.BookSummary{Book: v.Book, BookIndex: v.BookIndex, VerseCount: 1}
			continue
		}
		if v.BookIndex < s.BookIndex {
			s.BookIndex = v.BookIndex
		}
		s.VerseCount++
	}

	books := make([]entities.BookSummary, 0, len(byBook))
	for _, s := range byBook {
		books = append(books, *s)
	}
	sort.Slice(books, func(i, j int) bool {
		if books[i].BookIndex != books[j].BookIndex {
			return books[i].BookIndex < books[j].BookIndex
		}
		return books[i].Book < books[j].Book
	})
	return books, nil
}

// DeleteAll removes every verse and reports how many were deleted.
func (r *Repository) DeleteAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.verses))
	r.verses = make(map[string]entities.Verse)
	return n, nil
}

// Ping always succeeds; there is no connection to check.
func (r *Repository) Ping() error {
	return nil
}
