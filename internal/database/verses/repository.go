// Package verses provides SQLite-backed verse storage through gorm.
//
// # Interface Implementation
//
//	var _ services.VerseStore = (*Repository)(nil)
//
// # Usage
//
//	repo := verses.NewRepository(db)
//	err := repo.Create(entities.NewVerse("Genesis", 1, 1, "In the beginning...", 1))
//	genesis, err := repo.GetByBook("Genesis")
package verses

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

const (
	canonicalOrder = "book_index ASC, chapter ASC, verse_number ASC, id ASC"
	batchSize      = 200
)

// Repository handles all verse database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new verses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a verse, generating an ID if it has none.
func (r *Repository) Create(verse *entities.Verse) error {
	if verse.ID == "" {
		verse.ID = entities.NewVerseID()
	}
	if err := r.db.Create(verse).Error; err != nil {
		return translateError(err, verse.ID)
	}
	return nil
}

// CreateBatch inserts all verses in a single transaction. If any insert
// fails nothing is written. Missing IDs are filled in place.
func (r *Repository) CreateBatch(verses []entities.Verse) error {
	if len(verses) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(verses))
	for i := range verses {
		if verses[i].ID == "" {
			verses[i].ID = entities.NewVerseID()
		}
		if _, dup := seen[verses[i].ID]; dup {
			return fmt.Errorf("%w: %s", services.ErrDuplicateID, verses[i].ID)
		}
		seen[verses[i].ID] = struct{}{}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(verses, batchSize).Error; err != nil {
			return translateError(err, "")
		}
		return nil
	})
}

// GetAll returns every verse in canonical reading order.
func (r *Repository) GetAll() ([]entities.Verse, error) {
	var verses []entities.Verse
	err := r.db.Order(canonicalOrder).Find(&verses).Error
	return verses, err
}

// GetByBook returns the verses of one book (exact name match) in reading order.
func (r *Repository) GetByBook(book string) ([]entities.Verse, error) {
	var verses []entities.Verse
	err := r.db.Where("book = ?", book).Order(canonicalOrder).Find(&verses).Error
	return verses, err
}

// GetByID retrieves a verse by ID.
func (r *Repository) GetByID(id string) (*entities.Verse, error) {
	var verse entities.Verse
	err := r.db.Where("id = ?", id).First(&verse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrVerseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

// Count returns the number of stored verses.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Verse{}).Count(&count).Error
	return count, err
}

// ListBooks returns one summary per distinct book ordered by book index.
func (r *Repository) ListBooks() ([]entities.BookSummary, error) {
	var books []entities.BookSummary
	err := r.db.Model(&entities.Verse{}).
		Select("book, MIN(book_index) AS book_index, COUNT(*) AS verse_count").
		Group("book").
		Order("book_index ASC, book ASC").
		Scan(&books).Error
	return books, err
}

// DeleteAll removes every verse and reports how many were deleted.
func (r *Repository) DeleteAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Verse{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func translateError(err error, id string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		if id == "" {
			return services.ErrDuplicateID
		}
		return fmt.Errorf("%w: %s", services.ErrDuplicateID, id)
	}
	return err
}
