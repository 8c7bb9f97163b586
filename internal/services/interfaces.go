package services

import "github.com/sacredsteps/sacredsteps/internal/entities"

// VerseRepository is the minimal persistence contract for verses.
type VerseRepository interface {
	Create(verse *entities.Verse) error
	GetAll() ([]entities.Verse, error)
	GetByBook(book string) ([]entities.Verse, error)
	DeleteAll() (int64, error)
}

// VerseStore extends VerseRepository with the lookups used by the
// HTTP surface and CLI. Both the SQLite and in-memory stores implement it.
type VerseStore interface {
	VerseRepository
	CreateBatch(verses []entities.Verse) error
	GetByID(id string) (*entities.Verse, error)
	Count() (int64, error)
	ListBooks() ([]entities.BookSummary, error)
}
