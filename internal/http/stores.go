package http

import (
	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

// Store interfaces used by HTTP controllers. Each controller depends on the
// narrowest interface it needs.

// VerseStore is what the verses controller reads and writes through.
type VerseStore = services.VerseStore

// BookLister lists the books present in the store.
type BookLister interface {
	ListBooks() ([]entities.BookSummary, error)
}

// StoreChecker reports whether the backing store is reachable.
type StoreChecker interface {
	Ping() error
}
