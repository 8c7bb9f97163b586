package entities

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Verse is a single verse of the text together with its location.
// Records are immutable once stored; ordering is derived, never stored.
type Verse struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Book        string    `gorm:"index;size:128" json:"book"`
	Chapter     int       `gorm:"index:idx_verses_canonical,priority:2" json:"chapter"`
	VerseNumber int       `gorm:"index:idx_verses_canonical,priority:3" json:"verse_number"`
	Text        string    `gorm:"type:text" json:"text"`
	BookIndex   int       `gorm:"index:idx_verses_canonical,priority:1" json:"book_index"` // canonical position of the book, e.g. Genesis = 1
	CreatedAt   time.Time `json:"created_at"`
}

// BookSummary describes one book present in a store.
type BookSummary struct {
	Book       string `json:"book"`
	BookIndex  int    `json:"book_index"`
	VerseCount int64  `json:"verse_count"`
}

// NewVerseID returns a fresh random identifier for a verse.
func NewVerseID() string {
	return uuid.NewString()
}

// NewVerse creates a verse with a newly generated ID.
// No range or emptiness checks are applied to the supplied fields.
func NewVerse(book string, chapter, verseNumber int, text string, bookIndex int) *Verse {
	return &Verse{
		ID:          NewVerseID(),
		Book:        book,
		Chapter:     chapter,
		VerseNumber: verseNumber,
		Text:        text,
		BookIndex:   bookIndex,
	}
}

// Reference formats the verse location as "Book Chapter:Verse".
func (v *Verse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.Book, v.Chapter, v.VerseNumber)
}

// LessCanonical reports whether a comes before b in reading order.
// Ties on (BookIndex, Chapter, VerseNumber) fall back to ID.
func LessCanonical(a, b Verse) bool {
	if a.BookIndex != b.BookIndex {
		return a.BookIndex < b.BookIndex
	}
	if a.Chapter != b.Chapter {
		return a.Chapter < b.Chapter
	}
	if a.VerseNumber != b.VerseNumber {
		return a.VerseNumber < b.VerseNumber
	}
	return a.ID < b.ID
}

// SortCanonical sorts verses in place into reading order.
func SortCanonical(verses []Verse) {
	sort.SliceStable(verses, func(i, j int) bool {
		return LessCanonical(verses[i], verses[j])
	})
}
