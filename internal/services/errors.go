package services

import "errors"

var (
	// ErrVerseNotFound is returned when no verse has the requested ID.
	ErrVerseNotFound = errors.New("verse not found")

	// ErrDuplicateID is returned when a verse ID already exists in the store
	// or appears twice in one batch.
	ErrDuplicateID = errors.New("duplicate verse id")
)
