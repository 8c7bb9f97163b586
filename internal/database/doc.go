// Package database provides the data access layer for verses.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── verses/          # SQLite-backed verse repository (gorm)
//	├── memory/          # In-memory verse repository
//	└── storetest/       # Behaviour suite shared by both repositories
//
// Both repositories implement services.VerseStore, so callers can switch
// between a file-backed store and a process-local one without changes:
//
//	db, err := database.NewDatabase("./sacred-steps.db", "warn")
//	store := verses.NewRepository(db.DB)
//
//	// or
//	store := memory.NewRepository()
//
//	v := entities.NewVerse("Genesis", 1, 1, "In the beginning...", 1)
//	err = store.Create(v)
//	all, err := store.GetAll() // canonical order
//
// # Adding a New Store
//
//  1. Create a new sub-package: internal/database/<name>/
//  2. Implement services.VerseStore
//  3. Run storetest.Run against it from the package tests
//  4. Add a compile-time check in internal/interfaces/checks.go
package database
