package cli

import (
	"fmt"
	"path/filepath"

	"github.com/sacredsteps/sacredsteps/internal/database"
	"github.com/sacredsteps/sacredsteps/internal/database/verses"
)

// openVerseStore opens the SQLite store at dbPath for a single command run.
// The returned close function must be called when the command finishes.
func openVerseStore(dbPath string) (*verses.Repository, func() error, error) {
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath, "silent")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return verses.NewRepository(db.DB), db.Close, nil
}
