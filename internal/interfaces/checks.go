package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/sacredsteps/sacredsteps/internal/database"
	"github.com/sacredsteps/sacredsteps/internal/database/memory"
	"github.com/sacredsteps/sacredsteps/internal/database/verses"
	"github.com/sacredsteps/sacredsteps/internal/http"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// VerseStore implementations
var _ services.VerseStore = (*verses.Repository)(nil)
var _ services.VerseStore = (*memory.Repository)(nil)

// BookLister implementations
var _ http.BookLister = (*verses.Repository)(nil)
var _ http.BookLister = (*memory.Repository)(nil)

// =============================================================================
// Health Checks
// =============================================================================

// StoreChecker implementations
var _ http.StoreChecker = (*database.Database)(nil)
var _ http.StoreChecker = (*memory.Repository)(nil)
