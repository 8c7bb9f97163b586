// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - VerseRepository: Create, GetAll, GetByBook, DeleteAll (internal/services/interfaces.go)
//   - VerseStore: VerseRepository plus batch create and lookups (internal/services/interfaces.go)
//   - BookLister: Book summaries for the books endpoint (internal/http/stores.go)
//
// ## Health Interfaces
//
//   - StoreChecker: Store connectivity for /health (internal/http/stores.go)
//
// # Adding a New Store Backend
//
//  1. Create sub-package: internal/database/<name>/
//
//  2. Define repository:
//
//     type Repository struct { ... }
//
//     func NewRepository(...) *Repository
//
//  3. Implement services.VerseStore and run storetest.Run from its tests
//
//  4. Add a case to entrypoint.OpenStore and a config.StoreBackend constant
//
//  5. Add compile-time check:
//
//     var _ services.VerseStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
