package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Store backs every verse and book endpoint.
	Store VerseStore

	// StoreChecker is pinged by /health. Nil reports "not configured".
	StoreChecker StoreChecker

	// Backend names the store kind in health output, e.g. "sqlite".
	Backend string

	Version string
}
