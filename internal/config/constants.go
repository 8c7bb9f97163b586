package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the verse database
	DefaultDatabasePath = "./sacred-steps.db"
)
