package config

const (
	DefaultDatabaseDriver = "sqlite"

	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./buzzwords.db"

	// DefaultTasksDatabasePath is used for the task queue when it cannot be
	// placed next to the main database
	DefaultTasksDatabasePath = "./buzzwords-tasks.db"
)
