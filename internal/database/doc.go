// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Driver selection, connection setup, migrations
//	├── errors.go        # Store error classification helpers
//	├── words/           # Dictionary entries and search
//	├── users/           # Registered users
//	├── bookmarks/       # Per-user bookmarks with resolved words
//	└── audit/           # Audit trail
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase(database.Options{Driver: "sqlite", DSN: "./buzzwords.db"})
//
//	wordsRepo := words.NewRepository(db.DB)
//	bookmarksRepo := bookmarks.NewRepository(db.DB)
//
//	list, err := wordsRepo.List(ctx, words.Filter{Prefix: "c"})
//
// # Errors
//
// Repositories return *apperrors.Error values. Unique index violations become
// DuplicateKey, missing rows become NotFound, and everything else is wrapped
// as Internal. Callers never see raw driver errors.
//
// # Schema
//
// Foreign key constraints are not created during migration, so a bookmark
// may outlive the word it references. The maintenance sweep removes those.
package database
