package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/buzzwords/internal/audit"
	"github.com/mrlokans/buzzwords/internal/auth"
	"github.com/mrlokans/buzzwords/internal/database"
	"github.com/mrlokans/buzzwords/internal/database/bookmarks"
	"github.com/mrlokans/buzzwords/internal/database/users"
	"github.com/mrlokans/buzzwords/internal/database/words"
	"github.com/mrlokans/buzzwords/internal/http"
	"github.com/mrlokans/buzzwords/internal/scheduler"
	"github.com/mrlokans/buzzwords/internal/services"
	"github.com/mrlokans/buzzwords/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// WordStore implementations
var _ services.WordStore = (*words.Repository)(nil)

// BookmarkStore implementations
var _ services.BookmarkStore = (*bookmarks.Repository)(nil)

// UserStore / UserCounter implementations
var _ auth.UserStore = (*users.Repository)(nil)
var _ services.UserCounter = (*users.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ tasks.OrphanBookmarkSweeper = (*bookmarks.Repository)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ tasks.MaintenanceRecorder = (*audit.Service)(nil)

var _ scheduler.Enqueuer = (*tasks.Client)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)
