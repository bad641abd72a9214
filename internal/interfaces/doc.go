// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help contributors find
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - WordStore: Dictionary entries (internal/services/interfaces.go)
//   - BookmarkStore: Per-user bookmarks (internal/services/interfaces.go)
//   - UserCounter: User totals for statistics (internal/services/interfaces.go)
//   - UserStore: Account lookup and creation (internal/auth/service.go)
//   - Pinger: Store liveness for health checks (internal/http/health.go)
//
// ## Background Work Interfaces
//
//   - OrphanBookmarkSweeper: Dangling bookmark cleanup (internal/tasks/sweep_bookmarks.go)
//   - MaintenanceRecorder: Outcome of maintenance runs (internal/tasks/sweep_bookmarks.go)
//   - AuditEventCleaner: Audit retention (internal/tasks/cleanup_audit.go)
//   - Enqueuer: Scheduled task submission (internal/scheduler/maintenance.go)
//   - TaskQueue: Manual task submission and status (internal/http/tasks.go)
//
// # Adding a New Maintenance Task
//
//  1. Define the task and its processor in internal/tasks/
//
//     type ReindexWordsTask struct{}
//
//     func (t ReindexWordsTask) Config() backlite.QueueConfig {
//         return backlite.QueueConfig{Name: QueueReindexWords, MaxAttempts: 1}
//     }
//
//     func NewReindexWordsQueue(store WordReindexer, logger *zap.Logger) backlite.Queue
//
//  2. Register the queue in entrypoint.go
//
//  3. Enqueue it from the scheduler or expose it in TasksController
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/<domain>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Register the entity in Database.Migrate
//
//  4. Add a compile-time check in checks.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
