package http

import (
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/audit"
	"github.com/mrlokans/buzzwords/internal/auth"
	"github.com/mrlokans/buzzwords/internal/services"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core services
	AuthService     *auth.Service
	WordService     *services.WordService
	BookmarkService *services.BookmarkService
	StatsService    *services.StatsService

	// Audit trail (optional)
	AuditService       *audit.Service
	AuditRetentionDays int

	// Store connectivity for /health (optional)
	Database Pinger

	// Task queue client (optional)
	TaskClient TaskQueue

	// Request handling
	ReadOnly       bool
	RequestTimeout time.Duration

	// Application info
	Version string
	Logger  *zap.Logger
}
