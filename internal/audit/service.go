// Package audit records who did what: signups, logins, word submissions,
// bookmark changes and maintenance runs.
//
// Writes happen in the background so a slow audit table never delays a
// response. A nil *Service is valid and records nothing.
package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/database/audit"
	"github.com/mrlokans/buzzwords/internal/entities"
)

const writeTimeout = 5 * time.Second

// Service provides high-level audit logging functionality.
type Service struct {
	repo   *audit.Repository
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Log records a generic audit event synchronously.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	if s == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := s.repo.LogEvent(ctx, event); err != nil {
			s.logger.Warn("failed to log audit event",
				zap.String("action", event.Action),
				zap.Error(err))
		}
	}()
}

// Wait blocks until every pending background write has finished.
func (s *Service) Wait() {
	if s == nil {
		return
	}
	s.wg.Wait()
}

// LogAuth records a signup or login attempt.
func (s *Service) LogAuth(username, action, ipAddr, userAgent string, err error) {
	event := &entities.AuditEvent{
		Username:   username,
		EventType:  entities.AuditEventAuth,
		Action:     action,
		EntityType: "user",
		IPAddress:  ipAddr,
		UserAgent:  truncate(userAgent, 500),
	}
	setOutcome(event, err)
	s.LogAsync(event)
}

// LogWord records a word submission.
func (s *Service) LogWord(username, wordID, description string, err error) {
	event := &entities.AuditEvent{
		Username:    username,
		EventType:   entities.AuditEventWord,
		Action:      "word_submit",
		Description: truncate(description, 500),
		EntityType:  "word",
		EntityID:    wordID,
	}
	setOutcome(event, err)
	s.LogAsync(event)
}

// LogBookmark records a bookmark add or remove.
func (s *Service) LogBookmark(username, action, bookmarkID, description string, err error) {
	event := &entities.AuditEvent{
		Username:    username,
		EventType:   entities.AuditEventBookmark,
		Action:      action,
		Description: truncate(description, 500),
		EntityType:  "bookmark",
		EntityID:    bookmarkID,
	}
	setOutcome(event, err)
	s.LogAsync(event)
}

// LogMaintenance records a background maintenance run.
func (s *Service) LogMaintenance(action, description string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventMaintenance,
		Action:      action,
		Description: truncate(description, 500),
	}
	setOutcome(event, err)
	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, username string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, username, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(ctx context.Context, eventType entities.AuditEventType, username string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(ctx, eventType, username, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

func setOutcome(event *entities.AuditEvent, err error) {
	event.Status = entities.AuditStatusSuccess
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
