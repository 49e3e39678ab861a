// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, query Query) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	return s.repo.LogAccess(ctx, log)
}

// QueryLogs defaults to the last 24 hours and at most 100 entries.
func (s *service) QueryLogs(ctx context.Context, query Query) ([]AuditLog, error) {
	if query.To.IsZero() {
		query.To = time.Now().UTC()
	}
	if query.From.IsZero() {
		query.From = query.To.Add(-24 * time.Hour)
	}
	if query.Limit <= 0 || query.Limit > 1000 {
		query.Limit = 100
	}
	return s.repo.QueryLogs(ctx, query)
}
