package health

import (
	"context"
	"database/sql"
	"time"
)

// Service reports process and dependency readiness.
type Service struct {
	db *sql.DB
}

// NewService constructs a health service. db may be nil when the API runs on
// the in-memory repository.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns the health payload. A reachable database reports
// "postgres"; without one the API is still healthy on memory storage.
func (s *Service) Status(ctx context.Context) map[string]any {
	payload := map[string]any{"ok": true, "storage": "memory"}
	if s.db == nil {
		return payload
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	payload["storage"] = "postgres"
	if err := s.db.PingContext(pingCtx); err != nil {
		payload["ok"] = false
		payload["error"] = "database unreachable"
	}
	return payload
}
