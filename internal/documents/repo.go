package documents

import "context"

// Repo defines persistence operations for documents.
//
// GetByID and DeleteByID do not enforce ownership; callers compare the owning
// user before acting. DeleteByID is idempotent at this layer.
type Repo interface {
	Create(ctx context.Context, doc Document) (Document, error)
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	GetByID(ctx context.Context, id int64) (Document, error)
	DeleteByID(ctx context.Context, id int64) error
}
