package history

import (
	"context"

	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
)

// Repository is the append-only ledger. Append never fails silently — errors
// propagate so the caller can refuse the state change it was recording.
type Repository interface {
	Append(ctx context.Context, e domainhistory.Entry) error

	// Query returns entries newest-first.
	Query(ctx context.Context, f domainhistory.Filters, p domainhistory.Page) ([]domainhistory.Entry, error)
}
