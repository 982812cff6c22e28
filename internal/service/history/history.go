package history

import (
	"context"
	"fmt"

	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	porthistory "github.com/caseflow/caseflow/internal/port/history"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// Service fronts the ledger for audit queries. The core only ever appends;
// reads exist for the HTTP surface and analytics.
type Service struct {
	repo porthistory.Repository
}

func NewService(repo porthistory.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Append(ctx context.Context, e domainhistory.Entry) error {
	if err := s.repo.Append(ctx, e); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

func (s *Service) Query(ctx context.Context, f domainhistory.Filters, p domainhistory.Page) ([]domainhistory.Entry, error) {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	entries, err := s.repo.Query(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return entries, nil
}
