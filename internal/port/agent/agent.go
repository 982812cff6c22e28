package agent

import (
	"context"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
)

// Repository manages the agent roster in the database.
type Repository interface {
	Create(ctx context.Context, a domainagent.CaseAgent) (domainagent.CaseAgent, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainagent.CaseAgent, error)
	List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.CaseAgent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
