package agent

import (
	"context"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
)

// LoadReader reads agents joined with their open-item counts. Each call is a
// single consistent snapshot — the counts are computed in one query, never
// assembled from separate reads.
type LoadReader interface {
	// ListLoads returns every agent with its workload, ordered by agent
	// creation time (stable tie-break order for selection).
	ListLoads(ctx context.Context) ([]domainagent.Load, error)

	// Workload returns the open-item counts for one agent.
	Workload(ctx context.Context, agentID uuid.UUID) (domainagent.Workload, error)
}

// RosterReader resolves agent identity for display purposes (notification
// payloads). Implementations may cache — the roster is read-mostly.
type RosterReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domainagent.CaseAgent, error)
}
