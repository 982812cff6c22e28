package workload

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	portagent "github.com/caseflow/caseflow/internal/port/agent"
)

// Service is the workload tracker. It is a thin facade over the snapshot
// reader so every consumer gets counts from one consistent read.
type Service struct {
	loads portagent.LoadReader
}

func NewService(loads portagent.LoadReader) *Service {
	return &Service{loads: loads}
}

// Workload returns the open-item counts for one agent.
func (s *Service) Workload(ctx context.Context, agentID uuid.UUID) (domainagent.Workload, error) {
	w, err := s.loads.Workload(ctx, agentID)
	if err != nil {
		return domainagent.Workload{}, fmt.Errorf("workload for agent %s: %w", agentID, err)
	}
	return w, nil
}

// Snapshot returns every agent with its workload in one consistent read.
func (s *Service) Snapshot(ctx context.Context) ([]domainagent.Load, error) {
	loads, err := s.loads.ListLoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("workload snapshot: %w", err)
	}
	return loads, nil
}
