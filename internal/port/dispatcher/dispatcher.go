package dispatcher

import (
	"context"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/workitem"
)

// Result is the caller-facing outcome of an assignment attempt. Queued is a
// normal outcome, not an error.
type Result struct {
	Assigned        bool       `json:"assigned"`
	Queued          bool       `json:"queued"`
	AlreadyAssigned bool       `json:"already_assigned,omitempty"`
	AgentID         *uuid.UUID `json:"agent_id,omitempty"`
}

// Dispatcher is the narrow view the queue manager and rebalance engine need.
// [ISP] Neither consumer sees the enqueue fallback — TryAssign surfaces
// ErrNoAgentAvailable instead of queueing, so a drain can never loop an entry
// back into the queue it just popped it from.
type Dispatcher interface {
	TryAssign(ctx context.Context, ref workitem.Ref, priority workitem.Priority, actorID string) (uuid.UUID, error)
	Reassign(ctx context.Context, ref workitem.Ref, newAgentID uuid.UUID, reason, actorID string) (Result, error)
}
