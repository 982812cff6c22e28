package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/workitem"
)

const (
	TypeAssignmentCreated = "assignment_created"
	TypeAssignmentUpdated = "assignment_updated"
)

// Notification is the payload pushed to whoever watches assignments.
type Notification struct {
	Type      string        `json:"type"`
	Kind      workitem.Kind `json:"kind"`
	ItemID    uuid.UUID     `json:"item_id"`
	AgentID   uuid.UUID     `json:"agent_id"`
	AgentName string        `json:"agent_name"`
	Reason    string        `json:"reason,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// AssignmentNotifier delivers fire-and-forget assignment notifications.
// A delivery failure never rolls back the assignment that triggered it.
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, n Notification) error
}
