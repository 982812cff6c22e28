package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/workitem"
)

type Status string

const (
	StatusQueued Status = "queued"
	// StatusProcessing is the per-entry claim: a drain loop flips an entry
	// queued → processing atomically before attempting assignment, so two
	// concurrent drains can never hand the same entry to two agents.
	StatusProcessing Status = "processing"
	StatusAssigned   Status = "assigned"
	StatusFailed     Status = "failed"
)

// Entry is one deferred work item. Once assigned or failed the entry is
// immutable — retries create nothing new, failed entries wait for manual
// intervention.
type Entry struct {
	ID              uuid.UUID         `json:"id"`
	Kind            workitem.Kind     `json:"kind"`
	ItemID          uuid.UUID         `json:"item_id"`
	Priority        workitem.Priority `json:"priority"`
	Status          Status            `json:"status"`
	QueuedAt        time.Time         `json:"queued_at"`
	ClaimedAt       *time.Time        `json:"claimed_at,omitempty"`
	AssignedAgentID *uuid.UUID        `json:"assigned_agent_id,omitempty"`
	AssignedAt      *time.Time        `json:"assigned_at,omitempty"`
	FailReason      string            `json:"fail_reason,omitempty"`
}

func New(kind workitem.Kind, itemID uuid.UUID, priority workitem.Priority) Entry {
	return Entry{
		ID:       uuid.New(),
		Kind:     kind,
		ItemID:   itemID,
		Priority: priority,
		Status:   StatusQueued,
		QueuedAt: time.Now().UTC(),
	}
}

func (e Entry) Ref() workitem.Ref {
	return workitem.Ref{Kind: e.Kind, ItemID: e.ItemID}
}

// StatusCount is one row of the queue observability report.
type StatusCount struct {
	Status   Status            `json:"status"`
	Priority workitem.Priority `json:"priority"`
	Count    int               `json:"count"`
}
