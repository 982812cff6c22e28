package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/workitem"
)

type Type string

const (
	TypeCreated        Type = "created"
	TypeReassigned     Type = "reassigned"
	TypeCompleted      Type = "completed"
	TypeStatusChanged  Type = "status_changed"
	TypeQueueAdded     Type = "queue_added"
	TypeQueueProcessed Type = "queue_processed"
)

// Entry is one row of the append-only assignment ledger. Entries are never
// updated or deleted by the scheduler; retention cleanup is external policy.
type Entry struct {
	ID        uuid.UUID     `json:"id"`
	Type      Type          `json:"type"`
	Kind      workitem.Kind `json:"kind"`
	ItemID    uuid.UUID     `json:"item_id"`
	AgentID   *uuid.UUID    `json:"agent_id,omitempty"`
	ActorID   string        `json:"actor_id"`
	Action    string        `json:"action"`
	Details   string        `json:"details,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

func New(t Type, kind workitem.Kind, itemID uuid.UUID, agentID *uuid.UUID, actorID, action, details string) Entry {
	return Entry{
		ID:        uuid.New(),
		Type:      t,
		Kind:      kind,
		ItemID:    itemID,
		AgentID:   agentID,
		ActorID:   actorID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
}

type Filters struct {
	Kind    *workitem.Kind
	ItemID  *uuid.UUID
	AgentID *uuid.UUID
	ActorID *string
	Type    *Type
	From    *time.Time
	To      *time.Time
}

// Page bounds a ledger query. Zero Limit means the service default.
type Page struct {
	Limit  int
	Offset int
}
