package workitem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which external entity a work item reviews.
type Kind string

const (
	KindEvent     Kind = "event"
	KindOrganizer Kind = "organizer"
)

func (k Kind) Valid() bool {
	return k == KindEvent || k == KindOrganizer
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityNormal: 2,
	PriorityLow:    3,
}

// Rank maps a priority to its sort position: urgent drains before low.
func (p Priority) Rank() int {
	r, ok := priorityRank[p]
	if !ok {
		return priorityRank[PriorityNormal]
	}
	return r
}

func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Ref names a work item by its kind and the id of the external entity it
// reviews. The pair is the item's identity — the scheduler never stores the
// entity itself.
type Ref struct {
	Kind   Kind      `json:"kind"`
	ItemID uuid.UUID `json:"item_id"`
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.ItemID)
}

type WorkItem struct {
	Kind            Kind       `json:"kind"`
	ItemID          uuid.UUID  `json:"item_id"`
	Priority        Priority   `json:"priority"`
	Status          Status     `json:"status"`
	AssignedAgentID *uuid.UUID `json:"assigned_agent_id,omitempty"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func New(kind Kind, itemID uuid.UUID, priority Priority) WorkItem {
	now := time.Now().UTC()
	return WorkItem{
		Kind:      kind,
		ItemID:    itemID,
		Priority:  priority,
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (w WorkItem) Ref() Ref {
	return Ref{Kind: w.Kind, ItemID: w.ItemID}
}

// IsOpen reports whether the item still counts toward its agent's workload.
func (w WorkItem) IsOpen() bool {
	return w.Status == StatusOpen
}

type ListFilters struct {
	Kind        *Kind
	Status      *Status
	AssignedTo  *uuid.UUID
	Unassigned  bool // WHERE assigned_agent_id IS NULL
	OldestFirst bool // ORDER BY created_at ASC (default is DESC)
}
