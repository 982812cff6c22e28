package workitem

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/history"
	domainworkitem "github.com/caseflow/caseflow/internal/domain/workitem"
)

var (
	ErrNotFound = errors.New("work item not found")
	// ErrClosed means the item has already been completed or cancelled.
	ErrClosed = errors.New("work item is closed")
	// ErrNotAssigned means a reassignment targeted an item with no current agent.
	ErrNotAssigned = errors.New("work item has no current assignment")
	// ErrCapacityConflict means the capacity-guarded write refused to push the
	// agent over its limit. Expected under concurrency — callers retry against
	// a fresh snapshot or queue the item.
	ErrCapacityConflict = errors.New("agent is at capacity")
)

// AssignOutcome reports the committed assignment. AlreadyAssigned is the
// idempotent path: the item was already open and held by AgentID, and no new
// ledger entry was written.
type AssignOutcome struct {
	AgentID         uuid.UUID
	AlreadyAssigned bool
}

// Repository persists work items. The mutating methods run the full
// read-check-write sequence and the ledger insert inside one store
// transaction: a capacity check is never separated from its write, and a
// failed ledger insert rolls the mutation back.
type Repository interface {
	Create(ctx context.Context, wi domainworkitem.WorkItem) (domainworkitem.WorkItem, error)
	Get(ctx context.Context, ref domainworkitem.Ref) (domainworkitem.WorkItem, error)
	List(ctx context.Context, filters domainworkitem.ListFilters) ([]domainworkitem.WorkItem, error)

	// Assign commits the assignment iff the agent's open count stays under its
	// capacity. Returns ErrCapacityConflict when the conditional write loses
	// the race. Idempotent per ref: an already-assigned open item returns the
	// existing agent with AlreadyAssigned set.
	Assign(ctx context.Context, ref domainworkitem.Ref, agentID uuid.UUID, rec history.Entry) (AssignOutcome, error)

	// Reassign moves an assigned item to newAgentID under the same capacity
	// guard and returns the previous agent. ErrNotAssigned when the item has
	// no current agent.
	Reassign(ctx context.Context, ref domainworkitem.Ref, newAgentID uuid.UUID, rec history.Entry) (uuid.UUID, error)

	// SetStatus closes an open item (completed or cancelled). CAS on the open
	// status: a second call returns ErrClosed. When rec carries no agent, the
	// ledger entry is attributed to the agent holding the item at close time.
	SetStatus(ctx context.Context, ref domainworkitem.Ref, status domainworkitem.Status, rec history.Entry) error
}
