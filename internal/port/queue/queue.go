package queue

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/history"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
)

// Repository persists the durable assignment backlog. Enqueue writes the
// entry and its ledger record in one transaction; ClaimNext is the atomic
// queued → processing transition that keeps concurrent drains from
// double-assigning an entry.
type Repository interface {
	// Enqueue is idempotent per item: when a live (queued or processing)
	// entry for the same item exists, that entry is returned unchanged and
	// no ledger record is written. Callers detect the duplicate by comparing
	// the returned ID with the one they submitted.
	Enqueue(ctx context.Context, e domainqueue.Entry, rec history.Entry) (domainqueue.Entry, error)

	// ClaimNext claims the highest-priority, oldest-queued entry. The second
	// return is false when nothing is queued.
	ClaimNext(ctx context.Context) (domainqueue.Entry, bool, error)

	// MarkAssigned finalises a claimed entry. CAS on processing status.
	MarkAssigned(ctx context.Context, id, agentID uuid.UUID) error

	// MarkFailed records a non-fatal assignment failure; the entry is left
	// for manual retry.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error

	// Release puts a claimed entry back to queued (capacity vanished between
	// claim and assignment).
	Release(ctx context.Context, id uuid.UUID) error

	// RequeueStale releases processing entries whose claim is older than the
	// given age. Crash recovery for drains that died mid-claim.
	RequeueStale(ctx context.Context, olderThan time.Duration) (int, error)

	// Status returns aggregate counts per (status, priority).
	Status(ctx context.Context) ([]domainqueue.StatusCount, error)
}
