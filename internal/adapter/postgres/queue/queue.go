package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pghistory "github.com/caseflow/caseflow/internal/adapter/postgres/history"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
)

// priorityOrder sorts urgent before low inside SQL.
const priorityOrder = `CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'normal' THEN 2 ELSE 3 END`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Enqueue inserts the entry and its ledger record in one transaction; a
// ledger failure rolls the enqueue back. A partial unique index allows one
// live (queued or processing) entry per item: a duplicate submission returns
// the existing entry and writes no ledger record.
func (r *Repository) Enqueue(ctx context.Context, e domainqueue.Entry, rec domainhistory.Entry) (domainqueue.Entry, error) {
	var created domainqueue.Entry
	const columns = `id, kind, item_id, priority, status, queued_at, claimed_at, assigned_agent_id, assigned_at, COALESCE(fail_reason, '')`
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO assignment_queue (id, kind, item_id, priority, status, queued_at)
			VALUES ($1,$2,$3,$4,$5,$6)
			ON CONFLICT (kind, item_id) WHERE status IN ('queued', 'processing') DO NOTHING
			RETURNING `+columns,
			e.ID, e.Kind, e.ItemID, e.Priority, e.Status, e.QueuedAt,
		).Scan(
			&created.ID, &created.Kind, &created.ItemID, &created.Priority, &created.Status,
			&created.QueuedAt, &created.ClaimedAt, &created.AssignedAgentID, &created.AssignedAt, &created.FailReason,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			// The item already has an entry in flight. No status filter here:
			// the conflicting entry may have been claimed and settled since
			// the insert lost, and the latest row is still the right answer.
			err = tx.QueryRow(ctx, `
				SELECT `+columns+` FROM assignment_queue
				WHERE kind = $1 AND item_id = $2
				ORDER BY queued_at DESC LIMIT 1`,
				e.Kind, e.ItemID,
			).Scan(
				&created.ID, &created.Kind, &created.ItemID, &created.Priority, &created.Status,
				&created.QueuedAt, &created.ClaimedAt, &created.AssignedAgentID, &created.AssignedAt, &created.FailReason,
			)
			if err != nil {
				return fmt.Errorf("reading existing queue entry: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("inserting queue entry: %w", err)
		}
		return pghistory.Insert(ctx, tx, rec)
	})
	if err != nil {
		return domainqueue.Entry{}, err
	}
	return created, nil
}

// ClaimNext flips the highest-priority, oldest queued entry to processing.
// SKIP LOCKED keeps concurrent drains off each other's entries.
func (r *Repository) ClaimNext(ctx context.Context) (domainqueue.Entry, bool, error) {
	query := `
		UPDATE assignment_queue SET status = 'processing', claimed_at = NOW()
		WHERE id = (
			SELECT id FROM assignment_queue
			WHERE status = 'queued'
			ORDER BY ` + priorityOrder + `, queued_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, item_id, priority, status, queued_at, claimed_at, assigned_agent_id, assigned_at, COALESCE(fail_reason, '')`

	var e domainqueue.Entry
	err := r.pool.QueryRow(ctx, query).Scan(
		&e.ID, &e.Kind, &e.ItemID, &e.Priority, &e.Status,
		&e.QueuedAt, &e.ClaimedAt, &e.AssignedAgentID, &e.AssignedAt, &e.FailReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainqueue.Entry{}, false, nil
		}
		return domainqueue.Entry{}, false, fmt.Errorf("claiming queue entry: %w", err)
	}
	return e, true, nil
}

func (r *Repository) MarkAssigned(ctx context.Context, id, agentID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assignment_queue SET status = 'assigned', assigned_agent_id = $1, assigned_at = NOW()
		WHERE id = $2 AND status = 'processing'`,
		agentID, id,
	)
	if err != nil {
		return fmt.Errorf("marking queue entry assigned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("queue entry %s claim CAS failed: not processing", id)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assignment_queue SET status = 'failed', fail_reason = $1
		WHERE id = $2 AND status = 'processing'`,
		reason, id,
	)
	if err != nil {
		return fmt.Errorf("marking queue entry failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("queue entry %s claim CAS failed: not processing", id)
	}
	return nil
}

func (r *Repository) Release(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assignment_queue SET status = 'queued', claimed_at = NULL
		WHERE id = $1 AND status = 'processing'`,
		id,
	)
	if err != nil {
		return fmt.Errorf("releasing queue entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("queue entry %s claim CAS failed: not processing", id)
	}
	return nil
}

func (r *Repository) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assignment_queue SET status = 'queued', claimed_at = NULL
		WHERE status = 'processing' AND claimed_at < NOW() - make_interval(secs => $1)`,
		olderThan.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("requeueing stale claims: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) Status(ctx context.Context) ([]domainqueue.StatusCount, error) {
	query := `
		SELECT status, priority, COUNT(*)
		FROM assignment_queue
		GROUP BY status, priority
		ORDER BY status, ` + priorityOrder

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying queue status: %w", err)
	}
	defer rows.Close()

	var counts []domainqueue.StatusCount
	for rows.Next() {
		var c domainqueue.StatusCount
		if err := rows.Scan(&c.Status, &c.Priority, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning queue status row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
