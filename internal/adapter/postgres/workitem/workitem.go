package workitem

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pghistory "github.com/caseflow/caseflow/internal/adapter/postgres/history"
	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	domainworkitem "github.com/caseflow/caseflow/internal/domain/workitem"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
)

// Repository implements port/workitem.Repository and port/agent.LoadReader.
// The mutating methods run read-check-write and the ledger insert inside one
// transaction: the item row is locked first, then the agent row, always in
// that order so concurrent assign/reassign calls cannot deadlock.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, wi domainworkitem.WorkItem) (domainworkitem.WorkItem, error) {
	// Upsert on (kind, item_id): duplicate submissions of the same external
	// entity fall through to the existing row.
	query := `
		INSERT INTO work_items (kind, item_id, priority, status, assigned_agent_id, assigned_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (kind, item_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		wi.Kind, wi.ItemID, wi.Priority, wi.Status,
		wi.AssignedAgentID, wi.AssignedAt, wi.CreatedAt, wi.UpdatedAt,
	)
	if err != nil {
		return domainworkitem.WorkItem{}, fmt.Errorf("inserting work item: %w", err)
	}
	return r.Get(ctx, wi.Ref())
}

func (r *Repository) Get(ctx context.Context, ref domainworkitem.Ref) (domainworkitem.WorkItem, error) {
	query := `
		SELECT kind, item_id, priority, status, assigned_agent_id, assigned_at, created_at, updated_at
		FROM work_items WHERE kind = $1 AND item_id = $2`

	var wi domainworkitem.WorkItem
	err := r.pool.QueryRow(ctx, query, ref.Kind, ref.ItemID).Scan(
		&wi.Kind, &wi.ItemID, &wi.Priority, &wi.Status,
		&wi.AssignedAgentID, &wi.AssignedAt, &wi.CreatedAt, &wi.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainworkitem.WorkItem{}, portworkitem.ErrNotFound
		}
		return domainworkitem.WorkItem{}, fmt.Errorf("querying work item: %w", err)
	}
	return wi, nil
}

func (r *Repository) List(ctx context.Context, filters domainworkitem.ListFilters) ([]domainworkitem.WorkItem, error) {
	query := `
		SELECT kind, item_id, priority, status, assigned_agent_id, assigned_at, created_at, updated_at
		FROM work_items WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)
		args = append(args, string(*filters.Kind))
		argIdx++
	}
	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}
	if filters.AssignedTo != nil {
		query += fmt.Sprintf(" AND assigned_agent_id = $%d", argIdx)
		args = append(args, *filters.AssignedTo)
		argIdx++
	}
	if filters.Unassigned {
		query += " AND assigned_agent_id IS NULL"
	}

	if filters.OldestFirst {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Assign commits the capacity-guarded assignment and its ledger entry
// atomically. See port/workitem.Repository for the contract.
func (r *Repository) Assign(ctx context.Context, ref domainworkitem.Ref, agentID uuid.UUID, rec domainhistory.Entry) (portworkitem.AssignOutcome, error) {
	var out portworkitem.AssignOutcome
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		cur, err := lockItem(ctx, tx, ref)
		if err != nil {
			return err
		}
		if cur.assignedAgentID != nil {
			// Idempotent duplicate: the open item already has its agent.
			out = portworkitem.AssignOutcome{AgentID: *cur.assignedAgentID, AlreadyAssigned: true}
			return nil
		}

		if err := guardCapacity(ctx, tx, agentID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			UPDATE work_items SET assigned_agent_id = $1, assigned_at = NOW(), updated_at = NOW()
			WHERE kind = $2 AND item_id = $3`,
			agentID, ref.Kind, ref.ItemID,
		); err != nil {
			return fmt.Errorf("assigning work item: %w", err)
		}

		if err := pghistory.Insert(ctx, tx, rec); err != nil {
			return err
		}
		out = portworkitem.AssignOutcome{AgentID: agentID}
		return nil
	})
	if err != nil {
		return portworkitem.AssignOutcome{}, err
	}
	return out, nil
}

func (r *Repository) Reassign(ctx context.Context, ref domainworkitem.Ref, newAgentID uuid.UUID, rec domainhistory.Entry) (uuid.UUID, error) {
	var prev uuid.UUID
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		cur, err := lockItem(ctx, tx, ref)
		if err != nil {
			return err
		}
		if cur.assignedAgentID == nil {
			return portworkitem.ErrNotAssigned
		}
		prev = *cur.assignedAgentID
		if prev == newAgentID {
			// Already where the caller wants it; nothing to record.
			return nil
		}

		if err := guardCapacity(ctx, tx, newAgentID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			UPDATE work_items SET assigned_agent_id = $1, assigned_at = NOW(), updated_at = NOW()
			WHERE kind = $2 AND item_id = $3`,
			newAgentID, ref.Kind, ref.ItemID,
		); err != nil {
			return fmt.Errorf("reassigning work item: %w", err)
		}

		return pghistory.Insert(ctx, tx, rec)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return prev, nil
}

func (r *Repository) SetStatus(ctx context.Context, ref domainworkitem.Ref, status domainworkitem.Status, rec domainhistory.Entry) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var holder *uuid.UUID
		err := tx.QueryRow(ctx, `
			UPDATE work_items SET status = $1, updated_at = NOW()
			WHERE kind = $2 AND item_id = $3 AND status = 'open'
			RETURNING assigned_agent_id`,
			string(status), ref.Kind, ref.ItemID,
		).Scan(&holder)
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish closed from missing for the caller.
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM work_items WHERE kind = $1 AND item_id = $2)`,
				ref.Kind, ref.ItemID,
			).Scan(&exists); err != nil {
				return fmt.Errorf("checking work item existence: %w", err)
			}
			if exists {
				return portworkitem.ErrClosed
			}
			return portworkitem.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("updating work item status: %w", err)
		}
		if rec.AgentID == nil {
			// Attribute the close to whoever held the item so completion
			// counts land on the agent that worked it.
			rec.AgentID = holder
		}
		return pghistory.Insert(ctx, tx, rec)
	})
}

// ListLoads implements port/agent.LoadReader: one query, one snapshot.
func (r *Repository) ListLoads(ctx context.Context) ([]domainagent.Load, error) {
	query := `
		SELECT a.id, a.name, a.role, a.capacity, a.created_at,
			COUNT(w.item_id) FILTER (WHERE w.kind = 'event'),
			COUNT(w.item_id) FILTER (WHERE w.kind = 'organizer')
		FROM case_agents a
		LEFT JOIN work_items w ON w.assigned_agent_id = a.id AND w.status = 'open'
		GROUP BY a.id
		ORDER BY a.created_at, a.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing agent loads: %w", err)
	}
	defer rows.Close()

	var loads []domainagent.Load
	for rows.Next() {
		var l domainagent.Load
		if err := rows.Scan(
			&l.Agent.ID, &l.Agent.Name, &l.Agent.Role, &l.Agent.Capacity, &l.Agent.CreatedAt,
			&l.Workload.OpenEventCount, &l.Workload.OpenOrganizerCount,
		); err != nil {
			return nil, fmt.Errorf("scanning agent load row: %w", err)
		}
		l.Workload.Total = l.Workload.OpenEventCount + l.Workload.OpenOrganizerCount
		loads = append(loads, l)
	}
	return loads, rows.Err()
}

// Workload implements port/agent.LoadReader for a single agent.
func (r *Repository) Workload(ctx context.Context, agentID uuid.UUID) (domainagent.Workload, error) {
	var w domainagent.Workload
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE kind = 'event'),
			COUNT(*) FILTER (WHERE kind = 'organizer')
		FROM work_items
		WHERE assigned_agent_id = $1 AND status = 'open'`,
		agentID,
	).Scan(&w.OpenEventCount, &w.OpenOrganizerCount)
	if err != nil {
		return domainagent.Workload{}, fmt.Errorf("counting workload: %w", err)
	}
	w.Total = w.OpenEventCount + w.OpenOrganizerCount
	return w, nil
}

type lockedItem struct {
	status          string
	assignedAgentID *uuid.UUID
}

// lockItem takes the row lock that serialises all mutations of one item.
func lockItem(ctx context.Context, tx pgx.Tx, ref domainworkitem.Ref) (lockedItem, error) {
	var li lockedItem
	err := tx.QueryRow(ctx, `
		SELECT status, assigned_agent_id FROM work_items
		WHERE kind = $1 AND item_id = $2 FOR UPDATE`,
		ref.Kind, ref.ItemID,
	).Scan(&li.status, &li.assignedAgentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lockedItem{}, portworkitem.ErrNotFound
		}
		return lockedItem{}, fmt.Errorf("locking work item: %w", err)
	}
	if li.status != string(domainworkitem.StatusOpen) {
		return lockedItem{}, portworkitem.ErrClosed
	}
	return li, nil
}

// guardCapacity locks the agent row and checks its open count under that
// lock. The count and the subsequent UPDATE happen in the same transaction,
// so two concurrent assigns to a nearly-full agent serialise here and the
// loser sees the winner's row.
func guardCapacity(ctx context.Context, tx pgx.Tx, agentID uuid.UUID) error {
	var capacity int
	err := tx.QueryRow(ctx, `SELECT capacity FROM case_agents WHERE id = $1 FOR UPDATE`, agentID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("agent %s not found", agentID)
		}
		return fmt.Errorf("locking agent row: %w", err)
	}

	var open int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM work_items WHERE assigned_agent_id = $1 AND status = 'open'`,
		agentID,
	).Scan(&open); err != nil {
		return fmt.Errorf("counting open items: %w", err)
	}
	if open >= capacity {
		return portworkitem.ErrCapacityConflict
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]domainworkitem.WorkItem, error) {
	var items []domainworkitem.WorkItem
	for rows.Next() {
		var wi domainworkitem.WorkItem
		if err := rows.Scan(
			&wi.Kind, &wi.ItemID, &wi.Priority, &wi.Status,
			&wi.AssignedAgentID, &wi.AssignedAt, &wi.CreatedAt, &wi.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}
		items = append(items, wi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work item rows: %w", err)
	}
	return items, nil
}
