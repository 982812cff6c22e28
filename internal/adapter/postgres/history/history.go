package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
)

// Execer is satisfied by both *pgxpool.Pool and pgx.Tx, so Insert can run
// standalone or inside another repository's transaction.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Insert appends one ledger row. Exported so the workitem and queue
// repositories can write their ledger entry in the same transaction as the
// state change it records.
func Insert(ctx context.Context, db Execer, e domainhistory.Entry) error {
	_, err := db.Exec(ctx, `
		INSERT INTO assignment_history (id, type, kind, item_id, agent_id, actor_id, action, details, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.Type, e.Kind, e.ItemID, e.AgentID, e.ActorID, e.Action, nilIfEmpty(e.Details), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Append(ctx context.Context, e domainhistory.Entry) error {
	return Insert(ctx, r.pool, e)
}

func (r *Repository) Query(ctx context.Context, f domainhistory.Filters, p domainhistory.Page) ([]domainhistory.Entry, error) {
	query := `
		SELECT id, type, kind, item_id, agent_id, actor_id, action, COALESCE(details, ''), created_at
		FROM assignment_history WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if f.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)
		args = append(args, string(*f.Kind))
		argIdx++
	}
	if f.ItemID != nil {
		query += fmt.Sprintf(" AND item_id = $%d", argIdx)
		args = append(args, *f.ItemID)
		argIdx++
	}
	if f.AgentID != nil {
		query += fmt.Sprintf(" AND agent_id = $%d", argIdx)
		args = append(args, *f.AgentID)
		argIdx++
	}
	if f.ActorID != nil {
		query += fmt.Sprintf(" AND actor_id = $%d", argIdx)
		args = append(args, *f.ActorID)
		argIdx++
	}
	if f.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, string(*f.Type))
		argIdx++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, *f.From)
		argIdx++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND created_at < $%d", argIdx)
		args = append(args, *f.To)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, p.Limit, p.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]domainhistory.Entry, error) {
	var entries []domainhistory.Entry
	for rows.Next() {
		var e domainhistory.Entry
		if err := rows.Scan(
			&e.ID, &e.Type, &e.Kind, &e.ItemID, &e.AgentID,
			&e.ActorID, &e.Action, &e.Details, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return entries, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
