package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, a domainagent.CaseAgent) (domainagent.CaseAgent, error) {
	query := `
		INSERT INTO case_agents (id, name, role, capacity, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, name, role, capacity, created_at`

	var created domainagent.CaseAgent
	err := r.pool.QueryRow(ctx, query,
		a.ID, a.Name, a.Role, a.Capacity, a.CreatedAt,
	).Scan(&created.ID, &created.Name, &created.Role, &created.Capacity, &created.CreatedAt)
	if err != nil {
		return domainagent.CaseAgent{}, fmt.Errorf("inserting agent: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainagent.CaseAgent, error) {
	var a domainagent.CaseAgent
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, role, capacity, created_at FROM case_agents WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Role, &a.Capacity, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainagent.CaseAgent{}, fmt.Errorf("agent %s not found", id)
		}
		return domainagent.CaseAgent{}, fmt.Errorf("querying agent: %w", err)
	}
	return a, nil
}

func (r *Repository) List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.CaseAgent, error) {
	query := `SELECT id, name, role, capacity, created_at FROM case_agents WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Role != nil {
		query += fmt.Sprintf(" AND role = $%d", argIdx)
		args = append(args, string(*filters.Role))
		argIdx++
	}

	query += " ORDER BY created_at, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	var agents []domainagent.CaseAgent
	for rows.Next() {
		var a domainagent.CaseAgent
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.Capacity, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning agent row: %w", err)
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM case_agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", id)
	}
	return nil
}
