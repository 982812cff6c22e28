package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	portanalytics "github.com/caseflow/caseflow/internal/port/analytics"
)

// Reader derives per-agent quality from the assignment history ledger. It is
// read-only: the ledger is the single source for performance data.
type Reader struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Reader {
	return &Reader{pool: pool}
}

// AgentQuality returns, per agent, how much work was granted and completed
// inside the trailing window and how fast completions landed.
func (r *Reader) AgentQuality(ctx context.Context, window time.Duration) ([]portanalytics.AgentQuality, error) {
	query := `
		SELECT a.id,
			COUNT(h.id) FILTER (WHERE h.type IN ('created', 'reassigned')),
			COUNT(h.id) FILTER (WHERE h.type = 'completed')
		FROM case_agents a
		LEFT JOIN assignment_history h
			ON h.agent_id = a.id AND h.created_at >= NOW() - make_interval(secs => $1)
		GROUP BY a.id
		ORDER BY a.created_at, a.id`

	rows, err := r.pool.Query(ctx, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("querying agent quality: %w", err)
	}
	defer rows.Close()

	var out []portanalytics.AgentQuality
	for rows.Next() {
		var q portanalytics.AgentQuality
		if err := rows.Scan(&q.AgentID, &q.GrantedCount, &q.CompletedCount); err != nil {
			return nil, fmt.Errorf("scanning agent quality row: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating agent quality rows: %w", err)
	}

	speed, err := r.completionSpeeds(ctx, window)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].AvgCompletionSeconds = speed[out[i].AgentID]
		out[i].CompletionRate, out[i].Score = score(out[i])
	}
	return out, nil
}

// completionSpeeds measures seconds between a completion ledger entry and
// the item's last assignment timestamp.
func (r *Reader) completionSpeeds(ctx context.Context, window time.Duration) (map[uuid.UUID]float64, error) {
	query := `
		SELECT h.agent_id, AVG(EXTRACT(EPOCH FROM h.created_at - w.assigned_at))
		FROM assignment_history h
		JOIN work_items w ON w.kind = h.kind AND w.item_id = h.item_id
		WHERE h.type = 'completed'
			AND h.agent_id IS NOT NULL
			AND h.created_at >= NOW() - make_interval(secs => $1)
			AND w.assigned_at IS NOT NULL
		GROUP BY h.agent_id`

	rows, err := r.pool.Query(ctx, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("querying completion speeds: %w", err)
	}
	defer rows.Close()

	speeds := make(map[uuid.UUID]float64)
	for rows.Next() {
		var id uuid.UUID
		var avg float64
		if err := rows.Scan(&id, &avg); err != nil {
			return nil, fmt.Errorf("scanning completion speed row: %w", err)
		}
		speeds[id] = avg
	}
	return speeds, rows.Err()
}

// score blends completion rate with speed. Rate dominates; the speed factor
// decays toward zero as average completion time passes a day. Agents with no
// granted work in the window score a neutral 0.5 so a fresh agent is never
// flagged as an underperformer.
func score(q portanalytics.AgentQuality) (rate, s float64) {
	if q.GrantedCount == 0 {
		return 0, 0.5
	}
	rate = float64(q.CompletedCount) / float64(q.GrantedCount)
	if rate > 1 {
		rate = 1
	}
	if q.AvgCompletionSeconds <= 0 {
		return rate, rate
	}
	speedFactor := 1 / (1 + q.AvgCompletionSeconds/86400)
	return rate, 0.7*rate + 0.3*speedFactor
}
