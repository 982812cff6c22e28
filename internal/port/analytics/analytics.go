package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AgentQuality is one agent's trailing-window performance. Score is in
// [0, 1]; agents with no activity in the window report a zero CompletedCount
// and a neutral Score.
type AgentQuality struct {
	AgentID              uuid.UUID `json:"agent_id"`
	GrantedCount         int       `json:"granted_count"`
	CompletedCount       int       `json:"completed_count"`
	CompletionRate       float64   `json:"completion_rate"`
	AvgCompletionSeconds float64   `json:"avg_completion_seconds"`
	Score                float64   `json:"score"`
}

// PerformanceReader supplies per-agent quality over a trailing window.
// Consumed read-only by performance-based rebalancing.
type PerformanceReader interface {
	AgentQuality(ctx context.Context, window time.Duration) ([]AgentQuality, error)
}
