package policy

import (
	"time"

	"github.com/caseflow/caseflow/internal/domain/scoring"
)

// Strategy selects how the dispatcher picks among agents with spare capacity.
type Strategy string

const (
	// StrategyWorkload picks the least-loaded eligible agent (default).
	StrategyWorkload Strategy = "workload_based"
	// StrategyRoundRobin derives an index from the clock for even long-run
	// distribution without per-call state.
	StrategyRoundRobin Strategy = "round_robin"
	// StrategySkill currently delegates to workload-based selection. It is an
	// explicit extension point, kept as its own value so callers can opt in
	// before richer skill routing lands.
	StrategySkill Strategy = "skill_based"
	// StrategyAdvanced picks the highest weighted score.
	StrategyAdvanced Strategy = "advanced"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyWorkload, StrategyRoundRobin, StrategySkill, StrategyAdvanced:
		return true
	}
	return false
}

// Config carries the scheduling policy. There is no global instance — every
// service receives a Config through its constructor so parallel test
// schedulers share no process state.
type Config struct {
	// Capacity is the per-agent limit applied when registering agents.
	Capacity int

	Strategy Strategy
	Weights  scoring.Weights

	// DrainBatchSize bounds one background drain sweep.
	DrainBatchSize int

	// StaleClaimAfter is how long a queue entry may sit in processing before
	// a sweep releases it back to queued (crash recovery).
	StaleClaimAfter time.Duration

	// PerformanceWindow is the trailing window for agent quality metrics.
	PerformanceWindow time.Duration
}

// Default mirrors the historical operating constants. They are policy
// defaults, not invariants — override per deployment.
var Default = Config{
	Capacity:          20,
	Strategy:          StrategyWorkload,
	Weights:           scoring.DefaultWeights,
	DrainBatchSize:    25,
	StaleClaimAfter:   5 * time.Minute,
	PerformanceWindow: 7 * 24 * time.Hour,
}
