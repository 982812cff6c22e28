package selector

import (
	"bytes"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/policy"
	"github.com/caseflow/caseflow/internal/domain/scoring"
	"github.com/caseflow/caseflow/internal/domain/workitem"
)

var ErrNoAgentAvailable = errors.New("no agent with spare capacity")

// Service picks an agent from a workload snapshot. It is pure over its
// inputs plus the clock: it never touches the store, so the caller decides
// how fresh the snapshot is and commits the pick with a conditional write.
// [SRP] Only selects — no assignment responsibility.
type Service struct {
	weights scoring.Weights
	now     func() time.Time
}

func NewService(weights scoring.Weights) *Service {
	return &Service{weights: weights, now: time.Now}
}

// WithClock overrides the time source. Round-robin and scoring depend on the
// clock; tests inject a fixed one.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Pick returns the chosen agent for the item, or ErrNoAgentAvailable when no
// agent in the snapshot has spare capacity. Agents in exclude never qualify.
func (s *Service) Pick(strategy policy.Strategy, loads []domainagent.Load, kind workitem.Kind, priority workitem.Priority, exclude ...uuid.UUID) (domainagent.CaseAgent, error) {
	eligible := eligibleLoads(loads, exclude)
	if len(eligible) == 0 {
		return domainagent.CaseAgent{}, ErrNoAgentAvailable
	}

	switch strategy {
	case policy.StrategyRoundRobin:
		return s.pickRoundRobin(eligible), nil
	case policy.StrategyAdvanced:
		return s.pickAdvanced(eligible, kind, priority), nil
	case policy.StrategySkill:
		// Skill routing is an extension point; until it lands, skill-based
		// selection behaves exactly like workload-based.
		return pickWorkload(eligible), nil
	default:
		return pickWorkload(eligible), nil
	}
}

// eligibleLoads filters to spare-capacity agents and fixes the iteration
// order: creation time, then id. Every strategy's tie-break is deterministic
// because of this ordering.
func eligibleLoads(loads []domainagent.Load, exclude []uuid.UUID) []domainagent.Load {
	excluded := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	eligible := make([]domainagent.Load, 0, len(loads))
	for _, l := range loads {
		if _, skip := excluded[l.Agent.ID]; skip {
			continue
		}
		if !l.HasSpare() {
			continue
		}
		eligible = append(eligible, l)
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i].Agent, eligible[j].Agent
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
	return eligible
}

// pickWorkload returns the least-loaded agent; ties go to the earliest
// created.
func pickWorkload(eligible []domainagent.Load) domainagent.CaseAgent {
	best := eligible[0]
	for _, l := range eligible[1:] {
		if l.Workload.Total < best.Workload.Total {
			best = l
		}
	}
	return best.Agent
}

// pickRoundRobin indexes the eligible list from the clock. No per-call state
// to persist, and over time assignments spread evenly.
func (s *Service) pickRoundRobin(eligible []domainagent.Load) domainagent.CaseAgent {
	idx := int(s.now().UnixNano() % int64(len(eligible)))
	if idx < 0 {
		idx = -idx
	}
	return eligible[idx].Agent
}

// pickAdvanced scores every eligible agent and returns the highest; score
// ties go to the lowest agent id.
func (s *Service) pickAdvanced(eligible []domainagent.Load, kind workitem.Kind, priority workitem.Priority) domainagent.CaseAgent {
	now := s.now()
	best := eligible[0]
	bestScore := scoring.Compute(best, kind, priority, now, s.weights).Value
	for _, l := range eligible[1:] {
		v := scoring.Compute(l, kind, priority, now, s.weights).Value
		if v > bestScore || (v == bestScore && bytes.Compare(l.Agent.ID[:], best.Agent.ID[:]) < 0) {
			best, bestScore = l, v
		}
	}
	return best.Agent
}
