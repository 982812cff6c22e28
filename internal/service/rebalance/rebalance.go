package rebalance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/policy"
	"github.com/caseflow/caseflow/internal/domain/workitem"
	portagent "github.com/caseflow/caseflow/internal/port/agent"
	portanalytics "github.com/caseflow/caseflow/internal/port/analytics"
	portdispatcher "github.com/caseflow/caseflow/internal/port/dispatcher"
	portlocker "github.com/caseflow/caseflow/internal/port/locker"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
	selectorsvc "github.com/caseflow/caseflow/internal/service/selector"
)

const (
	ReasonLoadBalancing    = "load-balancing"
	ReasonPerformanceBased = "performance-based"

	rebalanceActor = "rebalance"

	// sweepLock names the critical section shared by both balancing modes.
	sweepLock = "assignment_rebalance_sweep"
)

// Result summarises one rebalancing sweep. A sweep that finds nothing to do
// returns a zero Result and no error — sweeps are safe to re-run.
type Result struct {
	Examined int `json:"examined"`
	Moved    int `json:"moved"`
	Skipped  int `json:"skipped"`
}

// Service moves already-assigned items between agents, either to drain
// overloaded agents or to route work away from underperformers. All moves go
// through the dispatcher's capacity-guarded Reassign; an advisory lock keeps
// overlapping sweeps from fighting over the same items.
type Service struct {
	loads    portagent.LoadReader
	items    portworkitem.Repository
	disp     portdispatcher.Dispatcher
	selector *selectorsvc.Service
	perf     portanalytics.PerformanceReader
	locker   portlocker.AdvisoryLocker
	cfg      policy.Config
}

func NewService(
	loads portagent.LoadReader,
	items portworkitem.Repository,
	disp portdispatcher.Dispatcher,
	selector *selectorsvc.Service,
	perf portanalytics.PerformanceReader,
	locker portlocker.AdvisoryLocker,
	cfg policy.Config,
) *Service {
	return &Service{
		loads:    loads,
		items:    items,
		disp:     disp,
		selector: selector,
		perf:     perf,
		locker:   locker,
		cfg:      cfg,
	}
}

// BalanceLoad drains agents at or over capacity by moving their oldest open
// items to the best alternative agent until each is back under its limit.
func (s *Service) BalanceLoad(ctx context.Context) (Result, error) {
	var res Result
	err := s.locker.WithLock(ctx, sweepLock, func(ctx context.Context) error {
		loads, err := s.loads.ListLoads(ctx)
		if err != nil {
			return fmt.Errorf("read workload snapshot: %w", err)
		}

		for _, l := range loads {
			if l.HasSpare() {
				continue
			}
			res.Examined++
			// Free one slot below the limit so the agent can breathe.
			excess := l.Workload.Total - l.Agent.Capacity + 1
			moved, err := s.moveItems(ctx, l.Agent.ID, excess, ReasonLoadBalancing, nil)
			if err != nil {
				return err
			}
			res.Moved += moved
			if moved < excess {
				res.Skipped += excess - moved
			}
		}
		return nil
	})
	return res, err
}

// BalanceByPerformance moves up to maxMoves open items away from agents
// whose trailing quality score is below threshold, onto agents at or above
// it with spare capacity.
func (s *Service) BalanceByPerformance(ctx context.Context, threshold float64, maxMoves int) (Result, error) {
	if maxMoves <= 0 {
		maxMoves = s.cfg.DrainBatchSize
	}

	var res Result
	err := s.locker.WithLock(ctx, sweepLock, func(ctx context.Context) error {
		quality, err := s.perf.AgentQuality(ctx, s.cfg.PerformanceWindow)
		if err != nil {
			return fmt.Errorf("read agent quality: %w", err)
		}

		scoreByAgent := make(map[uuid.UUID]float64, len(quality))
		for _, q := range quality {
			scoreByAgent[q.AgentID] = q.Score
		}

		// Worst first, so the moves budget helps where it matters most.
		poor := make([]portanalytics.AgentQuality, 0, len(quality))
		for _, q := range quality {
			if q.Score < threshold && q.GrantedCount > 0 {
				poor = append(poor, q)
			}
		}
		sort.Slice(poor, func(i, j int) bool { return poor[i].Score < poor[j].Score })

		keepTargets := func(loads []domainagent.Load) []domainagent.Load {
			kept := loads[:0]
			for _, l := range loads {
				if score, ok := scoreByAgent[l.Agent.ID]; !ok || score >= threshold {
					kept = append(kept, l)
				}
			}
			return kept
		}

		for _, q := range poor {
			if res.Moved >= maxMoves {
				break
			}
			res.Examined++
			moved, err := s.moveItems(ctx, q.AgentID, maxMoves-res.Moved, ReasonPerformanceBased, keepTargets)
			if err != nil {
				return err
			}
			res.Moved += moved
		}
		return nil
	})
	return res, err
}

// moveItems reassigns up to limit open items held by fromAgent. filterTargets
// optionally narrows the candidate loads before selection. Returns how many
// items actually moved; running out of eligible targets stops the loop
// without error.
func (s *Service) moveItems(
	ctx context.Context,
	fromAgent uuid.UUID,
	limit int,
	reason string,
	filterTargets func([]domainagent.Load) []domainagent.Load,
) (int, error) {
	open := workitem.StatusOpen
	items, err := s.items.List(ctx, workitem.ListFilters{
		AssignedTo:  &fromAgent,
		Status:      &open,
		OldestFirst: true,
	})
	if err != nil {
		return 0, fmt.Errorf("list items for agent %s: %w", fromAgent, err)
	}

	moved := 0
	for _, item := range items {
		if moved >= limit {
			break
		}

		// Fresh snapshot per move: each reassignment changes the loads the
		// next pick must see.
		loads, err := s.loads.ListLoads(ctx)
		if err != nil {
			return moved, fmt.Errorf("read workload snapshot: %w", err)
		}
		if filterTargets != nil {
			loads = filterTargets(loads)
		}
		target, err := s.selector.Pick(s.cfg.Strategy, loads, item.Kind, item.Priority, fromAgent)
		if errors.Is(err, selectorsvc.ErrNoAgentAvailable) {
			return moved, nil
		}
		if err != nil {
			return moved, err
		}

		_, err = s.disp.Reassign(ctx, item.Ref(), target.ID, reason, rebalanceActor)
		switch {
		case errors.Is(err, dispatchersvc.ErrCapacityExceeded):
			// Target filled up under us; the next iteration re-reads loads.
			continue
		case errors.Is(err, dispatchersvc.ErrItemNotAssigned):
			// Item was completed or moved since the listing. Skip it.
			continue
		case err != nil:
			return moved, fmt.Errorf("reassign %s: %w", item.Ref(), err)
		}
		slog.InfoContext(ctx, "rebalanced work item", "ref", item.Ref().String(),
			"from", fromAgent, "to", target.ID, "reason", reason)
		moved++
	}
	return moved, nil
}
