package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/caseflow/caseflow/internal/domain/event"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	"github.com/caseflow/caseflow/internal/domain/policy"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
	portagent "github.com/caseflow/caseflow/internal/port/agent"
	portdispatcher "github.com/caseflow/caseflow/internal/port/dispatcher"
	portbus "github.com/caseflow/caseflow/internal/port/eventbus"
	porthistory "github.com/caseflow/caseflow/internal/port/history"
	portlocker "github.com/caseflow/caseflow/internal/port/locker"
	portqueue "github.com/caseflow/caseflow/internal/port/queue"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
)

// drainActor is the actor recorded on ledger entries written by drains.
const drainActor = "queue-drain"

// drainLock names the critical section that serialises drains.
const drainLock = "assignment_queue_drain"

// DrainResult reports one drain sweep. Failed entries never abort the sweep.
type DrainResult struct {
	Assigned int `json:"assigned"`
	Failed   int `json:"failed"`
	Requeued int `json:"requeued"`
}

// Service is the queue manager: it owns the durable backlog and drains it
// into the dispatcher as capacity frees up. Drains are serialised by an
// advisory lock; per-entry claims make overlapping drains harmless anyway.
type Service struct {
	repo   portqueue.Repository
	loads  portagent.LoadReader
	disp   portdispatcher.Dispatcher
	hist   porthistory.Repository
	bus    portbus.EventBus
	locker portlocker.AdvisoryLocker
	cfg    policy.Config
}

func NewService(
	repo portqueue.Repository,
	loads portagent.LoadReader,
	disp portdispatcher.Dispatcher,
	hist porthistory.Repository,
	bus portbus.EventBus,
	locker portlocker.AdvisoryLocker,
	cfg policy.Config,
) *Service {
	return &Service{
		repo:   repo,
		loads:  loads,
		disp:   disp,
		hist:   hist,
		bus:    bus,
		locker: locker,
		cfg:    cfg,
	}
}

// Drain attempts up to maxItems queued entries in priority/FIFO order. It
// stops early once no agent has spare capacity, checked before every claim —
// not inferred from repeated failures. A single bad entry is marked failed
// and skipped; infrastructure errors propagate.
func (s *Service) Drain(ctx context.Context, maxItems int) (DrainResult, error) {
	if maxItems <= 0 {
		maxItems = s.cfg.DrainBatchSize
	}

	var res DrainResult
	err := s.locker.WithLock(ctx, drainLock, func(ctx context.Context) error {
		requeued, err := s.repo.RequeueStale(ctx, s.cfg.StaleClaimAfter)
		if err != nil {
			return fmt.Errorf("requeue stale claims: %w", err)
		}
		res.Requeued = requeued
		if requeued > 0 {
			slog.InfoContext(ctx, "requeued stale queue claims", "count", requeued)
		}

		for i := 0; i < maxItems; i++ {
			spare, err := s.anySpareCapacity(ctx)
			if err != nil {
				return err
			}
			if !spare {
				return nil
			}

			entry, ok, err := s.repo.ClaimNext(ctx)
			if err != nil {
				return fmt.Errorf("claim queue entry: %w", err)
			}
			if !ok {
				return nil
			}

			if err := s.processEntry(ctx, entry, &res); err != nil {
				return err
			}
		}
		return nil
	})
	return res, err
}

// processEntry assigns one claimed entry. Assignment errors are per-entry:
// the entry is marked failed and the sweep continues.
func (s *Service) processEntry(ctx context.Context, entry domainqueue.Entry, res *DrainResult) error {
	detail := ""
	agentID, err := s.disp.TryAssign(ctx, entry.Ref(), entry.Priority, drainActor)
	switch {
	case errors.Is(err, dispatchersvc.ErrNoAgentAvailable):
		// Capacity vanished between the eligibility check and the commit.
		// Put the entry back untouched and let the next drain retry it.
		if relErr := s.repo.Release(ctx, entry.ID); relErr != nil {
			return fmt.Errorf("release queue entry %s: %w", entry.ID, relErr)
		}
		return nil
	case errors.Is(err, dispatchersvc.ErrAlreadyAssigned):
		// The item found an agent by some other route while its entry sat in
		// the queue. The existing assignment satisfies the entry.
		detail = "already assigned"
	case err != nil:
		if mErr := s.repo.MarkFailed(ctx, entry.ID, err.Error()); mErr != nil {
			return fmt.Errorf("mark queue entry %s failed: %w", entry.ID, mErr)
		}
		rec := domainhistory.New(domainhistory.TypeQueueProcessed, entry.Kind, entry.ItemID, nil, drainActor,
			"failed", err.Error())
		if hErr := s.hist.Append(ctx, rec); hErr != nil {
			return fmt.Errorf("append queue failure entry: %w", hErr)
		}
		slog.ErrorContext(ctx, "queue entry failed during drain", "entry_id", entry.ID, "ref", entry.Ref().String(), "error", err)
		res.Failed++
		return nil
	}

	if err := s.repo.MarkAssigned(ctx, entry.ID, agentID); err != nil {
		return fmt.Errorf("mark queue entry %s assigned: %w", entry.ID, err)
	}
	rec := domainhistory.New(domainhistory.TypeQueueProcessed, entry.Kind, entry.ItemID, &agentID, drainActor,
		"assigned", detail)
	if err := s.hist.Append(ctx, rec); err != nil {
		return fmt.Errorf("append queue processed entry: %w", err)
	}
	s.bus.Publish(ctx, event.New(event.TypeQueueDrained, entry.ItemID)) //nolint:errcheck
	res.Assigned++
	return nil
}

// Status returns aggregate counts per (status, priority) for observability.
func (s *Service) Status(ctx context.Context) ([]domainqueue.StatusCount, error) {
	counts, err := s.repo.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("queue status: %w", err)
	}
	return counts, nil
}

func (s *Service) anySpareCapacity(ctx context.Context) (bool, error) {
	loads, err := s.loads.ListLoads(ctx)
	if err != nil {
		return false, fmt.Errorf("read workload snapshot: %w", err)
	}
	for _, l := range loads {
		if l.HasSpare() {
			return true, nil
		}
	}
	return false, nil
}
