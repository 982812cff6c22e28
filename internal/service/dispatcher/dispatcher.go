package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/event"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	"github.com/caseflow/caseflow/internal/domain/policy"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
	"github.com/caseflow/caseflow/internal/domain/workitem"
	portagent "github.com/caseflow/caseflow/internal/port/agent"
	portdispatcher "github.com/caseflow/caseflow/internal/port/dispatcher"
	portbus "github.com/caseflow/caseflow/internal/port/eventbus"
	portnotifier "github.com/caseflow/caseflow/internal/port/notifier"
	portqueue "github.com/caseflow/caseflow/internal/port/queue"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
	selectorsvc "github.com/caseflow/caseflow/internal/service/selector"
)

var (
	// ErrNoAgentAvailable is soft: Assign turns it into a queued result,
	// TryAssign surfaces it so drains can stop.
	ErrNoAgentAvailable = errors.New("no agent available")
	// ErrCapacityExceeded means an explicitly requested reassignment target
	// has no spare capacity.
	ErrCapacityExceeded = errors.New("target agent is at capacity")
	// ErrItemNotAssigned means reassign was called for an item nobody holds.
	ErrItemNotAssigned = errors.New("work item is not assigned")
)

var _ portdispatcher.Dispatcher = (*Service)(nil)

// Service orchestrates assignment: snapshot → select → conditional commit,
// then ledger, notification and bus fan-out. The commit and its ledger entry
// happen inside one store transaction; the selector only ever proposes.
// [DIP] Depends on ports, never on adapters or transport.
type Service struct {
	items    portworkitem.Repository
	loads    portagent.LoadReader
	roster   portagent.RosterReader
	queue    portqueue.Repository
	selector *selectorsvc.Service
	notifier portnotifier.AssignmentNotifier
	bus      portbus.EventBus
	cfg      policy.Config
}

func NewService(
	items portworkitem.Repository,
	loads portagent.LoadReader,
	roster portagent.RosterReader,
	queue portqueue.Repository,
	selector *selectorsvc.Service,
	notifier portnotifier.AssignmentNotifier,
	bus portbus.EventBus,
	cfg policy.Config,
) *Service {
	return &Service{
		items:    items,
		loads:    loads,
		roster:   roster,
		queue:    queue,
		selector: selector,
		notifier: notifier,
		bus:      bus,
		cfg:      cfg,
	}
}

// Assign places a new work item with an agent, or defers it to the queue
// when nobody has spare capacity. Queued is a success-shaped outcome.
func (s *Service) Assign(ctx context.Context, ref workitem.Ref, priority workitem.Priority, actorID string) (portdispatcher.Result, error) {
	// Submission doubles as creation. Create is an upsert on (kind, item_id),
	// so a duplicate submission falls through to the idempotent assign path.
	if _, err := s.items.Create(ctx, workitem.New(ref.Kind, ref.ItemID, priority)); err != nil {
		return portdispatcher.Result{}, fmt.Errorf("create work item %s: %w", ref, err)
	}

	agentID, err := s.TryAssign(ctx, ref, priority, actorID)
	if err == nil {
		return portdispatcher.Result{Assigned: true, AgentID: &agentID}, nil
	}
	if errors.Is(err, ErrAlreadyAssigned) {
		return portdispatcher.Result{Assigned: true, AlreadyAssigned: true, AgentID: &agentID}, nil
	}
	if !errors.Is(err, ErrNoAgentAvailable) {
		return portdispatcher.Result{}, err
	}

	// Nobody has spare capacity, so selection never reached the store's
	// idempotence check. A duplicate submission must not grow the backlog:
	// the item may already be held, or already have a live queue entry.
	cur, err := s.items.Get(ctx, ref)
	if err != nil {
		return portdispatcher.Result{}, fmt.Errorf("read work item %s: %w", ref, err)
	}
	if cur.AssignedAgentID != nil {
		return portdispatcher.Result{Assigned: true, AlreadyAssigned: true, AgentID: cur.AssignedAgentID}, nil
	}

	entry := domainqueue.New(ref.Kind, ref.ItemID, priority)
	rec := domainhistory.New(domainhistory.TypeQueueAdded, ref.Kind, ref.ItemID, nil, actorID,
		"queued", "no agent with spare capacity")
	created, err := s.queue.Enqueue(ctx, entry, rec)
	if err != nil {
		return portdispatcher.Result{}, fmt.Errorf("enqueue %s: %w", ref, err)
	}
	if created.ID != entry.ID {
		// Enqueue resolved to an existing live entry; nothing to announce.
		return portdispatcher.Result{Queued: true}, nil
	}
	s.bus.Publish(ctx, event.New(event.TypeQueueAdded, ref.ItemID)) //nolint:errcheck
	slog.InfoContext(ctx, "work item queued", "ref", ref.String(), "priority", priority)
	return portdispatcher.Result{Queued: true}, nil
}

// ErrAlreadyAssigned reports that the item already had its agent when the
// commit ran; the existing assignment stands. Queue drains use it to settle
// duplicate entries instead of failing them.
var ErrAlreadyAssigned = errors.New("work item already assigned")

// TryAssign selects and commits, retrying selection once on a capacity
// conflict (the expected race: the chosen agent filled up between snapshot
// and commit). Returns ErrNoAgentAvailable rather than queueing.
func (s *Service) TryAssign(ctx context.Context, ref workitem.Ref, priority workitem.Priority, actorID string) (uuid.UUID, error) {
	exclude := []uuid.UUID{}
	for attempt := 0; ; attempt++ {
		loads, err := s.loads.ListLoads(ctx)
		if err != nil {
			return uuid.Nil, fmt.Errorf("read workload snapshot: %w", err)
		}
		chosen, err := s.selector.Pick(s.cfg.Strategy, loads, ref.Kind, priority, exclude...)
		if err != nil {
			return uuid.Nil, ErrNoAgentAvailable
		}

		rec := domainhistory.New(domainhistory.TypeCreated, ref.Kind, ref.ItemID, &chosen.ID, actorID,
			"assigned", fmt.Sprintf("strategy=%s", s.cfg.Strategy))
		out, err := s.items.Assign(ctx, ref, chosen.ID, rec)
		switch {
		case err == nil && out.AlreadyAssigned:
			return out.AgentID, ErrAlreadyAssigned
		case err == nil:
			s.fanOut(ctx, portnotifier.TypeAssignmentCreated, ref, chosen.ID, "")
			return chosen.ID, nil
		case errors.Is(err, portworkitem.ErrCapacityConflict) && attempt == 0:
			// Lost the race. One retry against a fresh snapshot; the filled
			// agent is excluded in case the snapshot is still stale.
			exclude = append(exclude, chosen.ID)
			continue
		case errors.Is(err, portworkitem.ErrCapacityConflict):
			return uuid.Nil, ErrNoAgentAvailable
		default:
			return uuid.Nil, fmt.Errorf("assign %s to %s: %w", ref, chosen.ID, err)
		}
	}
}

// Reassign moves an assigned item to an explicitly chosen agent.
func (s *Service) Reassign(ctx context.Context, ref workitem.Ref, newAgentID uuid.UUID, reason, actorID string) (portdispatcher.Result, error) {
	rec := domainhistory.New(domainhistory.TypeReassigned, ref.Kind, ref.ItemID, &newAgentID, actorID,
		"reassigned", fmt.Sprintf("to=%s reason=%s", newAgentID, reason))
	prev, err := s.items.Reassign(ctx, ref, newAgentID, rec)
	switch {
	case errors.Is(err, portworkitem.ErrNotAssigned):
		return portdispatcher.Result{}, fmt.Errorf("%w: %s", ErrItemNotAssigned, ref)
	case errors.Is(err, portworkitem.ErrCapacityConflict):
		return portdispatcher.Result{}, fmt.Errorf("%w: %s", ErrCapacityExceeded, newAgentID)
	case err != nil:
		return portdispatcher.Result{}, fmt.Errorf("reassign %s: %w", ref, err)
	}

	if prev != newAgentID {
		s.fanOut(ctx, portnotifier.TypeAssignmentUpdated, ref, newAgentID, reason)
	}
	return portdispatcher.Result{Assigned: true, AgentID: &newAgentID}, nil
}

// Complete closes an item as done. The workload decrease is announced on the
// bus so the queue drains immediately instead of waiting for the timer. The
// store stamps the holding agent onto the ledger entry, so completions count
// toward that agent's performance.
func (s *Service) Complete(ctx context.Context, ref workitem.Ref, actorID string) error {
	rec := domainhistory.New(domainhistory.TypeCompleted, ref.Kind, ref.ItemID, nil, actorID, "completed", "")
	if err := s.items.SetStatus(ctx, ref, workitem.StatusCompleted, rec); err != nil {
		return fmt.Errorf("complete %s: %w", ref, err)
	}
	s.bus.Publish(ctx, event.New(event.TypeItemCompleted, ref.ItemID)) //nolint:errcheck
	return nil
}

// Cancel closes an item without completion.
func (s *Service) Cancel(ctx context.Context, ref workitem.Ref, actorID string) error {
	rec := domainhistory.New(domainhistory.TypeStatusChanged, ref.Kind, ref.ItemID, nil, actorID, "cancelled", "")
	if err := s.items.SetStatus(ctx, ref, workitem.StatusCancelled, rec); err != nil {
		return fmt.Errorf("cancel %s: %w", ref, err)
	}
	s.bus.Publish(ctx, event.New(event.TypeItemCancelled, ref.ItemID)) //nolint:errcheck
	return nil
}

// fanOut delivers the notification and bus event for a committed assignment.
// Both are fire-and-forget: the assignment already happened.
func (s *Service) fanOut(ctx context.Context, notifType string, ref workitem.Ref, agentID uuid.UUID, reason string) {
	agentName := ""
	if a, err := s.roster.GetByID(ctx, agentID); err == nil {
		agentName = a.Name
	}

	n := portnotifier.Notification{
		Type:      notifType,
		Kind:      ref.Kind,
		ItemID:    ref.ItemID,
		AgentID:   agentID,
		AgentName: agentName,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if err := s.notifier.NotifyAssignment(ctx, n); err != nil {
		slog.ErrorContext(ctx, "assignment notification failed", "ref", ref.String(), "agent_id", agentID, "error", err)
	}

	busType := event.TypeAssignmentCreated
	if notifType == portnotifier.TypeAssignmentUpdated {
		busType = event.TypeAssignmentUpdated
	}
	s.bus.Publish(ctx, event.New(busType, ref.ItemID)) //nolint:errcheck
}
