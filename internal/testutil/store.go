package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/event"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
	domainworkitem "github.com/caseflow/caseflow/internal/domain/workitem"
	porteventbus "github.com/caseflow/caseflow/internal/port/eventbus"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
)

// Store is an in-memory stand-in for the Postgres work item adapter. All
// mutations run under one mutex, so the capacity guard has the same
// atomicity as the real transaction — concurrency tests exercise the service
// layer against it without a database.
//
// It implements port/workitem.Repository, port/agent.LoadReader,
// port/agent.RosterReader and port/history.Repository.
type Store struct {
	mu      sync.Mutex
	items   map[domainworkitem.Ref]domainworkitem.WorkItem
	agents  map[uuid.UUID]domainagent.CaseAgent
	ledger  []domainhistory.Entry
	ordered []uuid.UUID // agent insertion order, stands in for created_at ordering
}

func NewStore() *Store {
	return &Store{
		items:  make(map[domainworkitem.Ref]domainworkitem.WorkItem),
		agents: make(map[uuid.UUID]domainagent.CaseAgent),
	}
}

// AddAgent seeds the roster.
func (s *Store) AddAgent(a domainagent.CaseAgent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.agents[a.ID]; !ok {
		s.ordered = append(s.ordered, a.ID)
	}
	s.agents[a.ID] = a
}

func (s *Store) Create(_ context.Context, wi domainworkitem.WorkItem) (domainworkitem.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.items[wi.Ref()]; ok {
		return existing, nil
	}
	s.items[wi.Ref()] = wi
	return wi, nil
}

func (s *Store) Get(_ context.Context, ref domainworkitem.Ref) (domainworkitem.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wi, ok := s.items[ref]
	if !ok {
		return domainworkitem.WorkItem{}, portworkitem.ErrNotFound
	}
	return wi, nil
}

func (s *Store) List(_ context.Context, filters domainworkitem.ListFilters) ([]domainworkitem.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domainworkitem.WorkItem
	for _, wi := range s.items {
		if filters.Kind != nil && wi.Kind != *filters.Kind {
			continue
		}
		if filters.Status != nil && wi.Status != *filters.Status {
			continue
		}
		if filters.AssignedTo != nil && (wi.AssignedAgentID == nil || *wi.AssignedAgentID != *filters.AssignedTo) {
			continue
		}
		if filters.Unassigned && wi.AssignedAgentID != nil {
			continue
		}
		out = append(out, wi)
	}
	sort.Slice(out, func(i, j int) bool {
		if filters.OldestFirst {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) Assign(_ context.Context, ref domainworkitem.Ref, agentID uuid.UUID, rec domainhistory.Entry) (portworkitem.AssignOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wi, ok := s.items[ref]
	if !ok {
		return portworkitem.AssignOutcome{}, portworkitem.ErrNotFound
	}
	if !wi.IsOpen() {
		return portworkitem.AssignOutcome{}, portworkitem.ErrClosed
	}
	if wi.AssignedAgentID != nil {
		return portworkitem.AssignOutcome{AgentID: *wi.AssignedAgentID, AlreadyAssigned: true}, nil
	}
	if err := s.guardCapacity(agentID); err != nil {
		return portworkitem.AssignOutcome{}, err
	}

	now := time.Now().UTC()
	wi.AssignedAgentID = &agentID
	wi.AssignedAt = &now
	wi.UpdatedAt = now
	s.items[ref] = wi
	s.ledger = append(s.ledger, rec)
	return portworkitem.AssignOutcome{AgentID: agentID}, nil
}

func (s *Store) Reassign(_ context.Context, ref domainworkitem.Ref, newAgentID uuid.UUID, rec domainhistory.Entry) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wi, ok := s.items[ref]
	if !ok {
		return uuid.Nil, portworkitem.ErrNotFound
	}
	if !wi.IsOpen() {
		return uuid.Nil, portworkitem.ErrClosed
	}
	if wi.AssignedAgentID == nil {
		return uuid.Nil, portworkitem.ErrNotAssigned
	}
	prev := *wi.AssignedAgentID
	if prev == newAgentID {
		return prev, nil
	}
	if err := s.guardCapacity(newAgentID); err != nil {
		return uuid.Nil, err
	}

	now := time.Now().UTC()
	wi.AssignedAgentID = &newAgentID
	wi.AssignedAt = &now
	wi.UpdatedAt = now
	s.items[ref] = wi
	s.ledger = append(s.ledger, rec)
	return prev, nil
}

func (s *Store) SetStatus(_ context.Context, ref domainworkitem.Ref, status domainworkitem.Status, rec domainhistory.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wi, ok := s.items[ref]
	if !ok {
		return portworkitem.ErrNotFound
	}
	if !wi.IsOpen() {
		return portworkitem.ErrClosed
	}
	if rec.AgentID == nil {
		// Same attribution rule as the real adapter: the close is credited
		// to the holding agent.
		rec.AgentID = wi.AssignedAgentID
	}
	wi.Status = status
	wi.UpdatedAt = time.Now().UTC()
	s.items[ref] = wi
	s.ledger = append(s.ledger, rec)
	return nil
}

// guardCapacity must be called with the mutex held.
func (s *Store) guardCapacity(agentID uuid.UUID) error {
	a, ok := s.agents[agentID]
	if !ok {
		return portworkitem.ErrNotFound
	}
	if s.openCount(agentID) >= a.Capacity {
		return portworkitem.ErrCapacityConflict
	}
	return nil
}

func (s *Store) openCount(agentID uuid.UUID) int {
	n := 0
	for _, wi := range s.items {
		if wi.IsOpen() && wi.AssignedAgentID != nil && *wi.AssignedAgentID == agentID {
			n++
		}
	}
	return n
}

func (s *Store) ListLoads(_ context.Context) ([]domainagent.Load, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loads := make([]domainagent.Load, 0, len(s.ordered))
	for _, id := range s.ordered {
		loads = append(loads, domainagent.Load{
			Agent:    s.agents[id],
			Workload: s.workloadLocked(id),
		})
	}
	return loads, nil
}

func (s *Store) Workload(_ context.Context, agentID uuid.UUID) (domainagent.Workload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workloadLocked(agentID), nil
}

func (s *Store) workloadLocked(agentID uuid.UUID) domainagent.Workload {
	var w domainagent.Workload
	for _, wi := range s.items {
		if !wi.IsOpen() || wi.AssignedAgentID == nil || *wi.AssignedAgentID != agentID {
			continue
		}
		switch wi.Kind {
		case domainworkitem.KindEvent:
			w.OpenEventCount++
		case domainworkitem.KindOrganizer:
			w.OpenOrganizerCount++
		}
		w.Total++
	}
	return w
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (domainagent.CaseAgent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.agents[id]
	if !ok {
		return domainagent.CaseAgent{}, portworkitem.ErrNotFound
	}
	return a, nil
}

func (s *Store) Append(_ context.Context, e domainhistory.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = append(s.ledger, e)
	return nil
}

func (s *Store) Query(_ context.Context, f domainhistory.Filters, _ domainhistory.Page) ([]domainhistory.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domainhistory.Entry
	for _, e := range s.ledger {
		if f.Type != nil && e.Type != *f.Type {
			continue
		}
		if f.ItemID != nil && e.ItemID != *f.ItemID {
			continue
		}
		if f.AgentID != nil && (e.AgentID == nil || *e.AgentID != *f.AgentID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Ledger returns a copy of every recorded ledger entry.
func (s *Store) Ledger() []domainhistory.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domainhistory.Entry, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// QueueStore is an in-memory stand-in for the Postgres queue adapter. The
// mutex gives ClaimNext the same claim atomicity as FOR UPDATE SKIP LOCKED.
type QueueStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]domainqueue.Entry
	ledger  *Store // queue ledger records land in the shared store
}

func NewQueueStore(ledger *Store) *QueueStore {
	return &QueueStore{
		entries: make(map[uuid.UUID]domainqueue.Entry),
		ledger:  ledger,
	}
}

func (q *QueueStore) Enqueue(ctx context.Context, e domainqueue.Entry, rec domainhistory.Entry) (domainqueue.Entry, error) {
	q.mu.Lock()
	// One live entry per item, like the partial unique index.
	for _, existing := range q.entries {
		if existing.Kind == e.Kind && existing.ItemID == e.ItemID &&
			(existing.Status == domainqueue.StatusQueued || existing.Status == domainqueue.StatusProcessing) {
			q.mu.Unlock()
			return existing, nil
		}
	}
	q.entries[e.ID] = e
	q.mu.Unlock()
	if q.ledger != nil {
		q.ledger.Append(ctx, rec) //nolint:errcheck
	}
	return e, nil
}

func (q *QueueStore) ClaimNext(_ context.Context) (domainqueue.Entry, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var best *domainqueue.Entry
	for id := range q.entries {
		e := q.entries[id]
		if e.Status != domainqueue.StatusQueued {
			continue
		}
		if best == nil ||
			e.Priority.Rank() < best.Priority.Rank() ||
			(e.Priority.Rank() == best.Priority.Rank() && e.QueuedAt.Before(best.QueuedAt)) {
			copied := e
			best = &copied
		}
	}
	if best == nil {
		return domainqueue.Entry{}, false, nil
	}

	now := time.Now().UTC()
	best.Status = domainqueue.StatusProcessing
	best.ClaimedAt = &now
	q.entries[best.ID] = *best
	return *best, true, nil
}

func (q *QueueStore) MarkAssigned(_ context.Context, id, agentID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[id]
	if !ok || e.Status != domainqueue.StatusProcessing {
		return nil
	}
	now := time.Now().UTC()
	e.Status = domainqueue.StatusAssigned
	e.AssignedAgentID = &agentID
	e.AssignedAt = &now
	q.entries[id] = e
	return nil
}

func (q *QueueStore) MarkFailed(_ context.Context, id uuid.UUID, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[id]
	if !ok || e.Status != domainqueue.StatusProcessing {
		return nil
	}
	e.Status = domainqueue.StatusFailed
	e.FailReason = reason
	q.entries[id] = e
	return nil
}

func (q *QueueStore) Release(_ context.Context, id uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[id]
	if !ok || e.Status != domainqueue.StatusProcessing {
		return nil
	}
	e.Status = domainqueue.StatusQueued
	e.ClaimedAt = nil
	q.entries[id] = e
	return nil
}

func (q *QueueStore) RequeueStale(_ context.Context, olderThan time.Duration) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	n := 0
	for id, e := range q.entries {
		if e.Status == domainqueue.StatusProcessing && e.ClaimedAt != nil && e.ClaimedAt.Before(cutoff) {
			e.Status = domainqueue.StatusQueued
			e.ClaimedAt = nil
			q.entries[id] = e
			n++
		}
	}
	return n, nil
}

func (q *QueueStore) Status(_ context.Context) ([]domainqueue.StatusCount, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	counts := make(map[domainqueue.Status]map[domainworkitem.Priority]int)
	for _, e := range q.entries {
		if counts[e.Status] == nil {
			counts[e.Status] = make(map[domainworkitem.Priority]int)
		}
		counts[e.Status][e.Priority]++
	}

	var out []domainqueue.StatusCount
	for st, byPrio := range counts {
		for p, n := range byPrio {
			out = append(out, domainqueue.StatusCount{Status: st, Priority: p, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].Status < out[j].Status
		}
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out, nil
}

// Entry returns a queue entry by id.
func (q *QueueStore) Entry(id uuid.UUID) (domainqueue.Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[id]
	return e, ok
}

// NopLocker runs the critical section inline without any locking. Fine for
// single-process tests where the store's own mutex provides atomicity.
type NopLocker struct{}

func (NopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NopBus drops published events and hands out inert subscriptions.
type NopBus struct{}

func (NopBus) Publish(context.Context, event.Event) error { return nil }

func (NopBus) Subscribe(context.Context, event.Channel, porteventbus.Handler) (porteventbus.Subscription, error) {
	return nopSubscription{}, nil
}

type nopSubscription struct{}

func (nopSubscription) Unsubscribe() {}
