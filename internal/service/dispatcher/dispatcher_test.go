package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/event"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	"github.com/caseflow/caseflow/internal/domain/policy"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
	"github.com/caseflow/caseflow/internal/domain/workitem"
	"github.com/caseflow/caseflow/internal/mocks"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
	selectorsvc "github.com/caseflow/caseflow/internal/service/selector"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type svcDeps struct {
	items    *mocks.MockWorkItemRepository
	loads    *mocks.MockLoadReader
	roster   *mocks.MockRosterReader
	queue    *mocks.MockQueueRepository
	notifier *mocks.MockAssignmentNotifier
	bus      *mocks.MockEventBus
}

func newDispatcher(t *testing.T) (*dispatchersvc.Service, svcDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := svcDeps{
		items:    mocks.NewMockWorkItemRepository(ctrl),
		loads:    mocks.NewMockLoadReader(ctrl),
		roster:   mocks.NewMockRosterReader(ctrl),
		queue:    mocks.NewMockQueueRepository(ctrl),
		notifier: mocks.NewMockAssignmentNotifier(ctrl),
		bus:      mocks.NewMockEventBus(ctrl),
	}
	sel := selectorsvc.NewService(policy.Default.Weights)
	svc := dispatchersvc.NewService(d.items, d.loads, d.roster, d.queue, sel, d.notifier, d.bus, policy.Default)
	return svc, d
}

func spareAgent(total int) domainagent.Load {
	return domainagent.Load{
		Agent:    domainagent.CaseAgent{ID: uuid.New(), Name: "maria", Role: domainagent.RoleGeneralist, Capacity: 20},
		Workload: domainagent.Workload{Total: total},
	}
}

func newRef() workitem.Ref {
	return workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
}

func matchEventType(et event.Type) gomock.Matcher {
	return eventTypeMatcher{et}
}

type eventTypeMatcher struct{ want event.Type }

func (m eventTypeMatcher) Matches(x interface{}) bool {
	e, ok := x.(event.Event)
	return ok && e.Type == m.want
}
func (m eventTypeMatcher) String() string { return "event.Type=" + string(m.want) }

// ── Assign ────────────────────────────────────────────────────────────────────

func TestAssign_Success(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	load := spareAgent(2)

	d.items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wi workitem.WorkItem) (workitem.WorkItem, error) {
			assert.Equal(t, ref, wi.Ref())
			return wi, nil
		})
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{load}, nil)
	d.items.EXPECT().Assign(gomock.Any(), ref, load.Agent.ID, gomock.Any()).
		Return(portworkitem.AssignOutcome{AgentID: load.Agent.ID}, nil)
	d.roster.EXPECT().GetByID(gomock.Any(), load.Agent.ID).Return(load.Agent, nil)
	d.notifier.EXPECT().NotifyAssignment(gomock.Any(), gomock.Any()).Return(nil)
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAssignmentCreated)).Return(nil)

	res, err := svc.Assign(context.Background(), ref, workitem.PriorityHigh, "reviewer-1")
	require.NoError(t, err)
	assert.True(t, res.Assigned)
	assert.False(t, res.Queued)
	require.NotNil(t, res.AgentID)
	assert.Equal(t, load.Agent.ID, *res.AgentID)
}

func TestAssign_QueuesWhenNoCapacity(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	full := spareAgent(20)

	d.items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wi workitem.WorkItem) (workitem.WorkItem, error) { return wi, nil })
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{full}, nil)
	d.items.EXPECT().Get(gomock.Any(), ref).
		Return(workitem.New(ref.Kind, ref.ItemID, workitem.PriorityNormal), nil)
	d.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domainqueue.Entry, _ domainhistory.Entry) (domainqueue.Entry, error) {
			assert.Equal(t, ref, e.Ref())
			return e, nil
		})
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeQueueAdded)).Return(nil)

	res, err := svc.Assign(context.Background(), ref, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	assert.True(t, res.Queued)
	assert.False(t, res.Assigned)
	assert.Nil(t, res.AgentID)
}

func TestAssign_RetriesOnceOnCapacityConflict(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	first := spareAgent(1)
	second := spareAgent(5)

	// First snapshot: the least-loaded agent fills up before the commit.
	d.items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wi workitem.WorkItem) (workitem.WorkItem, error) { return wi, nil })
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{first, second}, nil)
	d.items.EXPECT().Assign(gomock.Any(), ref, first.Agent.ID, gomock.Any()).
		Return(portworkitem.AssignOutcome{}, portworkitem.ErrCapacityConflict)

	// Retry: fresh snapshot, the filled agent is excluded even if still listed.
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{first, second}, nil)
	d.items.EXPECT().Assign(gomock.Any(), ref, second.Agent.ID, gomock.Any()).
		Return(portworkitem.AssignOutcome{AgentID: second.Agent.ID}, nil)
	d.roster.EXPECT().GetByID(gomock.Any(), second.Agent.ID).Return(second.Agent, nil)
	d.notifier.EXPECT().NotifyAssignment(gomock.Any(), gomock.Any()).Return(nil)
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAssignmentCreated)).Return(nil)

	res, err := svc.Assign(context.Background(), ref, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	assert.True(t, res.Assigned)
	assert.Equal(t, second.Agent.ID, *res.AgentID)
}

func TestAssign_SecondConflictFallsBackToQueue(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	only := spareAgent(19)

	d.items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wi workitem.WorkItem) (workitem.WorkItem, error) { return wi, nil })
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{only}, nil).Times(2)
	d.items.EXPECT().Assign(gomock.Any(), ref, only.Agent.ID, gomock.Any()).
		Return(portworkitem.AssignOutcome{}, portworkitem.ErrCapacityConflict)

	// The retry excludes the sole agent, so selection fails and the item is
	// queued instead of looping.
	d.items.EXPECT().Get(gomock.Any(), ref).
		Return(workitem.New(ref.Kind, ref.ItemID, workitem.PriorityNormal), nil)
	d.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domainqueue.Entry, _ domainhistory.Entry) (domainqueue.Entry, error) {
			return e, nil
		})
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeQueueAdded)).Return(nil)

	res, err := svc.Assign(context.Background(), ref, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	assert.True(t, res.Queued)
}

func TestAssign_DuplicateSubmissionIsIdempotent(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	load := spareAgent(3)
	holder := uuid.New()

	d.items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wi workitem.WorkItem) (workitem.WorkItem, error) { return wi, nil })
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{load}, nil)
	d.items.EXPECT().Assign(gomock.Any(), ref, load.Agent.ID, gomock.Any()).
		Return(portworkitem.AssignOutcome{AgentID: holder, AlreadyAssigned: true}, nil)
	// No notification and no bus event: nothing changed.

	res, err := svc.Assign(context.Background(), ref, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	assert.True(t, res.Assigned)
	assert.True(t, res.AlreadyAssigned)
	assert.Equal(t, holder, *res.AgentID)
}

func TestAssign_StoreErrorPropagates(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	load := spareAgent(0)

	d.items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wi workitem.WorkItem) (workitem.WorkItem, error) { return wi, nil })
	d.loads.EXPECT().ListLoads(gomock.Any()).Return([]domainagent.Load{load}, nil)
	d.items.EXPECT().Assign(gomock.Any(), ref, load.Agent.ID, gomock.Any()).
		Return(portworkitem.AssignOutcome{}, errors.New("ledger write failed"))

	_, err := svc.Assign(context.Background(), ref, workitem.PriorityNormal, "reviewer-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger write failed")
}

// ── TryAssign ─────────────────────────────────────────────────────────────────

func TestTryAssign_NoAgentSurfacesError(t *testing.T) {
	svc, d := newDispatcher(t)

	d.loads.EXPECT().ListLoads(gomock.Any()).Return(nil, nil)

	_, err := svc.TryAssign(context.Background(), newRef(), workitem.PriorityNormal, "queue-drain")
	assert.ErrorIs(t, err, dispatchersvc.ErrNoAgentAvailable)
}

// ── Reassign ──────────────────────────────────────────────────────────────────

func TestReassign_Success(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	prev := uuid.New()
	next := domainagent.CaseAgent{ID: uuid.New(), Name: "jonas"}

	d.items.EXPECT().Reassign(gomock.Any(), ref, next.ID, gomock.Any()).Return(prev, nil)
	d.roster.EXPECT().GetByID(gomock.Any(), next.ID).Return(next, nil)
	d.notifier.EXPECT().NotifyAssignment(gomock.Any(), gomock.Any()).Return(nil)
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAssignmentUpdated)).Return(nil)

	res, err := svc.Reassign(context.Background(), ref, next.ID, "supervisor request", "supervisor-1")
	require.NoError(t, err)
	assert.True(t, res.Assigned)
	assert.Equal(t, next.ID, *res.AgentID)
}

func TestReassign_SameAgentSkipsFanOut(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()
	agentID := uuid.New()

	d.items.EXPECT().Reassign(gomock.Any(), ref, agentID, gomock.Any()).Return(agentID, nil)

	res, err := svc.Reassign(context.Background(), ref, agentID, "", "supervisor-1")
	require.NoError(t, err)
	assert.True(t, res.Assigned)
}

func TestReassign_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"unassigned item", portworkitem.ErrNotAssigned, dispatchersvc.ErrItemNotAssigned},
		{"target at capacity", portworkitem.ErrCapacityConflict, dispatchersvc.ErrCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newDispatcher(t)
			ref := newRef()

			d.items.EXPECT().Reassign(gomock.Any(), ref, gomock.Any(), gomock.Any()).
				Return(uuid.Nil, tt.repoErr)

			_, err := svc.Reassign(context.Background(), ref, uuid.New(), "", "supervisor-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Complete / Cancel ─────────────────────────────────────────────────────────

func TestComplete_PublishesItemCompleted(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()

	d.items.EXPECT().SetStatus(gomock.Any(), ref, workitem.StatusCompleted, gomock.Any()).Return(nil)
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeItemCompleted)).Return(nil)

	require.NoError(t, svc.Complete(context.Background(), ref, "reviewer-1"))
}

func TestCancel_PublishesItemCancelled(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()

	d.items.EXPECT().SetStatus(gomock.Any(), ref, workitem.StatusCancelled, gomock.Any()).Return(nil)
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeItemCancelled)).Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), ref, "reviewer-1"))
}

func TestComplete_ClosedItemErrors(t *testing.T) {
	svc, d := newDispatcher(t)
	ref := newRef()

	d.items.EXPECT().SetStatus(gomock.Any(), ref, workitem.StatusCompleted, gomock.Any()).
		Return(portworkitem.ErrClosed)

	err := svc.Complete(context.Background(), ref, "reviewer-1")
	assert.ErrorIs(t, err, portworkitem.ErrClosed)
}
