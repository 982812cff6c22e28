package queue_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/policy"
	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
	"github.com/caseflow/caseflow/internal/domain/workitem"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
	queuesvc "github.com/caseflow/caseflow/internal/service/queue"
	selectorsvc "github.com/caseflow/caseflow/internal/service/selector"
	"github.com/caseflow/caseflow/internal/testutil"
)

// Full deferral round-trip against the in-memory stores: a submission with no
// capacity queues, completing an item frees a slot, and the next drain moves
// the queued item onto the freed agent.
func TestDrain_MovesQueuedItemToFreedAgent(t *testing.T) {
	ctx := context.Background()

	store := testutil.NewStore()
	queueStore := testutil.NewQueueStore(store)
	agent := domainagent.New("lena", domainagent.RoleGeneralist, 1)
	store.AddAgent(agent)

	cfg := policy.Default
	cfg.Capacity = 1
	sel := selectorsvc.NewService(cfg.Weights)
	disp := dispatchersvc.NewService(store, store, store, queueStore, sel,
		&testutil.CaptureNotifier{}, testutil.NopBus{}, cfg)
	drainer := queuesvc.NewService(queueStore, store, disp, store, testutil.NopBus{},
		testutil.NopLocker{}, cfg)

	first := workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
	res, err := disp.Assign(ctx, first, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	require.True(t, res.Assigned)

	second := workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
	res, err = disp.Assign(ctx, second, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	require.True(t, res.Queued)

	// Full agent: the drain finds nothing to do.
	dres, err := drainer.Drain(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, dres.Assigned)

	require.NoError(t, disp.Complete(ctx, first, "reviewer-1"))

	dres, err = drainer.Drain(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, dres.Assigned)

	wi, err := store.Get(ctx, second)
	require.NoError(t, err)
	require.NotNil(t, wi.AssignedAgentID)
	assert.Equal(t, agent.ID, *wi.AssignedAgentID)
}

// Urgent entries drain before older normal ones.
func TestDrain_PriorityBeforeAge(t *testing.T) {
	ctx := context.Background()

	store := testutil.NewStore()
	queueStore := testutil.NewQueueStore(store)
	agent := domainagent.New("lena", domainagent.RoleGeneralist, 1)
	store.AddAgent(agent)

	cfg := policy.Default
	cfg.Capacity = 1
	sel := selectorsvc.NewService(cfg.Weights)
	disp := dispatchersvc.NewService(store, store, store, queueStore, sel,
		&testutil.CaptureNotifier{}, testutil.NopBus{}, cfg)
	drainer := queuesvc.NewService(queueStore, store, disp, store, testutil.NopBus{},
		testutil.NopLocker{}, cfg)

	blocker := workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
	res, err := disp.Assign(ctx, blocker, workitem.PriorityNormal, "reviewer-1")
	require.NoError(t, err)
	require.True(t, res.Assigned)

	normal := workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
	urgent := workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
	for _, sub := range []struct {
		ref workitem.Ref
		pri workitem.Priority
	}{
		{normal, workitem.PriorityNormal}, // queued first
		{urgent, workitem.PriorityUrgent},
	} {
		res, err := disp.Assign(ctx, sub.ref, sub.pri, "reviewer-1")
		require.NoError(t, err)
		require.True(t, res.Queued)
	}

	require.NoError(t, disp.Complete(ctx, blocker, "reviewer-1"))

	// One free slot: the urgent entry must win it despite queueing later.
	dres, err := drainer.Drain(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, dres.Assigned)

	urgentItem, err := store.Get(ctx, urgent)
	require.NoError(t, err)
	assert.NotNil(t, urgentItem.AssignedAgentID)

	normalItem, err := store.Get(ctx, normal)
	require.NoError(t, err)
	assert.Nil(t, normalItem.AssignedAgentID)

	counts, err := drainer.Status(ctx)
	require.NoError(t, err)
	var queuedNormal int
	for _, c := range counts {
		if c.Status == domainqueue.StatusQueued && c.Priority == workitem.PriorityNormal {
			queuedNormal = c.Count
		}
	}
	assert.Equal(t, 1, queuedNormal)
}
