package rebalance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/policy"
	"github.com/caseflow/caseflow/internal/domain/workitem"
	portanalytics "github.com/caseflow/caseflow/internal/port/analytics"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
	rebalancesvc "github.com/caseflow/caseflow/internal/service/rebalance"
	selectorsvc "github.com/caseflow/caseflow/internal/service/selector"
	"github.com/caseflow/caseflow/internal/testutil"
)

// perfStub serves a fixed quality report.
type perfStub struct {
	quality []portanalytics.AgentQuality
}

func (p perfStub) AgentQuality(context.Context, time.Duration) ([]portanalytics.AgentQuality, error) {
	return p.quality, nil
}

type fixture struct {
	store *testutil.Store
	disp  *dispatchersvc.Service
	svc   *rebalancesvc.Service
}

func newFixture(t *testing.T, perf perfStub) fixture {
	t.Helper()
	return fixtureWithStore(t, testutil.NewStore(), perf)
}

// assignN submits n open items and routes them onto the sole spare agent.
func assignN(t *testing.T, f fixture, n int) []workitem.Ref {
	t.Helper()
	refs := make([]workitem.Ref, n)
	for i := range refs {
		refs[i] = workitem.Ref{Kind: workitem.KindEvent, ItemID: uuid.New()}
		res, err := f.disp.Assign(context.Background(), refs[i], workitem.PriorityNormal, "reviewer-1")
		require.NoError(t, err)
		require.True(t, res.Assigned)
	}
	return refs
}

func TestBalanceLoad_NothingToDo(t *testing.T) {
	f := newFixture(t, perfStub{})
	f.store.AddAgent(domainagent.New("lena", domainagent.RoleGeneralist, 20))
	assignN(t, f, 3)

	res, err := f.svc.BalanceLoad(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Examined)
	assert.Zero(t, res.Moved)
}

func TestBalanceLoad_MovesExcessToSpareAgent(t *testing.T) {
	f := newFixture(t, perfStub{})
	overloaded := domainagent.New("lena", domainagent.RoleGeneralist, 5)
	f.store.AddAgent(overloaded)
	assignN(t, f, 3)

	// Shrink the agent's capacity after the fact so it is now over the limit.
	overloaded.Capacity = 2
	f.store.AddAgent(overloaded)
	relief := domainagent.New("jonas", domainagent.RoleGeneralist, 20)
	f.store.AddAgent(relief)

	res, err := f.svc.BalanceLoad(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Examined)
	assert.Equal(t, 2, res.Moved)

	from, err := f.store.Workload(context.Background(), overloaded.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, from.Total)

	to, err := f.store.Workload(context.Background(), relief.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, to.Total)
}

func TestBalanceLoad_NoTargetCountsSkipped(t *testing.T) {
	f := newFixture(t, perfStub{})
	overloaded := domainagent.New("lena", domainagent.RoleGeneralist, 5)
	f.store.AddAgent(overloaded)
	assignN(t, f, 3)

	overloaded.Capacity = 2
	f.store.AddAgent(overloaded)
	// No other agent exists, so nothing can move.

	res, err := f.svc.BalanceLoad(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Examined)
	assert.Zero(t, res.Moved)
	assert.Equal(t, 2, res.Skipped)
}

func TestBalanceByPerformance_MovesAwayFromPoorPerformer(t *testing.T) {
	store := testutil.NewStore()
	poor := domainagent.New("lena", domainagent.RoleGeneralist, 20)
	store.AddAgent(poor)

	f := fixtureWithStore(t, store, perfStub{})
	assignN(t, f, 3)

	good := domainagent.New("jonas", domainagent.RoleSenior, 20)
	store.AddAgent(good)

	f.svc = withPerf(t, f, perfStub{quality: []portanalytics.AgentQuality{
		{AgentID: poor.ID, GrantedCount: 10, Score: 0.2},
		{AgentID: good.ID, GrantedCount: 8, Score: 0.9},
	}})

	res, err := f.svc.BalanceByPerformance(context.Background(), 0.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Examined)
	assert.Equal(t, 2, res.Moved)

	w, err := store.Workload(context.Background(), good.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Total)
}

func TestBalanceByPerformance_NoPoorPerformersIsNoop(t *testing.T) {
	store := testutil.NewStore()
	a := domainagent.New("lena", domainagent.RoleGeneralist, 20)
	store.AddAgent(a)

	f := fixtureWithStore(t, store, perfStub{quality: []portanalytics.AgentQuality{
		{AgentID: a.ID, GrantedCount: 10, Score: 0.8},
	}})
	assignN(t, f, 2)

	res, err := f.svc.BalanceByPerformance(context.Background(), 0.5, 10)
	require.NoError(t, err)
	assert.Zero(t, res.Examined)
	assert.Zero(t, res.Moved)
}

func TestBalanceByPerformance_IgnoresIdleAgentsBelowThreshold(t *testing.T) {
	store := testutil.NewStore()
	idle := domainagent.New("lena", domainagent.RoleGeneralist, 20)
	store.AddAgent(idle)

	// Zero granted in the window reads as neutral, not poor: nothing to judge.
	f := fixtureWithStore(t, store, perfStub{quality: []portanalytics.AgentQuality{
		{AgentID: idle.ID, GrantedCount: 0, Score: 0.3},
	}})

	res, err := f.svc.BalanceByPerformance(context.Background(), 0.5, 10)
	require.NoError(t, err)
	assert.Zero(t, res.Examined)
}

func fixtureWithStore(t *testing.T, store *testutil.Store, perf perfStub) fixture {
	t.Helper()
	queueStore := testutil.NewQueueStore(store)
	cfg := policy.Default
	sel := selectorsvc.NewService(cfg.Weights)
	disp := dispatchersvc.NewService(store, store, store, queueStore, sel,
		&testutil.CaptureNotifier{}, testutil.NopBus{}, cfg)
	svc := rebalancesvc.NewService(store, store, disp, sel, perf, testutil.NopLocker{}, cfg)
	return fixture{store: store, disp: disp, svc: svc}
}

func withPerf(t *testing.T, f fixture, perf perfStub) *rebalancesvc.Service {
	t.Helper()
	cfg := policy.Default
	sel := selectorsvc.NewService(cfg.Weights)
	return rebalancesvc.NewService(f.store, f.store, f.disp, sel, perf, testutil.NopLocker{}, cfg)
}
