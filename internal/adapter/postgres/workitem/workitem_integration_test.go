//go:build integration

package workitem_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgagent "github.com/caseflow/caseflow/internal/adapter/postgres/agent"
	pghistory "github.com/caseflow/caseflow/internal/adapter/postgres/history"
	pgworkitem "github.com/caseflow/caseflow/internal/adapter/postgres/workitem"
	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	domainworkitem "github.com/caseflow/caseflow/internal/domain/workitem"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
	"github.com/caseflow/caseflow/internal/testutil"
)

func makeAgent(t *testing.T, ctx context.Context, r *pgagent.Repository, capacity int) domainagent.CaseAgent {
	t.Helper()
	a := domainagent.New("t-"+uuid.New().String()[:6], domainagent.RoleGeneralist, capacity)
	created, err := r.Create(ctx, a)
	require.NoError(t, err)
	return created
}

func makeItem(t *testing.T, ctx context.Context, r *pgworkitem.Repository) domainworkitem.WorkItem {
	t.Helper()
	wi := domainworkitem.New(domainworkitem.KindEvent, uuid.New(), domainworkitem.PriorityNormal)
	created, err := r.Create(ctx, wi)
	require.NoError(t, err)
	return created
}

func rec(t domainhistory.Type, wi domainworkitem.WorkItem, agentID *uuid.UUID) domainhistory.Entry {
	return domainhistory.New(t, wi.Kind, wi.ItemID, agentID, "test", "assigned", "")
}

func TestAssign_Lifecycle(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	items := pgworkitem.New(pool)
	agents := pgagent.New(pool)

	agent := makeAgent(t, ctx, agents, 5)
	wi := makeItem(t, ctx, items)

	out, err := items.Assign(ctx, wi.Ref(), agent.ID, rec(domainhistory.TypeCreated, wi, &agent.ID))
	require.NoError(t, err)
	assert.Equal(t, agent.ID, out.AgentID)
	assert.False(t, out.AlreadyAssigned)

	// A second assign is idempotent and keeps the original holder.
	other := makeAgent(t, ctx, agents, 5)
	out, err = items.Assign(ctx, wi.Ref(), other.ID, rec(domainhistory.TypeCreated, wi, &other.ID))
	require.NoError(t, err)
	assert.True(t, out.AlreadyAssigned)
	assert.Equal(t, agent.ID, out.AgentID)

	w, err := items.Workload(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Total)
	assert.Equal(t, 1, w.OpenEventCount)
}

func TestAssign_CapacityRace(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	items := pgworkitem.New(pool)
	agents := pgagent.New(pool)

	const capacity = 3
	const attempts = 10
	agent := makeAgent(t, ctx, agents, capacity)

	refs := make([]domainworkitem.Ref, attempts)
	for i := range refs {
		refs[i] = makeItem(t, ctx, items).Ref()
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for _, ref := range refs {
		wg.Add(1)
		go func(ref domainworkitem.Ref) {
			defer wg.Done()
			_, err := items.Assign(ctx, ref, agent.ID,
				domainhistory.New(domainhistory.TypeCreated, ref.Kind, ref.ItemID, &agent.ID, "test", "assigned", ""))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, portworkitem.ErrCapacityConflict):
				conflicts++
			default:
				t.Errorf("unexpected assign error: %v", err)
			}
		}(ref)
	}
	wg.Wait()

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, conflicts)

	w, err := items.Workload(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, w.Total)
}

func TestReassign_MovesAndGuards(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	items := pgworkitem.New(pool)
	agents := pgagent.New(pool)

	from := makeAgent(t, ctx, agents, 5)
	to := makeAgent(t, ctx, agents, 1)
	wi := makeItem(t, ctx, items)

	_, err := items.Assign(ctx, wi.Ref(), from.ID, rec(domainhistory.TypeCreated, wi, &from.ID))
	require.NoError(t, err)

	prev, err := items.Reassign(ctx, wi.Ref(), to.ID, rec(domainhistory.TypeReassigned, wi, &to.ID))
	require.NoError(t, err)
	assert.Equal(t, from.ID, prev)

	// The target is now full; a second item cannot move there.
	second := makeItem(t, ctx, items)
	_, err = items.Assign(ctx, second.Ref(), from.ID, rec(domainhistory.TypeCreated, second, &from.ID))
	require.NoError(t, err)
	_, err = items.Reassign(ctx, second.Ref(), to.ID, rec(domainhistory.TypeReassigned, second, &to.ID))
	assert.ErrorIs(t, err, portworkitem.ErrCapacityConflict)
}

func TestReassign_UnassignedItem(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	items := pgworkitem.New(pool)
	agents := pgagent.New(pool)

	agent := makeAgent(t, ctx, agents, 5)
	wi := makeItem(t, ctx, items)

	_, err := items.Reassign(ctx, wi.Ref(), agent.ID, rec(domainhistory.TypeReassigned, wi, &agent.ID))
	assert.ErrorIs(t, err, portworkitem.ErrNotAssigned)
}

func TestSetStatus_ClosesOnce(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	items := pgworkitem.New(pool)
	agents := pgagent.New(pool)

	agent := makeAgent(t, ctx, agents, 5)
	wi := makeItem(t, ctx, items)
	_, err := items.Assign(ctx, wi.Ref(), agent.ID, rec(domainhistory.TypeCreated, wi, &agent.ID))
	require.NoError(t, err)

	err = items.SetStatus(ctx, wi.Ref(), domainworkitem.StatusCompleted, rec(domainhistory.TypeCompleted, wi, nil))
	require.NoError(t, err)

	// Closing frees the slot.
	w, err := items.Workload(ctx, agent.ID)
	require.NoError(t, err)
	assert.Zero(t, w.Total)

	// The completion entry is credited to the agent who held the item even
	// though the caller passed no agent.
	completedType := domainhistory.TypeCompleted
	entries, err := pghistory.New(pool).Query(ctx,
		domainhistory.Filters{Type: &completedType, ItemID: &wi.ItemID},
		domainhistory.Page{Limit: 10},
	)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].AgentID)
	assert.Equal(t, agent.ID, *entries[0].AgentID)

	err = items.SetStatus(ctx, wi.Ref(), domainworkitem.StatusCancelled, rec(domainhistory.TypeStatusChanged, wi, nil))
	assert.ErrorIs(t, err, portworkitem.ErrClosed)

	unknown := domainworkitem.Ref{Kind: domainworkitem.KindEvent, ItemID: uuid.New()}
	err = items.SetStatus(ctx, unknown, domainworkitem.StatusCompleted,
		domainhistory.New(domainhistory.TypeCompleted, unknown.Kind, unknown.ItemID, nil, "test", "completed", ""))
	assert.ErrorIs(t, err, portworkitem.ErrNotFound)
}
