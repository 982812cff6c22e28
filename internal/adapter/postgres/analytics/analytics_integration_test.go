//go:build integration

package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgagent "github.com/caseflow/caseflow/internal/adapter/postgres/agent"
	pganalytics "github.com/caseflow/caseflow/internal/adapter/postgres/analytics"
	pgworkitem "github.com/caseflow/caseflow/internal/adapter/postgres/workitem"
	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	domainworkitem "github.com/caseflow/caseflow/internal/domain/workitem"
	portanalytics "github.com/caseflow/caseflow/internal/port/analytics"
	"github.com/caseflow/caseflow/internal/testutil"
)

func TestAgentQuality_CountsAttributedCompletions(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	agents := pgagent.New(pool)
	items := pgworkitem.New(pool)
	reader := pganalytics.New(pool)

	newAgent := func(prefix string) domainagent.CaseAgent {
		a := domainagent.New(prefix+"-"+uuid.New().String()[:6], domainagent.RoleGeneralist, 10)
		created, err := agents.Create(ctx, a)
		require.NoError(t, err)
		return created
	}
	assign := func(a domainagent.CaseAgent) domainworkitem.WorkItem {
		wi := domainworkitem.New(domainworkitem.KindEvent, uuid.New(), domainworkitem.PriorityNormal)
		created, err := items.Create(ctx, wi)
		require.NoError(t, err)
		_, err = items.Assign(ctx, created.Ref(), a.ID,
			domainhistory.New(domainhistory.TypeCreated, created.Kind, created.ItemID, &a.ID, "test", "assigned", ""))
		require.NoError(t, err)
		return created
	}

	finisher := newAgent("finisher")
	sitter := newAgent("sitter")
	idle := newAgent("idle")

	done := assign(finisher)
	assign(finisher)
	assign(sitter)

	// Complete without naming an agent; the store attributes the holder.
	require.NoError(t, items.SetStatus(ctx, done.Ref(), domainworkitem.StatusCompleted,
		domainhistory.New(domainhistory.TypeCompleted, done.Kind, done.ItemID, nil, "test", "completed", "")))

	quality, err := reader.AgentQuality(ctx, time.Hour)
	require.NoError(t, err)

	byID := make(map[uuid.UUID]portanalytics.AgentQuality, len(quality))
	for _, q := range quality {
		byID[q.AgentID] = q
	}

	f, ok := byID[finisher.ID]
	require.True(t, ok)
	assert.Equal(t, 2, f.GrantedCount)
	assert.Equal(t, 1, f.CompletedCount)
	assert.InDelta(t, 0.5, f.CompletionRate, 0.001)
	assert.GreaterOrEqual(t, f.Score, 0.45, "an agent with completions must not score as an underperformer")

	s, ok := byID[sitter.ID]
	require.True(t, ok)
	assert.Equal(t, 1, s.GrantedCount)
	assert.Zero(t, s.CompletedCount)
	assert.Zero(t, s.Score)

	// A fresh agent with no granted work scores neutral, not poor.
	i, ok := byID[idle.ID]
	require.True(t, ok)
	assert.Zero(t, i.GrantedCount)
	assert.InDelta(t, 0.5, i.Score, 0.001)
}
