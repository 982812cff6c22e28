package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/scoring"
	"github.com/caseflow/caseflow/internal/domain/workitem"
)

// Wednesday 10:00 UTC — inside business hours.
var businessHours = time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

func load(role agent.Role, total, capacity int) agent.Load {
	return agent.Load{
		Agent:    agent.CaseAgent{Role: role, Capacity: capacity},
		Workload: agent.Workload{Total: total},
	}
}

func TestCompute_IdleSeniorOrganizerUrgentIsMax(t *testing.T) {
	s := scoring.Compute(load(agent.RoleSenior, 0, 20), workitem.KindOrganizer,
		workitem.PriorityUrgent, businessHours, scoring.DefaultWeights)

	assert.Equal(t, 100, s.Value)
	assert.Equal(t, 100.0, s.Breakdown.Base)
	assert.Equal(t, 100.0, s.Breakdown.Priority)
	assert.Equal(t, 100.0, s.Breakdown.Skill)
	assert.Equal(t, 100.0, s.Breakdown.TimeOfDay)
	assert.Equal(t, 100.0, s.Breakdown.Geography)
}

func TestCompute_HalfLoadedGeneralist(t *testing.T) {
	s := scoring.Compute(load(agent.RoleGeneralist, 10, 20), workitem.KindEvent,
		workitem.PriorityNormal, businessHours, scoring.DefaultWeights)

	// 0.4*50 + 0.3*50 + 0.2*70 + 0.05*100 + 0.05*100 = 59
	assert.Equal(t, 59, s.Value)
	assert.Equal(t, 50.0, s.Breakdown.Base)
	assert.Equal(t, 70.0, s.Breakdown.Skill)
}

func TestCompute_SeniorEventSkill(t *testing.T) {
	s := scoring.Compute(load(agent.RoleSenior, 0, 20), workitem.KindEvent,
		workitem.PriorityUrgent, businessHours, scoring.DefaultWeights)

	// Seniors score 85 on event review, 100 on organizer verification.
	assert.Equal(t, 85.0, s.Breakdown.Skill)
	assert.Equal(t, 97, s.Value)
}

func TestCompute_PriorityLadder(t *testing.T) {
	for p, want := range map[workitem.Priority]float64{
		workitem.PriorityUrgent: 100,
		workitem.PriorityHigh:   75,
		workitem.PriorityNormal: 50,
		workitem.PriorityLow:    25,
	} {
		s := scoring.Compute(load(agent.RoleGeneralist, 0, 20), workitem.KindEvent,
			p, businessHours, scoring.DefaultWeights)
		assert.Equal(t, want, s.Breakdown.Priority, "priority %s", p)
	}
}

func TestCompute_TimeOfDayBuckets(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"business hours", time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), 100},
		{"last business hour", time.Date(2025, 3, 5, 16, 59, 0, 0, time.UTC), 100},
		{"after hours evening", time.Date(2025, 3, 5, 17, 0, 0, 0, time.UTC), 70},
		{"after hours early", time.Date(2025, 3, 5, 8, 59, 0, 0, time.UTC), 70},
		{"saturday", time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC), 50},
		{"sunday", time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scoring.Compute(load(agent.RoleGeneralist, 0, 20), workitem.KindEvent,
				workitem.PriorityNormal, tt.now, scoring.DefaultWeights)
			assert.Equal(t, tt.want, s.Breakdown.TimeOfDay)
		})
	}
}

func TestCompute_BaseScoreClamps(t *testing.T) {
	full := scoring.Compute(load(agent.RoleGeneralist, 20, 20), workitem.KindEvent,
		workitem.PriorityNormal, businessHours, scoring.DefaultWeights)
	assert.Equal(t, 0.0, full.Breakdown.Base)

	over := scoring.Compute(load(agent.RoleGeneralist, 25, 20), workitem.KindEvent,
		workitem.PriorityNormal, businessHours, scoring.DefaultWeights)
	assert.Equal(t, 0.0, over.Breakdown.Base)

	zeroCap := scoring.Compute(load(agent.RoleGeneralist, 0, 0), workitem.KindEvent,
		workitem.PriorityNormal, businessHours, scoring.DefaultWeights)
	assert.Equal(t, 0.0, zeroCap.Breakdown.Base)
}

func TestCompute_CustomWeights(t *testing.T) {
	w := scoring.Weights{Base: 1}
	s := scoring.Compute(load(agent.RoleGeneralist, 5, 20), workitem.KindEvent,
		workitem.PriorityUrgent, businessHours, w)

	// Only the base factor contributes: 100 - 5/20*100 = 75.
	assert.Equal(t, 75, s.Value)
}
