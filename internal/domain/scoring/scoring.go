package scoring

import (
	"math"
	"time"

	"github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/workitem"
)

// Weights are the relative contributions of each factor to the final score.
// They should sum to 1.0; DefaultWeights is the operating default, not an
// invariant.
type Weights struct {
	Base      float64 `json:"base"`
	Priority  float64 `json:"priority"`
	Skill     float64 `json:"skill"`
	TimeOfDay float64 `json:"time_of_day"`
	Geography float64 `json:"geography"`
}

var DefaultWeights = Weights{
	Base:      0.40,
	Priority:  0.30,
	Skill:     0.20,
	TimeOfDay: 0.05,
	Geography: 0.05,
}

// Breakdown surfaces each raw factor so callers can explain or test a score.
type Breakdown struct {
	Base      float64 `json:"base"`
	Priority  float64 `json:"priority"`
	Skill     float64 `json:"skill"`
	TimeOfDay float64 `json:"time_of_day"`
	Geography float64 `json:"geography"`
}

type Score struct {
	Value     int       `json:"value"`
	Breakdown Breakdown `json:"breakdown"`
}

var priorityScore = map[workitem.Priority]float64{
	workitem.PriorityUrgent: 100,
	workitem.PriorityHigh:   75,
	workitem.PriorityNormal: 50,
	workitem.PriorityLow:    25,
}

const (
	businessHourStart = 9
	businessHourEnd   = 17

	businessHoursScore = 100
	afterHoursScore    = 70
	weekendScore       = 50

	// Same-country placeholder until richer location data exists.
	geographyScore = 100
)

// Compute scores how desirable it is to hand the given item to the given
// agent. Pure function of the load snapshot, the item, the clock and the
// weights — no side effects.
func Compute(load agent.Load, kind workitem.Kind, priority workitem.Priority, now time.Time, w Weights) Score {
	b := Breakdown{
		Base:      baseScore(load),
		Priority:  priorityScore[priority],
		Skill:     skillScore(load.Agent.Role, kind),
		TimeOfDay: timeOfDayScore(now),
		Geography: geographyScore,
	}
	value := w.Base*b.Base +
		w.Priority*b.Priority +
		w.Skill*b.Skill +
		w.TimeOfDay*b.TimeOfDay +
		w.Geography*b.Geography
	return Score{Value: int(math.Round(value)), Breakdown: b}
}

// baseScore favors idle agents linearly: an empty agent scores 100, a full
// one scores 0.
func baseScore(load agent.Load) float64 {
	if load.Agent.Capacity <= 0 {
		return 0
	}
	s := 100 - float64(load.Workload.Total)/float64(load.Agent.Capacity)*100
	if s < 0 {
		return 0
	}
	return s
}

// skillScore is a role-derived constant. Organizer verification is the
// heavier review, so seniors score highest there.
func skillScore(role agent.Role, kind workitem.Kind) float64 {
	if role == agent.RoleSenior {
		if kind == workitem.KindOrganizer {
			return 100
		}
		return 85
	}
	return 70
}

func timeOfDayScore(now time.Time) float64 {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendScore
	}
	if h := now.Hour(); h >= businessHourStart && h < businessHourEnd {
		return businessHoursScore
	}
	return afterHoursScore
}
