package agent

import (
	"time"

	"github.com/google/uuid"
)

// Role is the skill tier of a case agent. Seniors score higher on
// verification-heavy work.
type Role string

const (
	RoleGeneralist Role = "generalist"
	RoleSenior     Role = "senior"
)

func (r Role) Valid() bool {
	return r == RoleGeneralist || r == RoleSenior
}

// CaseAgent is a human case worker. Identity and role come from external
// user management; the scheduler only reads them.
type CaseAgent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

func New(name string, role Role, capacity int) CaseAgent {
	return CaseAgent{
		ID:        uuid.New(),
		Name:      name,
		Role:      role,
		Capacity:  capacity,
		CreatedAt: time.Now().UTC(),
	}
}

// Workload counts the open items currently assigned to one agent. All three
// counts come from a single store snapshot.
type Workload struct {
	OpenEventCount     int `json:"open_event_count"`
	OpenOrganizerCount int `json:"open_organizer_count"`
	Total              int `json:"total"`
}

// Load pairs an agent with its workload as read in one snapshot. Selection
// strategies operate on a slice of Loads and never re-read the store.
type Load struct {
	Agent    CaseAgent `json:"agent"`
	Workload Workload  `json:"workload"`
}

// HasSpare reports whether the agent can take one more item.
func (l Load) HasSpare() bool {
	return l.Workload.Total < l.Agent.Capacity
}

type ListFilters struct {
	Role *Role
}
