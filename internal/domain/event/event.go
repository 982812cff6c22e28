package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAssignmentCreated Type = "assignment_created"
	TypeAssignmentUpdated Type = "assignment_updated"
	TypeItemCompleted     Type = "item_completed"
	TypeItemCancelled     Type = "item_cancelled"
	TypeQueueAdded        Type = "queue_added"
	TypeQueueDrained      Type = "queue_drained"
	TypeAgentRegistered   Type = "agent_registered"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelAssignment Channel = "assignment"
	ChannelQueue      Channel = "queue"
	ChannelAgent      Channel = "agent"
)

var typeToChannel = map[Type]Channel{
	TypeAssignmentCreated: ChannelAssignment,
	TypeAssignmentUpdated: ChannelAssignment,
	TypeItemCompleted:     ChannelAssignment,
	TypeItemCancelled:     ChannelAssignment,
	TypeQueueAdded:        ChannelQueue,
	TypeQueueDrained:      ChannelQueue,
	TypeAgentRegistered:   ChannelAgent,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  uuid.UUID `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
