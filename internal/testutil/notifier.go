package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	portnotifier "github.com/caseflow/caseflow/internal/port/notifier"
)

// CaptureNotifier is a test-double that implements AssignmentNotifier.
// It records every call with a mutex so it is safe for concurrent use.
type CaptureNotifier struct {
	mu    sync.Mutex
	Calls []portnotifier.Notification
}

func (c *CaptureNotifier) NotifyAssignment(_ context.Context, n portnotifier.Notification) error {
	c.mu.Lock()
	c.Calls = append(c.Calls, n)
	c.mu.Unlock()
	return nil
}

// Notifications returns all calls made for a specific agent.
func (c *CaptureNotifier) Notifications(agentID uuid.UUID) []portnotifier.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []portnotifier.Notification
	for _, n := range c.Calls {
		if n.AgentID == agentID {
			out = append(out, n)
		}
	}
	return out
}

// Reset clears all recorded calls.
func (c *CaptureNotifier) Reset() {
	c.mu.Lock()
	c.Calls = nil
	c.mu.Unlock()
}
