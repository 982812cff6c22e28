package wire

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/caseflow/caseflow/internal/domain/event"
	porteventbus "github.com/caseflow/caseflow/internal/port/eventbus"
)

// startDrainer keeps the backlog moving. It drains on a fixed interval and
// additionally whenever capacity frees up — an item completing or being
// cancelled, or an agent registering. Drain itself is advisory-locked, so a
// burst of triggers collapses into sequential sweeps rather than a stampede.
//
// Event-triggered drains are nudged through a buffered channel of size one:
// triggers that arrive while a sweep is running coalesce into a single
// follow-up sweep.
func startDrainer(ctx context.Context, app *App, bus porteventbus.EventBus) {
	interval := envDuration("DRAIN_INTERVAL_SECONDS", 30*time.Second)

	nudge := make(chan struct{}, 1)
	trigger := func() {
		select {
		case nudge <- struct{}{}:
		default:
		}
	}

	if _, err := bus.Subscribe(ctx, event.ChannelAssignment, func(_ context.Context, e event.Event) {
		switch e.Type {
		case event.TypeItemCompleted, event.TypeItemCancelled, event.TypeAssignmentUpdated:
			trigger()
		}
	}); err != nil {
		slog.Error("drainer: failed to subscribe to assignment channel", "error", err)
	}
	if _, err := bus.Subscribe(ctx, event.ChannelAgent, func(_ context.Context, e event.Event) {
		if e.Type == event.TypeAgentRegistered {
			trigger()
		}
	}); err != nil {
		slog.Error("drainer: failed to subscribe to agent channel", "error", err)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			case <-nudge:
			}

			res, err := app.QueueSvc.Drain(ctx, 0)
			if err != nil {
				slog.Error("drainer: sweep failed", "error", err)
				continue
			}
			if res.Assigned > 0 || res.Failed > 0 || res.Requeued > 0 {
				slog.Info("drainer: sweep finished",
					"assigned", res.Assigned,
					"failed", res.Failed,
					"requeued", res.Requeued,
				)
			}
		}
	}()
}

// envDuration reads an integer-seconds env var and returns a Duration.
// Falls back to defaultVal if the var is unset or invalid.
func envDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}
