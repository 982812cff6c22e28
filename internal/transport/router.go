package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/caseflow/caseflow/internal/adapter/postgres/idempotency"
	"github.com/caseflow/caseflow/internal/domain/event"
	porteventbus "github.com/caseflow/caseflow/internal/port/eventbus"
	agentsvc "github.com/caseflow/caseflow/internal/service/agent"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
	historysvc "github.com/caseflow/caseflow/internal/service/history"
	queuesvc "github.com/caseflow/caseflow/internal/service/queue"
	rebalancesvc "github.com/caseflow/caseflow/internal/service/rebalance"
	workloadsvc "github.com/caseflow/caseflow/internal/service/workload"

	agenthandler "github.com/caseflow/caseflow/internal/transport/agent"
	assignmenthandler "github.com/caseflow/caseflow/internal/transport/assignment"
	historyhandler "github.com/caseflow/caseflow/internal/transport/history"
	queuehandler "github.com/caseflow/caseflow/internal/transport/queue"
	rebalancehandler "github.com/caseflow/caseflow/internal/transport/rebalance"
	wshandler "github.com/caseflow/caseflow/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	dispatcherSvc *dispatchersvc.Service,
	queueSvc *queuesvc.Service,
	agentSvc *agentsvc.Service,
	workloadSvc *workloadsvc.Service,
	historySvc *historysvc.Service,
	rebalanceSvc *rebalancesvc.Service,
	idemRepo *idempotency.Repository,
	eventBus porteventbus.EventBus,
	hub *wshandler.Hub,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(IdempotencyMiddleware(idemRepo))

	api := r.Group("/api")

	agenthandler.Register(api.Group("/agents"), agentSvc, workloadSvc)
	assignmenthandler.Register(api.Group("/assignments"), dispatcherSvc)
	queuehandler.Register(api.Group("/queue"), queueSvc)
	historyhandler.Register(api.Group("/history"), historySvc)
	rebalancehandler.Register(api.Group("/rebalance"), rebalanceSvc)

	hub.Register(api.Group("/ws"))

	// Bridge: one subscription per domain channel (3 total Postgres
	// connections). All events within a channel are forwarded to WS clients;
	// event.Type in the payload lets the client filter. AssignmentCreated and
	// AssignmentUpdated are excluded because the dispatcher already pushes
	// those to the hub directly with the richer notification payload.
	for _, ch := range []event.Channel{
		event.ChannelAssignment,
		event.ChannelQueue,
		event.ChannelAgent,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			if e.Type == event.TypeAssignmentCreated || e.Type == event.TypeAssignmentUpdated {
				return
			}
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
