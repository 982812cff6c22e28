package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	"github.com/caseflow/caseflow/internal/domain/event"
	"github.com/caseflow/caseflow/internal/domain/policy"
	portagent "github.com/caseflow/caseflow/internal/port/agent"
	portcache "github.com/caseflow/caseflow/internal/port/cache"
	portbus "github.com/caseflow/caseflow/internal/port/eventbus"
)

// rosterTTL bounds how stale a cached roster entry may be. The roster is
// read-mostly; workload and assignment state never pass through this cache.
const rosterTTL = 30 * time.Second

var _ portagent.RosterReader = (*Service)(nil)

// Service manages the agent roster. Registration and removal normally come
// from external user management; the scheduler reads identity and role.
type Service struct {
	repo  portagent.Repository
	cache portcache.Cache
	bus   portbus.EventBus
	cfg   policy.Config
}

func NewService(repo portagent.Repository, cache portcache.Cache, bus portbus.EventBus, cfg policy.Config) *Service {
	return &Service{repo: repo, cache: cache, bus: bus, cfg: cfg}
}

func (s *Service) Register(ctx context.Context, name string, role domainagent.Role) (domainagent.CaseAgent, error) {
	a := domainagent.New(name, role, s.cfg.Capacity)
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return domainagent.CaseAgent{}, fmt.Errorf("register agent: %w", err)
	}
	if err := s.bus.Publish(ctx, event.New(event.TypeAgentRegistered, created.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentRegistered event", "agent_id", created.ID, "error", err)
	}
	return created, nil
}

// GetByID reads through the roster cache.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainagent.CaseAgent, error) {
	key := cacheKey(id)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var a domainagent.CaseAgent
		if err := json.Unmarshal(data, &a); err == nil {
			return a, nil
		}
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainagent.CaseAgent{}, fmt.Errorf("get agent: %w", err)
	}
	if data, err := json.Marshal(a); err == nil {
		s.cache.Set(ctx, key, data, rosterTTL) //nolint:errcheck
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.CaseAgent, error) {
	agents, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove agent: %w", err)
	}
	s.cache.Invalidate(ctx, cacheKey(id)) //nolint:errcheck
	return nil
}

func cacheKey(id uuid.UUID) string {
	return "agent:" + id.String()
}
