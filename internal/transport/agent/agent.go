package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainagent "github.com/caseflow/caseflow/internal/domain/agent"
	agentsvc "github.com/caseflow/caseflow/internal/service/agent"
	workloadsvc "github.com/caseflow/caseflow/internal/service/workload"
)

func Register(rg *gin.RouterGroup, svc *agentsvc.Service, workload *workloadsvc.Service) {
	rg.POST("/", register(svc))
	rg.GET("/", list(svc))
	rg.GET("/loads", loads(workload))
	rg.GET("/:id", get(svc))
	rg.GET("/:id/workload", agentWorkload(workload))
	rg.DELETE("/:id", remove(svc))
}

type registerReq struct {
	Name string           `json:"name" binding:"required"`
	Role domainagent.Role `json:"role" binding:"required"`
}

func register(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !req.Role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}

		a, err := svc.Register(c.Request.Context(), req.Name, req.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

func list(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainagent.ListFilters
		if v := c.Query("role"); v != "" {
			r := domainagent.Role(v)
			filters.Role = &r
		}

		agents, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if agents == nil {
			agents = []domainagent.CaseAgent{}
		}
		c.JSON(http.StatusOK, agents)
	}
}

func loads(workload *workloadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := workload.Snapshot(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if snapshot == nil {
			snapshot = []domainagent.Load{}
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

func get(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		a, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func agentWorkload(workload *workloadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		w, err := workload.Workload(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func remove(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Remove(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
