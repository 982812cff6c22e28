package assignment

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/domain/workitem"
	portworkitem "github.com/caseflow/caseflow/internal/port/workitem"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
)

func Register(rg *gin.RouterGroup, svc *dispatchersvc.Service) {
	rg.POST("/", submit(svc))
	rg.POST("/reassign", reassign(svc))
	rg.POST("/:kind/:id/complete", complete(svc))
	rg.POST("/:kind/:id/cancel", cancel(svc))
}

type submitReq struct {
	Kind     workitem.Kind     `json:"kind" binding:"required"`
	ItemID   uuid.UUID         `json:"item_id" binding:"required"`
	Priority workitem.Priority `json:"priority" binding:"required"`
	ActorID  string            `json:"actor_id" binding:"required"`
}

func submit(svc *dispatchersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !req.Kind.Valid() || !req.Priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind or priority"})
			return
		}

		ref := workitem.Ref{Kind: req.Kind, ItemID: req.ItemID}
		res, err := svc.Assign(c.Request.Context(), ref, req.Priority, req.ActorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

type reassignReq struct {
	Kind       workitem.Kind `json:"kind" binding:"required"`
	ItemID     uuid.UUID     `json:"item_id" binding:"required"`
	NewAgentID uuid.UUID     `json:"new_agent_id" binding:"required"`
	Reason     string        `json:"reason"`
	ActorID    string        `json:"actor_id" binding:"required"`
}

func reassign(svc *dispatchersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reassignReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ref := workitem.Ref{Kind: req.Kind, ItemID: req.ItemID}
		res, err := svc.Reassign(c.Request.Context(), ref, req.NewAgentID, req.Reason, req.ActorID)
		switch {
		case errors.Is(err, dispatchersvc.ErrItemNotAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, dispatchersvc.ErrCapacityExceeded):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, res)
		}
	}
}

func complete(svc *dispatchersvc.Service) gin.HandlerFunc {
	return closeItem(svc.Complete)
}

func cancel(svc *dispatchersvc.Service) gin.HandlerFunc {
	return closeItem(svc.Cancel)
}

type closeReq struct {
	ActorID string `json:"actor_id" binding:"required"`
}

func closeItem(fn func(ctx context.Context, ref workitem.Ref, actorID string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := workitem.Kind(c.Param("kind"))
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
			return
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		var req closeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ref := workitem.Ref{Kind: kind, ItemID: id}
		if err := fn(c.Request.Context(), ref, req.ActorID); err != nil {
			if errors.Is(err, portworkitem.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if errors.Is(err, portworkitem.ErrClosed) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"closed": true})
	}
}
