package history

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainhistory "github.com/caseflow/caseflow/internal/domain/history"
	"github.com/caseflow/caseflow/internal/domain/workitem"
	historysvc "github.com/caseflow/caseflow/internal/service/history"
)

func Register(rg *gin.RouterGroup, svc *historysvc.Service) {
	rg.GET("/", query(svc))
}

func query(svc *historysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f domainhistory.Filters
		var p domainhistory.Page

		if v := c.Query("kind"); v != "" {
			k := workitem.Kind(v)
			if !k.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
				return
			}
			f.Kind = &k
		}
		if v := c.Query("item_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_id"})
				return
			}
			f.ItemID = &id
		}
		if v := c.Query("agent_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent_id"})
				return
			}
			f.AgentID = &id
		}
		if v := c.Query("actor_id"); v != "" {
			f.ActorID = &v
		}
		if v := c.Query("type"); v != "" {
			t := domainhistory.Type(v)
			f.Type = &t
		}
		if v := c.Query("from"); v != "" {
			ts, err := time.Parse(time.RFC3339, v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
				return
			}
			f.From = &ts
		}
		if v := c.Query("to"); v != "" {
			ts, err := time.Parse(time.RFC3339, v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
				return
			}
			f.To = &ts
		}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			p.Limit = n
		}
		if v := c.Query("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
				return
			}
			p.Offset = n
		}

		entries, err := svc.Query(c.Request.Context(), f, p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []domainhistory.Entry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}
