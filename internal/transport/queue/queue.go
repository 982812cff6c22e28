package queue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainqueue "github.com/caseflow/caseflow/internal/domain/queue"
	queuesvc "github.com/caseflow/caseflow/internal/service/queue"
)

func Register(rg *gin.RouterGroup, svc *queuesvc.Service) {
	rg.GET("/status", status(svc))
	rg.POST("/drain", drain(svc))
}

func status(svc *queuesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := svc.Status(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if counts == nil {
			counts = []domainqueue.StatusCount{}
		}
		c.JSON(http.StatusOK, gin.H{"counts": counts})
	}
}

func drain(svc *queuesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxItems := 0
		if v := c.Query("max"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max"})
				return
			}
			maxItems = n
		}

		res, err := svc.Drain(c.Request.Context(), maxItems)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
