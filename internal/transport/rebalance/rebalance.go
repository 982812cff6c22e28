package rebalance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	rebalancesvc "github.com/caseflow/caseflow/internal/service/rebalance"
)

func Register(rg *gin.RouterGroup, svc *rebalancesvc.Service) {
	rg.POST("/load", balanceLoad(svc))
	rg.POST("/performance", balancePerformance(svc))
}

func balanceLoad(svc *rebalancesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.BalanceLoad(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

type performanceReq struct {
	Threshold float64 `json:"threshold" binding:"required"`
	MaxMoves  int     `json:"max_moves"`
}

func balancePerformance(svc *rebalancesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req performanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Threshold <= 0 || req.Threshold > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be in (0, 1]"})
			return
		}

		res, err := svc.BalanceByPerformance(c.Request.Context(), req.Threshold, req.MaxMoves)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
