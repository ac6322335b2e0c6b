package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	workdomain "github.com/opusline/royaltyd/internal/work/domain"
	"github.com/shopspring/decimal"
)

type createWorkRequest struct {
	CreatorID string `json:"creator_id"`
	Title     string `json:"title"`
}

func (s *Server) CreateWork(c *gin.Context) {
	var req createWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.workSvc.Create(c.Request.Context(), workdomain.CreateWorkRequest{
		CreatorID: strings.TrimSpace(req.CreatorID),
		Title:     strings.TrimSpace(req.Title),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWork(c *gin.Context) {
	resp, err := s.workSvc.GetByID(c.Request.Context(), workdomain.GetWorkRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWorksByCreator(c *gin.Context) {
	resp, err := s.workSvc.ListByCreator(c.Request.Context(), workdomain.ListWorksRequest{
		CreatorID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type recordUsageRequest struct {
	ConsumptionDelta int64           `json:"consumption_delta"`
	EarnedDelta      decimal.Decimal `json:"earned_delta"`
}

func (s *Server) RecordUsage(c *gin.Context) {
	var req recordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.workSvc.RecordUsage(c.Request.Context(), workdomain.RecordUsageRequest{
		WorkID:           c.Param("id"),
		ConsumptionDelta: req.ConsumptionDelta,
		EarnedDelta:      req.EarnedDelta,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
