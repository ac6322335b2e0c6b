package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/opusline/royaltyd/internal/ledger/domain"
)

type registerWorkLedgerRequest struct {
	CreatorID string `json:"creator_id"`
	WorkID    string `json:"work_id"`
}

func (s *Server) RegisterWorkLedger(c *gin.Context) {
	var req registerWorkLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	creatorID, err := snowflake.ParseString(strings.TrimSpace(req.CreatorID))
	if err != nil {
		AbortWithError(c, ledgerdomain.ErrInvalidID)
		return
	}
	workID, err := snowflake.ParseString(strings.TrimSpace(req.WorkID))
	if err != nil {
		AbortWithError(c, ledgerdomain.ErrInvalidID)
		return
	}

	resp, err := s.ledgerSvc.RegisterWork(c.Request.Context(), ledgerdomain.RegisterWorkRequest{
		CreatorID: creatorID,
		WorkID:    workID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type syncLedgerRequest struct {
	WorkID string `json:"work_id"`
}

func (s *Server) SyncLedgerFromWork(c *gin.Context) {
	var req syncLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	workID, err := snowflake.ParseString(strings.TrimSpace(req.WorkID))
	if err != nil {
		AbortWithError(c, ledgerdomain.ErrInvalidID)
		return
	}

	resp, err := s.ledgerSvc.SyncFromWork(c.Request.Context(), ledgerdomain.SyncFromWorkRequest{
		WorkID: workID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetLedgersByCreator(c *gin.Context) {
	resp, err := s.ledgerSvc.GetByCreator(c.Request.Context(), ledgerdomain.GetByCreatorRequest{
		CreatorID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
