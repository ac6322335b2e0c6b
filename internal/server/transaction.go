package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opusline/royaltyd/internal/identity"
	transactiondomain "github.com/opusline/royaltyd/internal/transaction/domain"
	"github.com/opusline/royaltyd/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

const headerActorRole = "X-Actor-Role"

type createTransactionRequest struct {
	CreatorID       string          `json:"creator_id"`
	WorkID          string          `json:"work_id"`
	LedgerID        string          `json:"ledger_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
}

func (s *Server) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.transactionSvc.Create(c.Request.Context(), transactiondomain.CreateTransactionRequest{
		CreatorID:       strings.TrimSpace(req.CreatorID),
		WorkID:          strings.TrimSpace(req.WorkID),
		LedgerID:        strings.TrimSpace(req.LedgerID),
		RequestedAmount: req.RequestedAmount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type payTransactionRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (s *Server) PayTransaction(c *gin.Context) {
	var req payTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.transactionSvc.Pay(c.Request.Context(), transactiondomain.PayTransactionRequest{
		TransactionID: c.Param("id"),
		Amount:        req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteTransaction(c *gin.Context) {
	role, err := identity.ParseRole(strings.TrimSpace(c.GetHeader(headerActorRole)))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.transactionSvc.Delete(c.Request.Context(), transactiondomain.DeleteTransactionRequest{
		TransactionID: c.Param("id"),
		Actor:         role,
	}); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListTransactionsByCreator(c *gin.Context) {
	var query pagination.Pagination
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.transactionSvc.ListByCreator(c.Request.Context(), transactiondomain.ListTransactionsRequest{
		CreatorID: c.Param("id"),
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
