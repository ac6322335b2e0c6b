package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	repdomain "github.com/opusline/royaltyd/internal/representative/domain"
)

type createCreatorRequest struct {
	Name string `json:"name"`
}

func (s *Server) CreateCreator(c *gin.Context) {
	var req createCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.creatorSvc.Create(c.Request.Context(), creatordomain.CreateCreatorRequest{
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCreator(c *gin.Context) {
	resp, err := s.creatorSvc.GetByID(c.Request.Context(), creatordomain.GetCreatorRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type createRepresentativeRequest struct {
	Name              string `json:"name"`
	CommissionPercent int64  `json:"commission_percent"`
}

func (s *Server) CreateRepresentative(c *gin.Context) {
	var req createRepresentativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.representativeSvc.Create(c.Request.Context(), repdomain.CreateRepresentativeRequest{
		Name:              strings.TrimSpace(req.Name),
		CommissionPercent: req.CommissionPercent,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRepresentative(c *gin.Context) {
	resp, err := s.representativeSvc.GetByID(c.Request.Context(), repdomain.GetRepresentativeRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListManagedCreators(c *gin.Context) {
	ids, err := s.representativeSvc.ListManagedCreators(c.Request.Context(), repdomain.ListManagedCreatorsRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	creatorIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		creatorIDs = append(creatorIDs, id.String())
	}

	c.JSON(http.StatusOK, gin.H{"data": creatorIDs})
}
