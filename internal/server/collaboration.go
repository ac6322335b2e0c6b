package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	collaborationdomain "github.com/opusline/royaltyd/internal/collaboration/domain"
)

type requestCollaborationRequest struct {
	CreatorID        string `json:"creator_id"`
	RepresentativeID string `json:"representative_id"`
}

func (s *Server) RequestCollaboration(c *gin.Context) {
	var req requestCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.collaborationSvc.Request(c.Request.Context(), collaborationdomain.RequestCollaborationRequest{
		CreatorID:        strings.TrimSpace(req.CreatorID),
		RepresentativeID: strings.TrimSpace(req.RepresentativeID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type respondCollaborationRequest struct {
	Decision string `json:"decision"`
}

func (s *Server) RespondCollaboration(c *gin.Context) {
	var req respondCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.collaborationSvc.Respond(c.Request.Context(), collaborationdomain.RespondRequest{
		RequestID: c.Param("id"),
		Decision:  collaborationdomain.Decision(strings.TrimSpace(req.Decision)),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type requestCancellationRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) RequestCancellation(c *gin.Context) {
	var req requestCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.collaborationSvc.RequestCancellation(c.Request.Context(), collaborationdomain.RequestCancellationRequest{
		RequestID: c.Param("id"),
		Reason:    req.Reason,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type respondCancellationRequest struct {
	Decision string `json:"decision"`
}

func (s *Server) RespondCancellation(c *gin.Context) {
	var req respondCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.collaborationSvc.RespondCancellation(c.Request.Context(), collaborationdomain.RespondCancellationRequest{
		RequestID: c.Param("id"),
		Decision:  collaborationdomain.CancelDecision(strings.TrimSpace(req.Decision)),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
