package domain

import (
	"context"
	"errors"
)

// Decision resolves a pending request.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// CancelDecision resolves a cancellation request.
type CancelDecision string

const (
	CancelDecisionApproved CancelDecision = "approved"
	CancelDecisionDeclined CancelDecision = "declined"
)

type RequestCollaborationRequest struct {
	CreatorID        string
	RepresentativeID string
}

type RespondRequest struct {
	RequestID string
	Decision  Decision
}

type RequestCancellationRequest struct {
	RequestID string
	Reason    string
}

type RespondCancellationRequest struct {
	RequestID string
	Decision  CancelDecision
}

type Service interface {
	Request(context.Context, RequestCollaborationRequest) (Request, error)
	Respond(context.Context, RespondRequest) (Request, error)
	RequestCancellation(context.Context, RequestCancellationRequest) (Request, error)
	RespondCancellation(context.Context, RespondCancellationRequest) (Request, error)
}

var (
	ErrNotFound               = errors.New("not_found")
	ErrAlreadyBound           = errors.New("already_bound")
	ErrInvalidStateTransition = errors.New("invalid_state_transition")
	ErrInvalidDecision        = errors.New("invalid_decision")
	ErrInvalidID              = errors.New("invalid_id")
	ErrCreatorNotFound        = errors.New("creator_not_found")
	ErrRepresentativeNotFound = errors.New("representative_not_found")
)
