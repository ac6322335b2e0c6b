package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type CreateWorkRequest struct {
	CreatorID string
	Title     string
}

type RecordUsageRequest struct {
	WorkID           string
	ConsumptionDelta int64
	EarnedDelta      decimal.Decimal
}

type GetWorkRequest struct {
	ID string
}

type ListWorksRequest struct {
	CreatorID string
}

type Service interface {
	// Create registers the work record and its royalty ledger entry.
	Create(context.Context, CreateWorkRequest) (WorkRecord, error)
	// RecordUsage applies non-negative consumption/earned deltas and pushes
	// the new totals down to the ledger.
	RecordUsage(context.Context, RecordUsageRequest) (WorkRecord, error)
	GetByID(context.Context, GetWorkRequest) (WorkRecord, error)
	ListByCreator(context.Context, ListWorksRequest) ([]WorkRecord, error)
}

var (
	ErrInvalidTitle   = errors.New("invalid_title")
	ErrInvalidAmount  = errors.New("invalid_amount")
	ErrInvalidCreator = errors.New("invalid_creator")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
