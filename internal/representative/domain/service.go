package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateRepresentativeRequest struct {
	Name              string
	CommissionPercent int64
}

type GetRepresentativeRequest struct {
	ID string
}

type ListManagedCreatorsRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateRepresentativeRequest) (Representative, error)
	GetByID(context.Context, GetRepresentativeRequest) (Representative, error)
	// ListManagedCreators resolves the creators currently bound to the
	// representative through approved collaborations.
	ListManagedCreators(context.Context, ListManagedCreatorsRequest) ([]snowflake.ID, error)
}

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidCommission = errors.New("invalid_commission")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)
