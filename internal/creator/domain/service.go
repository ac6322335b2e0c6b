package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type CreateCreatorRequest struct {
	Name string
}

type GetCreatorRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCreatorRequest) (Creator, error)
	GetByID(context.Context, GetCreatorRequest) (Creator, error)
	// Recompute re-sums the creator's work records and overwrites the
	// aggregates. Callers holding a transaction pass its handle; others pass nil
	// to use the service's own connection.
	Recompute(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) (Creator, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
