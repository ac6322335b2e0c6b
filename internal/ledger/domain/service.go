package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type RegisterWorkRequest struct {
	CreatorID snowflake.ID
	WorkID    snowflake.ID
}

type SyncFromWorkRequest struct {
	WorkID snowflake.ID
}

type GetByCreatorRequest struct {
	CreatorID string
}

type Service interface {
	// RegisterWork creates a zeroed entry for the (creator, work) pair.
	RegisterWork(context.Context, RegisterWorkRequest) (Entry, error)
	// SyncFromWork recomputes the entry from the current work record and
	// triggers the creator aggregate recompute. Idempotent: an unchanged work
	// record produces no write.
	SyncFromWork(context.Context, SyncFromWorkRequest) (Entry, error)
	// GetByCreator lists the creator's entries. Reads also recompute the
	// creator aggregate as a consistency repair.
	GetByCreator(context.Context, GetByCreatorRequest) ([]Entry, error)
}

var (
	ErrDuplicateEntry = errors.New("duplicate_entry")
	ErrWorkNotFound   = errors.New("work_not_found")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
