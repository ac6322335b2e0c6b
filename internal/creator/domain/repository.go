package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, creator *Creator) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Creator, error)
	// UpdateAggregates overwrites the four aggregate columns.
	UpdateAggregates(ctx context.Context, db *gorm.DB, creator *Creator) error
	// SetRepresentative sets or clears the weak representative reference.
	SetRepresentative(ctx context.Context, db *gorm.DB, id snowflake.ID, representativeID *snowflake.ID) error
}
