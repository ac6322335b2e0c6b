package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, work *WorkRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*WorkRecord, error)
	ListByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) ([]*WorkRecord, error)
	// UpdateTotals persists consumption_count, amount_earned, amount_due and
	// amount_paid.
	UpdateTotals(ctx context.Context, db *gorm.DB, work *WorkRecord) error
}
