package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, txn *Transaction) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Transaction, error)
	// UpdateTotals persists the cumulative amounts, shares and status.
	UpdateTotals(ctx context.Context, db *gorm.DB, txn *Transaction) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	ListByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID, page pagination.Pagination) ([]*Transaction, error)
}
