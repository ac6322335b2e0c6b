package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rep *Representative) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Representative, error)
	// AddShare increments the running commission aggregate.
	AddShare(ctx context.Context, db *gorm.DB, id snowflake.ID, amount decimal.Decimal) error
}
