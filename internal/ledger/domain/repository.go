package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *Entry) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Entry, error)
	FindByWork(ctx context.Context, db *gorm.DB, workID snowflake.ID) (*Entry, error)
	ListByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) ([]*Entry, error)
	UpdateTotals(ctx context.Context, db *gorm.DB, entry *Entry) error
}
