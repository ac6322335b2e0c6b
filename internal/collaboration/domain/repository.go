package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertRequest(ctx context.Context, db *gorm.DB, request *Request) error
	FindRequestByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Request, error)
	UpdateRequest(ctx context.Context, db *gorm.DB, request *Request) error
	// HasApprovedForCreator reports whether the creator already holds an
	// approved (or cancel-requested, which is still bound) collaboration.
	HasApprovedForCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) (bool, error)
}

type BindingRepository interface {
	Insert(ctx context.Context, db *gorm.DB, binding *Binding) error
	FindByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) (*Binding, error)
	DeleteByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) error
	ListCreatorsByRepresentative(ctx context.Context, db *gorm.DB, representativeID snowflake.ID) ([]snowflake.ID, error)
}
