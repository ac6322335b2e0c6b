package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/representative/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rep *domain.Representative) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO representatives (id, name, commission_percent, aggregate_share, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ID,
		rep.Name,
		rep.CommissionPercent,
		rep.AggregateShare,
		rep.CreatedAt,
		rep.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Representative, error) {
	var rep domain.Representative
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, commission_percent, aggregate_share, created_at, updated_at
		 FROM representatives WHERE id = ?`,
		id,
	).Scan(&rep).Error
	if err != nil {
		return nil, err
	}
	if rep.ID == 0 {
		return nil, nil
	}
	return &rep, nil
}

func (r *repo) AddShare(ctx context.Context, db *gorm.DB, id snowflake.ID, amount decimal.Decimal) error {
	return db.WithContext(ctx).Exec(
		`UPDATE representatives
		 SET aggregate_share = aggregate_share + ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		amount,
		id,
	).Error
}
