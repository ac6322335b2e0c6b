package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/creator/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, creator *domain.Creator) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO creators (id, name, representative_id, total_consumption, total_earned, total_due, total_paid, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		creator.ID,
		creator.Name,
		creator.RepresentativeID,
		creator.TotalConsumption,
		creator.TotalEarned,
		creator.TotalDue,
		creator.TotalPaid,
		creator.CreatedAt,
		creator.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Creator, error) {
	var creator domain.Creator
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, representative_id, total_consumption, total_earned, total_due, total_paid, created_at, updated_at
		 FROM creators WHERE id = ?`,
		id,
	).Scan(&creator).Error
	if err != nil {
		return nil, err
	}
	if creator.ID == 0 {
		return nil, nil
	}
	return &creator, nil
}

func (r *repo) UpdateAggregates(ctx context.Context, db *gorm.DB, creator *domain.Creator) error {
	return db.WithContext(ctx).Exec(
		`UPDATE creators
		 SET total_consumption = ?, total_earned = ?, total_due = ?, total_paid = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		creator.TotalConsumption,
		creator.TotalEarned,
		creator.TotalDue,
		creator.TotalPaid,
		creator.ID,
	).Error
}

func (r *repo) SetRepresentative(ctx context.Context, db *gorm.DB, id snowflake.ID, representativeID *snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`UPDATE creators SET representative_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		representativeID,
		id,
	).Error
}
