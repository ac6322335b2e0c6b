package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/work/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, work *domain.WorkRecord) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO work_records (id, creator_id, title, consumption_count, amount_earned, amount_due, amount_paid, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		work.ID,
		work.CreatorID,
		work.Title,
		work.ConsumptionCount,
		work.AmountEarned,
		work.AmountDue,
		work.AmountPaid,
		work.CreatedAt,
		work.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.WorkRecord, error) {
	var work domain.WorkRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, creator_id, title, consumption_count, amount_earned, amount_due, amount_paid, created_at, updated_at
		 FROM work_records WHERE id = ?`,
		id,
	).Scan(&work).Error
	if err != nil {
		return nil, err
	}
	if work.ID == 0 {
		return nil, nil
	}
	return &work, nil
}

func (r *repo) ListByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) ([]*domain.WorkRecord, error) {
	var works []*domain.WorkRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, creator_id, title, consumption_count, amount_earned, amount_due, amount_paid, created_at, updated_at
		 FROM work_records WHERE creator_id = ? ORDER BY created_at, id`,
		creatorID,
	).Scan(&works).Error
	if err != nil {
		return nil, err
	}
	return works, nil
}

func (r *repo) UpdateTotals(ctx context.Context, db *gorm.DB, work *domain.WorkRecord) error {
	return db.WithContext(ctx).Exec(
		`UPDATE work_records
		 SET consumption_count = ?, amount_earned = ?, amount_due = ?, amount_paid = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		work.ConsumptionCount,
		work.AmountEarned,
		work.AmountDue,
		work.AmountPaid,
		work.ID,
	).Error
}
