package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/ledger/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const entryColumns = `id, creator_id, work_id, total_amount, amount_due, amount_paid, consumption_count, created_at, updated_at`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO royalty_ledger_entries (`+entryColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatorID,
		entry.WorkID,
		entry.TotalAmount,
		entry.AmountDue,
		entry.AmountPaid,
		entry.ConsumptionCount,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT `+entryColumns+` FROM royalty_ledger_entries WHERE id = ?`,
		id,
	).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) FindByWork(ctx context.Context, db *gorm.DB, workID snowflake.ID) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT `+entryColumns+` FROM royalty_ledger_entries WHERE work_id = ?`,
		workID,
	).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) ListByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT `+entryColumns+` FROM royalty_ledger_entries WHERE creator_id = ? ORDER BY created_at, id`,
		creatorID,
	).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) UpdateTotals(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	return db.WithContext(ctx).Exec(
		`UPDATE royalty_ledger_entries
		 SET total_amount = ?, amount_due = ?, amount_paid = ?, consumption_count = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		entry.TotalAmount,
		entry.AmountDue,
		entry.AmountPaid,
		entry.ConsumptionCount,
		entry.ID,
	).Error
}
