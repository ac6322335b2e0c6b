package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/transaction/domain"
	"github.com/opusline/royaltyd/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const txnColumns = `id, creator_id, ledger_id, work_id, requested_amount, amount_paid, amount_due, creator_share, representative_share, status, created_at, updated_at`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, txn *domain.Transaction) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO transactions (`+txnColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID,
		txn.CreatorID,
		txn.LedgerID,
		txn.WorkID,
		txn.RequestedAmount,
		txn.AmountPaid,
		txn.AmountDue,
		txn.CreatorShare,
		txn.RepresentativeShare,
		string(txn.Status),
		txn.CreatedAt,
		txn.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := db.WithContext(ctx).Raw(
		`SELECT `+txnColumns+` FROM transactions WHERE id = ?`,
		id,
	).Scan(&txn).Error
	if err != nil {
		return nil, err
	}
	if txn.ID == 0 {
		return nil, nil
	}
	return &txn, nil
}

func (r *repo) UpdateTotals(ctx context.Context, db *gorm.DB, txn *domain.Transaction) error {
	return db.WithContext(ctx).Exec(
		`UPDATE transactions
		 SET amount_paid = ?, amount_due = ?, creator_share = ?, representative_share = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		txn.AmountPaid,
		txn.AmountDue,
		txn.CreatorShare,
		txn.RepresentativeShare,
		string(txn.Status),
		txn.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM transactions WHERE id = ?`,
		id,
	).Error
}

func (r *repo) ListByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID, page pagination.Pagination) ([]*domain.Transaction, error) {
	limit := page.PageSize
	if limit <= 0 {
		limit = 50
	}

	stmt := db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("creator_id = ?", creatorID)

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		createdAt, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
		if err != nil {
			return nil, err
		}
		id, err := snowflake.ParseString(cursor.ID)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Where("(created_at < ?) OR (created_at = ? AND id < ?)", createdAt, createdAt, id)
	}

	var txns []*domain.Transaction
	err := stmt.
		Order("created_at desc, id desc").
		Limit(limit + 1).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
