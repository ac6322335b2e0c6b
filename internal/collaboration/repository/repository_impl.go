package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/collaboration/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertRequest(ctx context.Context, db *gorm.DB, request *domain.Request) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO collaboration_requests (id, creator_id, representative_id, status, cancellation_reason, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		request.ID,
		request.CreatorID,
		request.RepresentativeID,
		string(request.Status),
		request.CancellationReason,
		request.CreatedAt,
		request.UpdatedAt,
	).Error
}

func (r *repo) FindRequestByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Request, error) {
	var request domain.Request
	err := db.WithContext(ctx).Raw(
		`SELECT id, creator_id, representative_id, status, cancellation_reason, created_at, updated_at
		 FROM collaboration_requests WHERE id = ?`,
		id,
	).Scan(&request).Error
	if err != nil {
		return nil, err
	}
	if request.ID == 0 {
		return nil, nil
	}
	return &request, nil
}

func (r *repo) UpdateRequest(ctx context.Context, db *gorm.DB, request *domain.Request) error {
	return db.WithContext(ctx).Exec(
		`UPDATE collaboration_requests
		 SET status = ?, cancellation_reason = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(request.Status),
		request.CancellationReason,
		request.ID,
	).Error
}

func (r *repo) HasApprovedForCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM collaboration_requests
		 WHERE creator_id = ? AND status IN (?, ?)`,
		creatorID,
		string(domain.StatusApproved),
		string(domain.StatusCancelRequested),
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type bindingRepo struct{}

func ProvideBindings() domain.BindingRepository {
	return &bindingRepo{}
}

func (r *bindingRepo) Insert(ctx context.Context, db *gorm.DB, binding *domain.Binding) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO collaboration_bindings (creator_id, representative_id, commission_percent, request_id, bound_at)
		 VALUES (?, ?, ?, ?, ?)`,
		binding.CreatorID,
		binding.RepresentativeID,
		binding.CommissionPercent,
		binding.RequestID,
		binding.BoundAt,
	).Error
}

func (r *bindingRepo) FindByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) (*domain.Binding, error) {
	var binding domain.Binding
	err := db.WithContext(ctx).Raw(
		`SELECT creator_id, representative_id, commission_percent, request_id, bound_at
		 FROM collaboration_bindings WHERE creator_id = ?`,
		creatorID,
	).Scan(&binding).Error
	if err != nil {
		return nil, err
	}
	if binding.CreatorID == 0 {
		return nil, nil
	}
	return &binding, nil
}

func (r *bindingRepo) DeleteByCreator(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM collaboration_bindings WHERE creator_id = ?`,
		creatorID,
	).Error
}

func (r *bindingRepo) ListCreatorsByRepresentative(ctx context.Context, db *gorm.DB, representativeID snowflake.ID) ([]snowflake.ID, error) {
	var ids []snowflake.ID
	err := db.WithContext(ctx).Raw(
		`SELECT creator_id FROM collaboration_bindings WHERE representative_id = ? ORDER BY creator_id`,
		representativeID,
	).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
