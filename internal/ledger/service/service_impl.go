package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	"github.com/opusline/royaltyd/internal/ledger/domain"
	obsmetrics "github.com/opusline/royaltyd/internal/observability/metrics"
	workdomain "github.com/opusline/royaltyd/internal/work/domain"
	"github.com/opusline/royaltyd/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	WorkRepo   workdomain.Repository
	CreatorSvc creatordomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	workRepo   workdomain.Repository
	creatorSvc creatordomain.Service
	metrics    *obsmetrics.Metrics
}

func NewService(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("ledger.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		workRepo:   p.WorkRepo,
		creatorSvc: p.CreatorSvc,
		metrics:    p.Metrics,
	}
}

func (s *Service) RegisterWork(ctx context.Context, req domain.RegisterWorkRequest) (domain.Entry, error) {
	if req.CreatorID == 0 || req.WorkID == 0 {
		return domain.Entry{}, domain.ErrInvalidID
	}

	now := time.Now().UTC()
	entry := domain.Entry{
		ID:          s.genID.Generate(),
		CreatorID:   req.CreatorID,
		WorkID:      req.WorkID,
		TotalAmount: decimal.Zero,
		AmountDue:   decimal.Zero,
		AmountPaid:  decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Entry{}, domain.ErrDuplicateEntry
		}
		return domain.Entry{}, err
	}

	return entry, nil
}

func (s *Service) SyncFromWork(ctx context.Context, req domain.SyncFromWorkRequest) (domain.Entry, error) {
	if req.WorkID == 0 {
		return domain.Entry{}, domain.ErrInvalidID
	}

	work, err := s.workRepo.FindByID(ctx, s.db, req.WorkID)
	if err != nil {
		return domain.Entry{}, err
	}
	if work == nil {
		return domain.Entry{}, domain.ErrWorkNotFound
	}

	entry, err := s.repo.FindByWork(ctx, s.db, req.WorkID)
	if err != nil {
		return domain.Entry{}, err
	}
	if entry == nil {
		return domain.Entry{}, domain.ErrNotFound
	}

	if !s.applyWorkTotals(entry, work) {
		// Unchanged work record: skip the write, the entry already agrees.
		return *entry, nil
	}

	if err := s.repo.UpdateTotals(ctx, s.db, entry); err != nil {
		return domain.Entry{}, err
	}
	s.metrics.RecordLedgerSync()

	if _, err := s.creatorSvc.Recompute(ctx, nil, work.CreatorID); err != nil {
		return domain.Entry{}, err
	}

	return *entry, nil
}

func (s *Service) GetByCreator(ctx context.Context, req domain.GetByCreatorRequest) ([]domain.Entry, error) {
	creatorID, err := snowflake.ParseString(strings.TrimSpace(req.CreatorID))
	if err != nil || creatorID == 0 {
		return nil, domain.ErrInvalidID
	}

	items, err := s.repo.ListByCreator(ctx, s.db, creatorID)
	if err != nil {
		return nil, err
	}

	// Read-time consistency repair: reads are also a chance to heal aggregate
	// drift.
	if _, err := s.creatorSvc.Recompute(ctx, nil, creatorID); err != nil {
		if err == creatordomain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		entries = append(entries, *item)
	}
	return entries, nil
}

// applyWorkTotals copies the work record's totals onto the entry, re-deriving
// amount_due so total == paid + due. Reports whether anything changed.
func (s *Service) applyWorkTotals(entry *domain.Entry, work *workdomain.WorkRecord) bool {
	total := work.AmountEarned
	due := total.Sub(entry.AmountPaid)

	if entry.TotalAmount.Equal(total) &&
		entry.AmountDue.Equal(due) &&
		entry.ConsumptionCount == work.ConsumptionCount {
		return false
	}

	entry.TotalAmount = total
	entry.AmountDue = due
	entry.ConsumptionCount = work.ConsumptionCount
	return true
}
