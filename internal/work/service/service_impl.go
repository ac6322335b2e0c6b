package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	ledgerdomain "github.com/opusline/royaltyd/internal/ledger/domain"
	"github.com/opusline/royaltyd/internal/work/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	CreatorRepo creatordomain.Repository
	LedgerSvc   ledgerdomain.Service
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	creatorRepo creatordomain.Repository
	ledgerSvc   ledgerdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("work.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		creatorRepo: p.CreatorRepo,
		ledgerSvc:   p.LedgerSvc,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateWorkRequest) (domain.WorkRecord, error) {
	creatorID, err := snowflake.ParseString(strings.TrimSpace(req.CreatorID))
	if err != nil || creatorID == 0 {
		return domain.WorkRecord{}, domain.ErrInvalidCreator
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.WorkRecord{}, domain.ErrInvalidTitle
	}

	creator, err := s.creatorRepo.FindByID(ctx, s.db, creatorID)
	if err != nil {
		return domain.WorkRecord{}, err
	}
	if creator == nil {
		return domain.WorkRecord{}, domain.ErrInvalidCreator
	}

	now := time.Now().UTC()
	work := domain.WorkRecord{
		ID:           s.genID.Generate(),
		CreatorID:    creatorID,
		Title:        title,
		AmountEarned: decimal.Zero,
		AmountDue:    decimal.Zero,
		AmountPaid:   decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &work); err != nil {
		return domain.WorkRecord{}, err
	}

	if _, err := s.ledgerSvc.RegisterWork(ctx, ledgerdomain.RegisterWorkRequest{
		CreatorID: creatorID,
		WorkID:    work.ID,
	}); err != nil {
		return domain.WorkRecord{}, err
	}

	return work, nil
}

func (s *Service) RecordUsage(ctx context.Context, req domain.RecordUsageRequest) (domain.WorkRecord, error) {
	id, err := parseID(req.WorkID)
	if err != nil {
		return domain.WorkRecord{}, err
	}
	if req.ConsumptionDelta < 0 || req.EarnedDelta.IsNegative() {
		return domain.WorkRecord{}, domain.ErrInvalidAmount
	}

	work, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.WorkRecord{}, err
	}
	if work == nil {
		return domain.WorkRecord{}, domain.ErrNotFound
	}

	work.ConsumptionCount += req.ConsumptionDelta
	work.AmountEarned = work.AmountEarned.Add(req.EarnedDelta)
	// amount_paid never moves here; due is re-derived to keep
	// earned == paid + due.
	work.AmountDue = work.AmountEarned.Sub(work.AmountPaid)

	if err := s.repo.UpdateTotals(ctx, s.db, work); err != nil {
		return domain.WorkRecord{}, err
	}

	// Explicit push-down sync, not a save hook.
	if _, err := s.ledgerSvc.SyncFromWork(ctx, ledgerdomain.SyncFromWorkRequest{WorkID: work.ID}); err != nil {
		return domain.WorkRecord{}, err
	}

	return *work, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetWorkRequest) (domain.WorkRecord, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.WorkRecord{}, err
	}

	work, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.WorkRecord{}, err
	}
	if work == nil {
		return domain.WorkRecord{}, domain.ErrNotFound
	}

	return *work, nil
}

func (s *Service) ListByCreator(ctx context.Context, req domain.ListWorksRequest) ([]domain.WorkRecord, error) {
	creatorID, err := snowflake.ParseString(strings.TrimSpace(req.CreatorID))
	if err != nil || creatorID == 0 {
		return nil, domain.ErrInvalidCreator
	}

	items, err := s.repo.ListByCreator(ctx, s.db, creatorID)
	if err != nil {
		return nil, err
	}

	works := make([]domain.WorkRecord, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		works = append(works, *item)
	}
	return works, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
