package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/creator/domain"
	workdomain "github.com/opusline/royaltyd/internal/work/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	WorkRepo workdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	workRepo workdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("creator.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		workRepo: p.WorkRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCreatorRequest) (domain.Creator, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Creator{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	creator := domain.Creator{
		ID:          s.genID.Generate(),
		Name:        name,
		TotalEarned: decimal.Zero,
		TotalDue:    decimal.Zero,
		TotalPaid:   decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &creator); err != nil {
		return domain.Creator{}, err
	}

	return creator, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCreatorRequest) (domain.Creator, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Creator{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Creator{}, err
	}
	if item == nil {
		return domain.Creator{}, domain.ErrNotFound
	}

	return *item, nil
}

// Recompute walks every work record owned by the creator and overwrites the
// aggregates from scratch. O(work-count), intentionally not incremental.
func (s *Service) Recompute(ctx context.Context, db *gorm.DB, creatorID snowflake.ID) (domain.Creator, error) {
	if db == nil {
		db = s.db
	}

	creator, err := s.repo.FindByID(ctx, db, creatorID)
	if err != nil {
		return domain.Creator{}, err
	}
	if creator == nil {
		return domain.Creator{}, domain.ErrNotFound
	}

	works, err := s.workRepo.ListByCreator(ctx, db, creatorID)
	if err != nil {
		return domain.Creator{}, err
	}

	var consumption int64
	earned := decimal.Zero
	paid := decimal.Zero
	for _, work := range works {
		if work == nil {
			continue
		}
		consumption += work.ConsumptionCount
		earned = earned.Add(work.AmountEarned)
		paid = paid.Add(work.AmountPaid)
	}

	creator.TotalConsumption = consumption
	creator.TotalEarned = earned
	creator.TotalPaid = paid
	creator.TotalDue = earned.Sub(paid)

	if err := s.repo.UpdateAggregates(ctx, db, creator); err != nil {
		return domain.Creator{}, err
	}

	return *creator, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
