package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	collaborationdomain "github.com/opusline/royaltyd/internal/collaboration/domain"
	"github.com/opusline/royaltyd/internal/representative/domain"
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
	Bindings collaborationdomain.BindingRepository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	bindings collaborationdomain.BindingRepository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("representative.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		bindings: p.Bindings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRepresentativeRequest) (domain.Representative, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Representative{}, domain.ErrInvalidName
	}
	if req.CommissionPercent < 1 || req.CommissionPercent > 100 {
		return domain.Representative{}, domain.ErrInvalidCommission
	}

	now := time.Now().UTC()
	rep := domain.Representative{
		ID:                s.genID.Generate(),
		Name:              name,
		CommissionPercent: req.CommissionPercent,
		AggregateShare:    decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Insert(ctx, s.db, &rep); err != nil {
		return domain.Representative{}, err
	}

	return rep, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetRepresentativeRequest) (domain.Representative, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Representative{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Representative{}, err
	}
	if item == nil {
		return domain.Representative{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) ListManagedCreators(ctx context.Context, req domain.ListManagedCreatorsRequest) ([]snowflake.ID, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return s.bindings.ListCreatorsByRepresentative(ctx, s.db, id)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
