package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/collaboration/domain"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	"github.com/opusline/royaltyd/internal/identity"
	"github.com/opusline/royaltyd/internal/locks"
	notificationdomain "github.com/opusline/royaltyd/internal/notification/domain"
	obsmetrics "github.com/opusline/royaltyd/internal/observability/metrics"
	repdomain "github.com/opusline/royaltyd/internal/representative/domain"
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
	Bindings    domain.BindingRepository
	CreatorRepo creatordomain.Repository
	RepRepo     repdomain.Repository
	Notifier    notificationdomain.Service
	Metrics     *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	bindings    domain.BindingRepository
	creatorRepo creatordomain.Repository
	repRepo     repdomain.Repository
	notifier    notificationdomain.Service
	metrics     *obsmetrics.Metrics

	// transitions on the same request must not race
	requestLocks *locks.KeyedMutex
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("collaboration.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		bindings:     p.Bindings,
		creatorRepo:  p.CreatorRepo,
		repRepo:      p.RepRepo,
		notifier:     p.Notifier,
		metrics:      p.Metrics,
		requestLocks: locks.NewKeyedMutex(),
	}
}

func (s *Service) Request(ctx context.Context, req domain.RequestCollaborationRequest) (domain.Request, error) {
	creatorID, err := parseID(req.CreatorID)
	if err != nil {
		return domain.Request{}, err
	}
	representativeID, err := parseID(req.RepresentativeID)
	if err != nil {
		return domain.Request{}, err
	}

	creator, err := s.creatorRepo.FindByID(ctx, s.db, creatorID)
	if err != nil {
		return domain.Request{}, err
	}
	if creator == nil {
		return domain.Request{}, domain.ErrCreatorNotFound
	}

	rep, err := s.repRepo.FindByID(ctx, s.db, representativeID)
	if err != nil {
		return domain.Request{}, err
	}
	if rep == nil {
		return domain.Request{}, domain.ErrRepresentativeNotFound
	}

	bound, err := s.repo.HasApprovedForCreator(ctx, s.db, creatorID)
	if err != nil {
		return domain.Request{}, err
	}
	if bound {
		return domain.Request{}, domain.ErrAlreadyBound
	}

	now := time.Now().UTC()
	request := domain.Request{
		ID:               s.genID.Generate(),
		CreatorID:        creatorID,
		RepresentativeID: representativeID,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.InsertRequest(ctx, s.db, &request); err != nil {
		return domain.Request{}, err
	}

	s.recordTransition(domain.StatusPending)
	s.notifier.Notify(ctx, representativeID, identity.RoleRepresentative,
		notificationdomain.KindCollaborationRequest,
		fmt.Sprintf("creator %s requested collaboration", creatorID))

	return request, nil
}

func (s *Service) Respond(ctx context.Context, req domain.RespondRequest) (domain.Request, error) {
	requestID, err := parseID(req.RequestID)
	if err != nil {
		return domain.Request{}, err
	}
	if req.Decision != domain.DecisionApproved && req.Decision != domain.DecisionRejected {
		return domain.Request{}, domain.ErrInvalidDecision
	}

	release := s.requestLocks.Lock(requestID.String())
	defer release()

	request, err := s.repo.FindRequestByID(ctx, s.db, requestID)
	if err != nil {
		return domain.Request{}, err
	}
	if request == nil {
		return domain.Request{}, domain.ErrNotFound
	}
	if request.Status != domain.StatusPending {
		return domain.Request{}, domain.ErrInvalidStateTransition
	}

	if req.Decision == domain.DecisionRejected {
		request.Status = domain.StatusRejected
		if err := s.repo.UpdateRequest(ctx, s.db, request); err != nil {
			return domain.Request{}, err
		}
		s.recordTransition(domain.StatusRejected)
		s.notifier.Notify(ctx, request.CreatorID, identity.RoleCreator,
			notificationdomain.KindCollaborationResponse, "collaboration request rejected")
		return *request, nil
	}

	rep, err := s.repRepo.FindByID(ctx, s.db, request.RepresentativeID)
	if err != nil {
		return domain.Request{}, err
	}
	if rep == nil {
		return domain.Request{}, domain.ErrRepresentativeNotFound
	}

	// Approval and binding land together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		request.Status = domain.StatusApproved
		if err := s.repo.UpdateRequest(ctx, tx, request); err != nil {
			return err
		}
		if err := s.bindings.Insert(ctx, tx, &domain.Binding{
			CreatorID:         request.CreatorID,
			RepresentativeID:  request.RepresentativeID,
			CommissionPercent: rep.CommissionPercent,
			RequestID:         request.ID,
			BoundAt:           time.Now().UTC(),
		}); err != nil {
			return err
		}
		repID := request.RepresentativeID
		return s.creatorRepo.SetRepresentative(ctx, tx, request.CreatorID, &repID)
	})
	if err != nil {
		return domain.Request{}, err
	}

	s.recordTransition(domain.StatusApproved)
	s.notifier.Notify(ctx, request.CreatorID, identity.RoleCreator,
		notificationdomain.KindCollaborationResponse, "collaboration request approved")

	return *request, nil
}

func (s *Service) RequestCancellation(ctx context.Context, req domain.RequestCancellationRequest) (domain.Request, error) {
	requestID, err := parseID(req.RequestID)
	if err != nil {
		return domain.Request{}, err
	}

	release := s.requestLocks.Lock(requestID.String())
	defer release()

	request, err := s.repo.FindRequestByID(ctx, s.db, requestID)
	if err != nil {
		return domain.Request{}, err
	}
	if request == nil {
		return domain.Request{}, domain.ErrNotFound
	}
	if request.Status != domain.StatusApproved {
		return domain.Request{}, domain.ErrInvalidStateTransition
	}

	reason := strings.TrimSpace(req.Reason)
	request.Status = domain.StatusCancelRequested
	if reason != "" {
		request.CancellationReason = &reason
	}

	if err := s.repo.UpdateRequest(ctx, s.db, request); err != nil {
		return domain.Request{}, err
	}

	s.recordTransition(domain.StatusCancelRequested)
	return *request, nil
}

func (s *Service) RespondCancellation(ctx context.Context, req domain.RespondCancellationRequest) (domain.Request, error) {
	requestID, err := parseID(req.RequestID)
	if err != nil {
		return domain.Request{}, err
	}
	if req.Decision != domain.CancelDecisionApproved && req.Decision != domain.CancelDecisionDeclined {
		return domain.Request{}, domain.ErrInvalidDecision
	}

	release := s.requestLocks.Lock(requestID.String())
	defer release()

	request, err := s.repo.FindRequestByID(ctx, s.db, requestID)
	if err != nil {
		return domain.Request{}, err
	}
	if request == nil {
		return domain.Request{}, domain.ErrNotFound
	}
	if request.Status != domain.StatusCancelRequested {
		return domain.Request{}, domain.ErrInvalidStateTransition
	}

	if req.Decision == domain.CancelDecisionDeclined {
		// Binding stays; the collaboration simply resumes.
		request.Status = domain.StatusApproved
		request.CancellationReason = nil
		if err := s.repo.UpdateRequest(ctx, s.db, request); err != nil {
			return domain.Request{}, err
		}
		s.recordTransition(domain.StatusApproved)
		s.notifier.Notify(ctx, request.CreatorID, identity.RoleCreator,
			notificationdomain.KindCancellationResponse, "cancellation declined")
		return *request, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		request.Status = domain.StatusCancelled
		if err := s.repo.UpdateRequest(ctx, tx, request); err != nil {
			return err
		}
		if err := s.bindings.DeleteByCreator(ctx, tx, request.CreatorID); err != nil {
			return err
		}
		return s.creatorRepo.SetRepresentative(ctx, tx, request.CreatorID, nil)
	})
	if err != nil {
		return domain.Request{}, err
	}

	s.recordTransition(domain.StatusCancelled)
	s.notifier.Notify(ctx, request.CreatorID, identity.RoleCreator,
		notificationdomain.KindCancellationResponse, "collaboration cancelled")

	return *request, nil
}

func (s *Service) recordTransition(to domain.Status) {
	if s.metrics != nil {
		s.metrics.RecordTransition(string(to))
	}
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
