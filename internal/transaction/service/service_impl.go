package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	collaborationdomain "github.com/opusline/royaltyd/internal/collaboration/domain"
	"github.com/opusline/royaltyd/internal/config"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	"github.com/opusline/royaltyd/internal/identity"
	ledgerdomain "github.com/opusline/royaltyd/internal/ledger/domain"
	"github.com/opusline/royaltyd/internal/locks"
	notificationdomain "github.com/opusline/royaltyd/internal/notification/domain"
	obsmetrics "github.com/opusline/royaltyd/internal/observability/metrics"
	repdomain "github.com/opusline/royaltyd/internal/representative/domain"
	"github.com/opusline/royaltyd/internal/transaction/domain"
	workdomain "github.com/opusline/royaltyd/internal/work/domain"
	"github.com/opusline/royaltyd/pkg/db/pagination"
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
	Cfg        config.Config
	Repo       domain.Repository
	LedgerRepo ledgerdomain.Repository
	WorkRepo   workdomain.Repository
	Bindings   collaborationdomain.BindingRepository
	CreatorSvc creatordomain.Service
	RepRepo    repdomain.Repository
	Notifier   notificationdomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	cfg        config.Config
	repo       domain.Repository
	ledgerRepo ledgerdomain.Repository
	workRepo   workdomain.Repository
	bindings   collaborationdomain.BindingRepository
	creatorSvc creatordomain.Service
	repRepo    repdomain.Repository
	notifier   notificationdomain.Service
	metrics    *obsmetrics.Metrics

	// payments against the same ledger entry are serialized
	ledgerLocks *locks.KeyedMutex
}

func NewService(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("transaction.service"),
		genID:       p.GenID,
		cfg:         p.Cfg,
		repo:        p.Repo,
		ledgerRepo:  p.LedgerRepo,
		workRepo:    p.WorkRepo,
		bindings:    p.Bindings,
		creatorSvc:  p.CreatorSvc,
		repRepo:     p.RepRepo,
		notifier:    p.Notifier,
		metrics:     p.Metrics,
		ledgerLocks: locks.NewKeyedMutex(),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTransactionRequest) (domain.Transaction, error) {
	creatorID, err := parseID(req.CreatorID)
	if err != nil {
		return domain.Transaction{}, err
	}
	workID, err := parseID(req.WorkID)
	if err != nil {
		return domain.Transaction{}, err
	}
	ledgerID, err := parseID(req.LedgerID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if !req.RequestedAmount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	entry, err := s.ledgerRepo.FindByID(ctx, s.db, ledgerID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if entry == nil || entry.CreatorID != creatorID || entry.WorkID != workID {
		return domain.Transaction{}, domain.ErrLedgerNotFound
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		ID:                  s.genID.Generate(),
		CreatorID:           creatorID,
		LedgerID:            ledgerID,
		WorkID:              workID,
		RequestedAmount:     req.RequestedAmount,
		AmountPaid:          decimal.Zero,
		AmountDue:           req.RequestedAmount,
		CreatorShare:        decimal.Zero,
		RepresentativeShare: decimal.Zero,
		Status:              domain.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Insert(ctx, s.db, &txn); err != nil {
		return domain.Transaction{}, err
	}

	return txn, nil
}

// Pay executes one payment against a transaction. The transaction, its ledger
// entry, the work record, the creator aggregate and the representative
// aggregate all move inside one database transaction; a per-ledger mutex keeps
// concurrent payments against the same entry from interleaving.
func (s *Service) Pay(ctx context.Context, req domain.PayTransactionRequest) (domain.PaymentResult, error) {
	txnID, err := parseID(req.TransactionID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	if !req.Amount.IsPositive() {
		return domain.PaymentResult{}, domain.ErrInvalidAmount
	}

	txn, err := s.repo.FindByID(ctx, s.db, txnID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	if txn == nil {
		return domain.PaymentResult{}, domain.ErrNotFound
	}

	release := s.ledgerLocks.Lock(txn.LedgerID.String())
	defer release()

	var result domain.PaymentResult
	var repID snowflake.ID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Reload under the lock; an earlier payment may have moved the totals.
		txn, err = s.repo.FindByID(ctx, tx, txnID)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrNotFound
		}

		entry, err := s.ledgerRepo.FindByID(ctx, tx, txn.LedgerID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrLedgerNotFound
		}

		binding, err := s.bindings.FindByCreator(ctx, tx, txn.CreatorID)
		if err != nil {
			return err
		}
		if binding == nil {
			return domain.ErrRepresentativeNotFound
		}
		rep, err := s.repRepo.FindByID(ctx, tx, binding.RepresentativeID)
		if err != nil {
			return err
		}
		if rep == nil {
			return domain.ErrRepresentativeNotFound
		}
		repID = rep.ID

		if req.Amount.GreaterThan(txn.AmountDue) {
			return domain.ErrOverpayment
		}

		creatorShare, representativeShare := domain.Split(req.Amount, binding.CommissionPercent)

		txn.AmountPaid = txn.AmountPaid.Add(req.Amount)
		txn.AmountDue = txn.AmountDue.Sub(req.Amount)
		txn.CreatorShare = txn.CreatorShare.Add(creatorShare)
		txn.RepresentativeShare = txn.RepresentativeShare.Add(representativeShare)
		txn.Status = domain.StatusApproved
		if err := s.repo.UpdateTotals(ctx, tx, txn); err != nil {
			return err
		}

		entry.AmountPaid = entry.AmountPaid.Add(req.Amount)
		entry.AmountDue = entry.AmountDue.Sub(req.Amount)
		if err := s.ledgerRepo.UpdateTotals(ctx, tx, entry); err != nil {
			return err
		}

		// Push the payment down to the work record so the creator aggregate
		// recompute stays drift-free.
		work, err := s.workRepo.FindByID(ctx, tx, txn.WorkID)
		if err != nil {
			return err
		}
		if work != nil {
			work.AmountPaid = work.AmountPaid.Add(req.Amount)
			work.AmountDue = work.AmountEarned.Sub(work.AmountPaid)
			if err := s.workRepo.UpdateTotals(ctx, tx, work); err != nil {
				return err
			}
		}

		if _, err := s.creatorSvc.Recompute(ctx, tx, txn.CreatorID); err != nil {
			return err
		}

		if err := s.repRepo.AddShare(ctx, tx, rep.ID, representativeShare); err != nil {
			return err
		}

		result = domain.PaymentResult{
			Transaction:         *txn,
			CreatorShare:        creatorShare,
			RepresentativeShare: representativeShare,
		}
		return nil
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordPayment("error", 0)
		}
		return domain.PaymentResult{}, err
	}

	if s.metrics != nil {
		amount, _ := req.Amount.Float64()
		s.metrics.RecordPayment("ok", amount)
	}

	s.notifier.Notify(ctx, txn.CreatorID, identity.RoleCreator,
		notificationdomain.KindPaymentReceived,
		fmt.Sprintf("payment of %s received, your share %s", req.Amount, result.CreatorShare))
	s.notifier.Notify(ctx, repID, identity.RoleRepresentative,
		notificationdomain.KindPaymentReceived,
		fmt.Sprintf("commission of %s earned", result.RepresentativeShare))

	return result, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteTransactionRequest) error {
	txnID, err := parseID(req.TransactionID)
	if err != nil {
		return err
	}

	switch req.Actor {
	case identity.RoleAdmin, identity.RoleCreator:
	default:
		return domain.ErrDeleteForbidden
	}

	txn, err := s.repo.FindByID(ctx, s.db, txnID)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}

	if s.cfg.TransactionDeletePolicy == config.DeletePolicyPendingOnly &&
		txn.Status != domain.StatusPending {
		return domain.ErrInvalidStateTransition
	}

	// Record management only: ledger and aggregate amounts already paid stay
	// untouched.
	return s.repo.Delete(ctx, s.db, txnID)
}

func (s *Service) ListByCreator(ctx context.Context, req domain.ListTransactionsRequest) (domain.ListTransactionsResponse, error) {
	creatorID, err := parseID(req.CreatorID)
	if err != nil {
		return domain.ListTransactionsResponse{}, err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.ListByCreator(ctx, s.db, creatorID, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListTransactionsResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(txn *domain.Transaction) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        txn.ID.String(),
			CreatedAt: txn.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	txns := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		txns = append(txns, *item)
	}

	resp := domain.ListTransactionsResponse{Transactions: txns}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
