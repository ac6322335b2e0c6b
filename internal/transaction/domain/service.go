package domain

import (
	"context"
	"errors"

	"github.com/opusline/royaltyd/internal/identity"
	"github.com/opusline/royaltyd/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	CreatorID       string
	WorkID          string
	LedgerID        string
	RequestedAmount decimal.Decimal
}

type PayTransactionRequest struct {
	TransactionID string
	Amount        decimal.Decimal
}

// PaymentResult reports one executed payment: the updated transaction and the
// shares of this payment alone.
type PaymentResult struct {
	Transaction         Transaction     `json:"transaction"`
	CreatorShare        decimal.Decimal `json:"creator_share"`
	RepresentativeShare decimal.Decimal `json:"representative_share"`
}

type DeleteTransactionRequest struct {
	TransactionID string
	Actor         identity.Role
}

type ListTransactionsRequest struct {
	CreatorID string
	PageToken string
	PageSize  int
}

type ListTransactionsResponse struct {
	pagination.PageInfo
	Transactions []Transaction `json:"transactions"`
}

type Service interface {
	Create(context.Context, CreateTransactionRequest) (Transaction, error)
	// Pay splits the amount by the bound representative's commission and
	// applies the transaction, ledger entry, work record, creator aggregate
	// and representative aggregate updates as a single atomic unit.
	Pay(context.Context, PayTransactionRequest) (PaymentResult, error)
	// Delete removes the record only; amounts already paid are never
	// reversed.
	Delete(context.Context, DeleteTransactionRequest) error
	ListByCreator(context.Context, ListTransactionsRequest) (ListTransactionsResponse, error)
}

var (
	ErrNotFound               = errors.New("not_found")
	ErrLedgerNotFound         = errors.New("ledger_not_found")
	ErrRepresentativeNotFound = errors.New("representative_not_found")
	ErrOverpayment            = errors.New("overpayment")
	ErrInvalidAmount          = errors.New("invalid_amount")
	ErrInvalidID              = errors.New("invalid_id")
	ErrDeleteForbidden        = errors.New("delete_forbidden")
	ErrInvalidStateTransition = errors.New("invalid_state_transition")
)
