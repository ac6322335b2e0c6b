package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Status is the transaction lifecycle state. A transaction is created pending,
// becomes approved the moment any payment executes against it, and never
// reverts.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Transaction records payment activity against one royalty ledger entry.
// AmountPaid, CreatorShare and RepresentativeShare accumulate across
// payments; AmountDue counts down from RequestedAmount.
type Transaction struct {
	ID                  snowflake.ID    `gorm:"primaryKey" json:"id"`
	CreatorID           snowflake.ID    `gorm:"not null;index" json:"creator_id"`
	LedgerID            snowflake.ID    `gorm:"not null;index" json:"ledger_id"`
	WorkID              snowflake.ID    `gorm:"not null" json:"work_id"`
	RequestedAmount     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"requested_amount"`
	AmountPaid          decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_paid"`
	AmountDue           decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_due"`
	CreatorShare        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"creator_share"`
	RepresentativeShare decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"representative_share"`
	Status              Status          `gorm:"type:text;not null" json:"status"`
	CreatedAt           time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Transaction) TableName() string { return "transactions" }
