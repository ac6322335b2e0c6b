package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Entry is the running due/paid balance for one (creator, work) pair. It
// mirrors the work record's totals; SyncFromWork pushes changes down and
// payments move amounts from due to paid.
type Entry struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	CreatorID        snowflake.ID    `gorm:"not null;index;uniqueIndex:ux_ledger_creator_work,priority:1" json:"creator_id"`
	WorkID           snowflake.ID    `gorm:"not null;uniqueIndex:ux_ledger_creator_work,priority:2" json:"work_id"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_amount"`
	AmountDue        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_due"`
	AmountPaid       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_paid"`
	ConsumptionCount int64           `gorm:"not null" json:"consumption_count"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "royalty_ledger_entries" }
