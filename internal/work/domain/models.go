package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// WorkRecord holds one creative work's running totals. ConsumptionCount and
// AmountEarned only ever grow; AmountEarned == AmountPaid + AmountDue holds
// after every mutation.
type WorkRecord struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	CreatorID        snowflake.ID    `gorm:"not null;index" json:"creator_id"`
	Title            string          `gorm:"not null" json:"title"`
	ConsumptionCount int64           `gorm:"not null" json:"consumption_count"`
	AmountEarned     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_earned"`
	AmountDue        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_due"`
	AmountPaid       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_paid"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (WorkRecord) TableName() string { return "work_records" }
