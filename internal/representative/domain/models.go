package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Representative takes a commission for managing creators. Managed creators
// are derived from the collaboration binding table, never stored here.
type Representative struct {
	ID                snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"not null" json:"name"`
	CommissionPercent int64           `gorm:"not null" json:"commission_percent"`
	AggregateShare    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"aggregate_share"`
	CreatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Representative) TableName() string { return "representatives" }
