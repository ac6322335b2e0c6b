package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Creator is the party entitled to royalty income. The aggregate columns are
// always overwritten by a full recompute over the creator's work records,
// never patched incrementally, so repeated partial updates cannot drift.
type Creator struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"not null" json:"name"`
	RepresentativeID *snowflake.ID   `gorm:"index" json:"representative_id,omitempty"`
	TotalConsumption int64           `gorm:"not null" json:"total_consumption"`
	TotalEarned      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_earned"`
	TotalDue         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_due"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_paid"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Creator) TableName() string { return "creators" }
