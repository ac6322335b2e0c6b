package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the collaboration request state. Legal transitions:
// pending -> approved | rejected
// approved -> cancel_requested
// cancel_requested -> cancelled | approved (declined cancellation)
type Status string

const (
	StatusPending         Status = "pending"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusCancelRequested Status = "cancel_requested"
	StatusCancelled       Status = "cancelled"
)

// Request is one creator's application to be managed by a representative.
type Request struct {
	ID                 snowflake.ID `gorm:"primaryKey" json:"id"`
	CreatorID          snowflake.ID `gorm:"not null;index" json:"creator_id"`
	RepresentativeID   snowflake.ID `gorm:"not null;index" json:"representative_id"`
	Status             Status       `gorm:"type:text;not null" json:"status"`
	CancellationReason *string      `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Request) TableName() string { return "collaboration_requests" }

// Binding is the single directed lookup creator -> representative. At most one
// row per creator; the commission percent is snapshotted at approval time and
// is what every later payment splits on.
type Binding struct {
	CreatorID         snowflake.ID `gorm:"primaryKey" json:"creator_id"`
	RepresentativeID  snowflake.ID `gorm:"not null;index" json:"representative_id"`
	CommissionPercent int64        `gorm:"not null" json:"commission_percent"`
	RequestID         snowflake.ID `gorm:"not null" json:"request_id"`
	BoundAt           time.Time    `gorm:"not null" json:"bound_at"`
}

// TableName sets the database table name.
func (Binding) TableName() string { return "collaboration_bindings" }
