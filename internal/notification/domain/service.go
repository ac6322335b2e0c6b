package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/identity"
)

// Kind classifies outbound notifications.
type Kind string

const (
	KindPaymentReceived       Kind = "payment_received"
	KindCollaborationRequest  Kind = "collaboration_request"
	KindCollaborationResponse Kind = "collaboration_response"
	KindCancellationResponse  Kind = "cancellation_response"
)

type Notification struct {
	RecipientID snowflake.ID
	Role        identity.Role
	Kind        Kind
	Message     string
}

// Provider delivers a single notification. Delivery is best-effort; the core
// never rolls back on provider failure.
type Provider interface {
	Send(ctx context.Context, n Notification) error
}

// Service is the fire-and-forget sink consumed by the payment and
// collaboration flows.
type Service interface {
	Notify(ctx context.Context, recipientID snowflake.ID, role identity.Role, kind Kind, message string)
}
