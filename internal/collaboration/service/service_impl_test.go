package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/opusline/royaltyd/internal/collaboration/domain"
	collaborationrepo "github.com/opusline/royaltyd/internal/collaboration/repository"
	collaborationservice "github.com/opusline/royaltyd/internal/collaboration/service"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	creatorrepo "github.com/opusline/royaltyd/internal/creator/repository"
	"github.com/opusline/royaltyd/internal/notification/provider"
	notificationservice "github.com/opusline/royaltyd/internal/notification/service"
	repdomain "github.com/opusline/royaltyd/internal/representative/domain"
	reprepo "github.com/opusline/royaltyd/internal/representative/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	node        *snowflake.Node
	svc         domain.Service
	bindings    domain.BindingRepository
	creatorRepo creatordomain.Repository

	creator creatordomain.Creator
	rep     repdomain.Representative
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := setupTestDB(t)
	node, err := snowflake.NewNode(4)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	notifier := notificationservice.New(notificationservice.Params{
		Log:      zap.NewNop(),
		Provider: &provider.NoOpProvider{},
	})
	svc := collaborationservice.New(collaborationservice.Params{
		DB:          db,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        collaborationrepo.Provide(),
		Bindings:    collaborationrepo.ProvideBindings(),
		CreatorRepo: creatorrepo.Provide(),
		RepRepo:     reprepo.Provide(),
		Notifier:    notifier,
	})

	f := &fixture{
		db:          db,
		node:        node,
		svc:         svc,
		bindings:    collaborationrepo.ProvideBindings(),
		creatorRepo: creatorrepo.Provide(),
	}

	now := time.Now().UTC()
	f.creator = creatordomain.Creator{
		ID:          node.Generate(),
		Name:        "ana",
		TotalEarned: decimal.Zero,
		TotalDue:    decimal.Zero,
		TotalPaid:   decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := f.creatorRepo.Insert(ctx, db, &f.creator); err != nil {
		t.Fatalf("insert creator: %v", err)
	}

	f.rep = repdomain.Representative{
		ID:                node.Generate(),
		Name:              "rex",
		CommissionPercent: 15,
		AggregateShare:    decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	repRepo := reprepo.Provide()
	if err := repRepo.Insert(ctx, db, &f.rep); err != nil {
		t.Fatalf("insert representative: %v", err)
	}

	return f
}

func (f *fixture) request(t *testing.T) domain.Request {
	t.Helper()
	request, err := f.svc.Request(context.Background(), domain.RequestCollaborationRequest{
		CreatorID:        f.creator.ID.String(),
		RepresentativeID: f.rep.ID.String(),
	})
	if err != nil {
		t.Fatalf("request collaboration: %v", err)
	}
	return request
}

func (f *fixture) approve(t *testing.T, requestID snowflake.ID) domain.Request {
	t.Helper()
	request, err := f.svc.Respond(context.Background(), domain.RespondRequest{
		RequestID: requestID.String(),
		Decision:  domain.DecisionApproved,
	})
	if err != nil {
		t.Fatalf("approve collaboration: %v", err)
	}
	return request
}

func TestApproveCreatesBinding(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	if request.Status != domain.StatusPending {
		t.Fatalf("status = %s, want %s", request.Status, domain.StatusPending)
	}

	approved := f.approve(t, request.ID)
	if approved.Status != domain.StatusApproved {
		t.Fatalf("status = %s, want %s", approved.Status, domain.StatusApproved)
	}

	binding, err := f.bindings.FindByCreator(ctx, f.db, f.creator.ID)
	if err != nil {
		t.Fatalf("find binding: %v", err)
	}
	if binding == nil {
		t.Fatal("binding missing after approval")
	}
	if binding.RepresentativeID != f.rep.ID {
		t.Fatalf("binding representative = %s, want %s", binding.RepresentativeID, f.rep.ID)
	}
	if binding.CommissionPercent != 15 {
		t.Fatalf("binding commission = %d, want snapshot 15", binding.CommissionPercent)
	}

	creator, err := f.creatorRepo.FindByID(ctx, f.db, f.creator.ID)
	if err != nil {
		t.Fatalf("find creator: %v", err)
	}
	if creator.RepresentativeID == nil || *creator.RepresentativeID != f.rep.ID {
		t.Fatalf("creator representative = %v, want %s", creator.RepresentativeID, f.rep.ID)
	}
}

func TestRejectLeavesNoBinding(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	rejected, err := f.svc.Respond(ctx, domain.RespondRequest{
		RequestID: request.ID.String(),
		Decision:  domain.DecisionRejected,
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.StatusRejected {
		t.Fatalf("status = %s, want %s", rejected.Status, domain.StatusRejected)
	}

	binding, err := f.bindings.FindByCreator(ctx, f.db, f.creator.ID)
	if err != nil {
		t.Fatalf("find binding: %v", err)
	}
	if binding != nil {
		t.Fatal("binding exists after rejection")
	}

	// A rejected request does not block a retry.
	if _, err := f.svc.Request(ctx, domain.RequestCollaborationRequest{
		CreatorID:        f.creator.ID.String(),
		RepresentativeID: f.rep.ID.String(),
	}); err != nil {
		t.Fatalf("re-request after rejection: %v", err)
	}
}

func TestRequestWhileBound(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	f.approve(t, f.request(t).ID)

	_, err := f.svc.Request(ctx, domain.RequestCollaborationRequest{
		CreatorID:        f.creator.ID.String(),
		RepresentativeID: f.rep.ID.String(),
	})
	if err != domain.ErrAlreadyBound {
		t.Fatalf("err = %v, want %v", err, domain.ErrAlreadyBound)
	}
}

func TestRespondOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	f.approve(t, request.ID)

	_, err := f.svc.Respond(ctx, domain.RespondRequest{
		RequestID: request.ID.String(),
		Decision:  domain.DecisionApproved,
	})
	if err != domain.ErrInvalidStateTransition {
		t.Fatalf("err = %v, want %v", err, domain.ErrInvalidStateTransition)
	}
}

func TestRespondInvalidDecision(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	_, err := f.svc.Respond(ctx, domain.RespondRequest{
		RequestID: request.ID.String(),
		Decision:  domain.Decision("maybe"),
	})
	if err != domain.ErrInvalidDecision {
		t.Fatalf("err = %v, want %v", err, domain.ErrInvalidDecision)
	}
}

func TestCancellationDeclinedRestoresApproved(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	f.approve(t, request.ID)

	requested, err := f.svc.RequestCancellation(ctx, domain.RequestCancellationRequest{
		RequestID: request.ID.String(),
		Reason:    "moving on",
	})
	if err != nil {
		t.Fatalf("request cancellation: %v", err)
	}
	if requested.Status != domain.StatusCancelRequested {
		t.Fatalf("status = %s, want %s", requested.Status, domain.StatusCancelRequested)
	}
	if requested.CancellationReason == nil || *requested.CancellationReason != "moving on" {
		t.Fatalf("reason = %v, want moving on", requested.CancellationReason)
	}

	declined, err := f.svc.RespondCancellation(ctx, domain.RespondCancellationRequest{
		RequestID: request.ID.String(),
		Decision:  domain.CancelDecisionDeclined,
	})
	if err != nil {
		t.Fatalf("decline cancellation: %v", err)
	}
	if declined.Status != domain.StatusApproved {
		t.Fatalf("status = %s, want %s", declined.Status, domain.StatusApproved)
	}
	if declined.CancellationReason != nil {
		t.Fatalf("reason = %v, want cleared", declined.CancellationReason)
	}

	binding, err := f.bindings.FindByCreator(ctx, f.db, f.creator.ID)
	if err != nil {
		t.Fatalf("find binding: %v", err)
	}
	if binding == nil {
		t.Fatal("binding removed by declined cancellation")
	}
}

func TestCancellationApprovedUnbinds(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	f.approve(t, request.ID)

	if _, err := f.svc.RequestCancellation(ctx, domain.RequestCancellationRequest{
		RequestID: request.ID.String(),
	}); err != nil {
		t.Fatalf("request cancellation: %v", err)
	}

	cancelled, err := f.svc.RespondCancellation(ctx, domain.RespondCancellationRequest{
		RequestID: request.ID.String(),
		Decision:  domain.CancelDecisionApproved,
	})
	if err != nil {
		t.Fatalf("approve cancellation: %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Fatalf("status = %s, want %s", cancelled.Status, domain.StatusCancelled)
	}

	binding, err := f.bindings.FindByCreator(ctx, f.db, f.creator.ID)
	if err != nil {
		t.Fatalf("find binding: %v", err)
	}
	if binding != nil {
		t.Fatal("binding survives cancellation")
	}

	creator, err := f.creatorRepo.FindByID(ctx, f.db, f.creator.ID)
	if err != nil {
		t.Fatalf("find creator: %v", err)
	}
	if creator.RepresentativeID != nil {
		t.Fatalf("creator representative = %v, want nil", creator.RepresentativeID)
	}

	// Cancelled is terminal.
	if _, err := f.svc.RequestCancellation(ctx, domain.RequestCancellationRequest{
		RequestID: request.ID.String(),
	}); err != domain.ErrInvalidStateTransition {
		t.Fatalf("err = %v, want %v", err, domain.ErrInvalidStateTransition)
	}

	// And the creator is free to collaborate again.
	if _, err := f.svc.Request(ctx, domain.RequestCollaborationRequest{
		CreatorID:        f.creator.ID.String(),
		RepresentativeID: f.rep.ID.String(),
	}); err != nil {
		t.Fatalf("re-request after cancellation: %v", err)
	}
}

func TestCancellationRequiresApproved(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	_, err := f.svc.RequestCancellation(ctx, domain.RequestCancellationRequest{
		RequestID: request.ID.String(),
	})
	if err != domain.ErrInvalidStateTransition {
		t.Fatalf("err = %v, want %v", err, domain.ErrInvalidStateTransition)
	}
}

func TestRequestPendingCancellationStillBound(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	request := f.request(t)
	f.approve(t, request.ID)
	if _, err := f.svc.RequestCancellation(ctx, domain.RequestCancellationRequest{
		RequestID: request.ID.String(),
	}); err != nil {
		t.Fatalf("request cancellation: %v", err)
	}

	// A pending cancellation has not released the creator yet.
	_, err := f.svc.Request(ctx, domain.RequestCollaborationRequest{
		CreatorID:        f.creator.ID.String(),
		RepresentativeID: f.rep.ID.String(),
	})
	if err != domain.ErrAlreadyBound {
		t.Fatalf("err = %v, want %v", err, domain.ErrAlreadyBound)
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:memdb_collab_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	schema := []string{
		`CREATE TABLE creators (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			representative_id BIGINT,
			total_consumption BIGINT NOT NULL DEFAULT 0,
			total_earned DECIMAL(20,2) NOT NULL DEFAULT 0,
			total_due DECIMAL(20,2) NOT NULL DEFAULT 0,
			total_paid DECIMAL(20,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE representatives (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			commission_percent BIGINT NOT NULL,
			aggregate_share DECIMAL(20,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE collaboration_requests (
			id BIGINT PRIMARY KEY,
			creator_id BIGINT NOT NULL,
			representative_id BIGINT NOT NULL,
			status TEXT NOT NULL,
			cancellation_reason TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE collaboration_bindings (
			creator_id BIGINT PRIMARY KEY,
			representative_id BIGINT NOT NULL,
			commission_percent BIGINT NOT NULL,
			request_id BIGINT NOT NULL,
			bound_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("schema exec failed: %v", err)
		}
	}

	return db
}
