package services

import (
	"context"
	"testing"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

// acceptSubmission walks the full path to a pending payment.
func acceptSubmission(t *testing.T, env *testEnv, company, worker model.Actor) *model.Payment {
	t.Helper()
	ctx := context.Background()

	task := assignWorker(t, env, company, worker)
	sub, err := env.subs.Submit(ctx, worker, task.ID, "done", nil)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := env.subs.Review(ctx, company, sub.ID, constants.ReviewStatusAccepted, ""); err != nil {
		t.Fatalf("review failed: %v", err)
	}

	payments, err := env.paymentRepo.ListByWorker(ctx, worker.ID)
	if err != nil || len(payments) == 0 {
		t.Fatalf("expected a payment record, got %d (%v)", len(payments), err)
	}
	return &payments[0]
}

func TestPaymentService_ConfirmSettlesAndCreditsWorker(t *testing.T) {
	env := newTestEnv(t, "10")
	company := actor("company-1", constants.RoleCompany)
	worker := actor("worker-1", constants.RoleWorker)
	ctx := context.Background()

	seedWorkerProfile(t, env, worker.ID)
	payment := acceptSubmission(t, env, company, worker)

	confirmed, err := env.payments.Confirm(ctx, company, payment.ID, "/uploads/company/proof.png", "tx-123")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if confirmed.Status != constants.PaymentStatusConfirmed {
		t.Errorf("status = %s, want confirmed", confirmed.Status)
	}
	if confirmed.ConfirmedAt == nil {
		t.Error("confirmedAt should be set")
	}
	if confirmed.Proof == "" || confirmed.TransactionID != "tx-123" {
		t.Errorf("proof/transactionId not stored: %q %q", confirmed.Proof, confirmed.TransactionID)
	}

	profile, err := env.profileRepo.FindWorkerByUserID(ctx, worker.ID)
	if err != nil {
		t.Fatalf("reloading profile failed: %v", err)
	}
	if !profile.TotalEarnings.Equal(confirmed.WorkerPayout) {
		t.Errorf("totalEarnings = %s, want %s", profile.TotalEarnings, confirmed.WorkerPayout)
	}
}

func TestPaymentService_ConfirmIsOneWay(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	worker := actor("worker-1", constants.RoleWorker)
	ctx := context.Background()

	seedWorkerProfile(t, env, worker.ID)
	payment := acceptSubmission(t, env, company, worker)

	if _, err := env.payments.Confirm(ctx, company, payment.ID, "", ""); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	_, err := env.payments.Confirm(ctx, company, payment.ID, "", "")
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("expected invalid transition on double confirm, got %v", err)
	}

	// Earnings must not be credited twice.
	profile, err := env.profileRepo.FindWorkerByUserID(ctx, worker.ID)
	if err != nil {
		t.Fatalf("reloading profile failed: %v", err)
	}
	if !profile.TotalEarnings.Equal(payment.WorkerPayout) {
		t.Errorf("totalEarnings = %s, want %s", profile.TotalEarnings, payment.WorkerPayout)
	}
}

func TestPaymentService_ConfirmRequiresOwner(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	intruder := actor("company-2", constants.RoleCompany)
	worker := actor("worker-1", constants.RoleWorker)

	payment := acceptSubmission(t, env, company, worker)

	_, err := env.payments.Confirm(context.Background(), intruder, payment.ID, "", "")
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
}

func TestPaymentService_Earnings(t *testing.T) {
	env := newTestEnv(t, "10")
	company := actor("company-1", constants.RoleCompany)
	worker := actor("worker-1", constants.RoleWorker)
	ctx := context.Background()

	seedWorkerProfile(t, env, worker.ID)

	first := acceptSubmission(t, env, company, worker)
	if _, err := env.payments.Confirm(ctx, company, first.ID, "", ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	// A second completed task leaves a pending payment behind.
	acceptSubmission(t, env, company, worker)

	summary, err := env.payments.Earnings(ctx, worker)
	if err != nil {
		t.Fatalf("earnings failed: %v", err)
	}

	if len(summary.Payments) != 2 {
		t.Errorf("payments = %d, want 2", len(summary.Payments))
	}
	if !summary.TotalEarned.Equal(money(t, "90")) {
		t.Errorf("totalEarned = %s, want 90", summary.TotalEarned)
	}
	if !summary.TotalPending.Equal(money(t, "90")) {
		t.Errorf("totalPending = %s, want 90", summary.TotalPending)
	}
	if !summary.TotalEarnings.Equal(money(t, "90")) {
		t.Errorf("totalEarnings = %s, want 90", summary.TotalEarnings)
	}
	if summary.CompletedTasks != 2 {
		t.Errorf("completedTasks = %d, want 2", summary.CompletedTasks)
	}
}
