package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"microtask-market.com/microtask-market/internal/commission"
	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
	"microtask-market.com/microtask-market/internal/policy"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

// PaymentService confirms manually-settled payments and answers the
// earnings queries. Disputed and refunded exist in the status enum but
// no workflow transition reaches them; they are administratively set.
type PaymentService struct {
	payments *repository.PaymentRepository
	profiles *repository.ProfileRepository
}

func NewPaymentService(payments *repository.PaymentRepository, profiles *repository.ProfileRepository) *PaymentService {
	return &PaymentService{payments: payments, profiles: profiles}
}

// EarningsSummary aggregates a worker's payment history.
type EarningsSummary struct {
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	CompletedTasks int             `json:"completed_tasks"`
	Payments       []model.Payment `json:"payments"`
}

// Confirm settles a pending payment. Confirmation is one-way: there is
// no unconfirm. The worker's lifetime earnings grow by the payout as a
// follow-up write.
func (s *PaymentService) Confirm(ctx context.Context, actor model.Actor, paymentID, proof, transactionID string) (*model.Payment, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireOwnership(actor, payment.CompanyID); err != nil {
		return nil, err
	}
	if err := policy.RequirePaymentStatus(payment, constants.PaymentStatusPending); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment.Status = constants.PaymentStatusConfirmed
	payment.ConfirmedAt = &now
	if proof != "" {
		payment.Proof = proof
	}
	if transactionID != "" {
		payment.TransactionID = transactionID
	}

	// Derived fields are never persisted stale.
	if err := commission.Apply(payment); err != nil {
		return nil, err
	}

	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindWorkerByUserID(ctx, payment.WorkerID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return payment, nil
		}
		return nil, err
	}

	profile.TotalEarnings = profile.TotalEarnings.Add(payment.WorkerPayout)
	if err := s.profiles.SaveWorker(ctx, profile); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListForCompany returns the company's payments, optionally by status.
func (s *PaymentService) ListForCompany(ctx context.Context, actor model.Actor, status constants.PaymentStatus) ([]model.Payment, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}
	return s.payments.ListByCompany(ctx, actor.ID, status)
}

// ListAll is the admin payment oversight view.
func (s *PaymentService) ListAll(ctx context.Context, actor model.Actor, status constants.PaymentStatus) ([]model.Payment, error) {
	if err := policy.RequireRole(actor, constants.RoleAdmin); err != nil {
		return nil, err
	}
	return s.payments.List(ctx, status)
}

// Earnings summarizes the worker's payouts: pending and confirmed
// totals from the payment records plus the lifetime counter on the
// profile.
func (s *PaymentService) Earnings(ctx context.Context, actor model.Actor) (*EarningsSummary, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByWorker(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	summary := &EarningsSummary{
		TotalEarnings: decimal.Zero,
		TotalPending:  decimal.Zero,
		TotalEarned:   decimal.Zero,
		Payments:      payments,
	}

	for _, p := range payments {
		switch p.Status {
		case constants.PaymentStatusPending:
			summary.TotalPending = summary.TotalPending.Add(p.WorkerPayout)
		case constants.PaymentStatusConfirmed:
			summary.TotalEarned = summary.TotalEarned.Add(p.WorkerPayout)
		}
	}

	profile, err := s.profiles.FindWorkerByUserID(ctx, actor.ID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return summary, nil
		}
		return nil, err
	}

	summary.TotalEarnings = profile.TotalEarnings
	summary.CompletedTasks = profile.CompletedTasks
	return summary, nil
}
