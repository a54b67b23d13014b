package policy

import (
	"testing"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

func TestRequireRole(t *testing.T) {
	company := model.Actor{ID: "c1", Role: constants.RoleCompany, Status: constants.UserStatusActive}

	if err := RequireRole(company, constants.RoleCompany); err != nil {
		t.Errorf("matching role should pass, got %v", err)
	}

	if err := RequireRole(company, constants.RoleAdmin); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("mismatched role should be forbidden, got %v", err)
	}

	blocked := model.Actor{ID: "c2", Role: constants.RoleCompany, Status: constants.UserStatusBlocked}
	if err := RequireRole(blocked, constants.RoleCompany); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("blocked actor should be forbidden, got %v", err)
	}
}

func TestRequireOwnership(t *testing.T) {
	actor := model.Actor{ID: "owner", Role: constants.RoleCompany, Status: constants.UserStatusActive}

	if err := RequireOwnership(actor, "owner"); err != nil {
		t.Errorf("owner should pass, got %v", err)
	}
	if err := RequireOwnership(actor, "other"); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("non-owner should be forbidden, got %v", err)
	}
}

func TestRequireTaskStatus(t *testing.T) {
	task := &model.Task{Status: constants.TaskStatusOpen}

	if err := RequireTaskStatus(task, constants.TaskStatusOpen, constants.TaskStatusAssigned); err != nil {
		t.Errorf("allowed status should pass, got %v", err)
	}

	err := RequireTaskStatus(task, constants.TaskStatusPendingApproval)
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("disallowed status should be an invalid transition, got %v", err)
	}
}

func TestRequireApplicationStatus(t *testing.T) {
	app := &model.Application{Status: constants.ApplicationStatusAccepted}

	err := RequireApplicationStatus(app, constants.ApplicationStatusApplied)
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("accepted application should fail the applied check, got %v", err)
	}
}

func TestRequirePaymentStatus(t *testing.T) {
	payment := &model.Payment{Status: constants.PaymentStatusConfirmed}

	err := RequirePaymentStatus(payment, constants.PaymentStatusPending)
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("confirmed payment should fail the pending check, got %v", err)
	}
}

func TestRequireSubmissionStatus(t *testing.T) {
	sub := &model.Submission{ReviewStatus: constants.ReviewStatusPending}

	if err := RequireSubmissionStatus(sub, constants.ReviewStatusPending, constants.ReviewStatusRevisionRequested); err != nil {
		t.Errorf("pending should pass, got %v", err)
	}

	sub.ReviewStatus = constants.ReviewStatusAccepted
	if err := RequireSubmissionStatus(sub, constants.ReviewStatusPending, constants.ReviewStatusRevisionRequested); !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("accepted should be an invalid transition, got %v", err)
	}
}
