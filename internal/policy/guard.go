package policy

import (
	"fmt"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

// The guard centralizes the role, ownership, and status checks every
// lifecycle operation runs before mutating anything.

func RequireRole(actor model.Actor, role constants.Role) error {
	if actor.Role != role {
		return apperrors.Forbidden(fmt.Sprintf("operation requires the %s role", role))
	}
	if actor.Status == constants.UserStatusBlocked {
		return apperrors.Forbidden("account is blocked")
	}
	return nil
}

func RequireOwnership(actor model.Actor, resourceOwnerID string) error {
	if actor.ID != resourceOwnerID {
		return apperrors.Forbidden("not authorized for this resource")
	}
	return nil
}

func RequireTaskStatus(task *model.Task, allowed ...constants.TaskStatus) error {
	for _, s := range allowed {
		if task.Status == s {
			return nil
		}
	}
	return apperrors.InvalidTransition(fmt.Sprintf("task status %s does not permit this operation", task.Status))
}

func RequireApplicationStatus(app *model.Application, allowed ...constants.ApplicationStatus) error {
	for _, s := range allowed {
		if app.Status == s {
			return nil
		}
	}
	return apperrors.InvalidTransition(fmt.Sprintf("application status %s does not permit this operation", app.Status))
}

func RequireSubmissionStatus(sub *model.Submission, allowed ...constants.ReviewStatus) error {
	for _, s := range allowed {
		if sub.ReviewStatus == s {
			return nil
		}
	}
	return apperrors.InvalidTransition(fmt.Sprintf("review status %s does not permit this operation", sub.ReviewStatus))
}

func RequirePaymentStatus(payment *model.Payment, allowed ...constants.PaymentStatus) error {
	for _, s := range allowed {
		if payment.Status == s {
			return nil
		}
	}
	return apperrors.InvalidTransition(fmt.Sprintf("payment status %s does not permit this operation", payment.Status))
}
