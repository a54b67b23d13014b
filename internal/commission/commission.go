package commission

import (
	"github.com/shopspring/decimal"

	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

// CurrencyPrecision is the number of decimal places every monetary
// amount is settled to.
const CurrencyPrecision = 2

var hundred = decimal.NewFromInt(100)

// Compute derives the platform fee and worker payout for an amount at a
// commission percentage. The fee is rounded to currency precision and
// the payout is the remainder, so fee + payout always equals amount.
func Compute(amount, percent decimal.Decimal) (fee, payout decimal.Decimal, err error) {
	if amount.IsNegative() {
		return decimal.Zero, decimal.Zero, apperrors.InvalidArgument("payment amount must not be negative")
	}
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, decimal.Zero, apperrors.InvalidArgument("commission percent must be between 0 and 100")
	}

	fee = amount.Mul(percent).Div(hundred).Round(CurrencyPrecision)
	payout = amount.Sub(fee)
	return fee, payout, nil
}

// Apply recomputes the derived fields on a payment. Callers invoke it
// immediately before persisting a payment whose amount or commission
// changed, keeping the stored values in step with their inputs.
func Apply(p *model.Payment) error {
	fee, payout, err := Compute(p.Amount, p.PlatformCommission)
	if err != nil {
		return err
	}

	p.PlatformFee = fee
	p.WorkerPayout = payout
	return nil
}
