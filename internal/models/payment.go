package model

import (
	"time"

	"github.com/shopspring/decimal"

	"microtask-market.com/microtask-market/internal/constants"
)

// Payment reconciles a completed task between company and worker.
// PlatformFee and WorkerPayout are derived from Amount and
// PlatformCommission and must be recomputed before every persistence
// that changes either input.
type Payment struct {
	ID                 string                  `gorm:"primaryKey;size:36" json:"id"`
	TaskID             string                  `gorm:"size:36;not null;index" json:"task_id"`
	WorkerID           string                  `gorm:"size:36;not null;index" json:"worker_id"`
	CompanyID          string                  `gorm:"size:36;not null;index" json:"company_id"`
	Amount             decimal.Decimal         `gorm:"type:decimal(12,2);not null" json:"amount"`
	PlatformCommission decimal.Decimal         `gorm:"type:decimal(5,2);not null" json:"platform_commission"`
	PlatformFee        decimal.Decimal         `gorm:"type:decimal(12,2);not null" json:"platform_fee"`
	WorkerPayout       decimal.Decimal         `gorm:"type:decimal(12,2);not null" json:"worker_payout"`
	Status             constants.PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Proof              string                  `json:"proof,omitempty"`
	TransactionID      string                  `json:"transaction_id,omitempty"`
	PaymentMethod      string                  `gorm:"not null;default:manual" json:"payment_method"`
	EscrowStatus       constants.EscrowStatus  `gorm:"type:varchar(20);not null;default:none" json:"escrow_status"`
	CreatedAt          time.Time               `json:"created_at"`
	ConfirmedAt        *time.Time              `json:"confirmed_at,omitempty"`
}
