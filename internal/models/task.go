package model

import (
	"time"

	"github.com/shopspring/decimal"

	"microtask-market.com/microtask-market/internal/constants"
)

type Task struct {
	ID              string               `gorm:"primaryKey;size:36" json:"id"`
	CompanyID       string               `gorm:"size:36;not null;index" json:"company_id"`
	Title           string               `gorm:"not null" json:"title"`
	Description     string               `gorm:"not null" json:"description"`
	RequiredSkills  StringList           `gorm:"type:text" json:"required_skills"`
	Category        string               `gorm:"not null;default:General" json:"category"`
	Duration        int                  `gorm:"not null;default:1" json:"duration"`
	PaymentAmount   decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"payment_amount"`
	Deadline        time.Time            `gorm:"not null" json:"deadline"`
	NumberOfWorkers int                  `gorm:"not null;default:1" json:"number_of_workers"`
	AssignedWorkers StringList           `gorm:"type:text" json:"assigned_workers"`
	Status          constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	Version         uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
