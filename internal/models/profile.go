package model

import (
	"time"

	"github.com/shopspring/decimal"

	"microtask-market.com/microtask-market/internal/constants"
)

type WorkerProfile struct {
	ID                 string                       `gorm:"primaryKey;size:36" json:"id"`
	UserID             string                       `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	Skills             StringList                   `gorm:"type:text" json:"skills"`
	PortfolioLinks     PortfolioLinkList            `gorm:"type:text" json:"portfolio_links"`
	Bio                string                       `json:"bio"`
	AvailabilityStatus constants.AvailabilityStatus `gorm:"type:varchar(20);not null;default:available" json:"availability_status"`
	CompletedTasks     int                          `gorm:"not null;default:0" json:"completed_tasks"`
	Rating             decimal.Decimal              `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalRatings       int                          `gorm:"not null;default:0" json:"total_ratings"`
	TotalEarnings      decimal.Decimal              `gorm:"type:decimal(14,2);not null;default:0" json:"total_earnings"`
	CreatedAt          time.Time                    `json:"created_at"`
}

type CompanyProfile struct {
	ID                 string                       `gorm:"primaryKey;size:36" json:"id"`
	UserID             string                       `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	CompanyName        string                       `gorm:"not null" json:"company_name"`
	Domain             string                       `json:"domain"`
	Logo               string                       `json:"logo,omitempty"`
	Description        string                       `json:"description"`
	VerificationStatus constants.VerificationStatus `gorm:"type:varchar(20);not null;default:pending" json:"verification_status"`
	Rating             decimal.Decimal              `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalRatings       int                          `gorm:"not null;default:0" json:"total_ratings"`
	CreatedAt          time.Time                    `json:"created_at"`
}
