package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTaskRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	RequiredSkills  []string        `json:"required_skills"`
	Category        string          `json:"category"`
	Duration        int             `json:"duration"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	Deadline        time.Time       `json:"deadline"`
	NumberOfWorkers int             `json:"number_of_workers"`
}

// UpdateTaskRequest carries only the fields the caller wants changed;
// absent fields stay nil and are not applied.
type UpdateTaskRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	RequiredSkills  []string         `json:"required_skills"`
	Category        *string          `json:"category"`
	Duration        *int             `json:"duration"`
	PaymentAmount   *decimal.Decimal `json:"payment_amount"`
	Deadline        *time.Time       `json:"deadline"`
	NumberOfWorkers *int             `json:"number_of_workers"`
}

type RejectTaskRequest struct {
	Reason string `json:"reason"`
}

type VerifyCompanyRequest struct {
	VerificationStatus string `json:"verification_status"`
}

type ApplyRequest struct {
	Proposal             string `json:"proposal"`
	ExpectedDeliveryTime string `json:"expected_delivery_time"`
	Attachment           string `json:"attachment"`
}

type SubmissionFileRequest struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type SubmitWorkRequest struct {
	Description string                  `json:"description"`
	Files       []SubmissionFileRequest `json:"files"`
}

type ReviewSubmissionRequest struct {
	ReviewStatus string `json:"review_status"`
	ReviewNotes  string `json:"review_notes"`
}

type ConfirmPaymentRequest struct {
	Proof         string `json:"proof"`
	TransactionID string `json:"transaction_id"`
}

type PortfolioLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type UpdateWorkerProfileRequest struct {
	Skills             []string               `json:"skills"`
	PortfolioLinks     []PortfolioLinkRequest `json:"portfolio_links"`
	Bio                *string                `json:"bio"`
	AvailabilityStatus *string                `json:"availability_status"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"company_name"`
	Domain      *string `json:"domain"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
}
