package model

import (
	"time"

	"microtask-market.com/microtask-market/internal/constants"
)

// Submission is a worker's delivered work for an assigned task. At most
// one exists per (task, worker); resubmission appends to Files.
type Submission struct {
	ID            string                 `gorm:"primaryKey;size:36" json:"id"`
	TaskID        string                 `gorm:"size:36;not null;uniqueIndex:idx_sub_task_worker" json:"task_id"`
	WorkerID      string                 `gorm:"size:36;not null;uniqueIndex:idx_sub_task_worker" json:"worker_id"`
	Files         FileList               `gorm:"type:text" json:"files"`
	Description   string                 `json:"description"`
	SubmittedAt   time.Time              `gorm:"not null" json:"submitted_at"`
	ReviewStatus  constants.ReviewStatus `gorm:"type:varchar(20);not null" json:"review_status"`
	ReviewNotes   string                 `json:"review_notes,omitempty"`
	RevisionCount int                    `gorm:"not null;default:0" json:"revision_count"`
	CreatedAt     time.Time              `json:"created_at"`
}
