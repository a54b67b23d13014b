package constants

type TaskStatus string

const (
	TaskStatusDraft           TaskStatus = "draft"
	TaskStatusPendingApproval TaskStatus = "pendingApproval"
	TaskStatusOpen            TaskStatus = "open"
	TaskStatusAssigned        TaskStatus = "assigned"
	TaskStatusSubmitted       TaskStatus = "submitted"
	TaskStatusCompleted       TaskStatus = "completed"
	TaskStatusRejected        TaskStatus = "rejected"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "applied"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type ReviewStatus string

const (
	ReviewStatusPending           ReviewStatus = "pending"
	ReviewStatusRevisionRequested ReviewStatus = "revisionRequested"
	ReviewStatusAccepted          ReviewStatus = "accepted"
	ReviewStatusRejected          ReviewStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusDisputed  PaymentStatus = "disputed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// EscrowStatus is reserved for held-funds tracking; no workflow
// transition drives it yet.
type EscrowStatus string

const (
	EscrowStatusNone     EscrowStatus = "none"
	EscrowStatusHeld     EscrowStatus = "held"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusRefunded EscrowStatus = "refunded"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleWorker  Role = "worker"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

const (
	MinTaskDurationDays = 1
	MaxTaskDurationDays = 3
)
