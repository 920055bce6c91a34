package models

import "time"

// User roles as resolved by the external auth service.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// JobStatus represents a state in the job lifecycle.
type JobStatus string

const (
	JobOpen            JobStatus = "OPEN"
	JobInBidding       JobStatus = "IN_BIDDING"
	JobBidAccepted     JobStatus = "BID_ACCEPTED"
	JobInProgress      JobStatus = "IN_PROGRESS"
	JobPendingApproval JobStatus = "PENDING_APPROVAL"
	JobCompleted       JobStatus = "COMPLETED"
	JobCancelled       JobStatus = "CANCELLED"
)

// BidStatus represents a state in the bid lifecycle.
type BidStatus string

const (
	BidPending   BidStatus = "PENDING"
	BidAccepted  BidStatus = "ACCEPTED"
	BidRejected  BidStatus = "REJECTED"
	BidWithdrawn BidStatus = "WITHDRAWN"
)

// ProjectStatus represents a state in the project lifecycle.
type ProjectStatus string

const (
	ProjectPendingFunding  ProjectStatus = "PENDING_FUNDING"
	ProjectInProgress      ProjectStatus = "IN_PROGRESS"
	ProjectPendingApproval ProjectStatus = "PENDING_APPROVAL"
	ProjectCompleted       ProjectStatus = "COMPLETED"
	ProjectCancelled       ProjectStatus = "CANCELLED"
)

// MilestoneStatus represents a state in the milestone lifecycle.
type MilestoneStatus string

const (
	MilestonePending         MilestoneStatus = "PENDING"
	MilestoneInProgress      MilestoneStatus = "IN_PROGRESS"
	MilestonePendingApproval MilestoneStatus = "PENDING_APPROVAL"
	MilestoneApproved        MilestoneStatus = "APPROVED"
	MilestoneRejected        MilestoneStatus = "REJECTED"
)

// PaymentType classifies a ledger row.
type PaymentType string

const (
	PaymentDeposit   PaymentType = "DEPOSIT"
	PaymentMilestone PaymentType = "MILESTONE"
	PaymentFinal     PaymentType = "FINAL"
	PaymentRefund    PaymentType = "REFUND"
)

// PaymentStatus represents a state in the payment lifecycle.
type PaymentStatus string

const (
	PaymentAuthorized   PaymentStatus = "AUTHORIZED"
	PaymentHeldInEscrow PaymentStatus = "HELD_IN_ESCROW"
	PaymentReleased     PaymentStatus = "RELEASED"
	PaymentRefunded     PaymentStatus = "REFUNDED"
)

// User holds the role and running statistics for a marketplace participant.
// Profile data lives in the external user service; this row only carries what
// the payment pipeline updates.
type User struct {
	ID                     string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role                   string    `gorm:"size:16;index" json:"role"`
	TotalSpent             float64   `gorm:"not null;default:0" json:"total_spent"`
	TotalEarned            float64   `gorm:"not null;default:0" json:"total_earned"`
	TotalProjectsCompleted int       `gorm:"not null;default:0" json:"total_projects_completed"`
	BidsWon                int       `gorm:"not null;default:0" json:"bids_won"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Job is a posted work request open for provider bids.
type Job struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"job_id"`
	CustomerID    string    `gorm:"type:uuid;not null;index" json:"customer_id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Status        JobStatus `gorm:"size:32;not null;index" json:"status"`
	StartingBid   float64   `gorm:"not null" json:"starting_bid"`
	MaxBudget     *float64  `json:"max_budget,omitempty"`
	AcceptedBidID *string   `gorm:"type:uuid" json:"accepted_bid_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Bid is a provider's priced offer against a job. A provider holds at most
// one live (non-withdrawn) bid per job, enforced by the partial unique index.
type Bid struct {
	ID                    string     `gorm:"type:uuid;primaryKey" json:"bid_id"`
	JobID                 string     `gorm:"type:uuid;not null;index;uniqueIndex:idx_live_bid,where:status <> 'WITHDRAWN'" json:"job_id"`
	ProviderID            string     `gorm:"type:uuid;not null;uniqueIndex:idx_live_bid,where:status <> 'WITHDRAWN'" json:"provider_id"`
	Amount                float64    `gorm:"not null" json:"amount"`
	Proposal              string     `gorm:"type:text;not null" json:"proposal"`
	Status                BidStatus  `gorm:"size:16;not null;index" json:"status"`
	ProposedStartDate     *time.Time `json:"proposed_start_date,omitempty"`
	EstimatedDurationDays *int       `json:"estimated_duration_days,omitempty"`
	ViewedByCustomer      bool       `gorm:"not null;default:false" json:"viewed_by_customer"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// Project is the contractual engagement formed once a bid is accepted.
// AgreedAmount is copied from the accepted bid and never changes afterwards.
type Project struct {
	ID               string        `gorm:"type:uuid;primaryKey" json:"project_id"`
	JobID            string        `gorm:"type:uuid;not null;uniqueIndex" json:"job_id"`
	CustomerID       string        `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID       string        `gorm:"type:uuid;not null;index" json:"provider_id"`
	AgreedAmount     float64       `gorm:"not null" json:"agreed_amount"`
	Status           ProjectStatus `gorm:"size:32;not null;index" json:"status"`
	StartDate        *time.Time    `json:"start_date,omitempty"`
	EstimatedEndDate *time.Time    `json:"estimated_end_date,omitempty"`
	ActualEndDate    *time.Time    `json:"actual_end_date,omitempty"`
	CompletedAt      *time.Time    `json:"completed_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Milestone is a partial, separately payable deliverable within a project.
// PaymentID is a one-way, one-time assignment set when the milestone payment
// is released.
type Milestone struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"milestone_id"`
	ProjectID       string          `gorm:"type:uuid;not null;index" json:"project_id"`
	Title           string          `gorm:"size:200;not null" json:"title"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Order           int             `gorm:"column:sequence;not null" json:"order"`
	Status          MilestoneStatus `gorm:"size:32;not null;index" json:"status"`
	CompletionNote  string          `gorm:"type:text" json:"completion_note,omitempty"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	PaymentID       *string         `gorm:"type:uuid" json:"payment_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Payment is an append-only financial event record. A refund is a new row of
// type REFUND; the only mutation ever applied to an existing row is marking
// it REFUNDED. At most one live deposit may exist per project, enforced by
// the partial unique index.
type Payment struct {
	ID                string        `gorm:"type:uuid;primaryKey" json:"payment_id"`
	ProjectID         string        `gorm:"type:uuid;not null;index;uniqueIndex:idx_live_deposit,where:type = 'DEPOSIT' AND status IN ('AUTHORIZED','HELD_IN_ESCROW')" json:"project_id"`
	UserID            string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount            float64       `gorm:"not null" json:"amount"`
	Type              PaymentType   `gorm:"size:16;not null" json:"type"`
	Status            PaymentStatus `gorm:"size:32;not null;index" json:"status"`
	ExternalReference string        `gorm:"size:128" json:"external_reference"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// EscrowBalance is the aggregated ledger view for a project. Running totals
// are computed from payment rows, never stored as a decremented balance.
type EscrowBalance struct {
	ProjectID    string  `json:"project_id"`
	AgreedAmount float64 `json:"agreed_amount"`
	Held         float64 `json:"held"`
	Released     float64 `json:"released"`
	Refunded     float64 `json:"refunded"`
	Remaining    float64 `json:"remaining"`
}
