package helpers

import "time"

// Request DTOs
type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	StartingBid float64  `json:"starting_bid" binding:"required,gt=0"`
	MaxBudget   *float64 `json:"max_budget"`
}

type SubmitBidRequest struct {
	Amount                float64    `json:"amount" binding:"required,gt=0"`
	Proposal              string     `json:"proposal" binding:"required"`
	ProposedStartDate     *time.Time `json:"proposed_start_date"`
	EstimatedDurationDays *int       `json:"estimated_duration_days"`
}

type UpdateBidRequest struct {
	Amount                *float64   `json:"amount"`
	Proposal              *string    `json:"proposal"`
	ProposedStartDate     *time.Time `json:"proposed_start_date"`
	EstimatedDurationDays *int       `json:"estimated_duration_days"`
}

type CreateMilestoneRequest struct {
	Title  string  `json:"title" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Order  int     `json:"order"`
}

type CompleteMilestoneRequest struct {
	Note string `json:"note"`
}

type RejectMilestoneRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type FundEscrowRequest struct {
	ProjectID        string `json:"project_id" binding:"required"`
	PaymentMethodRef string `json:"payment_method_ref" binding:"required"`
}

type ReleaseMilestoneRequest struct {
	MilestoneID string `json:"milestone_id" binding:"required"`
}

type ReleaseFinalRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

type RefundRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}
