package bidding

import (
	"context"
	"fmt"
	"time"

	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
	"bid4service/internal/notify"
	"bid4service/internal/repository"
	"bid4service/utils"
)

// BiddingService owns the job and bid lifecycles up to acceptance. Acceptance
// itself is the orchestrator's compound transaction.
type BiddingService struct {
	store    repository.LedgerStore
	notifier notify.Notifier
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(store repository.LedgerStore, notifier notify.Notifier) *BiddingService {
	return &BiddingService{
		store:    store,
		notifier: notifier,
	}
}

// BidPatch is a typed partial update for a pending bid. Nil fields are left
// untouched.
type BidPatch struct {
	Amount                *float64
	Proposal              *string
	ProposedStartDate     *time.Time
	EstimatedDurationDays *int
}

// CreateJob posts a new work request in OPEN status.
func (s *BiddingService) CreateJob(ctx context.Context, customerID, title, description string, startingBid float64, maxBudget *float64) (models.Job, error) {
	if customerID == "" || title == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing customerID or title", marketerrors.ErrValidation)
	}
	if startingBid <= 0 {
		return models.Job{}, fmt.Errorf("service: %w - starting bid must be positive", marketerrors.ErrValidation)
	}
	if maxBudget != nil && *maxBudget < startingBid {
		return models.Job{}, fmt.Errorf("service: %w - max budget below starting bid", marketerrors.ErrValidation)
	}

	job := models.Job{
		ID:          utils.GenerateID(),
		CustomerID:  customerID,
		Title:       title,
		Description: description,
		Status:      models.JobOpen,
		StartingBid: startingBid,
		MaxBudget:   maxBudget,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateJob(ctx, &job); err != nil {
		return models.Job{}, fmt.Errorf("service: failed to create job for customer %s: %w", customerID, err)
	}
	return job, nil
}

// GetJob returns a job by id.
func (s *BiddingService) GetJob(ctx context.Context, jobID string) (models.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to get job %s: %w", jobID, err)
	}
	return *job, nil
}

// ListOpenJobs returns jobs still accepting bids, newest first.
func (s *BiddingService) ListOpenJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	jobs, err := s.store.ListOpenJobs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open jobs: %w", err)
	}
	return jobs, nil
}

// CancelJob moves a non-terminal job to CANCELLED. Owner or admin only.
func (s *BiddingService) CancelJob(ctx context.Context, jobID, callerID string, isAdmin bool) (models.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to get job %s: %w", jobID, err)
	}
	if job.CustomerID != callerID && !isAdmin {
		return models.Job{}, fmt.Errorf("service: %w - only the job owner may cancel", marketerrors.ErrForbidden)
	}
	if job.Status == models.JobCompleted || job.Status == models.JobCancelled {
		return models.Job{}, fmt.Errorf("service: %w - job %s is already %s", marketerrors.ErrConflict, jobID, job.Status)
	}
	job.Status = models.JobCancelled
	// The accepted-bid pointer only has meaning for awarded statuses.
	job.AcceptedBidID = nil
	if err := s.store.UpdateJob(ctx, job); err != nil {
		return models.Job{}, fmt.Errorf("service: failed to cancel job %s: %w", jobID, err)
	}
	return *job, nil
}

// SubmitBid records a provider's offer on a job. The first bid moves the job
// from OPEN to IN_BIDDING.
func (s *BiddingService) SubmitBid(ctx context.Context, jobID, providerID string, amount float64, proposal string, proposedStart *time.Time, estimatedDays *int) (models.Bid, error) {
	if jobID == "" || providerID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing jobID or providerID", marketerrors.ErrValidation)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrValidation)
	}
	if proposal == "" {
		return models.Bid{}, fmt.Errorf("service: %w - proposal is required", marketerrors.ErrValidation)
	}
	if estimatedDays != nil && *estimatedDays <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - estimated duration must be positive", marketerrors.ErrValidation)
	}

	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get job %s: %w", jobID, err)
	}
	if job.CustomerID == providerID {
		return models.Bid{}, fmt.Errorf("service: %w - cannot bid on own job", marketerrors.ErrForbidden)
	}
	if job.Status != models.JobOpen && job.Status != models.JobInBidding {
		return models.Bid{}, fmt.Errorf("service: %w - job %s is %s", marketerrors.ErrJobNotBiddable, jobID, job.Status)
	}

	exists, err := s.store.HasLiveBid(ctx, jobID, providerID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}
	if exists {
		return models.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrDuplicateBid)
	}

	bid := models.Bid{
		ID:                    utils.GenerateID(),
		JobID:                 jobID,
		ProviderID:            providerID,
		Amount:                amount,
		Proposal:              proposal,
		Status:                models.BidPending,
		ProposedStartDate:     proposedStart,
		EstimatedDurationDays: estimatedDays,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.store.CreateBid(ctx, &bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on job %s by provider %s: %w", jobID, providerID, err)
	}

	// First-bid transition; idempotent thereafter.
	if job.Status == models.JobOpen {
		job.Status = models.JobInBidding
		if err := s.store.UpdateJob(ctx, job); err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to move job %s into bidding: %w", jobID, err)
		}
	}

	s.notifier.Notify(job.CustomerID, notify.EventBidReceived, map[string]any{
		"job_id": jobID,
		"bid_id": bid.ID,
		"amount": amount,
	})
	return bid, nil
}

// UpdateBid applies a typed patch to a pending bid and resets the customer
// read receipt.
func (s *BiddingService) UpdateBid(ctx context.Context, bidID, providerID string, patch BidPatch) (models.Bid, error) {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.ProviderID != providerID {
		return models.Bid{}, fmt.Errorf("service: %w - bid belongs to another provider", marketerrors.ErrForbidden)
	}
	if bid.Status != models.BidPending {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s is %s", marketerrors.ErrBidNotPending, bidID, bid.Status)
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrValidation)
		}
		bid.Amount = *patch.Amount
	}
	if patch.Proposal != nil {
		if *patch.Proposal == "" {
			return models.Bid{}, fmt.Errorf("service: %w - proposal cannot be emptied", marketerrors.ErrValidation)
		}
		bid.Proposal = *patch.Proposal
	}
	if patch.ProposedStartDate != nil {
		bid.ProposedStartDate = patch.ProposedStartDate
	}
	if patch.EstimatedDurationDays != nil {
		if *patch.EstimatedDurationDays <= 0 {
			return models.Bid{}, fmt.Errorf("service: %w - estimated duration must be positive", marketerrors.ErrValidation)
		}
		bid.EstimatedDurationDays = patch.EstimatedDurationDays
	}
	bid.ViewedByCustomer = false

	if err := s.store.UpdateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return *bid, nil
}

// WithdrawBid moves the provider's pending bid to WITHDRAWN.
func (s *BiddingService) WithdrawBid(ctx context.Context, bidID, providerID string) (models.Bid, error) {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.ProviderID != providerID {
		return models.Bid{}, fmt.Errorf("service: %w - bid belongs to another provider", marketerrors.ErrForbidden)
	}
	if bid.Status != models.BidPending {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s is %s", marketerrors.ErrBidNotPending, bidID, bid.Status)
	}
	bid.Status = models.BidWithdrawn
	if err := s.store.UpdateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to withdraw bid %s: %w", bidID, err)
	}
	return *bid, nil
}

// RejectBid moves a single pending bid to REJECTED. Job owner only; sibling
// bids are untouched.
func (s *BiddingService) RejectBid(ctx context.Context, bidID, customerID string) (models.Bid, error) {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	job, err := s.store.GetJob(ctx, bid.JobID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get job %s: %w", bid.JobID, err)
	}
	if job.CustomerID != customerID {
		return models.Bid{}, fmt.Errorf("service: %w - only the job owner may reject bids", marketerrors.ErrForbidden)
	}
	if bid.Status != models.BidPending {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s is %s", marketerrors.ErrBidNotPending, bidID, bid.Status)
	}
	bid.Status = models.BidRejected
	if err := s.store.UpdateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to reject bid %s: %w", bidID, err)
	}

	s.notifier.Notify(bid.ProviderID, notify.EventBidRejected, map[string]any{
		"job_id": bid.JobID,
		"bid_id": bid.ID,
	})
	return *bid, nil
}

// MarkBidViewed sets the customer read receipt on a bid.
func (s *BiddingService) MarkBidViewed(ctx context.Context, bidID, customerID string) (models.Bid, error) {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	job, err := s.store.GetJob(ctx, bid.JobID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get job %s: %w", bid.JobID, err)
	}
	if job.CustomerID != customerID {
		return models.Bid{}, fmt.Errorf("service: %w - only the job owner may view bids", marketerrors.ErrForbidden)
	}
	if !bid.ViewedByCustomer {
		bid.ViewedByCustomer = true
		if err := s.store.UpdateBid(ctx, bid); err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to mark bid %s viewed: %w", bidID, err)
		}
	}
	return *bid, nil
}

// ListJobBids returns all bids on a job. Job owner sees everything; a
// provider sees the list only if they have bid on the job themselves.
func (s *BiddingService) ListJobBids(ctx context.Context, jobID, callerID string, isAdmin bool) ([]models.Bid, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get job %s: %w", jobID, err)
	}
	if job.CustomerID != callerID && !isAdmin {
		hasBid, err := s.store.HasLiveBid(ctx, jobID, callerID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to check caller bid: %w", err)
		}
		if !hasBid {
			return nil, fmt.Errorf("service: %w - caller is not involved with job %s", marketerrors.ErrForbidden, jobID)
		}
	}
	bids, err := s.store.ListBidsForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for job %s: %w", jobID, err)
	}
	return bids, nil
}

// ListProviderBids returns a provider's own bids, newest first.
func (s *BiddingService) ListProviderBids(ctx context.Context, providerID, callerID string, isAdmin bool) ([]models.Bid, error) {
	if providerID != callerID && !isAdmin {
		return nil, fmt.Errorf("service: %w - cannot list another provider's bids", marketerrors.ErrForbidden)
	}
	bids, err := s.store.ListBidsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for provider %s: %w", providerID, err)
	}
	return bids, nil
}
