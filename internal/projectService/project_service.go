package project

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

// ProjectService owns the post-acceptance lifecycle: milestones, approval
// cycles, and project status transitions.
type ProjectService struct {
	store    repository.LedgerStore
	notifier notify.Notifier
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(store repository.LedgerStore, notifier notify.Notifier) *ProjectService {
	return &ProjectService{
		store:    store,
		notifier: notifier,
	}
}

// EnterInProgress moves a project into IN_PROGRESS, setting StartDate only if
// it is unset. Re-entering the same status is a conflict.
func EnterInProgress(p *models.Project, now time.Time) error {
	if p.Status == models.ProjectInProgress {
		return fmt.Errorf("%w: project already in progress", marketerrors.ErrConflict)
	}
	if p.Status != models.ProjectPendingFunding {
		return fmt.Errorf("%w: project is %s", marketerrors.ErrConflict, p.Status)
	}
	p.Status = models.ProjectInProgress
	if p.StartDate == nil {
		p.StartDate = &now
	}
	return nil
}

// EnterCompleted moves a project into COMPLETED, setting ActualEndDate and
// CompletedAt only if unset.
func EnterCompleted(p *models.Project, now time.Time) error {
	if p.Status != models.ProjectPendingApproval {
		return fmt.Errorf("%w: project is %s", marketerrors.ErrConflict, p.Status)
	}
	p.Status = models.ProjectCompleted
	if p.ActualEndDate == nil {
		p.ActualEndDate = &now
	}
	if p.CompletedAt == nil {
		p.CompletedAt = &now
	}
	return nil
}

func (s *ProjectService) involved(p *models.Project, callerID string) bool {
	return p.CustomerID == callerID || p.ProviderID == callerID
}

// GetProject returns a project to an involved party or an admin.
func (s *ProjectService) GetProject(ctx context.Context, projectID, callerID string, isAdmin bool) (models.Project, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if !s.involved(p, callerID) && !isAdmin {
		return models.Project{}, fmt.Errorf("service: %w - caller is not involved with project %s", marketerrors.ErrForbidden, projectID)
	}
	return *p, nil
}

// CreateMilestone adds a payable deliverable. The sum of non-rejected
// milestone amounts may not exceed the agreed contract amount.
func (s *ProjectService) CreateMilestone(ctx context.Context, projectID, callerID, title string, amount float64, order int) (models.Milestone, error) {
	if title == "" {
		return models.Milestone{}, fmt.Errorf("service: %w - title is required", marketerrors.ErrValidation)
	}
	if amount <= 0 {
		return models.Milestone{}, fmt.Errorf("service: %w - non-positive milestone amount", marketerrors.ErrValidation)
	}
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if !s.involved(p, callerID) {
		return models.Milestone{}, fmt.Errorf("service: %w - caller is not involved with project %s", marketerrors.ErrForbidden, projectID)
	}
	if p.Status == models.ProjectCompleted || p.Status == models.ProjectCancelled {
		return models.Milestone{}, fmt.Errorf("service: %w - project is %s", marketerrors.ErrConflict, p.Status)
	}

	allocated, err := s.store.SumMilestoneAmounts(ctx, projectID)
	if err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to sum milestone amounts: %w", err)
	}
	if allocated+amount > p.AgreedAmount {
		return models.Milestone{}, fmt.Errorf("service: %w - milestones would total %.2f against agreed %.2f",
			marketerrors.ErrEscrowExceeded, allocated+amount, p.AgreedAmount)
	}

	m := models.Milestone{
		ID:        utils.GenerateID(),
		ProjectID: projectID,
		Title:     title,
		Amount:    amount,
		Order:     order,
		Status:    models.MilestonePending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMilestone(ctx, &m); err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to create milestone on project %s: %w", projectID, err)
	}
	return m, nil
}

// ListMilestones returns a project's milestones in sequence order.
func (s *ProjectService) ListMilestones(ctx context.Context, projectID, callerID string, isAdmin bool) ([]models.Milestone, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if !s.involved(p, callerID) && !isAdmin {
		return nil, fmt.Errorf("service: %w - caller is not involved with project %s", marketerrors.ErrForbidden, projectID)
	}
	milestones, err := s.store.ListMilestones(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list milestones for project %s: %w", projectID, err)
	}
	return milestones, nil
}

func (s *ProjectService) milestoneWithProject(ctx context.Context, milestoneID string) (*models.Milestone, *models.Project, error) {
	m, err := s.store.GetMilestone(ctx, milestoneID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to get milestone %s: %w", milestoneID, err)
	}
	p, err := s.store.GetProject(ctx, m.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to get project %s: %w", m.ProjectID, err)
	}
	return m, p, nil
}

// StartMilestone moves a pending milestone into IN_PROGRESS. Provider only.
func (s *ProjectService) StartMilestone(ctx context.Context, milestoneID, providerID string) (models.Milestone, error) {
	m, p, err := s.milestoneWithProject(ctx, milestoneID)
	if err != nil {
		return models.Milestone{}, err
	}
	if p.ProviderID != providerID {
		return models.Milestone{}, fmt.Errorf("service: %w - only the provider may start a milestone", marketerrors.ErrForbidden)
	}
	if m.Status != models.MilestonePending {
		return models.Milestone{}, fmt.Errorf("service: %w - milestone is %s", marketerrors.ErrConflict, m.Status)
	}
	m.Status = models.MilestoneInProgress
	if err := s.store.UpdateMilestone(ctx, m); err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to start milestone %s: %w", milestoneID, err)
	}
	return *m, nil
}

// CompleteMilestone records delivery evidence and moves the milestone to
// PENDING_APPROVAL. Provider only; allowed from PENDING or IN_PROGRESS.
func (s *ProjectService) CompleteMilestone(ctx context.Context, milestoneID, providerID, note string) (models.Milestone, error) {
	m, p, err := s.milestoneWithProject(ctx, milestoneID)
	if err != nil {
		return models.Milestone{}, err
	}
	if p.ProviderID != providerID {
		return models.Milestone{}, fmt.Errorf("service: %w - only the provider may complete a milestone", marketerrors.ErrForbidden)
	}
	if m.Status != models.MilestonePending && m.Status != models.MilestoneInProgress {
		return models.Milestone{}, fmt.Errorf("service: %w - milestone is %s", marketerrors.ErrConflict, m.Status)
	}
	now := time.Now().UTC()
	m.Status = models.MilestonePendingApproval
	m.CompletionNote = note
	m.CompletedAt = &now
	if err := s.store.UpdateMilestone(ctx, m); err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to complete milestone %s: %w", milestoneID, err)
	}

	s.notifier.Notify(p.CustomerID, notify.EventMilestoneCompleted, map[string]any{
		"project_id":   p.ID,
		"milestone_id": m.ID,
	})
	return *m, nil
}

// ApproveMilestone moves a completed milestone to APPROVED. Customer only.
// Approval unblocks payment release but does not trigger it.
func (s *ProjectService) ApproveMilestone(ctx context.Context, milestoneID, customerID string) (models.Milestone, error) {
	m, p, err := s.milestoneWithProject(ctx, milestoneID)
	if err != nil {
		return models.Milestone{}, err
	}
	if p.CustomerID != customerID {
		return models.Milestone{}, fmt.Errorf("service: %w - only the customer may approve a milestone", marketerrors.ErrForbidden)
	}
	if m.Status != models.MilestonePendingApproval {
		return models.Milestone{}, fmt.Errorf("service: %w - milestone is %s", marketerrors.ErrConflict, m.Status)
	}
	m.Status = models.MilestoneApproved
	if err := s.store.UpdateMilestone(ctx, m); err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to approve milestone %s: %w", milestoneID, err)
	}
	return *m, nil
}

// RejectMilestone moves a completed milestone to REJECTED with a reason.
// Customer only; there is no automatic retry.
func (s *ProjectService) RejectMilestone(ctx context.Context, milestoneID, customerID, reason string) (models.Milestone, error) {
	if reason == "" {
		return models.Milestone{}, fmt.Errorf("service: %w - rejection reason is required", marketerrors.ErrValidation)
	}
	m, p, err := s.milestoneWithProject(ctx, milestoneID)
	if err != nil {
		return models.Milestone{}, err
	}
	if p.CustomerID != customerID {
		return models.Milestone{}, fmt.Errorf("service: %w - only the customer may reject a milestone", marketerrors.ErrForbidden)
	}
	if m.Status != models.MilestonePendingApproval {
		return models.Milestone{}, fmt.Errorf("service: %w - milestone is %s", marketerrors.ErrConflict, m.Status)
	}
	m.Status = models.MilestoneRejected
	m.RejectionReason = reason
	if err := s.store.UpdateMilestone(ctx, m); err != nil {
		return models.Milestone{}, fmt.Errorf("service: failed to reject milestone %s: %w", milestoneID, err)
	}

	s.notifier.Notify(p.ProviderID, notify.EventMilestoneRejected, map[string]any{
		"project_id":   p.ID,
		"milestone_id": m.ID,
		"reason":       reason,
	})
	return *m, nil
}

// RequestCompletion moves an in-progress project (and its job) into
// PENDING_APPROVAL. Provider only. Final payment is the customer's move.
func (s *ProjectService) RequestCompletion(ctx context.Context, projectID, providerID string) (models.Project, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if p.ProviderID != providerID {
		return models.Project{}, fmt.Errorf("service: %w - only the provider may request completion", marketerrors.ErrForbidden)
	}
	if p.Status != models.ProjectInProgress {
		return models.Project{}, fmt.Errorf("service: %w - project is %s", marketerrors.ErrConflict, p.Status)
	}

	err = s.store.Transact(ctx, func(tx repository.LedgerStore) error {
		p.Status = models.ProjectPendingApproval
		if err := tx.UpdateProject(ctx, p); err != nil {
			return err
		}
		job, err := tx.GetJob(ctx, p.JobID)
		if err != nil {
			return err
		}
		job.Status = models.JobPendingApproval
		return tx.UpdateJob(ctx, job)
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to request completion of project %s: %w", projectID, err)
	}

	s.notifier.Notify(p.CustomerID, notify.EventCompletionRequest, map[string]any{
		"project_id": p.ID,
	})
	return *p, nil
}

// CancelProject moves a project (and its job) to CANCELLED. Customer or
// admin; blocked once completed. Refunds are a separate, caller-driven step.
func (s *ProjectService) CancelProject(ctx context.Context, projectID, callerID string, isAdmin bool) (models.Project, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if p.CustomerID != callerID && !isAdmin {
		return models.Project{}, fmt.Errorf("service: %w - only the customer may cancel the project", marketerrors.ErrForbidden)
	}
	if p.Status == models.ProjectCompleted {
		return models.Project{}, fmt.Errorf("service: %w - completed projects cannot be cancelled", marketerrors.ErrConflict)
	}
	if p.Status == models.ProjectCancelled {
		return models.Project{}, fmt.Errorf("service: %w - project already cancelled", marketerrors.ErrConflict)
	}

	err = s.store.Transact(ctx, func(tx repository.LedgerStore) error {
		p.Status = models.ProjectCancelled
		if err := tx.UpdateProject(ctx, p); err != nil {
			return err
		}
		job, err := tx.GetJob(ctx, p.JobID)
		if err != nil {
			return err
		}
		job.Status = models.JobCancelled
		job.AcceptedBidID = nil
		return tx.UpdateJob(ctx, job)
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to cancel project %s: %w", projectID, err)
	}
	return *p, nil
}
