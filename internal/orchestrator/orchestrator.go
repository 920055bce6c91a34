package orchestrator

import (
	"context"
	"fmt"
	"time"

	"bid4service/internal/gateway"
	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
	"bid4service/internal/notify"
	projectsvc "bid4service/internal/projectService"
	"bid4service/internal/repository"
	"bid4service/utils"
)

// Orchestrator coordinates the two compound transitions that touch multiple
// entities: bid acceptance and final payment. Everything else goes straight
// to the single-entity engines.
type Orchestrator struct {
	store    repository.LedgerStore
	gateway  gateway.PaymentGateway
	notifier notify.Notifier
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(store repository.LedgerStore, gw gateway.PaymentGateway, notifier notify.Notifier) *Orchestrator {
	return &Orchestrator{
		store:    store,
		gateway:  gw,
		notifier: notifier,
	}
}

// AcceptBid runs the five-step acceptance inside one transaction: accept the
// target bid, reject every other pending bid, close the job, create the
// project, and credit the provider's win counter. The job row is locked and
// its status re-checked inside the transaction, so of two concurrent
// acceptances exactly one commits; the loser observes the changed status and
// fails with a conflict.
func (o *Orchestrator) AcceptBid(ctx context.Context, bidID, customerID string) (models.Project, error) {
	bid, err := o.store.GetBid(ctx, bidID)
	if err != nil {
		return models.Project{}, fmt.Errorf("orchestrator: failed to get bid %s: %w", bidID, err)
	}
	job, err := o.store.GetJob(ctx, bid.JobID)
	if err != nil {
		return models.Project{}, fmt.Errorf("orchestrator: failed to get job %s: %w", bid.JobID, err)
	}
	if job.CustomerID != customerID {
		return models.Project{}, fmt.Errorf("orchestrator: %w - only the job owner may accept a bid", marketerrors.ErrForbidden)
	}

	var project models.Project
	var losers []string
	err = o.store.Transact(ctx, func(tx repository.LedgerStore) error {
		lockedJob, err := tx.GetJobForUpdate(ctx, job.ID)
		if err != nil {
			return err
		}
		if lockedJob.Status != models.JobOpen && lockedJob.Status != models.JobInBidding {
			return fmt.Errorf("%w: job is no longer available", marketerrors.ErrConflict)
		}
		lockedBid, err := tx.GetBid(ctx, bidID)
		if err != nil {
			return err
		}
		if lockedBid.Status != models.BidPending {
			return fmt.Errorf("%w: bid is %s", marketerrors.ErrBidNotPending, lockedBid.Status)
		}

		siblings, err := tx.ListBidsForJob(ctx, lockedJob.ID)
		if err != nil {
			return err
		}
		for _, sibling := range siblings {
			if sibling.ID != bidID && sibling.Status == models.BidPending {
				losers = append(losers, sibling.ProviderID)
			}
		}

		lockedBid.Status = models.BidAccepted
		if err := tx.UpdateBid(ctx, lockedBid); err != nil {
			return err
		}
		if _, err := tx.RejectPendingBids(ctx, lockedJob.ID, bidID); err != nil {
			return err
		}

		lockedJob.Status = models.JobBidAccepted
		lockedJob.AcceptedBidID = &lockedBid.ID
		if err := tx.UpdateJob(ctx, lockedJob); err != nil {
			return err
		}

		project = models.Project{
			ID:               utils.GenerateID(),
			JobID:            lockedJob.ID,
			CustomerID:       lockedJob.CustomerID,
			ProviderID:       lockedBid.ProviderID,
			AgreedAmount:     lockedBid.Amount,
			Status:           models.ProjectPendingFunding,
			EstimatedEndDate: estimatedEnd(lockedBid),
			CreatedAt:        time.Now().UTC(),
		}
		if err := tx.CreateProject(ctx, &project); err != nil {
			return err
		}

		return tx.AddUserStats(ctx, lockedBid.ProviderID, repository.StatsDelta{BidsWon: 1})
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("orchestrator: failed to accept bid %s: %w", bidID, err)
	}

	o.notifier.Notify(project.ProviderID, notify.EventBidAccepted, map[string]any{
		"job_id":     project.JobID,
		"bid_id":     bidID,
		"project_id": project.ID,
	})
	for _, loser := range losers {
		o.notifier.Notify(loser, notify.EventBidRejected, map[string]any{
			"job_id": project.JobID,
		})
	}
	return project, nil
}

func estimatedEnd(bid *models.Bid) *time.Time {
	if bid.ProposedStartDate == nil || bid.EstimatedDurationDays == nil {
		return nil
	}
	end := bid.ProposedStartDate.AddDate(0, 0, *bid.EstimatedDurationDays)
	return &end
}

// ReleaseFinalPayment captures the escrow hold and, in one transaction,
// releases the remaining contract amount, completes the project and job, and
// updates both parties' running statistics. The capture happens first; on
// capture failure nothing local is written. The project row is locked and its
// status and remaining amount re-checked inside the transaction, so of two
// concurrent releases exactly one commits; the loser observes the changed
// status and fails with a conflict.
func (o *Orchestrator) ReleaseFinalPayment(ctx context.Context, projectID, customerID string) (models.Payment, error) {
	p, err := o.store.GetProject(ctx, projectID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("orchestrator: failed to get project %s: %w", projectID, err)
	}
	if p.CustomerID != customerID {
		return models.Payment{}, fmt.Errorf("orchestrator: %w - only the customer may release the final payment", marketerrors.ErrForbidden)
	}
	if p.Status != models.ProjectPendingApproval {
		return models.Payment{}, fmt.Errorf("orchestrator: %w - project is %s, not pending approval", marketerrors.ErrConflict, p.Status)
	}

	deposit, err := o.liveDeposit(ctx, projectID)
	if err != nil {
		return models.Payment{}, err
	}
	if err := o.gateway.Capture(ctx, deposit.ExternalReference); err != nil {
		return models.Payment{}, fmt.Errorf("orchestrator: gateway capture failed for project %s: %w", projectID, err)
	}

	now := time.Now().UTC()
	var payment models.Payment
	err = o.store.Transact(ctx, func(tx repository.LedgerStore) error {
		locked, err := tx.GetProjectForUpdate(ctx, projectID)
		if err != nil {
			return err
		}
		if locked.Status != models.ProjectPendingApproval {
			return fmt.Errorf("%w: project is %s", marketerrors.ErrConflict, locked.Status)
		}
		released, err := tx.SumPayments(ctx, projectID, models.PaymentReleased)
		if err != nil {
			return err
		}
		remaining := locked.AgreedAmount - released
		if remaining <= 0 {
			return marketerrors.ErrNothingRemaining
		}

		payment = models.Payment{
			ID:        utils.GenerateID(),
			ProjectID: projectID,
			UserID:    customerID,
			Amount:    remaining,
			Type:      models.PaymentFinal,
			Status:    models.PaymentReleased,
			CreatedAt: now,
		}
		if err := tx.CreatePayment(ctx, &payment); err != nil {
			return err
		}
		if err := projectsvc.EnterCompleted(locked, now); err != nil {
			return err
		}
		if err := tx.UpdateProject(ctx, locked); err != nil {
			return err
		}
		job, err := tx.GetJob(ctx, locked.JobID)
		if err != nil {
			return err
		}
		job.Status = models.JobCompleted
		if err := tx.UpdateJob(ctx, job); err != nil {
			return err
		}
		if err := tx.AddUserStats(ctx, locked.ProviderID, repository.StatsDelta{
			Earned:            locked.AgreedAmount,
			ProjectsCompleted: 1,
		}); err != nil {
			return err
		}
		return tx.AddUserStats(ctx, locked.CustomerID, repository.StatsDelta{
			Spent: locked.AgreedAmount,
		})
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("orchestrator: failed to finalize project %s: %w", projectID, err)
	}

	o.notifier.Notify(p.ProviderID, notify.EventPaymentReleased, map[string]any{
		"project_id": projectID,
		"amount":     payment.Amount,
		"final":      true,
	})
	return payment, nil
}

func (o *Orchestrator) liveDeposit(ctx context.Context, projectID string) (*models.Payment, error) {
	payments, err := o.store.ListPayments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: failed to list payments for project %s: %w", projectID, err)
	}
	for i := range payments {
		p := &payments[i]
		if p.Type == models.PaymentDeposit && p.Status == models.PaymentHeldInEscrow {
			return p, nil
		}
	}
	return nil, fmt.Errorf("orchestrator: %w - no escrow deposit held for project %s", marketerrors.ErrConflict, projectID)
}
