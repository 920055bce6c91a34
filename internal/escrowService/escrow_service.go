package escrow

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

// EscrowService owns payment records. Every mutation preserves the ledger
// invariant: released + held - refunded never exceeds the agreed amount.
type EscrowService struct {
	store    repository.LedgerStore
	gateway  gateway.PaymentGateway
	notifier notify.Notifier
}

// NewEscrowService creates a new EscrowService instance
func NewEscrowService(store repository.LedgerStore, gw gateway.PaymentGateway, notifier notify.Notifier) *EscrowService {
	return &EscrowService{
		store:    store,
		gateway:  gw,
		notifier: notifier,
	}
}

// FundEscrow authorizes and holds the full agreed amount for a project.
// The payment row is written, and the project started, only after the
// gateway hold succeeds; gateway failure leaves no local state behind.
func (s *EscrowService) FundEscrow(ctx context.Context, projectID, customerID, paymentMethodRef string) (models.Payment, error) {
	if paymentMethodRef == "" {
		return models.Payment{}, fmt.Errorf("service: %w - payment method is required", marketerrors.ErrValidation)
	}
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if p.CustomerID != customerID {
		return models.Payment{}, fmt.Errorf("service: %w - only the customer may fund escrow", marketerrors.ErrForbidden)
	}

	funded, err := s.store.HasLiveDeposit(ctx, projectID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to check existing deposit: %w", err)
	}
	if funded {
		return models.Payment{}, fmt.Errorf("service: %w", marketerrors.ErrAlreadyFunded)
	}

	externalRef, err := s.gateway.AuthorizeHold(ctx, paymentMethodRef, p.AgreedAmount)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: gateway hold failed for project %s: %w", projectID, err)
	}

	now := time.Now().UTC()
	payment := models.Payment{
		ID:                utils.GenerateID(),
		ProjectID:         projectID,
		UserID:            customerID,
		Amount:            p.AgreedAmount,
		Type:              models.PaymentDeposit,
		Status:            models.PaymentHeldInEscrow,
		ExternalReference: externalRef,
		CreatedAt:         now,
	}
	err = s.store.Transact(ctx, func(tx repository.LedgerStore) error {
		if err := tx.CreatePayment(ctx, &payment); err != nil {
			return err
		}
		if err := projectsvc.EnterInProgress(p, now); err != nil {
			return err
		}
		if err := tx.UpdateProject(ctx, p); err != nil {
			return err
		}
		job, err := tx.GetJob(ctx, p.JobID)
		if err != nil {
			return err
		}
		job.Status = models.JobInProgress
		return tx.UpdateJob(ctx, job)
	})
	if err != nil {
		// The hold succeeded but the ledger write did not; release the hold
		// so no money stays frozen against a project we never funded.
		if releaseErr := s.gateway.Refund(ctx, externalRef, p.AgreedAmount); releaseErr != nil {
			utils.Error("failed to release orphaned hold", map[string]any{
				"project_id":   projectID,
				"external_ref": externalRef,
				"error":        releaseErr.Error(),
			})
		}
		return models.Payment{}, fmt.Errorf("service: failed to record escrow deposit for project %s: %w", projectID, err)
	}
	return payment, nil
}

// ReleaseMilestonePayment releases an approved milestone's amount as an
// independent ledger line linked to the milestone exactly once.
func (s *EscrowService) ReleaseMilestonePayment(ctx context.Context, milestoneID, customerID string) (models.Payment, error) {
	m, err := s.store.GetMilestone(ctx, milestoneID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get milestone %s: %w", milestoneID, err)
	}
	p, err := s.store.GetProject(ctx, m.ProjectID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get project %s: %w", m.ProjectID, err)
	}
	if p.CustomerID != customerID {
		return models.Payment{}, fmt.Errorf("service: %w - only the customer may release payments", marketerrors.ErrForbidden)
	}
	if m.Status != models.MilestoneApproved {
		return models.Payment{}, fmt.Errorf("service: %w - milestone is %s, not approved", marketerrors.ErrConflict, m.Status)
	}
	if m.PaymentID != nil {
		return models.Payment{}, fmt.Errorf("service: %w", marketerrors.ErrAlreadyReleased)
	}

	funded, err := s.store.HasLiveDeposit(ctx, p.ID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to check escrow deposit: %w", err)
	}
	if !funded {
		return models.Payment{}, fmt.Errorf("service: %w - no escrow deposit held for project %s", marketerrors.ErrConflict, p.ID)
	}

	released, err := s.store.SumPayments(ctx, p.ID, models.PaymentReleased)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to sum released payments: %w", err)
	}
	if released+m.Amount > p.AgreedAmount {
		return models.Payment{}, fmt.Errorf("service: %w - release of %.2f on top of %.2f exceeds agreed %.2f",
			marketerrors.ErrEscrowExceeded, m.Amount, released, p.AgreedAmount)
	}

	payment := models.Payment{
		ID:        utils.GenerateID(),
		ProjectID: p.ID,
		UserID:    customerID,
		Amount:    m.Amount,
		Type:      models.PaymentMilestone,
		Status:    models.PaymentReleased,
		CreatedAt: time.Now().UTC(),
	}
	err = s.store.Transact(ctx, func(tx repository.LedgerStore) error {
		// One-time linkage first: it is the conditional write that guards
		// against double release.
		if err := tx.LinkMilestonePayment(ctx, m.ID, payment.ID); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, &payment)
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to release milestone %s payment: %w", milestoneID, err)
	}

	s.notifier.Notify(p.ProviderID, notify.EventPaymentReleased, map[string]any{
		"project_id":   p.ID,
		"milestone_id": m.ID,
		"amount":       m.Amount,
	})
	return payment, nil
}

// RequestRefund reverses a held or released payment through the gateway and
// marks the original row REFUNDED. Project and milestone statuses are
// deliberately untouched; reversal of workflow state is the caller's call.
func (s *EscrowService) RequestRefund(ctx context.Context, paymentID, requesterID, reason string) (models.Payment, error) {
	if reason == "" {
		return models.Payment{}, fmt.Errorf("service: %w - refund reason is required", marketerrors.ErrValidation)
	}
	original, err := s.store.GetPayment(ctx, paymentID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get payment %s: %w", paymentID, err)
	}
	if original.UserID != requesterID {
		return models.Payment{}, fmt.Errorf("service: %w - only the original payer may request a refund", marketerrors.ErrForbidden)
	}
	if original.Status != models.PaymentHeldInEscrow && original.Status != models.PaymentReleased {
		return models.Payment{}, fmt.Errorf("service: %w - payment is %s", marketerrors.ErrConflict, original.Status)
	}

	if err := s.gateway.Refund(ctx, original.ExternalReference, original.Amount); err != nil {
		return models.Payment{}, fmt.Errorf("service: gateway refund failed for payment %s: %w", paymentID, err)
	}

	refund := models.Payment{
		ID:                utils.GenerateID(),
		ProjectID:         original.ProjectID,
		UserID:            original.UserID,
		Amount:            original.Amount,
		Type:              models.PaymentRefund,
		Status:            models.PaymentRefunded,
		ExternalReference: original.ExternalReference,
		CreatedAt:         time.Now().UTC(),
	}
	err = s.store.Transact(ctx, func(tx repository.LedgerStore) error {
		if err := tx.MarkPaymentRefunded(ctx, original.ID, original.Status); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, &refund)
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to record refund of payment %s: %w", paymentID, err)
	}

	s.notifier.Notify(original.UserID, notify.EventPaymentRefunded, map[string]any{
		"project_id": original.ProjectID,
		"payment_id": original.ID,
		"amount":     original.Amount,
		"reason":     reason,
	})
	refund.Status = models.PaymentRefunded
	return refund, nil
}

// ListProjectPayments returns a project's ledger rows to an involved party.
func (s *EscrowService) ListProjectPayments(ctx context.Context, projectID, callerID string, isAdmin bool) ([]models.Payment, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if p.CustomerID != callerID && p.ProviderID != callerID && !isAdmin {
		return nil, fmt.Errorf("service: %w - caller is not involved with project %s", marketerrors.ErrForbidden, projectID)
	}
	payments, err := s.store.ListPayments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list payments for project %s: %w", projectID, err)
	}
	return payments, nil
}

// Balance aggregates the ledger for a project to an involved party. Totals
// come from summing payment rows, never from a decremented balance column.
func (s *EscrowService) Balance(ctx context.Context, projectID, callerID string, isAdmin bool) (models.EscrowBalance, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return models.EscrowBalance{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if p.CustomerID != callerID && p.ProviderID != callerID && !isAdmin {
		return models.EscrowBalance{}, fmt.Errorf("service: %w - caller is not involved with project %s", marketerrors.ErrForbidden, projectID)
	}
	held, err := s.store.SumPayments(ctx, projectID, models.PaymentHeldInEscrow)
	if err != nil {
		return models.EscrowBalance{}, fmt.Errorf("service: failed to sum held payments: %w", err)
	}
	released, err := s.store.SumPayments(ctx, projectID, models.PaymentReleased)
	if err != nil {
		return models.EscrowBalance{}, fmt.Errorf("service: failed to sum released payments: %w", err)
	}
	refunded, err := s.store.SumPayments(ctx, projectID, models.PaymentRefunded)
	if err != nil {
		return models.EscrowBalance{}, fmt.Errorf("service: failed to sum refunded payments: %w", err)
	}
	return models.EscrowBalance{
		ProjectID:    projectID,
		AgreedAmount: p.AgreedAmount,
		Held:         held,
		Released:     released,
		Refunded:     refunded,
		Remaining:    p.AgreedAmount - released,
	}, nil
}
