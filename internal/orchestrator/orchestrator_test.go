package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	escrow "bid4service/internal/escrowService"
	"bid4service/internal/gateway"
	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
	"bid4service/internal/notify"
	project "bid4service/internal/projectService"
	"bid4service/internal/repository"
	"bid4service/utils"
)

type fixture struct {
	store        *repository.MemoryStore
	gateway      *gateway.Sandbox
	orchestrator *Orchestrator
	job          *models.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	gw := gateway.NewSandbox()
	return &fixture{
		store:        store,
		gateway:      gw,
		orchestrator: NewOrchestrator(store, gw, notify.NewLogNotifier()),
	}
}

func (f *fixture) seedJob(t *testing.T) *models.Job {
	t.Helper()
	job := models.Job{
		ID:          utils.GenerateID(),
		CustomerID:  "cust1",
		Title:       "Garden landscaping",
		Status:      models.JobInBidding,
		StartingBid: 400,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.store.CreateJob(context.Background(), &job))
	f.job = &job
	return &job
}

func (f *fixture) seedBid(t *testing.T, providerID string, amount float64) *models.Bid {
	t.Helper()
	bid := models.Bid{
		ID:         utils.GenerateID(),
		JobID:      f.job.ID,
		ProviderID: providerID,
		Amount:     amount,
		Proposal:   "ready to start",
		Status:     models.BidPending,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, f.store.CreateBid(context.Background(), &bid))
	return &bid
}

func TestOrchestrator_AcceptBid(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts_rejects_siblings_and_creates_project", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		winner := f.seedBid(t, "prov1", 480)
		loser := f.seedBid(t, "prov2", 510)

		p, err := f.orchestrator.AcceptBid(ctx, winner.ID, "cust1")
		require.NoError(t, err)
		require.Equal(t, models.ProjectPendingFunding, p.Status)
		require.Equal(t, 480.0, p.AgreedAmount)
		require.Equal(t, "prov1", p.ProviderID)
		require.Equal(t, "cust1", p.CustomerID)

		gotWinner, err := f.store.GetBid(ctx, winner.ID)
		require.NoError(t, err)
		require.Equal(t, models.BidAccepted, gotWinner.Status)

		gotLoser, err := f.store.GetBid(ctx, loser.ID)
		require.NoError(t, err)
		require.Equal(t, models.BidRejected, gotLoser.Status)

		job, err := f.store.GetJob(ctx, f.job.ID)
		require.NoError(t, err)
		require.Equal(t, models.JobBidAccepted, job.Status)
		require.NotNil(t, job.AcceptedBidID)
		require.Equal(t, winner.ID, *job.AcceptedBidID)

		stats, err := f.store.GetUser(ctx, "prov1")
		require.NoError(t, err)
		require.Equal(t, 1, stats.BidsWon)
	})

	t.Run("withdrawn_bids_are_untouched", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		winner := f.seedBid(t, "prov1", 480)
		withdrawn := f.seedBid(t, "prov2", 510)
		withdrawn.Status = models.BidWithdrawn
		require.NoError(t, f.store.UpdateBid(ctx, withdrawn))

		_, err := f.orchestrator.AcceptBid(ctx, winner.ID, "cust1")
		require.NoError(t, err)

		got, err := f.store.GetBid(ctx, withdrawn.ID)
		require.NoError(t, err)
		require.Equal(t, models.BidWithdrawn, got.Status)
	})

	t.Run("second_acceptance_conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		first := f.seedBid(t, "prov1", 480)
		second := f.seedBid(t, "prov2", 510)

		_, err := f.orchestrator.AcceptBid(ctx, first.ID, "cust1")
		require.NoError(t, err)

		_, err = f.orchestrator.AcceptBid(ctx, second.ID, "cust1")
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrConflict) || errors.Is(err, marketerrors.ErrBidNotPending))
	})

	t.Run("only_job_owner_may_accept", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		bid := f.seedBid(t, "prov1", 480)

		_, err := f.orchestrator.AcceptBid(ctx, bid.ID, "prov2")
		require.True(t, errors.Is(err, marketerrors.ErrForbidden))
	})

	t.Run("non_pending_bid_rejected", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		bid := f.seedBid(t, "prov1", 480)
		bid.Status = models.BidWithdrawn
		require.NoError(t, f.store.UpdateBid(ctx, bid))

		_, err := f.orchestrator.AcceptBid(ctx, bid.ID, "cust1")
		require.True(t, errors.Is(err, marketerrors.ErrBidNotPending))
	})
}

// Concurrent acceptances of different bids on the same job: exactly one may
// commit, every other attempt must fail without corrupting state.
func TestOrchestrator_AcceptBid_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedJob(t)

	const contenders = 8
	bidIDs := make([]string, contenders)
	for i := 0; i < contenders; i++ {
		bid := f.seedBid(t, fmt.Sprintf("prov%d", i), 400+float64(i))
		bidIDs[i] = bid.ID
	}

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orchestrator.AcceptBid(ctx, bidIDs[i], "cust1")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	require.Equal(t, 1, succeeded, "exactly one acceptance must win")

	// Exactly one accepted bid, the rest rejected.
	accepted := 0
	for _, id := range bidIDs {
		bid, err := f.store.GetBid(ctx, id)
		require.NoError(t, err)
		switch bid.Status {
		case models.BidAccepted:
			accepted++
		case models.BidRejected:
		default:
			t.Fatalf("bid %s left in unexpected status %s", id, bid.Status)
		}
	}
	require.Equal(t, 1, accepted)

	job, err := f.store.GetJob(ctx, f.job.ID)
	require.NoError(t, err)
	require.Equal(t, models.JobBidAccepted, job.Status)
}

func TestOrchestrator_ReleaseFinalPayment(t *testing.T) {
	ctx := context.Background()

	// Runs the full happy path: accept at 480, fund, release a 200 milestone,
	// request completion, then settle the remaining 280.
	t.Run("settles_remaining_amount", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		bid := f.seedBid(t, "prov1", 480)

		p, err := f.orchestrator.AcceptBid(ctx, bid.ID, "cust1")
		require.NoError(t, err)

		escrowSvc := escrow.NewEscrowService(f.store, f.gateway, notify.NewLogNotifier())
		projectSvc := project.NewProjectService(f.store, notify.NewLogNotifier())

		_, err = escrowSvc.FundEscrow(ctx, p.ID, "cust1", "pm_card_visa")
		require.NoError(t, err)

		m, err := projectSvc.CreateMilestone(ctx, p.ID, "cust1", "Half the yard", 200, 1)
		require.NoError(t, err)
		_, err = projectSvc.CompleteMilestone(ctx, m.ID, "prov1", "front done")
		require.NoError(t, err)
		_, err = projectSvc.ApproveMilestone(ctx, m.ID, "cust1")
		require.NoError(t, err)
		_, err = escrowSvc.ReleaseMilestonePayment(ctx, m.ID, "cust1")
		require.NoError(t, err)

		_, err = projectSvc.RequestCompletion(ctx, p.ID, "prov1")
		require.NoError(t, err)

		final, err := f.orchestrator.ReleaseFinalPayment(ctx, p.ID, "cust1")
		require.NoError(t, err)
		require.Equal(t, models.PaymentFinal, final.Type)
		require.Equal(t, 280.0, final.Amount)

		got, err := f.store.GetProject(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, models.ProjectCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)

		job, err := f.store.GetJob(ctx, p.JobID)
		require.NoError(t, err)
		require.Equal(t, models.JobCompleted, job.Status)

		// Released total equals the agreed amount, never more.
		released, err := f.store.SumPayments(ctx, p.ID, models.PaymentReleased)
		require.NoError(t, err)
		require.Equal(t, 480.0, released)

		// Stats reflect the full contract value on both sides.
		provider, err := f.store.GetUser(ctx, "prov1")
		require.NoError(t, err)
		require.Equal(t, 480.0, provider.TotalEarned)
		require.Equal(t, 1, provider.TotalProjectsCompleted)

		customer, err := f.store.GetUser(ctx, "cust1")
		require.NoError(t, err)
		require.Equal(t, 480.0, customer.TotalSpent)
	})

	t.Run("double_final_release_conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		bid := f.seedBid(t, "prov1", 480)

		p, err := f.orchestrator.AcceptBid(ctx, bid.ID, "cust1")
		require.NoError(t, err)

		escrowSvc := escrow.NewEscrowService(f.store, f.gateway, notify.NewLogNotifier())
		projectSvc := project.NewProjectService(f.store, notify.NewLogNotifier())
		_, err = escrowSvc.FundEscrow(ctx, p.ID, "cust1", "pm_card_visa")
		require.NoError(t, err)
		_, err = projectSvc.RequestCompletion(ctx, p.ID, "prov1")
		require.NoError(t, err)

		_, err = f.orchestrator.ReleaseFinalPayment(ctx, p.ID, "cust1")
		require.NoError(t, err)

		_, err = f.orchestrator.ReleaseFinalPayment(ctx, p.ID, "cust1")
		require.True(t, errors.Is(err, marketerrors.ErrConflict))
	})

	t.Run("requires_pending_approval", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		bid := f.seedBid(t, "prov1", 480)

		p, err := f.orchestrator.AcceptBid(ctx, bid.ID, "cust1")
		require.NoError(t, err)

		_, err = f.orchestrator.ReleaseFinalPayment(ctx, p.ID, "cust1")
		require.True(t, errors.Is(err, marketerrors.ErrConflict))
	})

	t.Run("provider_forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.seedJob(t)
		bid := f.seedBid(t, "prov1", 480)

		p, err := f.orchestrator.AcceptBid(ctx, bid.ID, "cust1")
		require.NoError(t, err)

		_, err = f.orchestrator.ReleaseFinalPayment(ctx, p.ID, "prov1")
		require.True(t, errors.Is(err, marketerrors.ErrForbidden))
	})
}

// retrySafeGateway mimics a processor that dedupes captures by idempotency
// key: a retried capture of the same hold succeeds instead of failing. The
// ledger alone must then guarantee a single final payment.
type retrySafeGateway struct{}

func (retrySafeGateway) CreateCustomer(ctx context.Context, userID string) (string, error) {
	return "cus_" + userID, nil
}

func (retrySafeGateway) AuthorizeHold(ctx context.Context, paymentMethodRef string, amount float64) (string, error) {
	return "hold_" + utils.GenerateID(), nil
}

func (retrySafeGateway) Capture(ctx context.Context, externalRef string) error { return nil }

func (retrySafeGateway) Refund(ctx context.Context, externalRef string, amount float64) error {
	return nil
}

func TestOrchestrator_ReleaseFinalPayment_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	orch := NewOrchestrator(store, retrySafeGateway{}, notify.NewLogNotifier())

	job := models.Job{
		ID:          utils.GenerateID(),
		CustomerID:  "cust1",
		Title:       "Garden landscaping",
		Status:      models.JobInBidding,
		StartingBid: 400,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.CreateJob(ctx, &job))
	bid := models.Bid{
		ID:         utils.GenerateID(),
		JobID:      job.ID,
		ProviderID: "prov1",
		Amount:     480,
		Proposal:   "ready to start",
		Status:     models.BidPending,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.CreateBid(ctx, &bid))

	p, err := orch.AcceptBid(ctx, bid.ID, "cust1")
	require.NoError(t, err)

	escrowSvc := escrow.NewEscrowService(store, retrySafeGateway{}, notify.NewLogNotifier())
	projectSvc := project.NewProjectService(store, notify.NewLogNotifier())
	_, err = escrowSvc.FundEscrow(ctx, p.ID, "cust1", "pm_card_visa")
	require.NoError(t, err)
	_, err = projectSvc.RequestCompletion(ctx, p.ID, "prov1")
	require.NoError(t, err)

	const contenders = 4
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = orch.ReleaseFinalPayment(ctx, p.ID, "cust1")
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.True(t, errors.Is(err, marketerrors.ErrConflict), "loser must fail with a conflict, got %v", err)
		}
	}
	require.Equal(t, 1, succeeded, "exactly one final release must win")

	// The ledger never exceeds the agreed amount and stats count once.
	released, err := store.SumPayments(ctx, p.ID, models.PaymentReleased)
	require.NoError(t, err)
	require.Equal(t, 480.0, released)

	provider, err := store.GetUser(ctx, "prov1")
	require.NoError(t, err)
	require.Equal(t, 480.0, provider.TotalEarned)
	require.Equal(t, 1, provider.TotalProjectsCompleted)

	customer, err := store.GetUser(ctx, "cust1")
	require.NoError(t, err)
	require.Equal(t, 480.0, customer.TotalSpent)

	got, err := store.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, models.ProjectCompleted, got.Status)
}

func TestEstimatedEnd(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	days := 14

	t.Run("both_fields_present", func(t *testing.T) {
		bid := &models.Bid{ProposedStartDate: &start, EstimatedDurationDays: &days}
		end := estimatedEnd(bid)
		require.NotNil(t, end)
		require.Equal(t, start.AddDate(0, 0, 14), *end)
	})

	t.Run("missing_fields_give_nil", func(t *testing.T) {
		require.Nil(t, estimatedEnd(&models.Bid{ProposedStartDate: &start}))
		require.Nil(t, estimatedEnd(&models.Bid{EstimatedDurationDays: &days}))
		require.Nil(t, estimatedEnd(&models.Bid{}))
	})
}
