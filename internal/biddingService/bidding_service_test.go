package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
	"bid4service/internal/notify"
	"bid4service/internal/repository"
)

func newService(t *testing.T) (*BiddingService, *repository.MockLedgerStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := repository.NewMockLedgerStore(ctrl)
	return NewBiddingService(store, notify.NewLogNotifier()), store
}

// Tests CreateJob
func TestBiddingService_CreateJob(t *testing.T) {
	ctx := context.Background()
	budget := 900.0
	lowBudget := 50.0

	tests := []struct {
		name          string
		customerID    string
		title         string
		startingBid   float64
		maxBudget     *float64
		mockSetup     func(store *repository.MockLedgerStore)
		expectedError error
	}{
		{
			name:        "valid_job",
			customerID:  "cust1",
			title:       "Fix kitchen sink",
			startingBid: 100,
			maxBudget:   &budget,
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_customerID",
			customerID:    "",
			title:         "Fix kitchen sink",
			startingBid:   100,
			mockSetup:     func(store *repository.MockLedgerStore) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "empty_title",
			customerID:    "cust1",
			title:         "",
			startingBid:   100,
			mockSetup:     func(store *repository.MockLedgerStore) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "zero_starting_bid",
			customerID:    "cust1",
			title:         "Fix kitchen sink",
			startingBid:   0,
			mockSetup:     func(store *repository.MockLedgerStore) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "budget_below_starting_bid",
			customerID:    "cust1",
			title:         "Fix kitchen sink",
			startingBid:   100,
			maxBudget:     &lowBudget,
			mockSetup:     func(store *repository.MockLedgerStore) {},
			expectedError: marketerrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, store := newService(t)
			tc.mockSetup(store)

			job, err := service.CreateJob(ctx, tc.customerID, tc.title, "desc", tc.startingBid, tc.maxBudget)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.JobOpen, job.Status)
			require.Equal(t, tc.customerID, job.CustomerID)

			// Generated id must be a valid UUID
			_, parseErr := uuid.Parse(job.ID)
			require.NoError(t, parseErr)
		})
	}
}

// Tests SubmitBid
func TestBiddingService_SubmitBid(t *testing.T) {
	ctx := context.Background()

	openJob := func() *models.Job {
		return &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobOpen, StartingBid: 100}
	}
	inBiddingJob := func() *models.Job {
		return &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobInBidding, StartingBid: 100}
	}

	tests := []struct {
		name          string
		jobID         string
		providerID    string
		amount        float64
		proposal      string
		mockSetup     func(store *repository.MockLedgerStore)
		expectedError error
	}{
		{
			name:       "first_bid_moves_job_into_bidding",
			jobID:      "job1",
			providerID: "prov1",
			amount:     480,
			proposal:   "I can do it this week",
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetJob(gomock.Any(), "job1").Return(openJob(), nil)
				store.EXPECT().HasLiveBid(gomock.Any(), "job1", "prov1").Return(false, nil)
				store.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, j *models.Job) error {
						require.Equal(t, models.JobInBidding, j.Status)
						return nil
					})
			},
		},
		{
			name:       "second_bid_leaves_job_status_alone",
			jobID:      "job1",
			providerID: "prov2",
			amount:     510,
			proposal:   "Available immediately",
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetJob(gomock.Any(), "job1").Return(inBiddingJob(), nil)
				store.EXPECT().HasLiveBid(gomock.Any(), "job1", "prov2").Return(false, nil)
				store.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "zero_amount",
			jobID:         "job1",
			providerID:    "prov1",
			amount:        0,
			proposal:      "p",
			mockSetup:     func(store *repository.MockLedgerStore) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "empty_proposal",
			jobID:         "job1",
			providerID:    "prov1",
			amount:        480,
			proposal:      "",
			mockSetup:     func(store *repository.MockLedgerStore) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:       "own_job",
			jobID:      "job1",
			providerID: "cust1",
			amount:     480,
			proposal:   "p",
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetJob(gomock.Any(), "job1").Return(openJob(), nil)
			},
			expectedError: marketerrors.ErrForbidden,
		},
		{
			name:       "job_not_biddable",
			jobID:      "job1",
			providerID: "prov1",
			amount:     480,
			proposal:   "p",
			mockSetup: func(store *repository.MockLedgerStore) {
				j := openJob()
				j.Status = models.JobBidAccepted
				store.EXPECT().GetJob(gomock.Any(), "job1").Return(j, nil)
			},
			expectedError: marketerrors.ErrJobNotBiddable,
		},
		{
			name:       "duplicate_live_bid",
			jobID:      "job1",
			providerID: "prov1",
			amount:     480,
			proposal:   "p",
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetJob(gomock.Any(), "job1").Return(inBiddingJob(), nil)
				store.EXPECT().HasLiveBid(gomock.Any(), "job1", "prov1").Return(true, nil)
			},
			expectedError: marketerrors.ErrDuplicateBid,
		},
		{
			name:       "job_missing",
			jobID:      "nope",
			providerID: "prov1",
			amount:     480,
			proposal:   "p",
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetJob(gomock.Any(), "nope").Return(nil, marketerrors.ErrJobNotFound)
			},
			expectedError: marketerrors.ErrJobNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, store := newService(t)
			tc.mockSetup(store)

			bid, err := service.SubmitBid(ctx, tc.jobID, tc.providerID, tc.amount, tc.proposal, nil, nil)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.BidPending, bid.Status)
			require.Equal(t, tc.amount, bid.Amount)
			require.False(t, bid.ViewedByCustomer)
		})
	}
}

// Tests UpdateBid
func TestBiddingService_UpdateBid(t *testing.T) {
	ctx := context.Background()
	newAmount := 450.0
	badAmount := -1.0
	emptyProposal := ""

	pendingBid := func() *models.Bid {
		return &models.Bid{
			ID:               "bid1",
			JobID:            "job1",
			ProviderID:       "prov1",
			Amount:           480,
			Proposal:         "original",
			Status:           models.BidPending,
			ViewedByCustomer: true,
		}
	}

	tests := []struct {
		name          string
		providerID    string
		patch         BidPatch
		mockSetup     func(store *repository.MockLedgerStore)
		expectedError error
	}{
		{
			name:       "amount_change_resets_read_receipt",
			providerID: "prov1",
			patch:      BidPatch{Amount: &newAmount},
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetBid(gomock.Any(), "bid1").Return(pendingBid(), nil)
				store.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *models.Bid) error {
						require.Equal(t, newAmount, b.Amount)
						require.False(t, b.ViewedByCustomer)
						return nil
					})
			},
		},
		{
			name:       "wrong_provider",
			providerID: "prov2",
			patch:      BidPatch{Amount: &newAmount},
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetBid(gomock.Any(), "bid1").Return(pendingBid(), nil)
			},
			expectedError: marketerrors.ErrForbidden,
		},
		{
			name:       "not_pending",
			providerID: "prov1",
			patch:      BidPatch{Amount: &newAmount},
			mockSetup: func(store *repository.MockLedgerStore) {
				b := pendingBid()
				b.Status = models.BidAccepted
				store.EXPECT().GetBid(gomock.Any(), "bid1").Return(b, nil)
			},
			expectedError: marketerrors.ErrBidNotPending,
		},
		{
			name:       "negative_amount",
			providerID: "prov1",
			patch:      BidPatch{Amount: &badAmount},
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetBid(gomock.Any(), "bid1").Return(pendingBid(), nil)
			},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:       "proposal_cannot_be_emptied",
			providerID: "prov1",
			patch:      BidPatch{Proposal: &emptyProposal},
			mockSetup: func(store *repository.MockLedgerStore) {
				store.EXPECT().GetBid(gomock.Any(), "bid1").Return(pendingBid(), nil)
			},
			expectedError: marketerrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, store := newService(t)
			tc.mockSetup(store)

			_, err := service.UpdateBid(ctx, "bid1", tc.providerID, tc.patch)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Tests WithdrawBid and RejectBid terminal transitions
func TestBiddingService_BidTerminalTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("withdraw_pending_bid", func(t *testing.T) {
		service, store := newService(t)
		bid := &models.Bid{ID: "bid1", JobID: "job1", ProviderID: "prov1", Status: models.BidPending}
		store.EXPECT().GetBid(gomock.Any(), "bid1").Return(bid, nil)
		store.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *models.Bid) error {
				require.Equal(t, models.BidWithdrawn, b.Status)
				return nil
			})

		got, err := service.WithdrawBid(ctx, "bid1", "prov1")
		require.NoError(t, err)
		require.Equal(t, models.BidWithdrawn, got.Status)
	})

	t.Run("withdraw_accepted_bid_conflicts", func(t *testing.T) {
		service, store := newService(t)
		bid := &models.Bid{ID: "bid1", JobID: "job1", ProviderID: "prov1", Status: models.BidAccepted}
		store.EXPECT().GetBid(gomock.Any(), "bid1").Return(bid, nil)

		_, err := service.WithdrawBid(ctx, "bid1", "prov1")
		require.True(t, errors.Is(err, marketerrors.ErrBidNotPending))
	})

	t.Run("reject_by_owner", func(t *testing.T) {
		service, store := newService(t)
		bid := &models.Bid{ID: "bid1", JobID: "job1", ProviderID: "prov1", Status: models.BidPending}
		job := &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobInBidding}
		store.EXPECT().GetBid(gomock.Any(), "bid1").Return(bid, nil)
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job, nil)
		store.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).Return(nil)

		got, err := service.RejectBid(ctx, "bid1", "cust1")
		require.NoError(t, err)
		require.Equal(t, models.BidRejected, got.Status)
	})

	t.Run("reject_by_stranger_forbidden", func(t *testing.T) {
		service, store := newService(t)
		bid := &models.Bid{ID: "bid1", JobID: "job1", ProviderID: "prov1", Status: models.BidPending}
		job := &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobInBidding}
		store.EXPECT().GetBid(gomock.Any(), "bid1").Return(bid, nil)
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job, nil)

		_, err := service.RejectBid(ctx, "bid1", "someone-else")
		require.True(t, errors.Is(err, marketerrors.ErrForbidden))
	})
}

// Tests ListJobBids visibility rules
func TestBiddingService_ListJobBids(t *testing.T) {
	ctx := context.Background()
	job := func() *models.Job {
		return &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobInBidding}
	}
	bids := []models.Bid{{ID: "bid1", JobID: "job1", ProviderID: "prov1", Status: models.BidPending}}

	t.Run("owner_sees_all", func(t *testing.T) {
		service, store := newService(t)
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job(), nil)
		store.EXPECT().ListBidsForJob(gomock.Any(), "job1").Return(bids, nil)

		got, err := service.ListJobBids(ctx, "job1", "cust1", false)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("bidding_provider_sees_list", func(t *testing.T) {
		service, store := newService(t)
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job(), nil)
		store.EXPECT().HasLiveBid(gomock.Any(), "job1", "prov1").Return(true, nil)
		store.EXPECT().ListBidsForJob(gomock.Any(), "job1").Return(bids, nil)

		got, err := service.ListJobBids(ctx, "job1", "prov1", false)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("uninvolved_provider_forbidden", func(t *testing.T) {
		service, store := newService(t)
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job(), nil)
		store.EXPECT().HasLiveBid(gomock.Any(), "job1", "prov9").Return(false, nil)

		_, err := service.ListJobBids(ctx, "job1", "prov9", false)
		require.True(t, errors.Is(err, marketerrors.ErrForbidden))
	})

	t.Run("admin_sees_all", func(t *testing.T) {
		service, store := newService(t)
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job(), nil)
		store.EXPECT().ListBidsForJob(gomock.Any(), "job1").Return(bids, nil)

		_, err := service.ListJobBids(ctx, "job1", "adminuser", true)
		require.NoError(t, err)
	})
}

// Tests CancelJob
func TestBiddingService_CancelJob(t *testing.T) {
	ctx := context.Background()

	t.Run("owner_cancels_open_job", func(t *testing.T) {
		service, store := newService(t)
		job := &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobOpen}
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job, nil)
		store.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).Return(nil)

		got, err := service.CancelJob(ctx, "job1", "cust1", false)
		require.NoError(t, err)
		require.Equal(t, models.JobCancelled, got.Status)
	})

	t.Run("completed_job_cannot_be_cancelled", func(t *testing.T) {
		service, store := newService(t)
		job := &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobCompleted}
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job, nil)

		_, err := service.CancelJob(ctx, "job1", "cust1", false)
		require.True(t, errors.Is(err, marketerrors.ErrConflict))
	})

	t.Run("store_failure_is_wrapped", func(t *testing.T) {
		service, store := newService(t)
		job := &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobOpen}
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job, nil)
		store.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		_, err := service.CancelJob(ctx, "job1", "cust1", false)
		require.Error(t, err)
	})

	t.Run("cancelling_awarded_job_clears_accepted_bid", func(t *testing.T) {
		service, store := newService(t)
		bidID := "bid1"
		job := &models.Job{ID: "job1", CustomerID: "cust1", Status: models.JobBidAccepted, AcceptedBidID: &bidID}
		store.EXPECT().GetJob(gomock.Any(), "job1").Return(job, nil)
		store.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j *models.Job) error {
				require.Equal(t, models.JobCancelled, j.Status)
				require.Nil(t, j.AcceptedBidID)
				return nil
			})

		got, err := service.CancelJob(ctx, "job1", "cust1", false)
		require.NoError(t, err)
		require.Nil(t, got.AcceptedBidID)
	})
}

// Guard against accidental clock skew in created entities.
func TestBiddingService_CreateJobTimestamps(t *testing.T) {
	service, store := newService(t)
	store.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(nil)

	before := time.Now().UTC()
	job, err := service.CreateJob(context.Background(), "cust1", "Paint fence", "", 120, nil)
	require.NoError(t, err)
	require.False(t, job.CreatedAt.Before(before.Add(-time.Second)))
	require.False(t, job.CreatedAt.After(time.Now().UTC().Add(time.Second)))
}
