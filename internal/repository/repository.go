package repository

import (
	"context"

	"bid4service/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// LedgerStore is the persistence boundary for the marketplace workflow. All
// mutations go through it; compound operations run inside Transact, whose
// callback receives a store bound to the same transaction.
type LedgerStore interface {
	// Transact runs fn atomically. Either every write issued against the
	// bound store commits, or none do.
	Transact(ctx context.Context, fn func(LedgerStore) error) error

	// Users
	GetUser(ctx context.Context, id string) (*models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
	AddUserStats(ctx context.Context, userID string, delta StatsDelta) error

	// Jobs
	CreateJob(ctx context.Context, j *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	// GetJobForUpdate locks the job row for the duration of the enclosing
	// transaction. Outside a transaction it behaves like GetJob.
	GetJobForUpdate(ctx context.Context, id string) (*models.Job, error)
	UpdateJob(ctx context.Context, j *models.Job) error
	ListOpenJobs(ctx context.Context, limit, offset int) ([]models.Job, error)

	// Bids
	CreateBid(ctx context.Context, b *models.Bid) error
	GetBid(ctx context.Context, id string) (*models.Bid, error)
	UpdateBid(ctx context.Context, b *models.Bid) error
	ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error)
	ListBidsByProvider(ctx context.Context, providerID string) ([]models.Bid, error)
	HasLiveBid(ctx context.Context, jobID, providerID string) (bool, error)
	// RejectPendingBids transitions every PENDING bid on the job except the
	// given one to REJECTED and reports how many rows changed.
	RejectPendingBids(ctx context.Context, jobID, exceptBidID string) (int64, error)

	// Projects
	CreateProject(ctx context.Context, p *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	// GetProjectForUpdate locks the project row for the duration of the
	// enclosing transaction. Outside a transaction it behaves like GetProject.
	GetProjectForUpdate(ctx context.Context, id string) (*models.Project, error)
	GetProjectByJob(ctx context.Context, jobID string) (*models.Project, error)
	UpdateProject(ctx context.Context, p *models.Project) error

	// Milestones
	CreateMilestone(ctx context.Context, m *models.Milestone) error
	GetMilestone(ctx context.Context, id string) (*models.Milestone, error)
	UpdateMilestone(ctx context.Context, m *models.Milestone) error
	ListMilestones(ctx context.Context, projectID string) ([]models.Milestone, error)
	// SumMilestoneAmounts totals the non-rejected milestone amounts of a project.
	SumMilestoneAmounts(ctx context.Context, projectID string) (float64, error)
	// LinkMilestonePayment assigns the payment to the milestone only if no
	// payment is linked yet; otherwise it fails with ErrAlreadyReleased.
	LinkMilestonePayment(ctx context.Context, milestoneID, paymentID string) error

	// Payments
	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	// MarkPaymentRefunded flips the payment to REFUNDED only if it is still
	// in the given status; otherwise it fails with ErrConflict.
	MarkPaymentRefunded(ctx context.Context, id string, from models.PaymentStatus) error
	ListPayments(ctx context.Context, projectID string) ([]models.Payment, error)
	HasLiveDeposit(ctx context.Context, projectID string) (bool, error)
	SumPayments(ctx context.Context, projectID string, status models.PaymentStatus) (float64, error)
}

// StatsDelta describes an increment to a user's running statistics.
type StatsDelta struct {
	Spent             float64
	Earned            float64
	ProjectsCompleted int
	BidsWon           int
}
