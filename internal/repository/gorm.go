package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
)

// GormStore is the Postgres-backed LedgerStore. The handle is constructed by
// the process entry point and injected; there is no package-level instance.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Transact runs fn inside a database transaction. The callback receives a
// store bound to the transaction; a non-nil error rolls everything back.
func (s *GormStore) Transact(ctx context.Context, fn func(LedgerStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// Users

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrUserNotFound)
	}
	return &u, nil
}

func (s *GormStore) SaveUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *GormStore) AddUserStats(ctx context.Context, userID string, delta StatsDelta) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"total_spent":              gorm.Expr("total_spent + ?", delta.Spent),
		"total_earned":             gorm.Expr("total_earned + ?", delta.Earned),
		"total_projects_completed": gorm.Expr("total_projects_completed + ?", delta.ProjectsCompleted),
		"bids_won":                 gorm.Expr("bids_won + ?", delta.BidsWon),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.db.WithContext(ctx).Create(&models.User{
			ID:                     userID,
			TotalSpent:             delta.Spent,
			TotalEarned:            delta.Earned,
			TotalProjectsCompleted: delta.ProjectsCompleted,
			BidsWon:                delta.BidsWon,
		}).Error
	}
	return nil
}

// Jobs

func (s *GormStore) CreateJob(ctx context.Context, j *models.Job) error {
	return s.db.WithContext(ctx).Create(j).Error
}

func (s *GormStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	if err := s.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrJobNotFound)
	}
	return &j, nil
}

func (s *GormStore) GetJobForUpdate(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&j, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, marketerrors.ErrJobNotFound)
	}
	return &j, nil
}

func (s *GormStore) UpdateJob(ctx context.Context, j *models.Job) error {
	return s.db.WithContext(ctx).Save(j).Error
}

func (s *GormStore) ListOpenJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.db.WithContext(ctx).
		Where("status IN ?", []models.JobStatus{models.JobOpen, models.JobInBidding}).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	return jobs, err
}

// Bids

func (s *GormStore) CreateBid(ctx context.Context, b *models.Bid) error {
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return marketerrors.ErrDuplicateBid
		}
		return err
	}
	return nil
}

func (s *GormStore) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	var b models.Bid
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrBidNotFound)
	}
	return &b, nil
}

func (s *GormStore) UpdateBid(ctx context.Context, b *models.Bid) error {
	return s.db.WithContext(ctx).Save(b).Error
}

func (s *GormStore) ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error) {
	bids := []models.Bid{}
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&bids).Error
	return bids, err
}

func (s *GormStore) ListBidsByProvider(ctx context.Context, providerID string) ([]models.Bid, error) {
	bids := []models.Bid{}
	err := s.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (s *GormStore) HasLiveBid(ctx context.Context, jobID, providerID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Bid{}).
		Where("job_id = ? AND provider_id = ? AND status <> ?", jobID, providerID, models.BidWithdrawn).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) RejectPendingBids(ctx context.Context, jobID, exceptBidID string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Bid{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, exceptBidID, models.BidPending).
		Update("status", models.BidRejected)
	return res.RowsAffected, res.Error
}

// Projects

func (s *GormStore) CreateProject(ctx context.Context, p *models.Project) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: job already has a project", marketerrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *GormStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrProjectNotFound)
	}
	return &p, nil
}

func (s *GormStore) GetProjectForUpdate(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, marketerrors.ErrProjectNotFound)
	}
	return &p, nil
}

func (s *GormStore) GetProjectByJob(ctx context.Context, jobID string) (*models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, "job_id = ?", jobID).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrProjectNotFound)
	}
	return &p, nil
}

func (s *GormStore) UpdateProject(ctx context.Context, p *models.Project) error {
	return s.db.WithContext(ctx).Save(p).Error
}

// Milestones

func (s *GormStore) CreateMilestone(ctx context.Context, m *models.Milestone) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *GormStore) GetMilestone(ctx context.Context, id string) (*models.Milestone, error) {
	var m models.Milestone
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrMilestoneNotFound)
	}
	return &m, nil
}

func (s *GormStore) UpdateMilestone(ctx context.Context, m *models.Milestone) error {
	return s.db.WithContext(ctx).Save(m).Error
}

func (s *GormStore) ListMilestones(ctx context.Context, projectID string) ([]models.Milestone, error) {
	milestones := []models.Milestone{}
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sequence ASC").
		Find(&milestones).Error
	return milestones, err
}

func (s *GormStore) SumMilestoneAmounts(ctx context.Context, projectID string) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.Milestone{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("project_id = ? AND status <> ?", projectID, models.MilestoneRejected).
		Scan(&total).Error
	return total, err
}

func (s *GormStore) LinkMilestonePayment(ctx context.Context, milestoneID, paymentID string) error {
	res := s.db.WithContext(ctx).Model(&models.Milestone{}).
		Where("id = ? AND payment_id IS NULL", milestoneID).
		Update("payment_id", paymentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetMilestone(ctx, milestoneID); err != nil {
			return err
		}
		return marketerrors.ErrAlreadyReleased
	}
	return nil
}

// Payments

func (s *GormStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return marketerrors.ErrAlreadyFunded
		}
		return err
	}
	return nil
}

func (s *GormStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, marketerrors.ErrPaymentNotFound)
	}
	return &p, nil
}

func (s *GormStore) MarkPaymentRefunded(ctx context.Context, id string, from models.PaymentStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", models.PaymentRefunded)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetPayment(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: payment no longer in status %s", marketerrors.ErrConflict, from)
	}
	return nil
}

func (s *GormStore) ListPayments(ctx context.Context, projectID string) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (s *GormStore) HasLiveDeposit(ctx context.Context, projectID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("project_id = ? AND type = ? AND status IN ?", projectID, models.PaymentDeposit,
			[]models.PaymentStatus{models.PaymentAuthorized, models.PaymentHeldInEscrow}).
		Count(&count).Error
	return count > 0, err
}

// SumPayments totals payment amounts in the given status. REFUND rows are
// excluded so a refunded original does not count twice once its status flips.
func (s *GormStore) SumPayments(ctx context.Context, projectID string, status models.PaymentStatus) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("project_id = ? AND status = ? AND type <> ?", projectID, status, models.PaymentRefund).
		Scan(&total).Error
	return total, err
}
