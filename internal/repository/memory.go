package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
)

// memState holds every table of the in-memory ledger. Values are stored by
// copy so callers never alias internal state.
type memState struct {
	users      map[string]models.User
	jobs       map[string]models.Job
	bids       map[string]models.Bid
	projects   map[string]models.Project
	milestones map[string]models.Milestone
	payments   map[string]models.Payment
}

func newMemState() *memState {
	return &memState{
		users:      make(map[string]models.User),
		jobs:       make(map[string]models.Job),
		bids:       make(map[string]models.Bid),
		projects:   make(map[string]models.Project),
		milestones: make(map[string]models.Milestone),
		payments:   make(map[string]models.Payment),
	}
}

func cloneTable[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (st *memState) clone() *memState {
	return &memState{
		users:      cloneTable(st.users),
		jobs:       cloneTable(st.jobs),
		bids:       cloneTable(st.bids),
		projects:   cloneTable(st.projects),
		milestones: cloneTable(st.milestones),
		payments:   cloneTable(st.payments),
	}
}

// MemoryStore is a concurrency-safe in-memory LedgerStore. It honors the same
// uniqueness constraints and conditional updates as the Postgres store, so the
// workflow's concurrency properties can be exercised without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	state *memState
	inTx  bool
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newMemState()}
}

// Transact serializes the callback under the store lock. The state is
// snapshotted first and restored if fn returns an error, so the transaction
// commits fully or not at all. Nested calls join the enclosing transaction.
func (s *MemoryStore) Transact(ctx context.Context, fn func(LedgerStore) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	tx := &MemoryStore{state: s.state, inTx: true}
	if err := fn(tx); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *MemoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) rlock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// Users

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	defer s.rlock()()
	u, ok := s.state.users[id]
	if !ok {
		return nil, marketerrors.ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryStore) SaveUser(ctx context.Context, u *models.User) error {
	defer s.lock()()
	s.state.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) AddUserStats(ctx context.Context, userID string, delta StatsDelta) error {
	defer s.lock()()
	u := s.state.users[userID]
	u.ID = userID
	u.TotalSpent += delta.Spent
	u.TotalEarned += delta.Earned
	u.TotalProjectsCompleted += delta.ProjectsCompleted
	u.BidsWon += delta.BidsWon
	s.state.users[userID] = u
	return nil
}

// Jobs

func (s *MemoryStore) CreateJob(ctx context.Context, j *models.Job) error {
	defer s.lock()()
	s.state.jobs[j.ID] = *j
	return nil
}

func (s *MemoryStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	defer s.rlock()()
	j, ok := s.state.jobs[id]
	if !ok {
		return nil, marketerrors.ErrJobNotFound
	}
	return &j, nil
}

// GetJobForUpdate is equivalent to GetJob here: the transaction already holds
// the store-wide lock, which subsumes a row lock.
func (s *MemoryStore) GetJobForUpdate(ctx context.Context, id string) (*models.Job, error) {
	return s.GetJob(ctx, id)
}

func (s *MemoryStore) UpdateJob(ctx context.Context, j *models.Job) error {
	defer s.lock()()
	if _, ok := s.state.jobs[j.ID]; !ok {
		return marketerrors.ErrJobNotFound
	}
	s.state.jobs[j.ID] = *j
	return nil
}

func (s *MemoryStore) ListOpenJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	defer s.rlock()()
	jobs := []models.Job{}
	for _, j := range s.state.jobs {
		if j.Status == models.JobOpen || j.Status == models.JobInBidding {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
	return paginate(jobs, limit, offset), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// Bids

func (s *MemoryStore) CreateBid(ctx context.Context, b *models.Bid) error {
	defer s.lock()()
	for _, existing := range s.state.bids {
		if existing.JobID == b.JobID && existing.ProviderID == b.ProviderID && existing.Status != models.BidWithdrawn {
			return marketerrors.ErrDuplicateBid
		}
	}
	s.state.bids[b.ID] = *b
	return nil
}

func (s *MemoryStore) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	defer s.rlock()()
	b, ok := s.state.bids[id]
	if !ok {
		return nil, marketerrors.ErrBidNotFound
	}
	return &b, nil
}

func (s *MemoryStore) UpdateBid(ctx context.Context, b *models.Bid) error {
	defer s.lock()()
	if _, ok := s.state.bids[b.ID]; !ok {
		return marketerrors.ErrBidNotFound
	}
	s.state.bids[b.ID] = *b
	return nil
}

func (s *MemoryStore) ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error) {
	defer s.rlock()()
	bids := []models.Bid{}
	for _, b := range s.state.bids {
		if b.JobID == jobID {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, k int) bool { return bids[i].CreatedAt.Before(bids[k].CreatedAt) })
	return bids, nil
}

func (s *MemoryStore) ListBidsByProvider(ctx context.Context, providerID string) ([]models.Bid, error) {
	defer s.rlock()()
	bids := []models.Bid{}
	for _, b := range s.state.bids {
		if b.ProviderID == providerID {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, k int) bool { return bids[i].CreatedAt.After(bids[k].CreatedAt) })
	return bids, nil
}

func (s *MemoryStore) HasLiveBid(ctx context.Context, jobID, providerID string) (bool, error) {
	defer s.rlock()()
	for _, b := range s.state.bids {
		if b.JobID == jobID && b.ProviderID == providerID && b.Status != models.BidWithdrawn {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) RejectPendingBids(ctx context.Context, jobID, exceptBidID string) (int64, error) {
	defer s.lock()()
	var n int64
	for id, b := range s.state.bids {
		if b.JobID == jobID && b.ID != exceptBidID && b.Status == models.BidPending {
			b.Status = models.BidRejected
			s.state.bids[id] = b
			n++
		}
	}
	return n, nil
}

// Projects

func (s *MemoryStore) CreateProject(ctx context.Context, p *models.Project) error {
	defer s.lock()()
	for _, existing := range s.state.projects {
		if existing.JobID == p.JobID {
			return fmt.Errorf("%w: job already has a project", marketerrors.ErrConflict)
		}
	}
	s.state.projects[p.ID] = *p
	return nil
}

func (s *MemoryStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	defer s.rlock()()
	p, ok := s.state.projects[id]
	if !ok {
		return nil, marketerrors.ErrProjectNotFound
	}
	return &p, nil
}

// GetProjectForUpdate is equivalent to GetProject here: the transaction
// already holds the store-wide lock, which subsumes a row lock.
func (s *MemoryStore) GetProjectForUpdate(ctx context.Context, id string) (*models.Project, error) {
	return s.GetProject(ctx, id)
}

func (s *MemoryStore) GetProjectByJob(ctx context.Context, jobID string) (*models.Project, error) {
	defer s.rlock()()
	for _, p := range s.state.projects {
		if p.JobID == jobID {
			return &p, nil
		}
	}
	return nil, marketerrors.ErrProjectNotFound
}

func (s *MemoryStore) UpdateProject(ctx context.Context, p *models.Project) error {
	defer s.lock()()
	if _, ok := s.state.projects[p.ID]; !ok {
		return marketerrors.ErrProjectNotFound
	}
	s.state.projects[p.ID] = *p
	return nil
}

// Milestones

func (s *MemoryStore) CreateMilestone(ctx context.Context, m *models.Milestone) error {
	defer s.lock()()
	s.state.milestones[m.ID] = *m
	return nil
}

func (s *MemoryStore) GetMilestone(ctx context.Context, id string) (*models.Milestone, error) {
	defer s.rlock()()
	m, ok := s.state.milestones[id]
	if !ok {
		return nil, marketerrors.ErrMilestoneNotFound
	}
	return &m, nil
}

func (s *MemoryStore) UpdateMilestone(ctx context.Context, m *models.Milestone) error {
	defer s.lock()()
	if _, ok := s.state.milestones[m.ID]; !ok {
		return marketerrors.ErrMilestoneNotFound
	}
	s.state.milestones[m.ID] = *m
	return nil
}

func (s *MemoryStore) ListMilestones(ctx context.Context, projectID string) ([]models.Milestone, error) {
	defer s.rlock()()
	milestones := []models.Milestone{}
	for _, m := range s.state.milestones {
		if m.ProjectID == projectID {
			milestones = append(milestones, m)
		}
	}
	sort.Slice(milestones, func(i, k int) bool { return milestones[i].Order < milestones[k].Order })
	return milestones, nil
}

func (s *MemoryStore) SumMilestoneAmounts(ctx context.Context, projectID string) (float64, error) {
	defer s.rlock()()
	var total float64
	for _, m := range s.state.milestones {
		if m.ProjectID == projectID && m.Status != models.MilestoneRejected {
			total += m.Amount
		}
	}
	return total, nil
}

func (s *MemoryStore) LinkMilestonePayment(ctx context.Context, milestoneID, paymentID string) error {
	defer s.lock()()
	m, ok := s.state.milestones[milestoneID]
	if !ok {
		return marketerrors.ErrMilestoneNotFound
	}
	if m.PaymentID != nil {
		return marketerrors.ErrAlreadyReleased
	}
	m.PaymentID = &paymentID
	s.state.milestones[milestoneID] = m
	return nil
}

// Payments

func (s *MemoryStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	defer s.lock()()
	if p.Type == models.PaymentDeposit {
		for _, existing := range s.state.payments {
			if existing.ProjectID == p.ProjectID && existing.Type == models.PaymentDeposit &&
				(existing.Status == models.PaymentAuthorized || existing.Status == models.PaymentHeldInEscrow) {
				return marketerrors.ErrAlreadyFunded
			}
		}
	}
	s.state.payments[p.ID] = *p
	return nil
}

func (s *MemoryStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	defer s.rlock()()
	p, ok := s.state.payments[id]
	if !ok {
		return nil, marketerrors.ErrPaymentNotFound
	}
	return &p, nil
}

func (s *MemoryStore) MarkPaymentRefunded(ctx context.Context, id string, from models.PaymentStatus) error {
	defer s.lock()()
	p, ok := s.state.payments[id]
	if !ok {
		return marketerrors.ErrPaymentNotFound
	}
	if p.Status != from {
		return fmt.Errorf("%w: payment no longer in status %s", marketerrors.ErrConflict, from)
	}
	p.Status = models.PaymentRefunded
	s.state.payments[id] = p
	return nil
}

func (s *MemoryStore) ListPayments(ctx context.Context, projectID string) ([]models.Payment, error) {
	defer s.rlock()()
	payments := []models.Payment{}
	for _, p := range s.state.payments {
		if p.ProjectID == projectID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, k int) bool { return payments[i].CreatedAt.Before(payments[k].CreatedAt) })
	return payments, nil
}

func (s *MemoryStore) HasLiveDeposit(ctx context.Context, projectID string) (bool, error) {
	defer s.rlock()()
	for _, p := range s.state.payments {
		if p.ProjectID == projectID && p.Type == models.PaymentDeposit &&
			(p.Status == models.PaymentAuthorized || p.Status == models.PaymentHeldInEscrow) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) SumPayments(ctx context.Context, projectID string, status models.PaymentStatus) (float64, error) {
	defer s.rlock()()
	var total float64
	for _, p := range s.state.payments {
		if p.ProjectID == projectID && p.Status == status && p.Type != models.PaymentRefund {
			total += p.Amount
		}
	}
	return total, nil
}
