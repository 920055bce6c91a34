package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	bidding "bid4service/internal/biddingService"
	"bid4service/internal/models"
	"bid4service/services/marketplace/helpers"
	"bid4service/utils"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	CreateJob(ctx context.Context, customerID, title, description string, startingBid float64, maxBudget *float64) (models.Job, error)
	GetJob(ctx context.Context, jobID string) (models.Job, error)
	ListOpenJobs(ctx context.Context, limit, offset int) ([]models.Job, error)
	CancelJob(ctx context.Context, jobID, callerID string, isAdmin bool) (models.Job, error)
	SubmitBid(ctx context.Context, jobID, providerID string, amount float64, proposal string, proposedStart *time.Time, estimatedDays *int) (models.Bid, error)
	UpdateBid(ctx context.Context, bidID, providerID string, patch bidding.BidPatch) (models.Bid, error)
	WithdrawBid(ctx context.Context, bidID, providerID string) (models.Bid, error)
	RejectBid(ctx context.Context, bidID, customerID string) (models.Bid, error)
	MarkBidViewed(ctx context.Context, bidID, customerID string) (models.Bid, error)
	ListJobBids(ctx context.Context, jobID, callerID string, isAdmin bool) ([]models.Bid, error)
	ListProviderBids(ctx context.Context, providerID, callerID string, isAdmin bool) ([]models.Bid, error)
}

type OrchestratorInterface interface {
	AcceptBid(ctx context.Context, bidID, customerID string) (models.Project, error)
	ReleaseFinalPayment(ctx context.Context, projectID, customerID string) (models.Payment, error)
}

type BiddingHandler struct {
	service      BiddingServiceInterface
	orchestrator OrchestratorInterface
}

func NewBiddingHandler(service BiddingServiceInterface, orchestrator OrchestratorInterface) *BiddingHandler {
	return &BiddingHandler{service: service, orchestrator: orchestrator}
}

func (h *BiddingHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)
	fields["error"] = err.Error()
	utils.Warn(handlerName+": request failed", fields)
}

// CreateJobHandler handles POST /jobs
func (h *BiddingHandler) CreateJobHandler(c *gin.Context) {
	var req helpers.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateJobHandler", err)
		return
	}
	userID, _ := helpers.CurrentUser(c)

	job, err := h.service.CreateJob(c.Request.Context(), userID, req.Title, req.Description, req.StartingBid, req.MaxBudget)
	if err != nil {
		h.fail(c, "CreateJobHandler", err, map[string]any{"customer_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, job, "job created successfully")
	helpers.LogSuccess("CreateJobHandler", "job created successfully", map[string]any{
		"job_id":      job.ID,
		"customer_id": userID,
	})
}

// GetJobHandler handles GET /jobs/:job_id
func (h *BiddingHandler) GetJobHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	job, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.fail(c, "GetJobHandler", err, map[string]any{"job_id": jobID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, job, "job retrieved successfully")
}

// ListOpenJobsHandler handles GET /jobs
func (h *BiddingHandler) ListOpenJobsHandler(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	jobs, err := h.service.ListOpenJobs(c.Request.Context(), limit, offset)
	if err != nil {
		h.fail(c, "ListOpenJobsHandler", err, map[string]any{})
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	utils.JSONResponse(c, http.StatusOK, jobs, "jobs retrieved successfully")
}

// CancelJobHandler handles POST /jobs/:job_id/cancel
func (h *BiddingHandler) CancelJobHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	userID, role := helpers.CurrentUser(c)

	job, err := h.service.CancelJob(c.Request.Context(), jobID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "CancelJobHandler", err, map[string]any{"job_id": jobID, "caller_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, job, "job cancelled successfully")
	helpers.LogSuccess("CancelJobHandler", "job cancelled successfully", map[string]any{"job_id": jobID})
}

// SubmitBidHandler handles POST /jobs/:job_id/bids
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}
	jobID := c.Param("job_id")
	userID, _ := helpers.CurrentUser(c)

	bid, err := h.service.SubmitBid(c.Request.Context(), jobID, userID, req.Amount, req.Proposal, req.ProposedStartDate, req.EstimatedDurationDays)
	if err != nil {
		h.fail(c, "SubmitBidHandler", err, map[string]any{"job_id": jobID, "provider_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":      bid.ID,
		"job_id":      jobID,
		"provider_id": userID,
		"amount":      bid.Amount,
	})
}

// UpdateBidHandler handles PUT /bids/:bid_id
func (h *BiddingHandler) UpdateBidHandler(c *gin.Context) {
	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}
	bidID := c.Param("bid_id")
	userID, _ := helpers.CurrentUser(c)

	bid, err := h.service.UpdateBid(c.Request.Context(), bidID, userID, bidding.BidPatch{
		Amount:                req.Amount,
		Proposal:              req.Proposal,
		ProposedStartDate:     req.ProposedStartDate,
		EstimatedDurationDays: req.EstimatedDurationDays,
	})
	if err != nil {
		h.fail(c, "UpdateBidHandler", err, map[string]any{"bid_id": bidID, "provider_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, bid, "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{"bid_id": bidID})
}

// WithdrawBidHandler handles POST /bids/:bid_id/withdraw
func (h *BiddingHandler) WithdrawBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID, _ := helpers.CurrentUser(c)

	bid, err := h.service.WithdrawBid(c.Request.Context(), bidID, userID)
	if err != nil {
		h.fail(c, "WithdrawBidHandler", err, map[string]any{"bid_id": bidID, "provider_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, bid, "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{"bid_id": bidID})
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *BiddingHandler) AcceptBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID, _ := helpers.CurrentUser(c)

	project, err := h.orchestrator.AcceptBid(c.Request.Context(), bidID, userID)
	if err != nil {
		h.fail(c, "AcceptBidHandler", err, map[string]any{"bid_id": bidID, "customer_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, project, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"bid_id":     bidID,
		"project_id": project.ID,
	})
}

// RejectBidHandler handles POST /bids/:bid_id/reject
func (h *BiddingHandler) RejectBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID, _ := helpers.CurrentUser(c)

	bid, err := h.service.RejectBid(c.Request.Context(), bidID, userID)
	if err != nil {
		h.fail(c, "RejectBidHandler", err, map[string]any{"bid_id": bidID, "customer_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, bid, "bid rejected successfully")
	helpers.LogSuccess("RejectBidHandler", "bid rejected successfully", map[string]any{"bid_id": bidID})
}

// MarkBidViewedHandler handles POST /bids/:bid_id/viewed
func (h *BiddingHandler) MarkBidViewedHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID, _ := helpers.CurrentUser(c)

	bid, err := h.service.MarkBidViewed(c.Request.Context(), bidID, userID)
	if err != nil {
		h.fail(c, "MarkBidViewedHandler", err, map[string]any{"bid_id": bidID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, bid, "bid marked viewed")
}

// ListJobBidsHandler handles GET /jobs/:job_id/bids
func (h *BiddingHandler) ListJobBidsHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	userID, role := helpers.CurrentUser(c)

	bids, err := h.service.ListJobBids(c.Request.Context(), jobID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "ListJobBidsHandler", err, map[string]any{"job_id": jobID, "caller_id": userID})
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// ListProviderBidsHandler handles GET /providers/:provider_id/bids
func (h *BiddingHandler) ListProviderBidsHandler(c *gin.Context) {
	providerID := c.Param("provider_id")
	userID, role := helpers.CurrentUser(c)

	bids, err := h.service.ListProviderBids(c.Request.Context(), providerID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "ListProviderBidsHandler", err, map[string]any{"provider_id": providerID})
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
