package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bid4service/internal/models"
	"bid4service/services/marketplace/helpers"
	"bid4service/utils"
)

//go:generate mockgen -source=payment_handler.go -destination=mock_payment_handler.go -package=handler

type EscrowServiceInterface interface {
	FundEscrow(ctx context.Context, projectID, customerID, paymentMethodRef string) (models.Payment, error)
	ReleaseMilestonePayment(ctx context.Context, milestoneID, customerID string) (models.Payment, error)
	RequestRefund(ctx context.Context, paymentID, requesterID, reason string) (models.Payment, error)
	ListProjectPayments(ctx context.Context, projectID, callerID string, isAdmin bool) ([]models.Payment, error)
	Balance(ctx context.Context, projectID, callerID string, isAdmin bool) (models.EscrowBalance, error)
}

type PaymentHandler struct {
	service      EscrowServiceInterface
	orchestrator OrchestratorInterface
}

func NewPaymentHandler(service EscrowServiceInterface, orchestrator OrchestratorInterface) *PaymentHandler {
	return &PaymentHandler{service: service, orchestrator: orchestrator}
}

func (h *PaymentHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)
	fields["error"] = err.Error()
	utils.Warn(handlerName+": request failed", fields)
}

// FundEscrowHandler handles POST /payments/escrow
func (h *PaymentHandler) FundEscrowHandler(c *gin.Context) {
	var req helpers.FundEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FundEscrowHandler", err)
		return
	}
	userID, _ := helpers.CurrentUser(c)

	payment, err := h.service.FundEscrow(c.Request.Context(), req.ProjectID, userID, req.PaymentMethodRef)
	if err != nil {
		h.fail(c, "FundEscrowHandler", err, map[string]any{"project_id": req.ProjectID, "customer_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, payment, "escrow funded successfully")
	helpers.LogSuccess("FundEscrowHandler", "escrow funded successfully", map[string]any{
		"payment_id": payment.ID,
		"project_id": req.ProjectID,
		"amount":     payment.Amount,
	})
}

// ReleaseMilestoneHandler handles POST /payments/release-milestone
func (h *PaymentHandler) ReleaseMilestoneHandler(c *gin.Context) {
	var req helpers.ReleaseMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReleaseMilestoneHandler", err)
		return
	}
	userID, _ := helpers.CurrentUser(c)

	payment, err := h.service.ReleaseMilestonePayment(c.Request.Context(), req.MilestoneID, userID)
	if err != nil {
		h.fail(c, "ReleaseMilestoneHandler", err, map[string]any{"milestone_id": req.MilestoneID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, payment, "milestone payment released")
	helpers.LogSuccess("ReleaseMilestoneHandler", "milestone payment released", map[string]any{
		"payment_id":   payment.ID,
		"milestone_id": req.MilestoneID,
		"amount":       payment.Amount,
	})
}

// ReleaseFinalHandler handles POST /payments/release-final
func (h *PaymentHandler) ReleaseFinalHandler(c *gin.Context) {
	var req helpers.ReleaseFinalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReleaseFinalHandler", err)
		return
	}
	userID, _ := helpers.CurrentUser(c)

	payment, err := h.orchestrator.ReleaseFinalPayment(c.Request.Context(), req.ProjectID, userID)
	if err != nil {
		h.fail(c, "ReleaseFinalHandler", err, map[string]any{"project_id": req.ProjectID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, payment, "final payment released")
	helpers.LogSuccess("ReleaseFinalHandler", "final payment released", map[string]any{
		"payment_id": payment.ID,
		"project_id": req.ProjectID,
		"amount":     payment.Amount,
	})
}

// RefundHandler handles POST /payments/refund
func (h *PaymentHandler) RefundHandler(c *gin.Context) {
	var req helpers.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RefundHandler", err)
		return
	}
	userID, _ := helpers.CurrentUser(c)

	payment, err := h.service.RequestRefund(c.Request.Context(), req.PaymentID, userID, req.Reason)
	if err != nil {
		h.fail(c, "RefundHandler", err, map[string]any{"payment_id": req.PaymentID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, payment, "payment refunded")
	helpers.LogSuccess("RefundHandler", "payment refunded", map[string]any{
		"payment_id": req.PaymentID,
		"refund_id":  payment.ID,
		"reason":     req.Reason,
	})
}

// ListPaymentsHandler handles GET /projects/:project_id/payments
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, role := helpers.CurrentUser(c)

	payments, err := h.service.ListProjectPayments(c.Request.Context(), projectID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "ListPaymentsHandler", err, map[string]any{"project_id": projectID})
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	utils.JSONResponse(c, http.StatusOK, payments, "payments retrieved successfully")
}

// EscrowBalanceHandler handles GET /projects/:project_id/escrow
func (h *PaymentHandler) EscrowBalanceHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, role := helpers.CurrentUser(c)

	balance, err := h.service.Balance(c.Request.Context(), projectID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "EscrowBalanceHandler", err, map[string]any{"project_id": projectID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, balance, "escrow balance retrieved successfully")
}
