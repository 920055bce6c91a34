package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bid4service/internal/models"
	"bid4service/services/marketplace/helpers"
	"bid4service/utils"
)

//go:generate mockgen -source=project_handler.go -destination=mock_project_handler.go -package=handler

type ProjectServiceInterface interface {
	GetProject(ctx context.Context, projectID, callerID string, isAdmin bool) (models.Project, error)
	CreateMilestone(ctx context.Context, projectID, callerID, title string, amount float64, order int) (models.Milestone, error)
	ListMilestones(ctx context.Context, projectID, callerID string, isAdmin bool) ([]models.Milestone, error)
	StartMilestone(ctx context.Context, milestoneID, providerID string) (models.Milestone, error)
	CompleteMilestone(ctx context.Context, milestoneID, providerID, note string) (models.Milestone, error)
	ApproveMilestone(ctx context.Context, milestoneID, customerID string) (models.Milestone, error)
	RejectMilestone(ctx context.Context, milestoneID, customerID, reason string) (models.Milestone, error)
	RequestCompletion(ctx context.Context, projectID, providerID string) (models.Project, error)
	CancelProject(ctx context.Context, projectID, callerID string, isAdmin bool) (models.Project, error)
}

type ProjectHandler struct {
	service ProjectServiceInterface
}

func NewProjectHandler(service ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)
	fields["error"] = err.Error()
	utils.Warn(handlerName+": request failed", fields)
}

// GetProjectHandler handles GET /projects/:project_id
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, role := helpers.CurrentUser(c)

	project, err := h.service.GetProject(c.Request.Context(), projectID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "GetProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, project, "project retrieved successfully")
}

// CreateMilestoneHandler handles POST /projects/:project_id/milestones
func (h *ProjectHandler) CreateMilestoneHandler(c *gin.Context) {
	var req helpers.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateMilestoneHandler", err)
		return
	}
	projectID := c.Param("project_id")
	userID, _ := helpers.CurrentUser(c)

	milestone, err := h.service.CreateMilestone(c.Request.Context(), projectID, userID, req.Title, req.Amount, req.Order)
	if err != nil {
		h.fail(c, "CreateMilestoneHandler", err, map[string]any{"project_id": projectID, "caller_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, milestone, "milestone created successfully")
	helpers.LogSuccess("CreateMilestoneHandler", "milestone created successfully", map[string]any{
		"milestone_id": milestone.ID,
		"project_id":   projectID,
		"amount":       milestone.Amount,
	})
}

// ListMilestonesHandler handles GET /projects/:project_id/milestones
func (h *ProjectHandler) ListMilestonesHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, role := helpers.CurrentUser(c)

	milestones, err := h.service.ListMilestones(c.Request.Context(), projectID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "ListMilestonesHandler", err, map[string]any{"project_id": projectID})
		return
	}
	if milestones == nil {
		milestones = []models.Milestone{}
	}
	utils.JSONResponse(c, http.StatusOK, milestones, "milestones retrieved successfully")
}

// StartMilestoneHandler handles POST /milestones/:milestone_id/start
func (h *ProjectHandler) StartMilestoneHandler(c *gin.Context) {
	milestoneID := c.Param("milestone_id")
	userID, _ := helpers.CurrentUser(c)

	milestone, err := h.service.StartMilestone(c.Request.Context(), milestoneID, userID)
	if err != nil {
		h.fail(c, "StartMilestoneHandler", err, map[string]any{"milestone_id": milestoneID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, milestone, "milestone started successfully")
	helpers.LogSuccess("StartMilestoneHandler", "milestone started successfully", map[string]any{"milestone_id": milestoneID})
}

// CompleteMilestoneHandler handles POST /milestones/:milestone_id/complete
func (h *ProjectHandler) CompleteMilestoneHandler(c *gin.Context) {
	var req helpers.CompleteMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CompleteMilestoneHandler", err)
		return
	}
	milestoneID := c.Param("milestone_id")
	userID, _ := helpers.CurrentUser(c)

	milestone, err := h.service.CompleteMilestone(c.Request.Context(), milestoneID, userID, req.Note)
	if err != nil {
		h.fail(c, "CompleteMilestoneHandler", err, map[string]any{"milestone_id": milestoneID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, milestone, "milestone submitted for approval")
	helpers.LogSuccess("CompleteMilestoneHandler", "milestone submitted for approval", map[string]any{"milestone_id": milestoneID})
}

// ApproveMilestoneHandler handles POST /milestones/:milestone_id/approve
func (h *ProjectHandler) ApproveMilestoneHandler(c *gin.Context) {
	milestoneID := c.Param("milestone_id")
	userID, _ := helpers.CurrentUser(c)

	milestone, err := h.service.ApproveMilestone(c.Request.Context(), milestoneID, userID)
	if err != nil {
		h.fail(c, "ApproveMilestoneHandler", err, map[string]any{"milestone_id": milestoneID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, milestone, "milestone approved successfully")
	helpers.LogSuccess("ApproveMilestoneHandler", "milestone approved successfully", map[string]any{"milestone_id": milestoneID})
}

// RejectMilestoneHandler handles POST /milestones/:milestone_id/reject
func (h *ProjectHandler) RejectMilestoneHandler(c *gin.Context) {
	var req helpers.RejectMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RejectMilestoneHandler", err)
		return
	}
	milestoneID := c.Param("milestone_id")
	userID, _ := helpers.CurrentUser(c)

	milestone, err := h.service.RejectMilestone(c.Request.Context(), milestoneID, userID, req.Reason)
	if err != nil {
		h.fail(c, "RejectMilestoneHandler", err, map[string]any{"milestone_id": milestoneID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, milestone, "milestone rejected")
	helpers.LogSuccess("RejectMilestoneHandler", "milestone rejected", map[string]any{
		"milestone_id": milestoneID,
		"reason":       req.Reason,
	})
}

// RequestCompletionHandler handles POST /projects/:project_id/request-completion
func (h *ProjectHandler) RequestCompletionHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, _ := helpers.CurrentUser(c)

	project, err := h.service.RequestCompletion(c.Request.Context(), projectID, userID)
	if err != nil {
		h.fail(c, "RequestCompletionHandler", err, map[string]any{"project_id": projectID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, project, "completion requested")
	helpers.LogSuccess("RequestCompletionHandler", "completion requested", map[string]any{"project_id": projectID})
}

// CancelProjectHandler handles POST /projects/:project_id/cancel
func (h *ProjectHandler) CancelProjectHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, role := helpers.CurrentUser(c)

	project, err := h.service.CancelProject(c.Request.Context(), projectID, userID, helpers.IsAdmin(role))
	if err != nil {
		h.fail(c, "CancelProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, project, "project cancelled")
	helpers.LogSuccess("CancelProjectHandler", "project cancelled", map[string]any{"project_id": projectID})
}
