package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
	"bid4service/services/marketplace/helpers"
)

// Test CreateMilestoneHandler
func TestCreateMilestoneHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(service *MockProjectServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.CreateMilestoneRequest{
				Title:  "demolition",
				Amount: 200,
				Order:  1,
			},
			mockSetup: func(service *MockProjectServiceInterface) {
				service.EXPECT().
					CreateMilestone(gomock.Any(), "proj1", "cust1", "demolition", 200.0, 1).
					Return(models.Milestone{
						ID:        uuid.NewString(),
						ProjectID: "proj1",
						Title:     "demolition",
						Amount:    200,
						Order:     1,
						Status:    models.MilestonePending,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "milestone created successfully",
		},
		{
			name: "zero_amount_rejected_by_binding",
			requestBody: helpers.CreateMilestoneRequest{
				Title: "demolition",
			},
			mockSetup:      func(service *MockProjectServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "over_allocation",
			requestBody: helpers.CreateMilestoneRequest{
				Title:  "extras",
				Amount: 300,
				Order:  3,
			},
			mockSetup: func(service *MockProjectServiceInterface) {
				service.EXPECT().
					CreateMilestone(gomock.Any(), "proj1", "cust1", "extras", 300.0, 3).
					Return(models.Milestone{}, marketerrors.ErrEscrowExceeded)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "amount exceeds the agreed contract",
		},
		{
			name: "project_missing",
			requestBody: helpers.CreateMilestoneRequest{
				Title:  "demolition",
				Amount: 200,
			},
			mockSetup: func(service *MockProjectServiceInterface) {
				service.EXPECT().
					CreateMilestone(gomock.Any(), "proj1", "cust1", "demolition", 200.0, 0).
					Return(models.Milestone{}, marketerrors.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockProjectServiceInterface(ctrl)
			h := NewProjectHandler(mockService)
			tc.mockSetup(mockService)

			router := gin.New()
			router.POST("/projects/:project_id/milestones", asUser("cust1", models.RoleCustomer), h.CreateMilestoneHandler)

			w, envelope := performJSON(t, router, http.MethodPost, "/projects/proj1/milestones", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, envelope["message"])
		})
	}
}

// Test the milestone review endpoints
func TestMilestoneReviewHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve_success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockService := NewMockProjectServiceInterface(ctrl)
		h := NewProjectHandler(mockService)

		mockService.EXPECT().
			ApproveMilestone(gomock.Any(), "ms1", "cust1").
			Return(models.Milestone{ID: "ms1", Status: models.MilestoneApproved}, nil)

		router := gin.New()
		router.POST("/milestones/:milestone_id/approve", asUser("cust1", models.RoleCustomer), h.ApproveMilestoneHandler)

		w, envelope := performJSON(t, router, http.MethodPost, "/milestones/ms1/approve", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "milestone approved successfully", envelope["message"])
		data := envelope["data"].(map[string]any)
		require.Equal(t, string(models.MilestoneApproved), data["status"])
	})

	t.Run("approve_not_pending_approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockService := NewMockProjectServiceInterface(ctrl)
		h := NewProjectHandler(mockService)

		mockService.EXPECT().
			ApproveMilestone(gomock.Any(), "ms1", "cust1").
			Return(models.Milestone{}, marketerrors.ErrConflict)

		router := gin.New()
		router.POST("/milestones/:milestone_id/approve", asUser("cust1", models.RoleCustomer), h.ApproveMilestoneHandler)

		w, envelope := performJSON(t, router, http.MethodPost, "/milestones/ms1/approve", nil)
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "operation conflicts with current state", envelope["message"])
	})

	t.Run("reject_requires_reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockService := NewMockProjectServiceInterface(ctrl)
		h := NewProjectHandler(mockService)

		router := gin.New()
		router.POST("/milestones/:milestone_id/reject", asUser("cust1", models.RoleCustomer), h.RejectMilestoneHandler)

		w, envelope := performJSON(t, router, http.MethodPost, "/milestones/ms1/reject",
			map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid request payload", envelope["message"])
	})

	t.Run("reject_with_reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockService := NewMockProjectServiceInterface(ctrl)
		h := NewProjectHandler(mockService)

		mockService.EXPECT().
			RejectMilestone(gomock.Any(), "ms1", "cust1", "tiles are cracked").
			Return(models.Milestone{ID: "ms1", Status: models.MilestoneRejected, RejectionReason: "tiles are cracked"}, nil)

		router := gin.New()
		router.POST("/milestones/:milestone_id/reject", asUser("cust1", models.RoleCustomer), h.RejectMilestoneHandler)

		w, envelope := performJSON(t, router, http.MethodPost, "/milestones/ms1/reject",
			helpers.RejectMilestoneRequest{Reason: "tiles are cracked"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "milestone rejected", envelope["message"])
	})
}

// Test RequestCompletionHandler
func TestRequestCompletionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockService := NewMockProjectServiceInterface(ctrl)
		h := NewProjectHandler(mockService)

		mockService.EXPECT().
			RequestCompletion(gomock.Any(), "proj1", "prov1").
			Return(models.Project{ID: "proj1", Status: models.ProjectPendingApproval}, nil)

		router := gin.New()
		router.POST("/projects/:project_id/request-completion", asUser("prov1", models.RoleProvider), h.RequestCompletionHandler)

		w, envelope := performJSON(t, router, http.MethodPost, "/projects/proj1/request-completion", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := envelope["data"].(map[string]any)
		require.Equal(t, string(models.ProjectPendingApproval), data["status"])
	})

	t.Run("unfunded_project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockService := NewMockProjectServiceInterface(ctrl)
		h := NewProjectHandler(mockService)

		mockService.EXPECT().
			RequestCompletion(gomock.Any(), "proj1", "prov1").
			Return(models.Project{}, marketerrors.ErrConflict)

		router := gin.New()
		router.POST("/projects/:project_id/request-completion", asUser("prov1", models.RoleProvider), h.RequestCompletionHandler)

		w, _ := performJSON(t, router, http.MethodPost, "/projects/proj1/request-completion", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
