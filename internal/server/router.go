package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bid4service/internal/models"
	"bid4service/services/marketplace/handler"
)

// SetupRouter builds the HTTP surface. All marketplace routes require a
// bearer token; /health stays open for probes.
func SetupRouter(
	jwtSecret string,
	biddingHandler *handler.BiddingHandler,
	projectHandler *handler.ProjectHandler,
	paymentHandler *handler.PaymentHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/")
	api.Use(AuthRequired(jwtSecret))

	jobs := api.Group("/jobs")
	{
		jobs.POST("", RequireRole(models.RoleCustomer, models.RoleAdmin), biddingHandler.CreateJobHandler)
		jobs.GET("", biddingHandler.ListOpenJobsHandler)
		jobs.GET("/:job_id", biddingHandler.GetJobHandler)
		jobs.POST("/:job_id/cancel", biddingHandler.CancelJobHandler)
		jobs.POST("/:job_id/bids", RequireRole(models.RoleProvider), biddingHandler.SubmitBidHandler)
		jobs.GET("/:job_id/bids", biddingHandler.ListJobBidsHandler)
	}

	bids := api.Group("/bids")
	{
		bids.PUT("/:bid_id", RequireRole(models.RoleProvider), biddingHandler.UpdateBidHandler)
		bids.POST("/:bid_id/withdraw", RequireRole(models.RoleProvider), biddingHandler.WithdrawBidHandler)
		bids.POST("/:bid_id/accept", RequireRole(models.RoleCustomer, models.RoleAdmin), biddingHandler.AcceptBidHandler)
		bids.POST("/:bid_id/reject", RequireRole(models.RoleCustomer, models.RoleAdmin), biddingHandler.RejectBidHandler)
		bids.POST("/:bid_id/viewed", RequireRole(models.RoleCustomer, models.RoleAdmin), biddingHandler.MarkBidViewedHandler)
	}

	api.GET("/providers/:provider_id/bids", biddingHandler.ListProviderBidsHandler)

	projects := api.Group("/projects")
	{
		projects.GET("/:project_id", projectHandler.GetProjectHandler)
		projects.POST("/:project_id/cancel", projectHandler.CancelProjectHandler)
		projects.POST("/:project_id/request-completion", RequireRole(models.RoleProvider), projectHandler.RequestCompletionHandler)
		projects.POST("/:project_id/milestones", projectHandler.CreateMilestoneHandler)
		projects.GET("/:project_id/milestones", projectHandler.ListMilestonesHandler)
		projects.GET("/:project_id/payments", paymentHandler.ListPaymentsHandler)
		projects.GET("/:project_id/escrow", paymentHandler.EscrowBalanceHandler)
	}

	milestones := api.Group("/milestones")
	{
		milestones.POST("/:milestone_id/start", RequireRole(models.RoleProvider), projectHandler.StartMilestoneHandler)
		milestones.POST("/:milestone_id/complete", RequireRole(models.RoleProvider), projectHandler.CompleteMilestoneHandler)
		milestones.POST("/:milestone_id/approve", RequireRole(models.RoleCustomer, models.RoleAdmin), projectHandler.ApproveMilestoneHandler)
		milestones.POST("/:milestone_id/reject", RequireRole(models.RoleCustomer, models.RoleAdmin), projectHandler.RejectMilestoneHandler)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/escrow", RequireRole(models.RoleCustomer, models.RoleAdmin), paymentHandler.FundEscrowHandler)
		payments.POST("/release-milestone", RequireRole(models.RoleCustomer, models.RoleAdmin), paymentHandler.ReleaseMilestoneHandler)
		payments.POST("/release-final", RequireRole(models.RoleCustomer, models.RoleAdmin), paymentHandler.ReleaseFinalHandler)
		payments.POST("/refund", RequireRole(models.RoleCustomer, models.RoleAdmin), paymentHandler.RefundHandler)
	}

	return router
}
