package main

import (
	bidding "bid4service/internal/biddingService"
	"bid4service/internal/config"
	escrow "bid4service/internal/escrowService"
	"bid4service/internal/gateway"
	"bid4service/internal/notify"
	"bid4service/internal/orchestrator"
	project "bid4service/internal/projectService"
	"bid4service/internal/repository"
	"bid4service/internal/server"
	"bid4service/services/marketplace/handler"
	"bid4service/utils"
)

func main() {
	cfg := config.Load()

	var store repository.LedgerStore
	if cfg.UseMemory {
		store = repository.NewMemoryStore()
		utils.Warn("running with in-memory ledger, data will not survive restarts", nil)
	} else {
		db, err := repository.OpenGorm(cfg.DBDSN)
		if err != nil {
			utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
		}
		store = repository.NewGormStore(db)
	}

	// Only the sandbox gateway ships today. GATEWAY_MODE=live is reserved
	// for a real processor integration.
	gw := gateway.NewSandbox()
	notifier := notify.NewLogNotifier()

	biddingService := bidding.NewBiddingService(store, notifier)
	projectService := project.NewProjectService(store, notifier)
	escrowService := escrow.NewEscrowService(store, gw, notifier)
	workflow := orchestrator.NewOrchestrator(store, gw, notifier)

	biddingHandler := handler.NewBiddingHandler(biddingService, workflow)
	projectHandler := handler.NewProjectHandler(projectService)
	paymentHandler := handler.NewPaymentHandler(escrowService, workflow)

	router := server.SetupRouter(cfg.JWTSecret, biddingHandler, projectHandler, paymentHandler)

	utils.Info("starting marketplace server", map[string]any{
		"port":         cfg.ServerPort,
		"gateway_mode": cfg.GatewayMode,
	})
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		utils.Fatal("server exited", map[string]any{"error": err.Error()})
	}
}
