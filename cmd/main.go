package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"autoinsight/yardhub/internal/config"
	"autoinsight/yardhub/internal/handler"
	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
	"autoinsight/yardhub/internal/service"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize repositories
	yardRepo := repository.NewPGYardRepository(db)
	inviteRepo := repository.NewPGInviteRepository(db)
	employeeRepo := repository.NewPGEmployeeRepository(db)
	vehicleRepo := repository.NewPGVehicleRepository(db)
	modelRepo := repository.NewPGVehicleModelRepository(db)
	yardVehicleRepo := repository.NewPGYardVehicleRepository(db)

	// 6. Initialize services
	yardService := service.NewYardService(yardRepo)
	inviteService := service.NewInviteService(inviteRepo, yardRepo)
	employeeService := service.NewEmployeeService(employeeRepo, yardRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, modelRepo)
	yardVehicleService := service.NewYardVehicleService(yardRepo, yardVehicleRepo, vehicleRepo, modelRepo)

	// 7. Initialize handlers
	yardHandler := handler.NewYardHandler(yardService, logger)
	inviteHandler := handler.NewInviteHandler(inviteService, logger)
	employeeHandler := handler.NewEmployeeHandler(employeeService, logger)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, logger)
	yardVehicleHandler := handler.NewYardVehicleHandler(yardVehicleService, logger)

	// 8. Setup router
	router := handler.SetupRouter(cfg, logger, yardHandler, inviteHandler, employeeHandler, vehicleHandler, yardVehicleHandler)

	// 9. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 10. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
