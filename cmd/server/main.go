package main

import (
	"fmt"
	"log"
	"os"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/api"
	"github.com/milewise/mile_go_server/internal/api/handler"
	"github.com/milewise/mile_go_server/internal/database"
	"github.com/milewise/mile_go_server/internal/repository"
	"github.com/milewise/mile_go_server/internal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connected")

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	tripRepo := repository.NewTripRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg)
	entitlementService := service.NewEntitlementService(subscriptionRepo, tripRepo, cfg)
	vehicleService := service.NewVehicleService(vehicleRepo)
	tripService := service.NewTripService(tripRepo, entitlementService)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(tripRepo, expenseRepo, cfg)

	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	tripHandler := handler.NewTripHandler(tripService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService)
	subscriptionHandler := handler.NewSubscriptionHandler(entitlementService, cfg)

	router := api.NewRouter(
		authHandler,
		vehicleHandler,
		tripHandler,
		expenseHandler,
		reportHandler,
		subscriptionHandler,
		authService,
		cfg,
	)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
