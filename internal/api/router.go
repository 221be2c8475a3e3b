package api

import (
	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/api/handler"
	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/service"
)

type Router struct {
	authHandler         *handler.AuthHandler
	vehicleHandler      *handler.VehicleHandler
	tripHandler         *handler.TripHandler
	expenseHandler      *handler.ExpenseHandler
	reportHandler       *handler.ReportHandler
	subscriptionHandler *handler.SubscriptionHandler
	authService         *service.AuthService
	cfg                 *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	vehicleHandler *handler.VehicleHandler,
	tripHandler *handler.TripHandler,
	expenseHandler *handler.ExpenseHandler,
	reportHandler *handler.ReportHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	authService *service.AuthService,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         authHandler,
		vehicleHandler:      vehicleHandler,
		tripHandler:         tripHandler,
		expenseHandler:      expenseHandler,
		reportHandler:       reportHandler,
		subscriptionHandler: subscriptionHandler,
		authService:         authService,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy", "database": "postgresql"})
		})

		// Public - session exchange and plan catalog
		api.POST("/auth/session", r.authHandler.ExchangeSession)
		api.GET("/subscription/plans", r.subscriptionHandler.ListPlans)

		// Everything below requires a valid session
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.authService))
		{
			auth := authenticated.Group("/auth")
			{
				auth.GET("/me", r.authHandler.Me)
				auth.POST("/logout", r.authHandler.Logout)
			}

			vehicles := authenticated.Group("/vehicles")
			{
				vehicles.POST("", r.vehicleHandler.Create)
				vehicles.GET("", r.vehicleHandler.List)
				vehicles.DELETE("/:id", r.vehicleHandler.Delete)
			}

			trips := authenticated.Group("/trips")
			{
				trips.POST("", r.tripHandler.Create)
				trips.GET("", r.tripHandler.List)
				trips.PUT("/:id", r.tripHandler.Update)
				trips.DELETE("/:id", r.tripHandler.Delete)
			}

			expenses := authenticated.Group("/expenses")
			{
				expenses.POST("", r.expenseHandler.Create)
				expenses.GET("", r.expenseHandler.List)
				expenses.DELETE("/:id", r.expenseHandler.Delete)
			}

			authenticated.GET("/dashboard/stats", r.reportHandler.Dashboard)
			authenticated.GET("/reports/tax", r.reportHandler.TaxReport)

			subscription := authenticated.Group("/subscription")
			{
				subscription.GET("/status", r.subscriptionHandler.GetStatus)
				subscription.POST("/plan", r.subscriptionHandler.ChangePlan)
				subscription.GET("/limits", r.subscriptionHandler.CheckLimit)
			}
		}
	}

	return engine
}
