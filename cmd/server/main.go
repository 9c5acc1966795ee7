package main

import (
	"log"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yolda/logistics-api/internal/config"
	"github.com/yolda/logistics-api/internal/database"
	"github.com/yolda/logistics-api/internal/handlers"
	"github.com/yolda/logistics-api/internal/middleware"
	"github.com/yolda/logistics-api/internal/repository"
	"github.com/yolda/logistics-api/internal/services"
	"github.com/yolda/logistics-api/internal/token"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	orgUserRepo := repository.NewOrgUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	loadRepo := repository.NewLoadRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	// Services
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	membershipService := services.NewMembershipService(orgUserRepo)
	authService := services.NewAuthService(userRepo, tokens)
	orgService := services.NewOrganizationService(orgRepo, userRepo, membershipService)
	vehicleService := services.NewVehicleService(vehicleRepo, membershipService)
	loadService := services.NewLoadService(loadRepo, addressRepo, membershipService)
	addressService := services.NewAddressService(addressRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	loadHandler := handlers.NewLoadHandler(loadService)
	addressHandler := handlers.NewAddressHandler(addressService)

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.RequireAuth(tokens, userRepo), authHandler.GetCurrentUser)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens, userRepo))
		{
			orgs := protected.Group("/orgs")
			{
				orgs.GET("", orgHandler.List)
				orgs.POST("", orgHandler.Create)
				orgs.GET("/:id", orgHandler.Get)
				orgs.PATCH("/:id", orgHandler.Update)
				orgs.DELETE("/:id", orgHandler.Delete)
				orgs.GET("/:id/members", orgHandler.ListMembers)
				orgs.PUT("/:id/members", orgHandler.AssignMember)
			}

			vehicles := protected.Group("/vehicles")
			{
				vehicles.GET("", vehicleHandler.List)
				vehicles.POST("", vehicleHandler.Create)
				vehicles.GET("/:id", vehicleHandler.Get)
				vehicles.PATCH("/:id", vehicleHandler.Update)
				vehicles.DELETE("/:id", vehicleHandler.Delete)
			}

			loads := protected.Group("/loads")
			{
				loads.GET("", loadHandler.List)
				loads.POST("", loadHandler.Create)
				loads.GET("/:id", loadHandler.Get)
				loads.PATCH("/:id", loadHandler.Update)
				loads.DELETE("/:id", loadHandler.Delete)
			}

			addresses := protected.Group("/addresses")
			{
				addresses.GET("", addressHandler.List)
				addresses.POST("", addressHandler.Create)
				addresses.GET("/:id", addressHandler.Get)
			}
		}
	}

	logger.Info("Server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(ginMode string) (*zap.Logger, error) {
	if ginMode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
