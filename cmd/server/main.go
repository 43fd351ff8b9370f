package main

import (
	"log"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/config"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/database"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/handlers"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/redis"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db, productRepo)
	movementRepo := repository.NewCashMovementRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authService := services.NewAuthService(userRepo, redisClient, sessionTTL, cfg.BcryptCost)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, customerRepo)
	cashFlowService := services.NewCashFlowService(movementRepo)

	// Make sure the bootstrap admin account exists
	if err := authService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Fatal("Failed to ensure admin account:", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionTimeout)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	customerHandler := handlers.NewCustomerHandler(customerService, orderService)
	orderHandler := handlers.NewOrderHandler(orderService)
	cashFlowHandler := handlers.NewCashFlowHandler(cashFlowService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.Authenticate(authService))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/me", authHandler.Me)
	}

	// Admin surface: catalog, directory, all orders, cash ledger
	admin := authed.Group("", middleware.RequireAdmin())
	{
		admin.GET("/categories", categoryHandler.List)
		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/products", productHandler.List)
		admin.GET("/products/:id", productHandler.Get)
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.GET("/customers", customerHandler.List)
		admin.GET("/customers/:id", customerHandler.Get)
		admin.POST("/customers", customerHandler.Create)
		admin.PUT("/customers/:id", customerHandler.Update)
		admin.DELETE("/customers/:id", customerHandler.Delete)
		admin.GET("/customers/:id/orders", customerHandler.Orders)

		admin.GET("/orders", orderHandler.List)
		admin.GET("/orders/:id", orderHandler.Get)
		admin.POST("/orders", orderHandler.Create)
		admin.PUT("/orders/:id", orderHandler.Update)
		admin.DELETE("/orders/:id", orderHandler.Delete)

		admin.GET("/cash-flow", cashFlowHandler.List)
		admin.POST("/cash-flow", cashFlowHandler.Create)
		admin.GET("/cash-flow/balance", cashFlowHandler.Balance)
	}

	// Customer portal: own orders and profile only
	my := authed.Group("/my")
	{
		my.GET("/orders", orderHandler.List)
		my.GET("/orders/:id", orderHandler.Get)
		my.POST("/orders", orderHandler.Create)
		my.GET("/profile", customerHandler.Profile)
		my.PUT("/profile", customerHandler.UpdateProfile)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
