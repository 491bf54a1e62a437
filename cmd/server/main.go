package main

import (
	"log"
	"time"

	"jewelry_shop/internal/config"
	"jewelry_shop/internal/database"
	"jewelry_shop/internal/handlers"
	"jewelry_shop/internal/middleware"
	"jewelry_shop/internal/redis"
	"jewelry_shop/internal/repository"
	"jewelry_shop/internal/services"
	"jewelry_shop/pkg/telegram"

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

	// Initialize Telegram client
	telegramClient := telegram.NewClient(cfg.TelegramAPIURL, cfg.BotToken)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(
		productRepo, categoryRepo, bannerRepo,
		redisClient, time.Duration(cfg.CacheTTL)*time.Second,
	)
	cartService := services.NewCartService(cartRepo, productRepo)
	notifier := services.NewNotificationService(telegramClient, cfg.AdminChatIDs)
	orderService := services.NewOrderService(orderRepo, productRepo, notifier)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.PageSize)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.PageSize)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(orderService, userService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.TelegramAuth(cfg, userService))

	api := router.Group("/api")
	{
		api.GET("/categories/", catalogHandler.ListCategories)
		api.GET("/banners/", catalogHandler.ListBanners)

		// Gin cannot mix a static segment with a :id sibling, so the hot
		// lists live on their own paths instead of /products/featured/.
		api.GET("/products/", catalogHandler.ListProducts)
		api.GET("/products/:id/", catalogHandler.GetProduct)
		api.GET("/featured-products/", catalogHandler.Featured)
		api.GET("/new-arrivals/", catalogHandler.NewArrivals)

		api.GET("/cart/", cartHandler.GetCart)
		api.POST("/cart/add/", cartHandler.AddToCart)
		api.PATCH("/cart/items/:id/", cartHandler.UpdateItem)
		api.DELETE("/cart/items/:id/", cartHandler.RemoveItem)
		api.DELETE("/cart/clear/", cartHandler.ClearCart)

		api.GET("/orders/", orderHandler.ListOrders)
		api.POST("/orders/", orderHandler.CreateOrder)
		api.GET("/orders/:id/", orderHandler.GetOrder)

		api.GET("/users/me/", userHandler.GetMe)
		api.PATCH("/users/me/", userHandler.UpdateMe)
	}

	// Admin surface: the resolved Telegram identity must be listed in
	// ADMIN_IDS. Status changes notify the order's owner.
	admin := router.Group("/api", middleware.AdminOnly(cfg))
	{
		admin.PATCH("/orders/:id/status/", orderHandler.UpdateStatus)
		admin.PATCH("/orders/:id/paid/", orderHandler.SetPaid)
		admin.GET("/dashboard/", dashboardHandler.Stats)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
