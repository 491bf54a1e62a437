package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"jewelry_shop/internal/bot"
	"jewelry_shop/internal/config"
	"jewelry_shop/internal/database"
	"jewelry_shop/internal/redis"
	"jewelry_shop/internal/repository"
	"jewelry_shop/internal/services"
	"jewelry_shop/pkg/telegram"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

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

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, nil)

	handler := bot.NewHandler(telegramClient, userService, orderService, redisClient, cfg.WebAppURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler.Run(ctx)
}
