package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mroshb/quizmaster_bot/internal/config"
	"github.com/mroshb/quizmaster_bot/internal/database"
	"github.com/mroshb/quizmaster_bot/internal/handlers"
	"github.com/mroshb/quizmaster_bot/internal/quiz"
	"github.com/mroshb/quizmaster_bot/internal/repositories"
	"github.com/mroshb/quizmaster_bot/pkg/logger"
	"github.com/mroshb/quizmaster_bot/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel, cfg.AppEnv == "development")
	defer logger.Sync()

	logger.Info("Starting Quizmaster Bot...")

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run GORM auto-migration
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Wire handler dependencies
	masterRepo := repositories.NewQuizMasterRepository(db)
	sessions := quiz.NewSessionStore()
	sheets := quiz.NewSheetClient(cfg.GetFetchTimeout())
	handlerMgr := handlers.NewHandlerManager(cfg, masterRepo, sessions, sheets)

	// Initialize and start Telegram bot
	bot, err := telegram.InitBot(cfg, handlerMgr)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	logger.Info("Bot started successfully", "env", cfg.AppEnv)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()
	logger.Info("Bot stopped")
}
