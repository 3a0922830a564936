package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"vuorovahti/internal/app"
	"vuorovahti/internal/avoinna"
	"vuorovahti/internal/config"
	"vuorovahti/internal/controller"
	"vuorovahti/internal/service"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting vuorovahti",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to load timezone", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := avoinna.NewClient(cfg.HTTPTimeout, logger)
	availability := service.NewAvailabilityService(client, config.Facilities(), loc, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, availability, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if cfg.WatchChatID != 0 {
		watcher := app.NewWatcher(availability, b, cfg.WatchChatID, cfg.WatchInterval, logger)
		watcher.Start(ctx)
		defer watcher.Stop()
	}

	botController.Start(ctx)

	logger.Info("Bot stopped")
}
