package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"vuorovahti/internal/controller/handlers"
	"vuorovahti/internal/service"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	availability *service.AvailabilityService,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: handlers.NewHandlers(availability, logger),
		logger:   logger,
	}
}

// RegisterHandlers registers the command handlers
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/hakis", bot.MatchTypeExact, c.handlers.HandleHakis)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/delsu", bot.MatchTypeExact, c.handlers.HandleDelsu)

	return c.setCommands(ctx)
}

// setCommands publishes the command menu
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "hakis", Description: "🏸 Tarkista Hakiksen vuoro"},
		{Command: "delsu", Description: "🏸 Tarkista Delsun vuoro"},
		{Command: "help", Description: "📖 Ohjeet"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs the bot until the context is cancelled
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
