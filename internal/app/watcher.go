package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"vuorovahti/internal/model"
	"vuorovahti/internal/service"
)

// Watcher polls every facility on a fixed interval and pushes a message
// to the configured chat when a shift turns out to be free.
type Watcher struct {
	availability *service.AvailabilityService
	bot          *bot.Bot
	chatID       int64
	interval     time.Duration
	logger       *zap.Logger
	stopChan     chan struct{}
}

func NewWatcher(
	availability *service.AvailabilityService,
	botInstance *bot.Bot,
	chatID int64,
	interval time.Duration,
	logger *zap.Logger,
) *Watcher {
	return &Watcher{
		availability: availability,
		bot:          botInstance,
		chatID:       chatID,
		interval:     interval,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the background watch loop.
func (w *Watcher) Start(ctx context.Context) {
	w.logger.Info("Starting availability watcher",
		zap.Int64("chat_id", w.chatID),
		zap.Duration("interval", w.interval))

	go w.run(ctx)
}

// Stop stops the background watch loop.
func (w *Watcher) Stop() {
	w.logger.Info("Stopping availability watcher")
	close(w.stopChan)
}

func (w *Watcher) run(ctx context.Context) {
	// First pass right away, then on every tick
	w.checkAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.checkAll(ctx)
		case <-w.stopChan:
			w.logger.Info("Availability watch stopped")
			return
		case <-ctx.Done():
			w.logger.Info("Availability watch cancelled")
			return
		}
	}
}

// checkAll runs one check per facility. Failures are logged and the
// loop moves on, one broken check must not hide the other court.
func (w *Watcher) checkAll(ctx context.Context) {
	for _, name := range w.availability.Names() {
		result, err := w.availability.CheckFacility(ctx, name)
		if err != nil {
			w.logger.Error("Watched availability check failed",
				zap.String("facility", name),
				zap.Error(err))
			continue
		}

		if result.Verdict != model.VerdictAvailable {
			continue
		}

		text := fmt.Sprintf("🏸 %s: vuoro vapaana %s, loppuu tunnilla %d!",
			result.Facility.Name,
			result.Date.Format("2006-01-02"),
			result.Facility.ClosingHour)

		_, err = w.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: w.chatID,
			Text:   text,
		})
		if err != nil {
			w.logger.Error("Failed to send watch notification",
				zap.String("facility", name),
				zap.Error(err))
		}
	}
}
